package pkgrouter

import (
	"net/http"
	"time"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// WithRequestObserver reports every routed request to obs.
func WithRequestObserver(obs RequestObserver) Option {
	return func(r *Router) {
		if obs != nil {
			r.mws = append(r.mws, middlewareObserve(obs))
		}
	}
}

func middlewareObserve(obs RequestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			obs.ObserveRequest(r.Method, matchedRoutePath(r), rec.Status(), time.Since(start))
		})
	}
}
