package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is accepted from proxies that only set this one.
	HeaderRequestID = "X-Request-ID"

	maxCIDLength = 128
)

// acceptCID returns v trimmed and capped, or "" when it holds anything other
// than visible ASCII.
func acceptCID(v string) string {
	v = strings.TrimSpace(v)
	for i := 0; i < len(v); i++ {
		if v[i] < '!' || v[i] > '~' {
			return ""
		}
	}
	if len(v) > maxCIDLength {
		v = v[:maxCIDLength]
	}
	return v
}

func requestCID(r *http.Request, uid Generator) string {
	for _, header := range []string{HeaderCorrelationID, HeaderRequestID} {
		if cid := acceptCID(r.Header.Get(header)); cid != "" {
			return cid
		}
	}
	if uid != nil {
		return uid.Generate()
	}
	return ""
}

func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cid := requestCID(r, uid); cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.WithCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
