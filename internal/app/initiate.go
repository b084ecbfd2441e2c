package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgconfig"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgmetrics"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgrouter"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkguid"
)

//nolint:gochecknoglobals // fallback values for keys missing from the config file
var defaultConfig = map[string]any{
	"tz":                      "UTC",
	"log.level":               "info",
	"server.address.http":     ":5000",
	"storage.upload_dir":      "uploads",
	"upload.max_bytes":        64 << 20,
	"ratelimit.enabled":       false,
	"ratelimit.rps":           50,
	"ratelimit.burst":         100,
	"snowflake.node":          -1,
	"modules.tabular.enabled": true,
}

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, pkgconfig.WithDefaults(defaultConfig), pkgconfig.WithEnv(""))
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()
	a.metrics = pkgmetrics.New()

	sf, err := pkguid.NewSnowflake(a.config.GetInt("snowflake.node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	opts := []pkgrouter.Option{
		pkgrouter.WithMaxBodyBytes(a.config.GetInt("upload.max_bytes")),
		pkgrouter.WithRequestObserver(a.metrics),
	}
	if a.config.GetBool("ratelimit.enabled") {
		opts = append(opts, pkgrouter.WithRateLimit(
			a.config.GetFloat("ratelimit.rps"),
			int(a.config.GetInt("ratelimit.burst")),
		))
	}

	a.router = pkgrouter.NewRouter(a.uuid, opts...)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn[closerHTTPServer] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}

