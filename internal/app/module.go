package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/tabular"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.tabular.enabled") {
		closer, err := tabular.New(tabular.Dependency{
			Config:  a.config,
			Router:  a.router,
			Metrics: a.metrics,
			RunID:   a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module tabular", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Tabular"] = closer
		}
	}
}
