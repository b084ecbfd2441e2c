package app

import (
	"context"
	"net/http"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgconfig"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkglog"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgmetrics"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkgrouter"
	"github.com/kulnaak/Data-Manipulator-Web-App/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	metrics   *pkgmetrics.Metrics

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	pkglog.InitLogging(app.config.GetString("log.level"))

	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
