package kernel

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/profileapi/database"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/metal/router"
	"github.com/profileapi/pkg/endpoint"
	"github.com/profileapi/pkg/middleware"
)

func (a *App) SetRouter(router router.Router) {
	a.router = &router
}

// Handler returns the mux wrapped with the server wide middleware. Metrics
// sits closest to the mux so it sees the matched route pattern.
func (a *App) Handler() baseHttp.Handler {
	var wrap []func(baseHttp.Handler) baseHttp.Handler

	if a.sentry != nil && a.sentry.Handler != nil {
		wrap = append(wrap, a.sentry.Handler.Handle)
	}

	wrap = append(wrap, middleware.RequestID)

	if a.env != nil && a.env.Tracing.Enabled {
		name := a.env.App.Name

		wrap = append(wrap, func(next baseHttp.Handler) baseHttp.Handler {
			return otelhttp.NewHandler(next, name)
		})
	}

	wrap = append(wrap, middleware.Metrics)

	cfg := endpoint.ServerHandlerConfig{Wrap: wrap}

	if mux := a.GetMux(); mux != nil {
		cfg.Mux = mux
	}

	if a.env != nil {
		cfg.IsProduction = a.env.App.IsProduction()
		cfg.DevHost = a.env.App.URL
	}

	return endpoint.NewServerHandler(cfg)
}

// StartBackups is a no-op when scheduled backups are disabled.
func (a *App) StartBackups(ctx context.Context) error {
	if a.backups == nil {
		return nil
	}

	return a.backups.Start(ctx)
}

func (a *App) StopBackups() {
	if a.backups == nil {
		return
	}

	a.backups.Stop()
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

func (a *App) CloseTracer() {
	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("could not shut the tracer provider down", "error", err)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
