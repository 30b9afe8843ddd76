package kernel

import (
	"fmt"
	baseHttp "net/http"

	"github.com/profileapi/database"
	"github.com/profileapi/database/backup"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/metal/router"
	"github.com/profileapi/pkg/llogs"
	"github.com/profileapi/pkg/middleware"
	"github.com/profileapi/pkg/portal"
)

type App struct {
	router    *router.Router
	sentry    *Sentry
	tracer    *portal.TracerProvider
	backups   *backup.Scheduler
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        MakeDbConnection(env),
	}

	tracer, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the tracer provider: %w", err)
	}

	app.tracer = tracer

	if env.Backup.Enabled {
		scheduler, err := backup.NewScheduler(env)
		if err != nil {
			return nil, fmt.Errorf("bootstrapping error > could not create the backup scheduler: %w", err)
		}

		app.backups = scheduler
	}

	app.SetRouter(router.Router{
		Env:       env,
		Db:        app.db,
		Validator: validator,
		Mux:       baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:    env,
			Writes: middleware.WritesRateLimit(env.RateLimit.WritesPerMinute),
		},
	})

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	if a.db != nil {
		if err := a.db.Migrate(); err != nil {
			panic("bootstrapping error > could not migrate the schema: " + err.Error())
		}
	}

	r := a.router

	r.Root()
	r.Profiles()
	r.Docs()
	r.KeepAlive()
	r.KeepAliveDB()
	r.Metrics()
}
