package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/profileapi/metal/kernel"
	"github.com/profileapi/pkg/endpoint"
	"github.com/profileapi/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("failed to read the .env file/values: " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err.Error())
	}
}

func main() {
	defer sentry.Flush(2 * time.Second)
	defer app.CloseLogs()
	defer app.CloseDB()
	defer app.CloseTracer()

	app.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.StartBackups(ctx); err != nil {
		slog.Error("could not start the backup scheduler", "error", err)
	}

	defer app.StopBackups()

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
