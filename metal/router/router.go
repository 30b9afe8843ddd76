package router

import (
	baseHttp "net/http"
	"strings"

	"github.com/profileapi/database"
	"github.com/profileapi/database/repository"
	"github.com/profileapi/handler"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/endpoint"
	"github.com/profileapi/pkg/middleware"
	"github.com/profileapi/pkg/portal"
)

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Db        *database.Connection
	Validator *portal.Validator
}

func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// WritesFor is PipelineFor for routes that change stored profiles.
func (r *Router) WritesFor(apiHandler endpoint.ApiHandler) baseHttp.Handler {
	return r.Pipeline.Guard(r.PipelineFor(apiHandler))
}

func (r *Router) Root() {
	abstract := handler.NewRootHandler()

	r.Mux.HandleFunc("GET /{$}", r.PipelineFor(abstract.Handle))
}

func (r *Router) Profiles() {
	repo := repository.Profiles{DB: r.Db}
	abstract := handler.NewProfilesHandler(r.Validator, &repo)

	r.handle("GET /profiles", r.PipelineFor(abstract.Index))
	r.handle("POST /profiles", r.WritesFor(abstract.Create))
	r.handle("GET /profiles/{user_id}", r.PipelineFor(abstract.Show))
	r.handle("PUT /profiles/{user_id}", r.WritesFor(abstract.Update))
	r.handle("DELETE /profiles/{user_id}", r.WritesFor(abstract.Delete))
	r.handle("PATCH /profiles/{user_id}/increment-test", r.WritesFor(abstract.IncrementTest))
	r.handle("PATCH /profiles/{user_id}/update-score", r.WritesFor(abstract.UpdateScore))
}

func (r *Router) Docs() {
	abstract := handler.NewDocsHandler()

	r.Mux.HandleFunc("GET /docs", r.PipelineFor(abstract.JSON))
	r.Mux.HandleFunc("GET /openapi.yaml", r.PipelineFor(abstract.YAML))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	r.Mux.HandleFunc("GET /ping", r.PipelineFor(abstract.Handle))
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Ping, r.Db)

	r.Mux.HandleFunc("GET /ping-db", r.PipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	repo := repository.Profiles{DB: r.Db}

	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler(&repo))
}

// handle registers the pattern and its trailing slash twin.
func (r *Router) handle(pattern string, h baseHttp.Handler) {
	r.Mux.Handle(pattern, h)
	r.Mux.Handle(strings.TrimSuffix(pattern, "/")+"/{$}", h)
}
