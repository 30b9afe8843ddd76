package middleware

import (
	"net/http"

	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/endpoint"
)

// Pipeline groups the middleware shared by every route. Chain composes
// handler-level middleware, Writes guards routes that mutate profiles.
type Pipeline struct {
	Env    *env.Environment
	Writes func(http.Handler) http.Handler
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Guard wraps a mutating route with the write limiter when one is configured.
func (m Pipeline) Guard(h http.Handler) http.Handler {
	if m.Writes == nil {
		return h
	}

	return m.Writes(h)
}
