package handler

import (
	"net/http"

	"github.com/profileapi/handler/payload"
	"github.com/profileapi/pkg/endpoint"
)

type RootHandler struct{}

func NewRootHandler() RootHandler {
	return RootHandler{}
}

func (h RootHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resp := endpoint.NewResponseWithCache("welcome-v2", 3600, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	data := payload.WelcomeResponse{
		Message:  "Welcome to Profile API with PostgreSQL",
		Docs:     "/docs",
		Database: "PostgreSQL",
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode the welcome response", err)
	}

	return nil
}
