package handler

import (
	"net/http"

	"github.com/profileapi/docs"
	"github.com/profileapi/pkg/endpoint"
)

type DocsHandler struct{}

func NewDocsHandler() DocsHandler {
	return DocsHandler{}
}

func (h DocsHandler) JSON(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	content, err := docs.JSON()
	if err != nil {
		return endpoint.LogInternalError("could not load the api document", err)
	}

	return h.write(w, "application/json", content)
}

func (h DocsHandler) YAML(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	return h.write(w, "application/yaml", docs.YAML())
}

func (h DocsHandler) write(w http.ResponseWriter, contentType string, content []byte) *endpoint.ApiError {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		return endpoint.LogInternalError("could not write the api document", err)
	}

	return nil
}
