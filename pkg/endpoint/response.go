package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type Response struct {
	etag         string
	cacheControl string
	writer       http.ResponseWriter
	request      *http.Request
	headers      func(w http.ResponseWriter)
}

func NewResponseWithCache(salt string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	etag := fmt.Sprintf(`"%s"`, strings.TrimSpace(salt))
	cacheControl := fmt.Sprintf("public, max-age=%d", maxAgeSeconds)

	return &Response{
		writer:       writer,
		request:      request,
		etag:         etag,
		cacheControl: cacheControl,
		headers: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", cacheControl)
			w.Header().Set("ETag", etag)
		},
	}
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	cacheControl := "no-store"

	return &Response{
		writer:       writer,
		request:      request,
		cacheControl: cacheControl,
		headers: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", cacheControl)
		},
	}
}

func (r *Response) RespondOk(payload any) error {
	return r.respond(http.StatusOK, payload)
}

func (r *Response) RespondCreated(payload any) error {
	return r.respond(http.StatusCreated, payload)
}

func (r *Response) RespondNoContent() {
	r.writer.Header().Set("Cache-Control", r.cacheControl)
	r.writer.WriteHeader(http.StatusNoContent)
}

func (r *Response) respond(status int, payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(status)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) HasCache() bool {
	if r.etag == "" {
		return false
	}

	match := strings.TrimSpace(
		r.request.Header.Get("If-None-Match"),
	)

	return match == r.etag
}

func (r *Response) RespondWithNotModified() {
	r.writer.WriteHeader(http.StatusNotModified)
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// BadRequestError carries msg verbatim; clients match on these detail strings.
func BadRequestError(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusBadRequest,
		Err:     errors.New(msg),
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func UnprocessableEntity(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Unprocessable entity: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Data:    errs,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	return &ApiError{
		Message: msg,
		Status:  http.StatusNotFound,
		Err:     errors.New(msg),
	}
}
