package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/profileapi/database"
	"github.com/profileapi/database/repository"
	"github.com/profileapi/database/repository/pagination"
	"github.com/profileapi/database/repository/queries"
	"github.com/profileapi/handler/paginate"
	"github.com/profileapi/handler/payload"
	"github.com/profileapi/pkg/endpoint"
	"github.com/profileapi/pkg/metrics"
	"github.com/profileapi/pkg/portal"
)

const (
	userNotFound      = "User not found"
	emailRegistered   = "Email already registered"
	scoreOutOfRange   = "Score must be between 0 and 100"
	invalidFields     = "The given fields are invalid"
	unparsableRequest = "could not parse the given data."
)

func userTypeRule() string {
	kinds := make([]string, 0, len(database.UserTypes()))
	for _, kind := range database.UserTypes() {
		kinds = append(kinds, string(kind))
	}

	return "must be one of [" + strings.Join(kinds, " ") + "]"
}

type ProfilesHandler struct {
	Validator *portal.Validator
	Profiles  *repository.Profiles
}

func NewProfilesHandler(validator *portal.Validator, profiles *repository.Profiles) ProfilesHandler {
	return ProfilesHandler{
		Validator: validator,
		Profiles:  profiles,
	}
}

func (h ProfilesHandler) Create(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	req, err := endpoint.ParseRequestBody[payload.ProfileCreateRequest](r)
	if err != nil {
		return bodyError(err)
	}

	req.Normalise()

	if errs, err := h.Validator.Inspect(req); err != nil {
		return endpoint.LogInternalError("could not validate the given data", err)
	} else if len(errs) > 0 {
		return endpoint.UnprocessableEntity(invalidFields, errs)
	}

	user, err := h.Profiles.Create(req.ToAttrs())
	if err != nil {
		return repositoryError(err)
	}

	metrics.IncProfileCreated(string(user.UserType))
	slog.Info("profile created", "user_id", user.ID, "user_type", user.UserType)

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.GetProfileResponse(*user)); err != nil {
		return endpoint.LogInternalError("could not encode the profile response", err)
	}

	return nil
}

func (h ProfilesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	query := r.URL.Query()

	result, err := h.Profiles.List(
		queries.ProfileFilters{UserType: query.Get("user_type")},
		paginate.NewFrom(query),
	)

	if err != nil {
		if errors.Is(err, repository.ErrInvalidUserType) {
			return repositoryError(err)
		}

		return endpoint.LogInternalError("could not list the profiles", err)
	}

	items := pagination.HydratePage(result, payload.GetProfileResponse)

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("could not encode the profiles response", err)
	}

	return nil
}

func (h ProfilesHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, apiErr := userID(r)
	if apiErr != nil {
		return apiErr
	}

	user, err := h.Profiles.FindByID(id)
	if err != nil {
		return repositoryError(err)
	}

	return respondProfile(w, r, user)
}

func (h ProfilesHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, apiErr := userID(r)
	if apiErr != nil {
		return apiErr
	}

	req, err := endpoint.ParseRequestBody[payload.ProfileUpdateRequest](r)
	if err != nil {
		return bodyError(err)
	}

	req.Normalise()

	if errs, err := h.Validator.Inspect(req); err != nil {
		return endpoint.LogInternalError("could not validate the given data", err)
	} else if len(errs) > 0 {
		return endpoint.UnprocessableEntity(invalidFields, errs)
	}

	user, err := h.Profiles.Update(id, req.ToChanges())
	if err != nil {
		return repositoryError(err)
	}

	return respondProfile(w, r, user)
}

func (h ProfilesHandler) Delete(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, apiErr := userID(r)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Profiles.Delete(id); err != nil {
		return repositoryError(err)
	}

	metrics.IncProfileDeleted()
	slog.Info("profile deleted", "user_id", id)

	endpoint.NewNoCacheResponse(w, r).RespondNoContent()

	return nil
}

func (h ProfilesHandler) IncrementTest(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, apiErr := userID(r)
	if apiErr != nil {
		return apiErr
	}

	user, err := h.Profiles.IncrementTests(id)
	if err != nil {
		return repositoryError(err)
	}

	metrics.IncTestRecorded()

	return respondProfile(w, r, user)
}

func (h ProfilesHandler) UpdateScore(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	id, apiErr := userID(r)
	if apiErr != nil {
		return apiErr
	}

	raw := strings.TrimSpace(r.URL.Query().Get("new_score"))
	if raw == "" {
		return endpoint.UnprocessableEntity(invalidFields, map[string]any{"new_score": "the field is required"})
	}

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return endpoint.UnprocessableEntity(invalidFields, map[string]any{"new_score": "must be a number"})
	}

	user, err := h.Profiles.UpdateScore(id, score)
	if err != nil {
		if errors.Is(err, repository.ErrScoreOutOfRange) {
			metrics.IncScoreUpdate(metrics.OutcomeRejected)
		}

		return repositoryError(err)
	}

	metrics.IncScoreUpdate(metrics.OutcomeAccepted)

	return respondProfile(w, r, user)
}

func respondProfile(w http.ResponseWriter, r *http.Request, user *database.User) *endpoint.ApiError {
	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.GetProfileResponse(*user)); err != nil {
		return endpoint.LogInternalError("could not encode the profile response", err)
	}

	return nil
}

// userID answers 422 for a non integer and 404 for ids no row can have.
func userID(r *http.Request) (uint64, *endpoint.ApiError) {
	raw := strings.TrimSpace(r.PathValue("user_id"))

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, endpoint.UnprocessableEntity(invalidFields, map[string]any{"user_id": "must be an integer"})
	}

	if id < 1 {
		return 0, endpoint.NotFound(userNotFound)
	}

	return uint64(id), nil
}

func bodyError(err error) *endpoint.ApiError {
	slog.Warn(unparsableRequest, "error", err)

	return endpoint.UnprocessableEntity(unparsableRequest, map[string]any{"body": err.Error()})
}

func repositoryError(err error) *endpoint.ApiError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return endpoint.NotFound(userNotFound)
	case errors.Is(err, repository.ErrEmailTaken):
		return endpoint.BadRequestError(emailRegistered)
	case errors.Is(err, repository.ErrScoreOutOfRange):
		return endpoint.BadRequestError(scoreOutOfRange)
	case errors.Is(err, repository.ErrInvalidName):
		return endpoint.UnprocessableEntity(invalidFields, map[string]any{"name": err.Error()})
	case errors.Is(err, repository.ErrInvalidUserType):
		return endpoint.UnprocessableEntity(invalidFields, map[string]any{"user_type": userTypeRule()})
	case errors.Is(err, repository.ErrConstraint):
		return endpoint.UnprocessableEntity(invalidFields, map[string]any{"profile": err.Error()})
	default:
		return endpoint.LogInternalError("could not process the profile", err)
	}
}
