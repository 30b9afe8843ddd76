package payload

import (
	"bytes"
	"encoding/json"

	"github.com/profileapi/database"
	"github.com/profileapi/pkg/portal"
)

type ProfileCreateRequest struct {
	Name      string            `json:"name" validate:"required,notblank,min=2,max=100"`
	Email     string            `json:"email" validate:"required,email,max=255"`
	Bio       *string           `json:"bio" validate:"omitempty,max=500"`
	Location  *string           `json:"location" validate:"omitempty,max=255"`
	Score     float64           `json:"score" validate:"gte=0,lte=100"`
	TestCount int               `json:"test_count" validate:"gte=0"`
	PhoneNo   *string           `json:"phone_no" validate:"omitempty,max=20"`
	UserType  string            `json:"user_type" validate:"required,oneof=student professor teacher"`
	Education *EducationRequest `json:"education" validate:"omitempty"`
}

// ProfileUpdateRequest fields left out of the JSON document stay nil and are
// not touched. An explicit null on bio, location or phone_no clears the
// column; on any other field it is ignored.
type ProfileUpdateRequest struct {
	Name      *string           `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	Email     *string           `json:"email" validate:"omitempty,email,max=255"`
	Bio       *string           `json:"bio" validate:"omitempty,max=500"`
	Location  *string           `json:"location" validate:"omitempty,max=255"`
	Score     *float64          `json:"score" validate:"omitempty,gte=0,lte=100"`
	TestCount *int              `json:"test_count" validate:"omitempty,gte=0"`
	PhoneNo   *string           `json:"phone_no" validate:"omitempty,max=20"`
	UserType  *string           `json:"user_type" validate:"omitempty,oneof=student professor teacher"`
	Education *EducationRequest `json:"education" validate:"omitempty"`

	nulls []string
}

type ProfileResponse struct {
	UserID    uint64              `json:"user_id"`
	UUID      string              `json:"uuid"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Bio       *string             `json:"bio"`
	Location  *string             `json:"location"`
	Score     float64             `json:"score"`
	TestCount int                 `json:"test_count"`
	PhoneNo   *string             `json:"phone_no"`
	UserType  string              `json:"user_type"`
	CreatedAt string              `json:"created_at"`
	UpdatedAt string              `json:"updated_at"`
	Education []EducationResponse `json:"education"`
}

// Normalise squashes the name so the length rules apply to what is stored.
func (p *ProfileCreateRequest) Normalise() {
	p.Name = portal.NewStringable(p.Name).Squash()
}

// Normalise squashes the name so the length rules apply to what is stored.
func (p *ProfileUpdateRequest) Normalise() {
	if p.Name == nil {
		return
	}

	name := portal.NewStringable(*p.Name).Squash()
	p.Name = &name
}

func (p *ProfileUpdateRequest) UnmarshalJSON(data []byte) error {
	type fields ProfileUpdateRequest

	var decoded fields
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = ProfileUpdateRequest(decoded)
	p.nulls = nil

	for _, column := range database.ClearableProfileColumns() {
		if value, ok := raw[column]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			p.nulls = append(p.nulls, column)
		}
	}

	return nil
}

// Clears reports whether the document set the given column to null.
func (p ProfileUpdateRequest) Clears(column string) bool {
	for _, item := range p.nulls {
		if item == column {
			return true
		}
	}

	return false
}

func (p ProfileCreateRequest) ToAttrs() database.ProfileAttrs {
	return database.ProfileAttrs{
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  optional(p.Location),
		Score:     p.Score,
		TestCount: p.TestCount,
		PhoneNo:   optional(p.PhoneNo),
		UserType:  database.UserType(p.UserType),
		Education: p.Education.ToAttrs(),
	}
}

func (p ProfileUpdateRequest) ToChanges() database.ProfileChanges {
	changes := database.ProfileChanges{
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Location:  p.Location,
		Score:     p.Score,
		TestCount: p.TestCount,
		PhoneNo:   p.PhoneNo,
		Education: p.Education.ToAttrs(),
		Clear:     append([]string(nil), p.nulls...),
	}

	if p.UserType != nil {
		kind := database.UserType(*p.UserType)
		changes.UserType = &kind
	}

	return changes
}

func GetProfileResponse(user database.User) ProfileResponse {
	return ProfileResponse{
		UserID:    user.ID,
		UUID:      user.UUID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		Location:  user.Location,
		Score:     user.Score,
		TestCount: user.TestCount,
		PhoneNo:   user.PhoneNo,
		UserType:  string(user.UserType),
		CreatedAt: user.CreatedAt.UTC().Format(portal.DatesLayout),
		UpdatedAt: user.UpdatedAt.UTC().Format(portal.DatesLayout),
		Education: GetEducationResponse(user.Education),
	}
}

// optional stores blank strings as NULL.
func optional(value *string) *string {
	if value == nil {
		return nil
	}

	return portal.NewStringable(*value).OrNil()
}
