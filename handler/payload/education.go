package payload

import (
	"github.com/profileapi/database"
	"github.com/profileapi/pkg/portal"
)

type EducationRequest struct {
	Degree      string `json:"degree" validate:"required,notblank,max=255"`
	Institution string `json:"institution" validate:"required,notblank,max=255"`
	Year        *int   `json:"year" validate:"required"`
}

type EducationResponse struct {
	EducationID uint64 `json:"education_id"`
	UserID      uint64 `json:"user_id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
	CreatedAt   string `json:"created_at"`
}

func (e *EducationRequest) ToAttrs() *database.EducationAttrs {
	if e == nil {
		return nil
	}

	attrs := &database.EducationAttrs{
		Degree:      e.Degree,
		Institution: e.Institution,
	}

	if e.Year != nil {
		attrs.Year = *e.Year
	}

	return attrs
}

func GetEducationResponse(items []database.Education) []EducationResponse {
	data := make([]EducationResponse, 0, len(items))

	for _, item := range items {
		data = append(data, EducationResponse{
			EducationID: item.ID,
			UserID:      item.UserID,
			Degree:      item.Degree,
			Institution: item.Institution,
			Year:        item.Year,
			CreatedAt:   item.CreatedAt.UTC().Format(portal.DatesLayout),
		})
	}

	return data
}
