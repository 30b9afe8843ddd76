package database

import "slices"

type EducationAttrs struct {
	Degree      string
	Institution string
	Year        int
}

type ProfileAttrs struct {
	Name      string
	Email     string
	Bio       *string
	Location  *string
	Score     float64
	TestCount int
	PhoneNo   *string
	UserType  UserType
	Education *EducationAttrs
}

// ClearableProfileColumns lists the nullable columns an update may reset.
func ClearableProfileColumns() []string {
	return []string{"bio", "location", "phone_no"}
}

// ProfileChanges carries a partial update. Nil fields are left untouched and
// the nullable columns named in Clear are set to NULL.
type ProfileChanges struct {
	Name      *string
	Email     *string
	Bio       *string
	Location  *string
	Score     *float64
	TestCount *int
	PhoneNo   *string
	UserType  *UserType
	Education *EducationAttrs
	Clear     []string
}

func (c ProfileChanges) Columns() map[string]any {
	columns := map[string]any{}

	for _, column := range c.Clear {
		if slices.Contains(ClearableProfileColumns(), column) {
			columns[column] = nil
		}
	}

	if c.Name != nil {
		columns["name"] = *c.Name
	}

	if c.Email != nil {
		columns["email"] = *c.Email
	}

	if c.Bio != nil {
		columns["bio"] = *c.Bio
	}

	if c.Location != nil {
		columns["location"] = *c.Location
	}

	if c.Score != nil {
		columns["score"] = *c.Score
	}

	if c.TestCount != nil {
		columns["test_count"] = *c.TestCount
	}

	if c.PhoneNo != nil {
		columns["phone_no"] = *c.PhoneNo
	}

	if c.UserType != nil {
		columns["user_type"] = string(*c.UserType)
	}

	return columns
}
