package payload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/profileapi/database"
	"github.com/profileapi/pkg/portal"
)

func year(value int) *int {
	return &value
}

func TestProfileCreateRequestValidation(t *testing.T) {
	v := portal.GetDefaultValidator()

	valid := ProfileCreateRequest{
		Name:     "Ada",
		Email:    "ada@example.test",
		UserType: "student",
		Education: &EducationRequest{
			Degree:      "BSc",
			Institution: "UCL",
			Year:        year(2020),
		},
	}

	if errs, err := v.Inspect(valid); err != nil || len(errs) != 0 {
		t.Fatalf("expected valid request, got %v (%v)", errs, err)
	}

	bad := valid
	bad.Name = "A"
	bad.Email = "not-an-email"
	bad.Score = 101
	bad.UserType = "admin"
	bad.Education = &EducationRequest{Degree: "BSc", Institution: "UCL"}

	errs, err := v.Inspect(bad)
	if err != nil || len(errs) == 0 {
		t.Fatalf("expected validation errors, got %v (%v)", errs, err)
	}

	for _, field := range []string{"name", "email", "score", "user_type", "year"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestProfileUpdateRequestValidatesPresentFieldsOnly(t *testing.T) {
	v := portal.GetDefaultValidator()

	if errs, _ := v.Inspect(ProfileUpdateRequest{}); len(errs) != 0 {
		t.Fatalf("empty update should be valid: %v", errs)
	}

	zero := 0.0
	if errs, _ := v.Inspect(ProfileUpdateRequest{Score: &zero}); len(errs) != 0 {
		t.Fatalf("zero score should be valid: %v", errs)
	}

	over := 100.5
	short := "A"
	errs, _ := v.Inspect(ProfileUpdateRequest{Score: &over, Name: &short})
	if len(errs) != 2 {
		t.Fatalf("expected two validation errors, got %v", errs)
	}

	if _, ok := errs["score"]; !ok {
		t.Fatalf("expected score error, got %v", errs)
	}
}

func TestProfileCreateRequestToAttrs(t *testing.T) {
	blank := "  "
	req := ProfileCreateRequest{
		Name:      "Ada",
		Email:     "ada@example.test",
		Location:  &blank,
		UserType:  "teacher",
		Education: &EducationRequest{Degree: "BSc", Institution: "UCL", Year: year(2020)},
	}

	attrs := req.ToAttrs()

	if attrs.Location != nil {
		t.Fatalf("blank location should become NULL")
	}

	if attrs.UserType != database.UserTypeTeacher || attrs.Education == nil || attrs.Education.Year != 2020 {
		t.Fatalf("unexpected attrs %+v", attrs)
	}
}

func TestGetProfileResponse(t *testing.T) {
	at := time.Date(2025, time.March, 2, 10, 11, 12, 0, time.UTC)

	res := GetProfileResponse(database.User{
		ID:        7,
		UUID:      "uuid-7",
		Name:      "Ada",
		Email:     "ada@example.test",
		UserType:  database.UserTypeStudent,
		CreatedAt: at,
		UpdatedAt: at,
	})

	if res.UserID != 7 || res.UserType != "student" || res.CreatedAt != "2025-03-02 10:11:12" {
		t.Fatalf("unexpected response %+v", res)
	}

	if res.Education == nil || len(res.Education) != 0 {
		t.Fatalf("education should render as an empty list")
	}
}

func TestEducationYearOnlyNeedsPresence(t *testing.T) {
	v := portal.GetDefaultValidator()

	for _, value := range []int{0, 1835, 2400} {
		req := EducationRequest{Degree: "BSc", Institution: "UCL", Year: year(value)}

		if errs, err := v.Inspect(req); err != nil || len(errs) != 0 {
			t.Fatalf("year %d should be accepted, got %v (%v)", value, errs, err)
		}
	}

	if errs, _ := v.Inspect(EducationRequest{Degree: "BSc", Institution: "UCL"}); len(errs) != 1 {
		t.Fatalf("expected a missing year error, got %v", errs)
	}
}

func TestProfileRequestsNormaliseNameBeforeValidation(t *testing.T) {
	v := portal.GetDefaultValidator()

	for _, name := range []string{"   ", "a ", "  b\t"} {
		create := ProfileCreateRequest{Name: name, Email: "ada@example.test", UserType: "student"}
		create.Normalise()

		if errs, _ := v.Inspect(create); errs["name"] == nil {
			t.Fatalf("create name %q should be rejected, got %v", name, errs)
		}

		raw := name
		update := ProfileUpdateRequest{Name: &raw}
		update.Normalise()

		if errs, _ := v.Inspect(update); errs["name"] == nil {
			t.Fatalf("update name %q should be rejected, got %v", name, errs)
		}
	}

	create := ProfileCreateRequest{Name: "  Ada   Lovelace ", Email: "ada@example.test", UserType: "student"}
	create.Normalise()

	if create.Name != "Ada Lovelace" {
		t.Fatalf("unexpected normalised name %q", create.Name)
	}

	var empty ProfileUpdateRequest
	empty.Normalise()

	if empty.Name != nil {
		t.Fatalf("an absent name must stay absent")
	}
}

func TestProfileUpdateRequestTracksExplicitNulls(t *testing.T) {
	var req ProfileUpdateRequest

	doc := `{"bio": null, "location": "Paris", "name": null, "score": null}`
	if err := json.Unmarshal([]byte(doc), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !req.Clears("bio") || req.Clears("location") || req.Clears("phone_no") || req.Clears("name") {
		t.Fatalf("unexpected cleared columns %v", req.nulls)
	}

	if req.Location == nil || *req.Location != "Paris" || req.Name != nil || req.Score != nil {
		t.Fatalf("unexpected decoded fields %+v", req)
	}

	changes := req.ToChanges()
	columns := changes.Columns()

	if value, ok := columns["bio"]; !ok || value != nil {
		t.Fatalf("expected bio to be cleared, got %v", columns)
	}

	if _, ok := columns["phone_no"]; ok {
		t.Fatalf("an absent phone must not be touched, got %v", columns)
	}

	if err := json.Unmarshal([]byte(`{"bio": 5}`), &req); err == nil {
		t.Fatalf("expected a type error")
	}
}
