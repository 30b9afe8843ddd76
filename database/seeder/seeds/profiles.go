package seeds

import (
	"fmt"
	"strings"

	"github.com/profileapi/database"
)

type fixture struct {
	name      string
	location  string
	score     float64
	testCount int
	degree    string
	school    string
	year      int
}

var fixtures = map[database.UserType][]fixture{
	database.UserTypeStudent: {
		{name: "Ada Byron", location: "London, UK", score: 88.5, testCount: 6, degree: "BSc Mathematics", school: "University of London", year: 2024},
		{name: "Alan Mathison", location: "Manchester, UK", score: 73, testCount: 4, degree: "BSc Computer Science", school: "University of Manchester", year: 2025},
	},
	database.UserTypeProfessor: {
		{name: "Grace Brewster", location: "New York, USA", score: 97, testCount: 12, degree: "PhD Mathematics", school: "Yale University", year: 1934},
		{name: "Edsger Wybe", location: "Austin, USA", score: 95.5, testCount: 10, degree: "PhD Computing", school: "University of Amsterdam", year: 1959},
	},
	database.UserTypeTeacher: {
		{name: "Margaret Heafield", location: "Boston, USA", score: 91, testCount: 8, degree: "BA Mathematics", school: "Earlham College", year: 1958},
		{name: "Barbara Jane", location: "Cambridge, USA", score: 89, testCount: 7, degree: "MSc Computer Science", school: "Stanford University", year: 1965},
	},
}

// ProfileAttrsFor returns the fixtures of one user type, ready to be created.
func ProfileAttrsFor(kind database.UserType) []database.ProfileAttrs {
	items := fixtures[kind]
	attrs := make([]database.ProfileAttrs, 0, len(items))

	for _, item := range items {
		bio := fmt.Sprintf("%s %s seeded for local development.", strings.ToUpper(string(kind[:1]))+string(kind[1:]), item.name)
		location := item.location

		attrs = append(attrs, database.ProfileAttrs{
			Name:      item.name,
			Email:     emailFor(item.name),
			Bio:       &bio,
			Location:  &location,
			Score:     item.score,
			TestCount: item.testCount,
			UserType:  kind,
			Education: &database.EducationAttrs{
				Degree:      item.degree,
				Institution: item.school,
				Year:        item.year,
			},
		})
	}

	return attrs
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@profiles.test"
}
