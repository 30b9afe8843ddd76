package portal

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) String() string {
	return s.value
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.Und)

	return strings.TrimSpace(caser.String(s.value))
}

// Squash collapses inner runs of whitespace into a single space.
func (s Stringable) Squash() string {
	return strings.Join(strings.Fields(s.value), " ")
}

// ToEmail lower-cases the address so uniqueness holds regardless of casing.
func (s Stringable) ToEmail() string {
	return s.ToLower()
}

// OrNil returns nil for blank input so optional columns are stored as NULL.
func (s Stringable) OrNil() *string {
	if s.value == "" {
		return nil
	}

	value := s.value

	return &value
}
