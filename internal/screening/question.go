package screening

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Question is a required question together with every answer accepted for it.
type Question struct {
	ID                string   `json:"Id" mapstructure:"Id"`
	AcceptableAnswers []string `json:"Answer" mapstructure:"Answer"`
}

// QuestionList is the ordered set of questions every application must answer.
// Question IDs are expected to be unique; the list itself does not check it.
type QuestionList []Question

// Accepts reports whether answer equals one of the acceptable answers once both
// are upper-cased with the full Unicode mapping, so "straße" matches "STRASSE".
func (q Question) Accepts(answer string) bool {
	// A Caser keeps state and must not be shared between goroutines.
	upper := cases.Upper(language.Und)
	want := upper.String(answer)

	for _, acceptable := range q.AcceptableAnswers {
		if upper.String(acceptable) == want {
			return true
		}
	}

	return false
}

func (l QuestionList) Len() int {
	return len(l)
}

func (l QuestionList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, q := range l {
		ids = append(ids, q.ID)
	}

	return ids
}
