package screening

// AnswerEntry is a single answer given by an applicant.
// QuestionID and Answer are nil when the document left them out.
type AnswerEntry struct {
	QuestionID *string `json:"Id,omitempty" mapstructure:"Id"`
	Answer     *string `json:"Answer,omitempty" mapstructure:"Answer"`
}

// ApplicationRecord is one parsed job application.
// Both fields are optional: nil means the document did not provide them.
type ApplicationRecord struct {
	Name    *string        `json:"Name,omitempty" mapstructure:"Name"`
	Answers *[]AnswerEntry `json:"Questions,omitempty" mapstructure:"Questions"`
}

// ApplicantName returns the applicant name or an empty string when it is absent.
func (a *ApplicationRecord) ApplicantName() string {
	if a == nil || a.Name == nil {
		return ""
	}

	return *a.Name
}

// FindAnswer returns the answer of the first entry with the given question id.
// The second value is false when no entry matches or the matching entry has no answer.
// Entries without a question id never match, not even an empty id.
func FindAnswer(questionID string, answers []AnswerEntry) (string, bool) {
	for _, entry := range answers {
		if entry.QuestionID == nil || *entry.QuestionID != questionID {
			continue
		}

		if entry.Answer == nil {
			return "", false
		}

		return *entry.Answer, true
	}

	return "", false
}
