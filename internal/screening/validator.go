// Package screening decides whether a job application answers every
// required question acceptably.
package screening

// Validate reports whether the application is accepted against questions.
//
// The application is rejected when the applicant name or the answer list is
// missing, when the number of answers differs from the number of questions,
// or when any question is unanswered or answered with something that is not
// one of its acceptable answers. Answers are compared after upper-casing both
// sides and otherwise exactly. Neither argument is modified.
func Validate(app *ApplicationRecord, questions QuestionList) bool {
	if app == nil || app.Name == nil {
		return false
	}

	if app.Answers == nil {
		return false
	}

	answers := *app.Answers

	// More answers than questions may hide conflicting answers to one question.
	if len(answers) != len(questions) {
		return false
	}

	for _, question := range questions {
		answer, ok := FindAnswer(question.ID, answers)
		if !ok {
			return false
		}

		if !question.Accepts(answer) {
			return false
		}
	}

	return true
}
