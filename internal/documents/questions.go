package documents

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/app-screener/internal/screening"
)

const questionsKey = "questions"

// ErrNoQuestions is returned when the question list document has no questions key.
var ErrNoQuestions = errors.New("no questions found")

// LoadQuestionList reads the question list document at path.
func LoadQuestionList(path string) (screening.QuestionList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question list file: %w", err)
	}

	return ParseQuestionList(data)
}

// ParseQuestionList decodes a question list document.
// An empty list is valid, a missing or null questions key is not.
// Duplicate question ids are rejected since validation assumes they are unique.
func ParseQuestionList(data []byte) (screening.QuestionList, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding question list: %w", ErrMalformed, err)
	}

	if raw[questionsKey] == nil {
		return nil, ErrNoQuestions
	}

	if err := validateSchema(questionListSchema, raw); err != nil {
		return nil, fmt.Errorf("%w: question list: %w", ErrMalformed, err)
	}

	var questions screening.QuestionList
	if err := mapstructure.Decode(raw[questionsKey], &questions); err != nil {
		return nil, fmt.Errorf("%w: question list: %w", ErrMalformed, err)
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return questions, nil
}
