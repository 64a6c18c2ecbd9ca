package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRunID identifies a single screening run.
	FieldRunID = "run_id"
	// FieldQuestionList is the path of the question list document.
	FieldQuestionList = "question_list"
	// FieldApplicationsDir is the directory the applications are read from.
	FieldApplicationsDir = "applications_dir"
	FieldFile            = "file"
	FieldApplicant       = "applicant"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RunFields returns the fields shared by every log entry of a screening run.
func RunFields(runID, questionList, applicationsDir string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRunID, Value: runID},
		StringField{Key: FieldQuestionList, Value: questionList},
		StringField{Key: FieldApplicationsDir, Value: applicationsDir},
	)
}

// WithRunFields attaches the run fields to the provided logger.
func WithRunFields(logger *zap.Logger, runID, questionList, applicationsDir string) *zap.Logger {
	return WithFields(logger, RunFields(runID, questionList, applicationsDir)...)
}
