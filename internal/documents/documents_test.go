package documents

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/app-screener/internal/screening"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseQuestionList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expect    screening.QuestionList
		expectErr error
		anyErr    bool
	}{
		{
			name:  "valid list",
			input: `{"questions": [{"Id": "id1", "Answer": ["Python", "Python3"]}, {"Id": "id2", "Answer": ["Yes"]}]}`,
			expect: screening.QuestionList{
				{ID: "id1", AcceptableAnswers: []string{"Python", "Python3"}},
				{ID: "id2", AcceptableAnswers: []string{"Yes"}},
			},
		},
		{
			name:  "empty list",
			input: `{"questions": []}`,
		},
		{
			name:      "missing questions",
			input:     `{"other": 1}`,
			expectErr: ErrNoQuestions,
		},
		{
			name:      "null questions",
			input:     `{"questions": null}`,
			expectErr: ErrNoQuestions,
		},
		{
			name:      "invalid json",
			input:     `{"questions": [`,
			expectErr: ErrMalformed,
		},
		{
			name:      "answers are not a list",
			input:     `{"questions": [{"Id": "id1", "Answer": "Python"}]}`,
			expectErr: ErrMalformed,
		},
		{
			name:  "empty id is allowed",
			input: `{"questions": [{"Id": "", "Answer": ["Python"]}]}`,
			expect: screening.QuestionList{
				{ID: "", AcceptableAnswers: []string{"Python"}},
			},
		},
		{
			name:      "question without id",
			input:     `{"questions": [{"Answer": ["Python"]}]}`,
			expectErr: ErrMalformed,
		},
		{
			name:   "duplicate ids",
			input:  `{"questions": [{"Id": "id1", "Answer": ["a"]}, {"Id": "id1", "Answer": ["b"]}]}`,
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseQuestionList([]byte(tt.input))
			switch {
			case tt.expectErr != nil:
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectErr), "unexpected error: %v", err)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				if len(tt.expect) == 0 {
					assert.Empty(t, got)
					return
				}
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}

func TestParseApplication(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		record, err := ParseApplication([]byte(`{"Name": "Alice", "Questions": [{"Id": "id1", "Answer": "PYTHON"}]}`))
		require.NoError(t, err)
		require.NotNil(t, record.Name)
		require.NotNil(t, record.Answers)
		assert.Equal(t, "Alice", *record.Name)
		require.Len(t, *record.Answers, 1)
		entry := (*record.Answers)[0]
		require.NotNil(t, entry.QuestionID)
		assert.Equal(t, "id1", *entry.QuestionID)
		require.NotNil(t, entry.Answer)
		assert.Equal(t, "PYTHON", *entry.Answer)
	})

	t.Run("missing fields stay nil", func(t *testing.T) {
		record, err := ParseApplication([]byte(`{"Name": null}`))
		require.NoError(t, err)
		assert.Nil(t, record.Name)
		assert.Nil(t, record.Answers)
	})

	t.Run("empty answers are present", func(t *testing.T) {
		record, err := ParseApplication([]byte(`{"Name": "Bob", "Questions": []}`))
		require.NoError(t, err)
		require.NotNil(t, record.Answers)
		assert.Empty(t, *record.Answers)
	})

	t.Run("entry without answer", func(t *testing.T) {
		record, err := ParseApplication([]byte(`{"Name": "Bob", "Questions": [{"Id": "id1"}]}`))
		require.NoError(t, err)
		require.Len(t, *record.Answers, 1)
		assert.Nil(t, (*record.Answers)[0].Answer)
	})

	t.Run("entry without id", func(t *testing.T) {
		record, err := ParseApplication([]byte(`{"Name": "Bob", "Questions": [{"Answer": "Go"}]}`))
		require.NoError(t, err)
		require.Len(t, *record.Answers, 1)
		assert.Nil(t, (*record.Answers)[0].QuestionID)
	})

	names := []struct {
		input  string
		expect string
	}{
		{input: `{"Name": 42, "Questions": [{"Id": "id1", "Answer": "python"}]}`, expect: "42"},
		{input: `{"Name": 1.5, "Questions": [{"Id": "id1", "Answer": "python"}]}`, expect: "1.5"},
		{input: `{"Name": true, "Questions": [{"Id": "id1", "Answer": "python"}]}`, expect: "1"},
		{input: `{"Name": {"first": "Al"}, "Questions": [{"Id": "id1", "Answer": "python"}]}`, expect: `{"first":"Al"}`},
		{input: `{"Name": ["Al", "Li"], "Questions": [{"Id": "id1", "Answer": "python"}]}`, expect: `["Al","Li"]`},
	}

	questions := screening.QuestionList{{ID: "id1", AcceptableAnswers: []string{"Python"}}}
	for _, tt := range names {
		t.Run("non-string name "+tt.expect, func(t *testing.T) {
			record, err := ParseApplication([]byte(tt.input))
			require.NoError(t, err)
			require.NotNil(t, record.Name)
			assert.Equal(t, tt.expect, *record.Name)
			assert.True(t, screening.Validate(record, questions))
		})
	}

	malformed := map[string]string{
		"invalid json":       `{"Name": "Alice"`,
		"not an object":      `["Alice"]`,
		"null document":      `null`,
		"answers not a list": `{"Name": "Alice", "Questions": {"Id": "id1"}}`,
		"numeric answer":     `{"Name": "Alice", "Questions": [{"Id": "id1", "Answer": 3}]}`,
	}

	for name, input := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := ParseApplication([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadQuestionList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "questions.json", `{"questions": [{"Id": "id1", "Answer": ["Go"]}]}`)

	questions, err := LoadQuestionList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id1"}, questions.IDs())

	_, err = LoadQuestionList(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAndReadApplications(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"Name": "Bob", "Questions": []}`)
	writeFile(t, dir, "a.json", `{"Name": "Alice", "Questions": []}`)
	writeFile(t, dir, "broken.json", `not json`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	files, err := ListApplications(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json", "broken.json"}, files)

	record, err := ReadApplication(dir, "a.json")
	require.NoError(t, err)
	assert.Equal(t, "Alice", record.ApplicantName())

	_, err = ReadApplication(dir, "broken.json")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadApplication(dir, "absent.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)

	_, err = ListApplications(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
