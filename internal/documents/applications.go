package documents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/app-screener/internal/screening"
)

const nameKey = "Name"

// ListApplications returns the names of the files in dir in lexical order.
// Subdirectories are skipped.
func ListApplications(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing application directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	return files, nil
}

// ReadApplication reads and parses the application document dir/name.
// A read failure is returned as is, a parse failure wraps ErrMalformed.
func ReadApplication(dir, name string) (*screening.ApplicationRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading application %s: %w", name, err)
	}

	return ParseApplication(data)
}

// ParseApplication decodes an application document.
// Missing and null fields stay nil in the returned record. A non-string Name
// is kept as its text form: numbers and booleans as mapstructure renders them,
// objects and arrays as JSON.
func ParseApplication(data []byte) (*screening.ApplicationRecord, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding application: %w", ErrMalformed, err)
	}

	if err := validateSchema(applicationSchema, raw); err != nil {
		return nil, fmt.Errorf("%w: application: %w", ErrMalformed, err)
	}

	doc, _ := raw.(map[string]any)
	if name, ok := doc[nameKey]; ok {
		doc[nameKey] = nameValue(name)
	}

	var record screening.ApplicationRecord
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &record,
	})
	if err != nil {
		return nil, fmt.Errorf("creating application decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: application: %w", ErrMalformed, err)
	}

	return &record, nil
}

// nameValue turns a composite Name into its JSON text so that any present name
// counts as a name. Scalars are left to the weakly typed decoder.
func nameValue(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return v
	}
}
