package documents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed marks a document that is not usable as structured input.
var ErrMalformed = errors.New("malformed document")

const questionListSchemaSource = `{
	"type": "object",
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["Id", "Answer"],
				"properties": {
					"Id": {"type": "string"},
					"Answer": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

// The application schema only checks the shape of the answer list. Name may hold
// any value; whether Name or Questions exist at all is decided by screening.Validate.
const applicationSchemaSource = `{
	"type": "object",
	"properties": {
		"Questions": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"properties": {
					"Id": {"type": ["string", "null"]},
					"Answer": {"type": ["string", "null"]}
				}
			}
		}
	}
}`

var (
	questionListSchema = mustCompile(questionListSchemaSource)
	applicationSchema  = mustCompile(applicationSchemaSource)
)

func mustCompile(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("compiling document schema: %v", err))
	}

	return schema
}

// validateSchema checks the decoded document against schema and returns all violations as one error.
func validateSchema(schema *gojsonschema.Schema, doc any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return fmt.Errorf("schema violations: %s", strings.Join(violations, "; "))
}
