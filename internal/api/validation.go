package api

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
)

// registerSchema validates the registration payload before anything touches
// the profile. Trait scores are the only hard requirement; everything else
// degrades to scoring defaults downstream.
const registerSchema = `{
	"type": "object",
	"required": ["name", "riasec_scores"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"occupation": {"type": "string"},
		"riasec_scores": {
			"type": "object",
			"minProperties": 1,
			"additionalProperties": {"type": "number", "minimum": 0}
		},
		"skills": {"type": "array", "items": {"type": "string"}},
		"interests": {"type": "array", "items": {"type": "string"}},
		"education_level": {"type": "string"},
		"experience_years": {"type": "integer", "minimum": 0},
		"current_field": {"type": "string"}
	}
}`

func validateRegisterPayload(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(registerSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apperrors.NewInvalidRequestError(strings.Join(errs, "; "))
	}

	return nil
}
