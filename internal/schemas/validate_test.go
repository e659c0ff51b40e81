package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvera/cvbuilder/internal/types"
)

func TestValidateCVDataValid(t *testing.T) {
	raw := []byte(`{
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
		"experience": [{"id": "exp-1", "company": "Acme", "current": true}],
		"skills": ["Python", {"id": "s1", "name": "Go", "level": "Advanced"}],
		"languages": [{"id": "l1", "name": "English", "language": "English", "proficiency": "Fluent", "level": "Fluent"}],
		"cvLanguage": "english",
		"sectionOrder": [{"id": "personalInfo", "type": "personalInfo", "isVisible": true, "order": 0}]
	}`)

	assert.NoError(t, ValidateCVData(raw))
}

func TestValidateCVDataCanonicalRoundTrip(t *testing.T) {
	// Whatever the canonical structs marshal to must pass the schema.
	cv := types.NewCanonicalCV()
	cv.PersonalInfo.FullName = "Jane Doe"
	cv.Experience = []types.Experience{{ID: "exp-1", Company: "Acme"}}
	cv.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: "Advanced"}}
	cv.Languages = []types.Language{{ID: "l1", Name: "English", Proficiency: "Fluent"}}
	cv.SectionOrder = []types.SectionRef{{ID: "personalInfo", Type: "personalInfo", IsVisible: true, Order: 0}}

	raw, err := json.Marshal(cv)
	require.NoError(t, err)
	assert.NoError(t, ValidateCVData(raw))
}

func TestValidateCVDataErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "missing personalInfo",
			raw:   `{"experience": []}`,
			field: "(root)",
		},
		{
			name:  "experience item without id",
			raw:   `{"personalInfo": {}, "experience": [{"company": "Acme"}]}`,
			field: "experience.0",
		},
		{
			name:  "empty experience id",
			raw:   `{"personalInfo": {}, "experience": [{"id": ""}]}`,
			field: "experience.0.id",
		},
		{
			name:  "unsupported cv language",
			raw:   `{"personalInfo": {}, "cvLanguage": "german"}`,
			field: "cvLanguage",
		},
		{
			name:  "negative section order",
			raw:   `{"personalInfo": {}, "sectionOrder": [{"id": "skills", "isVisible": true, "order": -1}]}`,
			field: "sectionOrder.0.order",
		},
		{
			name:  "section order entry missing isVisible",
			raw:   `{"personalInfo": {}, "sectionOrder": [{"id": "skills", "order": 0}]}`,
			field: "sectionOrder.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCVData([]byte(tt.raw))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)

			var fields []string
			for _, fe := range ve.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateCVDataMalformedJSON(t *testing.T) {
	err := ValidateCVData([]byte(`{broken`))
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}

func TestValidationErrorMessageListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "experience.0.id", Message: "String length must be greater than or equal to 1"},
	}}
	msg := ve.Error()
	assert.Contains(t, msg, "cv_data validation failed")
	assert.Contains(t, msg, "experience.0.id")
}
