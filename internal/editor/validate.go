package editor

import "fmt"

// FieldError is one field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateForSave checks the fields a save requires. A non-empty result
// blocks the save call entirely; no partial save is attempted.
func ValidateForSave(rec *Record) []FieldError {
	var errs []FieldError
	if rec.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if rec.TemplateID == "" {
		errs = append(errs, FieldError{Field: "templateId", Message: "template is required"})
	}
	if rec.CVData.PersonalInfo.FullName == "" {
		errs = append(errs, FieldError{Field: "personalInfo.fullName", Message: "full name is required"})
	}
	return errs
}
