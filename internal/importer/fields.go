package importer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field candidate tables. Each canonical attribute is probed through an
// ordered list of historical provider key names; the first non-empty match
// wins. Keeping these as data keeps the probing independently testable and
// extensible without touching the mapping code.
var (
	fullNameKeys       = []string{"fullName", "full_name", "name"}
	firstNameKeys      = []string{"firstName", "first_name"}
	lastNameKeys       = []string{"lastName", "last_name"}
	emailKeys          = []string{"email", "email_address"}
	phoneKeys          = []string{"phone", "phone_number", "mobile"}
	websiteKeys        = []string{"public_profile_url", "website", "url"}
	linkedinKeys       = []string{"public_profile_url", "linkedin", "linkedin_url"}
	usernameKeys       = []string{"public_identifier", "username"}
	locationKeys       = []string{"location"}
	cityKeys           = []string{"city"}
	countryKeys        = []string{"country", "country_code"}
	pictureKeys        = []string{"profile_photo", "profile_picture", "photo", "avatar"}
	summaryKeys        = []string{"about", "headline", "summary"}

	experienceListKeys = []string{"experience", "experiences", "work_experience", "positions"}
	expPositionKeys    = []string{"position", "title"}
	expCompanyKeys     = []string{"company_name", "company", "organization"}
	expStartKeys       = []string{"starts_at", "start_date", "startDate"}
	expEndKeys         = []string{"ends_at", "end_date", "endDate"}
	expDescriptionKeys = []string{"summary", "description"}
	expLocationKeys    = []string{"location"}
	expRangeKeys       = []string{"duration", "date_range", "dates"}

	educationListKeys  = []string{"education", "educations"}
	eduInstitutionKeys = []string{"college_name", "school", "institution"}
	eduDegreeKeys      = []string{"college_degree", "degree"}
	eduFieldKeys       = []string{"college_degree_field", "field_of_study", "field"}
	eduDescriptionKeys = []string{"college_activity", "description"}
	eduGPAKeys         = []string{"gpa", "grade"}
	eduRangeKeys       = []string{"college_duration", "duration", "year"}
	eduStartKeys       = []string{"starts_at", "start_date", "startDate"}
	eduEndKeys         = []string{"ends_at", "end_date", "endDate"}

	projectListKeys    = []string{"projects"}
	projNameKeys       = []string{"title", "name"}
	projDescKeys       = []string{"description", "summary"}
	projSkillsKeys     = []string{"skills", "technologies"}
	projURLKeys        = []string{"link", "url"}
	projRangeKeys      = []string{"duration", "date_range"}
	projStartKeys      = []string{"start_date", "startDate"}
	projEndKeys        = []string{"end_date", "endDate"}

	certListKeys       = []string{"certification", "certifications"}
	certNameKeys       = []string{"name", "title", "certification"}
	certIssuerKeys     = []string{"authority", "issuer", "organization"}
	certDateKeys       = []string{"start_date", "date", "issued_date", "duration"}
	certDescKeys       = []string{"description", "summary"}

	volListKeys        = []string{"volunteering", "volunteer_experience", "volunteerExperience"}
	volOrgKeys         = []string{"organization", "company"}
	volRoleKeys        = []string{"role", "title", "position"}
	volCauseKeys       = []string{"cause", "topic"}
	volDescKeys        = []string{"description", "summary"}
	volRangeKeys       = []string{"date_range", "duration"}
	volStartKeys       = []string{"start_date", "startDate"}
	volEndKeys         = []string{"end_date", "endDate"}

	awardListKeys      = []string{"awards", "honors", "honorsAwards"}
	awardTitleKeys     = []string{"name", "title"}
	awardIssuerKeys    = []string{"organization", "issuer", "authority"}
	awardDateKeys      = []string{"duration", "date", "issued_date"}
	awardDescKeys      = []string{"summary", "description"}

	skillListKeys      = []string{"skills"}
	skillNameKeys      = []string{"name", "skill", "title"}
	skillLevelKeys     = []string{"level", "proficiency"}

	languageListKeys   = []string{"languages"}
	langNameKeys       = []string{"name", "language"}
	langLevelKeys      = []string{"proficiency", "level"}
)

// firstString probes the candidate keys in order and returns the first
// non-empty string value found. Numeric values are stringified so fields like
// a numeric GPA still map.
func firstString(raw map[string]any, keys []string) string {
	for _, key := range keys {
		if s := asString(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

// firstList probes the candidate keys in order and returns the first value
// that is a non-empty array.
func firstList(raw map[string]any, keys []string) []any {
	for _, key := range keys {
		if list, ok := raw[key].([]any); ok && len(list) > 0 {
			return list
		}
	}
	return nil
}

// asString converts the loosely-typed values JSON decoding produces into a
// trimmed string, or "" when the value has no usable text form.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// asBool reads a boolean-ish value: true, "true", 1.
func asBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	case float64:
		return val != 0
	default:
		return false
	}
}

// asObject returns the value as a JSON object, or nil.
func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}
