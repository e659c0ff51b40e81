// Package types defines the canonical CV data structures shared by the
// importer, the editor and the section order model.
package types

// CVLanguage selects which label set and translation direction is active.
type CVLanguage string

// Supported CV languages.
const (
	LanguageAzerbaijani CVLanguage = "azerbaijani"
	LanguageEnglish     CVLanguage = "english"
)

// PersonalInfo holds the header fields of a CV. All fields are optional;
// FullName is derived from FirstName/LastName when absent.
type PersonalInfo struct {
	FullName       string `json:"fullName"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
	LinkedIn       string `json:"linkedin"`
	Location       string `json:"location"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Summary        string `json:"summary"`
}

// Experience is one work history entry.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// SetCurrent flips the current flag and keeps the current/endDate exclusivity:
// a current position never carries an end date.
func (e *Experience) SetCurrent(current bool) {
	e.Current = current
	if current {
		e.EndDate = ""
	}
}

// SetEndDate sets an end date and clears the current flag when non-empty.
func (e *Experience) SetEndDate(endDate string) {
	e.EndDate = endDate
	if endDate != "" {
		e.Current = false
	}
}

// Education is one education history entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// SetCurrent flips the current flag, clearing the end date when set.
func (e *Education) SetCurrent(current bool) {
	e.Current = current
	if current {
		e.EndDate = ""
	}
}

// SetEndDate sets an end date and clears the current flag when non-empty.
func (e *Education) SetEndDate(endDate string) {
	e.EndDate = endDate
	if endDate != "" {
		e.Current = false
	}
}

// Project is one portfolio project entry. Skills is a free-text list of
// technologies as providers deliver it.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Skills      string `json:"skills,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// VolunteerExperience is one volunteering entry.
type VolunteerExperience struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Cause        string `json:"cause,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// SetCurrent flips the current flag, clearing the end date when set.
func (v *VolunteerExperience) SetCurrent(current bool) {
	v.Current = current
	if current {
		v.EndDate = ""
	}
}

// SetEndDate sets an end date and clears the current flag when non-empty.
func (v *VolunteerExperience) SetEndDate(endDate string) {
	v.EndDate = endDate
	if endDate != "" {
		v.Current = false
	}
}

// HonorAward is one honors/awards entry. Providers sometimes deliver awards
// as bare strings; the importer upgrades those to this shape.
type HonorAward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// CustomSection is a user-defined free-form section.
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CanonicalCV is the normalized, schema-stable CV structure every editor
// section reads and writes. Optional fields degrade to empty string or empty
// slice once materialized, never to null.
type CanonicalCV struct {
	PersonalInfo        PersonalInfo          `json:"personalInfo"`
	Experience          []Experience          `json:"experience"`
	Education           []Education           `json:"education"`
	Skills              []Skill               `json:"skills"`
	Languages           []Language            `json:"languages"`
	Projects            []Project             `json:"projects"`
	Certifications      []Certification       `json:"certifications"`
	VolunteerExperience []VolunteerExperience `json:"volunteerExperience"`
	HonorsAwards        []HonorAward          `json:"honorsAwards"`
	CustomSections      []CustomSection       `json:"customSections"`
	CVLanguage          CVLanguage            `json:"cvLanguage"`
	SectionOrder        []SectionRef          `json:"sectionOrder"`
}

// NewCanonicalCV returns a fresh, empty CV with every list materialized.
func NewCanonicalCV() *CanonicalCV {
	cv := &CanonicalCV{CVLanguage: LanguageAzerbaijani}
	cv.EnsureDefaults()
	return cv
}

// EnsureDefaults replaces nil slices with empty ones and fills the CV
// language. Loaded records pass through here so that no list field is ever
// nil in memory or null on the wire.
func (cv *CanonicalCV) EnsureDefaults() {
	if cv.Experience == nil {
		cv.Experience = []Experience{}
	}
	if cv.Education == nil {
		cv.Education = []Education{}
	}
	if cv.Skills == nil {
		cv.Skills = []Skill{}
	}
	if cv.Languages == nil {
		cv.Languages = []Language{}
	}
	if cv.Projects == nil {
		cv.Projects = []Project{}
	}
	if cv.Certifications == nil {
		cv.Certifications = []Certification{}
	}
	if cv.VolunteerExperience == nil {
		cv.VolunteerExperience = []VolunteerExperience{}
	}
	if cv.HonorsAwards == nil {
		cv.HonorsAwards = []HonorAward{}
	}
	if cv.CustomSections == nil {
		cv.CustomSections = []CustomSection{}
	}
	if cv.SectionOrder == nil {
		cv.SectionOrder = []SectionRef{}
	}
	if cv.CVLanguage == "" {
		cv.CVLanguage = LanguageAzerbaijani
	}
}
