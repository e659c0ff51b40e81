package types

// Section kind constants. These are the ids used in SectionOrder entries and
// in the section catalog.
const (
	SectionPersonalInfo        = "personalInfo"
	SectionSummary             = "summary"
	SectionExperience          = "experience"
	SectionEducation           = "education"
	SectionSkills              = "skills"
	SectionProjects            = "projects"
	SectionCertifications      = "certifications"
	SectionLanguages           = "languages"
	SectionVolunteerExperience = "volunteerExperience"
	SectionHonorsAwards        = "honorsAwards"
	SectionCustomSections      = "customSections"
)

// SectionRef is the persisted shape of one section order entry, embedded
// inside cv_data.sectionOrder.
type SectionRef struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	IsVisible bool   `json:"isVisible"`
	Order     int    `json:"order"`
}

// HasSectionData reports whether the named section holds any content. Used to
// default visibility for sections absent from a stored order.
func (cv *CanonicalCV) HasSectionData(kind string) bool {
	switch kind {
	case SectionPersonalInfo:
		return cv.PersonalInfo.FullName != "" || cv.PersonalInfo.Email != ""
	case SectionSummary:
		return cv.PersonalInfo.Summary != ""
	case SectionExperience:
		return len(cv.Experience) > 0
	case SectionEducation:
		return len(cv.Education) > 0
	case SectionSkills:
		return len(cv.Skills) > 0
	case SectionProjects:
		return len(cv.Projects) > 0
	case SectionCertifications:
		return len(cv.Certifications) > 0
	case SectionLanguages:
		return len(cv.Languages) > 0
	case SectionVolunteerExperience:
		return len(cv.VolunteerExperience) > 0
	case SectionHonorsAwards:
		return len(cv.HonorsAwards) > 0
	case SectionCustomSections:
		return len(cv.CustomSections) > 0
	default:
		return false
	}
}
