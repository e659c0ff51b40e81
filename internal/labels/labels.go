// Package labels maps abstract section and field keys to localized display
// strings for the two supported CV languages. Unknown keys fall back to a
// readable form of the key itself; lookups never fail.
package labels

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cvera/cvbuilder/internal/types"
)

var titleCasers = map[types.CVLanguage]cases.Caser{
	types.LanguageAzerbaijani: cases.Title(language.Azerbaijani),
	types.LanguageEnglish:     cases.Title(language.English),
}

// table holds the section/field label set.
var table = map[string]map[types.CVLanguage]string{
	"personalInfo": {
		types.LanguageAzerbaijani: "Şəxsi məlumatlar",
		types.LanguageEnglish:     "Personal Information",
	},
	"summary": {
		types.LanguageAzerbaijani: "Haqqında",
		types.LanguageEnglish:     "Summary",
	},
	"experience": {
		types.LanguageAzerbaijani: "İş təcrübəsi",
		types.LanguageEnglish:     "Work Experience",
	},
	"education": {
		types.LanguageAzerbaijani: "Təhsil",
		types.LanguageEnglish:     "Education",
	},
	"skills": {
		types.LanguageAzerbaijani: "Bacarıqlar",
		types.LanguageEnglish:     "Skills",
	},
	"projects": {
		types.LanguageAzerbaijani: "Layihələr",
		types.LanguageEnglish:     "Projects",
	},
	"certifications": {
		types.LanguageAzerbaijani: "Sertifikatlar",
		types.LanguageEnglish:     "Certifications",
	},
	"languages": {
		types.LanguageAzerbaijani: "Dillər",
		types.LanguageEnglish:     "Languages",
	},
	"volunteerExperience": {
		types.LanguageAzerbaijani: "Könüllü təcrübə",
		types.LanguageEnglish:     "Volunteer Experience",
	},
	"honorsAwards": {
		types.LanguageAzerbaijani: "Mükafatlar",
		types.LanguageEnglish:     "Honors & Awards",
	},
	"customSections": {
		types.LanguageAzerbaijani: "Əlavə bölmələr",
		types.LanguageEnglish:     "Custom Sections",
	},
	"present": {
		types.LanguageAzerbaijani: "Hazırda",
		types.LanguageEnglish:     "Present",
	},
	"gpa": {
		types.LanguageAzerbaijani: "ÜOMG",
		types.LanguageEnglish:     "GPA",
	},
}

// languageLevels translates proficiency values between display languages.
var languageLevels = map[string]map[types.CVLanguage]string{
	"native": {
		types.LanguageAzerbaijani: "Ana dili",
		types.LanguageEnglish:     "Native",
	},
	"fluent": {
		types.LanguageAzerbaijani: "Sərbəst",
		types.LanguageEnglish:     "Fluent",
	},
	"professional": {
		types.LanguageAzerbaijani: "Peşəkar",
		types.LanguageEnglish:     "Professional",
	},
	"intermediate": {
		types.LanguageAzerbaijani: "Orta",
		types.LanguageEnglish:     "Intermediate",
	},
	"beginner": {
		types.LanguageAzerbaijani: "Başlanğıc",
		types.LanguageEnglish:     "Beginner",
	},
}

// degrees translates common degree names.
var degrees = map[string]map[types.CVLanguage]string{
	"bachelor's degree": {
		types.LanguageAzerbaijani: "Bakalavr",
		types.LanguageEnglish:     "Bachelor's degree",
	},
	"master's degree": {
		types.LanguageAzerbaijani: "Magistr",
		types.LanguageEnglish:     "Master's degree",
	},
	"doctorate": {
		types.LanguageAzerbaijani: "Doktorantura",
		types.LanguageEnglish:     "Doctorate",
	},
	"high school": {
		types.LanguageAzerbaijani: "Orta məktəb",
		types.LanguageEnglish:     "High School",
	},
}

// Get returns the display string for a section or field key. Unknown keys
// return a title-cased form of the key rather than failing.
func Get(key string, lang types.CVLanguage) string {
	if entry, ok := table[key]; ok {
		if label, ok := entry[lang]; ok {
			return label
		}
	}
	return fallback(key, lang)
}

// LanguageLevel translates a language proficiency value. Unknown levels pass
// through unchanged.
func LanguageLevel(level string, lang types.CVLanguage) string {
	if entry, ok := languageLevels[strings.ToLower(strings.TrimSpace(level))]; ok {
		if label, ok := entry[lang]; ok {
			return label
		}
	}
	return level
}

// Degree translates a degree name. Unknown degrees pass through unchanged.
func Degree(degree string, lang types.CVLanguage) string {
	if entry, ok := degrees[strings.ToLower(strings.TrimSpace(degree))]; ok {
		if label, ok := entry[lang]; ok {
			return label
		}
	}
	return degree
}

// ExperienceDateRange renders a start/end/current triple for display, e.g.
// "Jan 2020 - Present" or "Jan 2020 - Hazırda".
func ExperienceDateRange(start, end string, current bool, lang types.CVLanguage) string {
	if start == "" && end == "" && !current {
		return ""
	}
	if current {
		end = Get("present", lang)
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}

// phrases are the free-text snippets SmartText recognizes.
var phrases = map[string]map[types.CVLanguage]string{
	"present": {
		types.LanguageAzerbaijani: "Hazırda",
		types.LanguageEnglish:     "Present",
	},
	"hazırda": {
		types.LanguageAzerbaijani: "Hazırda",
		types.LanguageEnglish:     "Present",
	},
	"davam edir": {
		types.LanguageAzerbaijani: "Davam edir",
		types.LanguageEnglish:     "Ongoing",
	},
}

// SmartText translates a handful of known free-text phrases and otherwise
// returns the input unchanged. It is deliberately conservative: user prose is
// never rewritten.
func SmartText(s string, lang types.CVLanguage) string {
	if entry, ok := phrases[strings.ToLower(strings.TrimSpace(s))]; ok {
		if label, ok := entry[lang]; ok {
			return label
		}
	}
	return s
}

// fallback produces a readable label from a camelCase key.
func fallback(key string, lang types.CVLanguage) string {
	var words strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words.WriteByte(' ')
		}
		words.WriteRune(r)
	}

	caser, ok := titleCasers[lang]
	if !ok {
		caser = titleCasers[types.LanguageEnglish]
	}
	return caser.String(words.String())
}
