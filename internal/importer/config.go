// Package importer converts external profile payloads of unknown shape into
// the canonical CV structure. It never fails: malformed sections degrade to
// empty output while the rest of the profile imports normally.
package importer

import (
	"time"

	"github.com/cvera/cvbuilder/internal/types"
)

// Config carries everything the normalizer is allowed to depend on. There is
// no hidden fallback to process state inside the mapping logic; callers that
// want deterministic output inject their own clock.
type Config struct {
	// Now supplies the timestamp used in generated item ids.
	Now func() time.Time

	// Language is stamped on the produced CV as its cvLanguage and selects
	// which label set the editor opens with.
	Language types.CVLanguage

	// PresentMarkers are the strings (lowercase) that mark an open-ended
	// date range, e.g. the second half of "Jan 2020 - Present". Localized
	// equivalents belong here too.
	PresentMarkers []string

	// PlaceholderSkills are supplied when an import yields no skills at
	// all, so a first-run CV does not look empty. Every entry must carry
	// IsPlaceholder so a later save can tell them apart from user data.
	PlaceholderSkills []types.Skill

	// PlaceholderLanguages are supplied when an import yields no
	// languages, under the same marker contract as PlaceholderSkills.
	PlaceholderLanguages []types.Language
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Now:            time.Now,
		Language:       types.LanguageAzerbaijani,
		PresentMarkers: []string{"present", "hazırda", "davam edir"},
		PlaceholderSkills: []types.Skill{
			{Name: "Communication", Level: types.DefaultSkillLevel, IsPlaceholder: true},
			{Name: "Teamwork", Level: types.DefaultSkillLevel, IsPlaceholder: true},
			{Name: "Problem Solving", Level: types.DefaultSkillLevel, IsPlaceholder: true},
		},
		PlaceholderLanguages: []types.Language{
			{Name: "Azerbaijani", Proficiency: "Native", IsPlaceholder: true},
			{Name: "English", Proficiency: types.DefaultLanguageProficiency, IsPlaceholder: true},
		},
	}
}

// withDefaults fills in zero-valued fields so Normalize can accept a partial
// Config.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Now == nil {
		c.Now = def.Now
	}
	if c.Language == "" {
		c.Language = def.Language
	}
	if c.PresentMarkers == nil {
		c.PresentMarkers = def.PresentMarkers
	}
	if c.PlaceholderSkills == nil {
		c.PlaceholderSkills = def.PlaceholderSkills
	}
	if c.PlaceholderLanguages == nil {
		c.PlaceholderLanguages = def.PlaceholderLanguages
	}
	return c
}
