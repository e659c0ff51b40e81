// Package sections maintains the ordered, independently hideable list of CV
// sections and keeps it synchronized between the editor, the drag-and-drop
// preview and persisted storage.
package sections

import "github.com/cvera/cvbuilder/internal/types"

// CatalogEntry describes one known section kind. Display names come from the
// labels package, keyed by the section id.
type CatalogEntry struct {
	ID   string
	Icon string

	// AlwaysVisible sections cannot be hidden by the user.
	AlwaysVisible bool
}

// catalog is the fixed set of section kinds, in default display order. The
// stored section order is always merged against this list, so a record saved
// before a new kind existed still picks it up.
var catalog = []CatalogEntry{
	{
		ID:            types.SectionPersonalInfo,
		Icon:          "user",
		AlwaysVisible: true,
	},
	{
		ID:   types.SectionSummary,
		Icon: "file-text",
	},
	{
		ID:   types.SectionExperience,
		Icon: "briefcase",
	},
	{
		ID:   types.SectionEducation,
		Icon: "graduation-cap",
	},
	{
		ID:   types.SectionSkills,
		Icon: "wrench",
	},
	{
		ID:   types.SectionProjects,
		Icon: "rocket",
	},
	{
		ID:   types.SectionCertifications,
		Icon: "award",
	},
	{
		ID:   types.SectionLanguages,
		Icon: "globe",
	},
	{
		ID:   types.SectionVolunteerExperience,
		Icon: "heart",
	},
	{
		ID:   types.SectionHonorsAwards,
		Icon: "trophy",
	},
	{
		ID:   types.SectionCustomSections,
		Icon: "plus-square",
	},
}

// Catalog returns a copy of the fixed section catalog.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// catalogEntry looks up a catalog entry by section id.
func catalogEntry(id string) (CatalogEntry, bool) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return CatalogEntry{}, false
}
