package sections

import "github.com/cvera/cvbuilder/internal/types"

// traditionalSidebar is the static partition used by the two-column
// "traditional" template. A section is never split across regions; anything
// not listed here renders in the main region.
var traditionalSidebar = map[string]bool{
	types.SectionPersonalInfo:   true,
	types.SectionSkills:         true,
	types.SectionLanguages:      true,
	types.SectionCertifications: true,
}

// SingleColumn returns the visible sections in order, the layout every
// non-traditional template consumes.
func SingleColumn(sections []Section) []Section {
	var out []Section
	for _, s := range sections {
		if s.IsVisible {
			out = append(out, s)
		}
	}
	return out
}

// SplitTraditional partitions the visible sections into the sidebar and main
// regions of the traditional template. Order within each region follows the
// shared order.
func SplitTraditional(sections []Section) (sidebar, main []Section) {
	for _, s := range sections {
		if !s.IsVisible {
			continue
		}
		if traditionalSidebar[s.ID] {
			sidebar = append(sidebar, s)
		} else {
			main = append(main, s)
		}
	}
	return sidebar, main
}
