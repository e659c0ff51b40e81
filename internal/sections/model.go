package sections

import (
	"sort"

	"github.com/cvera/cvbuilder/internal/labels"
	"github.com/cvera/cvbuilder/internal/types"
)

// Section is one entry of the live section order model. HasData is derived
// from the CV content for display only ("empty" vs "has data" badges); it
// never gates whether a section can be toggled visible.
type Section struct {
	ID            string
	DisplayName   string
	Icon          string
	IsVisible     bool
	Order         int
	HasData       bool
	AlwaysVisible bool
}

// SaveFunc persists the full section order. It is called synchronously after
// every successful mutation, with no batching.
type SaveFunc func(refs []types.SectionRef) error

// Model holds the ordered section list for one open editor.
type Model struct {
	sections []Section
	save     SaveFunc
}

// NewModel merges the fixed catalog with a previously stored order. Sections
// present in the catalog but absent from the stored order default to their
// catalog position and to visible-when-populated (or always visible by
// policy). The save callback may be nil for read-only consumers.
func NewModel(cv *types.CanonicalCV, stored []types.SectionRef, save SaveFunc) *Model {
	byID := make(map[string]types.SectionRef, len(stored))
	for _, ref := range stored {
		byID[ref.ID] = ref
	}

	sections := make([]Section, 0, len(catalog))
	for idx, entry := range catalog {
		section := Section{
			ID:            entry.ID,
			DisplayName:   labels.Get(entry.ID, cv.CVLanguage),
			Icon:          entry.Icon,
			HasData:       cv.HasSectionData(entry.ID),
			AlwaysVisible: entry.AlwaysVisible,
		}
		if ref, ok := byID[entry.ID]; ok {
			section.IsVisible = ref.IsVisible || entry.AlwaysVisible
			section.Order = ref.Order
		} else {
			section.IsVisible = entry.AlwaysVisible || section.HasData
			section.Order = idx
		}
		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	renumber(sections)

	return &Model{sections: sections, save: save}
}

// renumber makes every Order equal its array index: dense, zero-based, no
// gaps.
func renumber(sections []Section) {
	for i := range sections {
		sections[i].Order = i
	}
}

// Sections returns a snapshot of the current section list.
func (m *Model) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// Refs returns the persisted shape of the current section list.
func (m *Model) Refs() []types.SectionRef {
	refs := make([]types.SectionRef, 0, len(m.sections))
	for _, s := range m.sections {
		refs = append(refs, types.SectionRef{
			ID:        s.ID,
			Type:      s.ID,
			IsVisible: s.IsVisible,
			Order:     s.Order,
		})
	}
	return refs
}

// index returns the position of a section id, or -1.
func (m *Model) index(id string) int {
	for i, s := range m.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Reorder removes the source section and reinserts it immediately before the
// target's current position, then renumbers the whole list. Dropping a
// section on itself, or naming an unknown id, is a silent no-op. The updated
// order is persisted through the save callback; on failure the optimistic
// in-memory order is kept and ErrSaveFailed returned.
func (m *Model) Reorder(sourceID, targetID string) error {
	if sourceID == targetID {
		return nil
	}
	src := m.index(sourceID)
	dst := m.index(targetID)
	if src < 0 || dst < 0 {
		return nil
	}

	moved := m.sections[src]
	rest := append(m.sections[:src:src], m.sections[src+1:]...)

	// Pre-removal indexing: the moved section ends up at the index the
	// target occupied before the removal.
	sections := make([]Section, 0, len(rest)+1)
	sections = append(sections, rest[:dst]...)
	sections = append(sections, moved)
	sections = append(sections, rest[dst:]...)
	renumber(sections)
	m.sections = sections

	return m.persist()
}

// ToggleVisibility flips the visibility of exactly one section. Order values
// are never touched. Always-visible sections refuse the toggle.
func (m *Model) ToggleVisibility(id string) error {
	idx := m.index(id)
	if idx < 0 {
		return &ErrUnknownSection{ID: id}
	}
	if m.sections[idx].AlwaysVisible {
		return &ErrAlwaysVisible{ID: id}
	}

	m.sections[idx].IsVisible = !m.sections[idx].IsVisible
	return m.persist()
}

// RefreshData recomputes the derived HasData flags from the live CV. Nothing
// else changes and nothing is persisted.
func (m *Model) RefreshData(cv *types.CanonicalCV) {
	for i := range m.sections {
		m.sections[i].HasData = cv.HasSectionData(m.sections[i].ID)
	}
}

// persist runs the save callback with the full current order. The in-memory
// state stays as mutated even when the save fails; the caller surfaces the
// error and the next successful save or reload reconciles.
func (m *Model) persist() error {
	if m.save == nil {
		return nil
	}
	if err := m.save(m.Refs()); err != nil {
		return &ErrSaveFailed{Cause: err}
	}
	return nil
}
