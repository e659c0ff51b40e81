package sections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvera/cvbuilder/internal/types"
)

func sampleCV() *types.CanonicalCV {
	cv := types.NewCanonicalCV()
	cv.PersonalInfo.FullName = "Jane Doe"
	cv.Experience = []types.Experience{{ID: "exp-1", Company: "Acme", Position: "Engineer"}}
	cv.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: "Advanced"}}
	return cv
}

func sectionIDs(sections []Section) []string {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestNewModelDefaultsFromCatalog(t *testing.T) {
	m := NewModel(sampleCV(), nil, nil)
	sections := m.Sections()

	require.Len(t, sections, len(Catalog()))
	for i, s := range sections {
		assert.Equal(t, i, s.Order, "order must be dense and zero-based")
	}

	// Catalog order is the default order.
	assert.Equal(t, types.SectionPersonalInfo, sections[0].ID)
	assert.Equal(t, types.SectionSummary, sections[1].ID)

	// Populated sections default to visible, empty ones to hidden,
	// always-visible ones to visible regardless.
	for _, s := range sections {
		switch s.ID {
		case types.SectionPersonalInfo:
			assert.True(t, s.IsVisible)
			assert.True(t, s.AlwaysVisible)
		case types.SectionExperience, types.SectionSkills:
			assert.True(t, s.IsVisible)
			assert.True(t, s.HasData)
		default:
			assert.False(t, s.IsVisible, "empty section %s should default hidden", s.ID)
		}
	}
}

func TestNewModelMergesStoredOrder(t *testing.T) {
	stored := []types.SectionRef{
		{ID: types.SectionExperience, Type: types.SectionExperience, IsVisible: true, Order: 0},
		{ID: types.SectionPersonalInfo, Type: types.SectionPersonalInfo, IsVisible: true, Order: 1},
	}

	m := NewModel(sampleCV(), stored, nil)
	sections := m.Sections()

	// Stored entries keep their relative order ahead of catalog newcomers.
	assert.Equal(t, types.SectionExperience, sections[0].ID)
	assert.Equal(t, types.SectionPersonalInfo, sections[1].ID)

	// Sections missing from the stored order still appear, and numbering is
	// dense after the merge.
	require.Len(t, sections, len(Catalog()))
	for i, s := range sections {
		assert.Equal(t, i, s.Order)
	}
}

func TestNewModelForcesAlwaysVisible(t *testing.T) {
	stored := []types.SectionRef{
		{ID: types.SectionPersonalInfo, Type: types.SectionPersonalInfo, IsVisible: false, Order: 0},
	}

	m := NewModel(sampleCV(), stored, nil)
	sections := m.Sections()
	assert.True(t, sections[0].IsVisible, "always-visible section cannot load hidden")
}

func TestNewModelDisplayNamesFollowCVLanguage(t *testing.T) {
	cv := sampleCV()
	cv.CVLanguage = types.LanguageEnglish
	m := NewModel(cv, nil, nil)
	assert.Equal(t, "Personal Information", m.Sections()[0].DisplayName)

	cv.CVLanguage = types.LanguageAzerbaijani
	m = NewModel(cv, nil, nil)
	assert.Equal(t, "Şəxsi məlumatlar", m.Sections()[0].DisplayName)
}

func TestReorder(t *testing.T) {
	var saved [][]types.SectionRef
	m := NewModel(sampleCV(), nil, func(refs []types.SectionRef) error {
		saved = append(saved, refs)
		return nil
	})

	before := sectionIDs(m.Sections())

	// Move experience (index 2) onto personalInfo (index 0): it lands at the
	// index the target occupied before the removal.
	require.NoError(t, m.Reorder(types.SectionExperience, types.SectionPersonalInfo))

	after := sectionIDs(m.Sections())
	assert.Equal(t, types.SectionExperience, after[0])
	assert.Equal(t, types.SectionPersonalInfo, after[1])
	assert.Equal(t, types.SectionSummary, after[2])
	assert.Equal(t, before[3:], after[3:], "sections after the move are untouched")

	for i, s := range m.Sections() {
		assert.Equal(t, i, s.Order)
	}

	// Every successful mutation saves the full list synchronously.
	require.Len(t, saved, 1)
	assert.Len(t, saved[0], len(Catalog()))
}

func TestReorderDownward(t *testing.T) {
	m := NewModel(sampleCV(), nil, nil)

	// Move personalInfo (index 0) onto education (index 3).
	require.NoError(t, m.Reorder(types.SectionPersonalInfo, types.SectionEducation))

	after := sectionIDs(m.Sections())
	assert.Equal(t, types.SectionSummary, after[0])
	assert.Equal(t, types.SectionExperience, after[1])
	assert.Equal(t, types.SectionEducation, after[2])
	assert.Equal(t, types.SectionPersonalInfo, after[3])
}

func TestReorderNoOps(t *testing.T) {
	var saves int
	m := NewModel(sampleCV(), nil, func([]types.SectionRef) error {
		saves++
		return nil
	})
	before := sectionIDs(m.Sections())

	assert.NoError(t, m.Reorder(types.SectionSkills, types.SectionSkills))
	assert.NoError(t, m.Reorder("nope", types.SectionSkills))
	assert.NoError(t, m.Reorder(types.SectionSkills, "nope"))

	assert.Equal(t, before, sectionIDs(m.Sections()))
	assert.Zero(t, saves, "no-op reorders must not save")
}

func TestReorderSaveFailureKeepsOptimisticState(t *testing.T) {
	saveErr := errors.New("network down")
	m := NewModel(sampleCV(), nil, func([]types.SectionRef) error {
		return saveErr
	})

	err := m.Reorder(types.SectionExperience, types.SectionPersonalInfo)

	var sf *ErrSaveFailed
	require.ErrorAs(t, err, &sf)
	assert.ErrorIs(t, err, saveErr)

	// The in-memory order keeps the move; no rollback.
	assert.Equal(t, types.SectionExperience, m.Sections()[0].ID)
}

func TestToggleVisibility(t *testing.T) {
	var saved [][]types.SectionRef
	m := NewModel(sampleCV(), nil, func(refs []types.SectionRef) error {
		saved = append(saved, refs)
		return nil
	})
	before := sectionIDs(m.Sections())

	idx := -1
	for i, s := range m.Sections() {
		if s.ID == types.SectionExperience {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	require.True(t, m.Sections()[idx].IsVisible)

	require.NoError(t, m.ToggleVisibility(types.SectionExperience))
	assert.False(t, m.Sections()[idx].IsVisible)

	require.NoError(t, m.ToggleVisibility(types.SectionExperience))
	assert.True(t, m.Sections()[idx].IsVisible)

	// Toggling never reorders anything.
	assert.Equal(t, before, sectionIDs(m.Sections()))
	assert.Len(t, saved, 2)
}

func TestToggleVisibilityErrors(t *testing.T) {
	m := NewModel(sampleCV(), nil, nil)

	var unknown *ErrUnknownSection
	require.ErrorAs(t, m.ToggleVisibility("nope"), &unknown)
	assert.Equal(t, "nope", unknown.ID)

	var always *ErrAlwaysVisible
	require.ErrorAs(t, m.ToggleVisibility(types.SectionPersonalInfo), &always)
	assert.Equal(t, types.SectionPersonalInfo, always.ID)
}

func TestToggleVisibilityOnEmptySection(t *testing.T) {
	// An empty section can still be made visible; HasData never gates the
	// toggle.
	m := NewModel(sampleCV(), nil, nil)
	require.NoError(t, m.ToggleVisibility(types.SectionProjects))

	for _, s := range m.Sections() {
		if s.ID == types.SectionProjects {
			assert.True(t, s.IsVisible)
			assert.False(t, s.HasData)
		}
	}
}

func TestRefreshData(t *testing.T) {
	cv := sampleCV()
	m := NewModel(cv, nil, nil)

	cv.Projects = []types.Project{{ID: "p1", Name: "CLI tool"}}
	m.RefreshData(cv)

	for _, s := range m.Sections() {
		if s.ID == types.SectionProjects {
			assert.True(t, s.HasData)
		}
	}
}

func TestRefsRoundTrip(t *testing.T) {
	m := NewModel(sampleCV(), nil, nil)
	require.NoError(t, m.Reorder(types.SectionSkills, types.SectionSummary))

	refs := m.Refs()
	m2 := NewModel(sampleCV(), refs, nil)

	assert.Equal(t, sectionIDs(m.Sections()), sectionIDs(m2.Sections()))
	assert.Equal(t, refs, m2.Refs())
}
