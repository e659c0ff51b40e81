package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Skill
	}{
		{
			name:     "object form",
			input:    `{"id":"skill-1","name":"Python","level":"Expert"}`,
			expected: Skill{ID: "skill-1", Name: "Python", Level: "Expert"},
		},
		{
			name:     "object form without level gets default",
			input:    `{"id":"skill-2","name":"React"}`,
			expected: Skill{ID: "skill-2", Name: "React", Level: DefaultSkillLevel},
		},
		{
			name:     "legacy bare string",
			input:    `"Teamwork"`,
			expected: Skill{Name: "Teamwork", Level: DefaultSkillLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skill
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestSkillListMixedForms(t *testing.T) {
	raw := `["Python",{"id":"s2","name":"Go","level":"Advanced"}]`

	var skills []Skill
	require.NoError(t, json.Unmarshal([]byte(raw), &skills))
	require.Len(t, skills, 2)
	assert.Equal(t, Skill{Name: "Python", Level: DefaultSkillLevel}, skills[0])
	assert.Equal(t, Skill{ID: "s2", Name: "Go", Level: "Advanced"}, skills[1])
}

func TestLanguageUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Language
	}{
		{
			name:     "name and proficiency keys",
			input:    `{"id":"lang-1","name":"English","proficiency":"Fluent"}`,
			expected: Language{ID: "lang-1", Name: "English", Proficiency: "Fluent"},
		},
		{
			name:     "language and level keys",
			input:    `{"id":"lang-2","language":"Azerbaijani","level":"Native"}`,
			expected: Language{ID: "lang-2", Name: "Azerbaijani", Proficiency: "Native"},
		},
		{
			name:     "legacy bare string",
			input:    `"Russian"`,
			expected: Language{Name: "Russian", Proficiency: DefaultLanguageProficiency},
		},
		{
			name:     "missing proficiency gets default",
			input:    `{"name":"Turkish"}`,
			expected: Language{Name: "Turkish", Proficiency: DefaultLanguageProficiency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Language
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			assert.Equal(t, tt.expected, l)
		})
	}
}

func TestLanguageMarshalWritesBothKeyConventions(t *testing.T) {
	l := Language{ID: "lang-1", Name: "English", Proficiency: "Fluent"}

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "English", wire["name"])
	assert.Equal(t, "English", wire["language"])
	assert.Equal(t, "Fluent", wire["proficiency"])
	assert.Equal(t, "Fluent", wire["level"])
}

func TestLanguageRoundTrip(t *testing.T) {
	orig := Language{ID: "lang-1", Name: "English", Proficiency: "Fluent"}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Language
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}
