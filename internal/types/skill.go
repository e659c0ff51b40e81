package types

import "encoding/json"

// DefaultSkillLevel is used whenever a skill arrives without a level.
const DefaultSkillLevel = "Intermediate"

// DefaultLanguageProficiency is used whenever a language arrives without a
// proficiency.
const DefaultLanguageProficiency = "Professional"

// Skill is one skill entry. IsPlaceholder marks entries synthesized by the
// importer when no real skill data was found, so a save can tell them apart
// from user data.
type Skill struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         string `json:"level"`
	IsPlaceholder bool   `json:"isPlaceholder,omitempty"`
}

// UnmarshalJSON accepts both the object form and the legacy bare-string form
// persisted by early versions. Strings are upgraded to objects at read time.
func (s *Skill) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Skill{Name: name, Level: DefaultSkillLevel}
		return nil
	}

	type skillAlias Skill
	var a skillAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Level == "" {
		a.Level = DefaultSkillLevel
	}
	*s = Skill(a)
	return nil
}

// Language is one spoken-language entry. The wire format is dual-keyed
// (name/language, proficiency/level) because two historical field naming
// conventions are still in circulation.
type Language struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Proficiency   string `json:"proficiency"`
	IsPlaceholder bool   `json:"isPlaceholder,omitempty"`
}

// UnmarshalJSON accepts the bare-string legacy form, the name/proficiency
// form and the language/level form.
func (l *Language) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*l = Language{Name: name, Proficiency: DefaultLanguageProficiency}
		return nil
	}

	var a struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Language      string `json:"language"`
		Proficiency   string `json:"proficiency"`
		Level         string `json:"level"`
		IsPlaceholder bool   `json:"isPlaceholder"`
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	l.ID = a.ID
	l.Name = a.Name
	if l.Name == "" {
		l.Name = a.Language
	}
	l.Proficiency = a.Proficiency
	if l.Proficiency == "" {
		l.Proficiency = a.Level
	}
	if l.Proficiency == "" {
		l.Proficiency = DefaultLanguageProficiency
	}
	l.IsPlaceholder = a.IsPlaceholder
	return nil
}

// MarshalJSON writes both key conventions so older readers keep working.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Language      string `json:"language"`
		Proficiency   string `json:"proficiency"`
		Level         string `json:"level"`
		IsPlaceholder bool   `json:"isPlaceholder,omitempty"`
	}{l.ID, l.Name, l.Name, l.Proficiency, l.Proficiency, l.IsPlaceholder})
}
