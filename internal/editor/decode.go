package editor

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cvera/cvbuilder/internal/types"
)

// Record is one persisted CV as the editor sees it.
type Record struct {
	ID         string
	Title      string
	TemplateID string
	CVData     types.CanonicalCV
}

// recordWire accepts both template id key conventions seen in stored
// responses.
type recordWire struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	TemplateID  string             `json:"templateId"`
	TemplateID2 string             `json:"template_id"`
	CVData      *types.CanonicalCV `json:"cv_data"`
	CVData2     *types.CanonicalCV `json:"cvData"`
}

// DecodeRecord rehydrates a persisted CV from an API response body. The
// response envelope varies, so the record is unwrapped defensively:
// result.data.cv, then result.data, then result itself, first shape that
// holds a record wins. Loaded CVs get every missing list materialized and
// every entry an id, so editors can address them immediately.
func DecodeRecord(raw []byte) (*Record, error) {
	body := unwrapEnvelope(raw)

	var wire recordWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode CV record: %w", err)
	}

	rec := &Record{
		ID:         wire.ID,
		Title:      wire.Title,
		TemplateID: wire.TemplateID,
	}
	if rec.TemplateID == "" {
		rec.TemplateID = wire.TemplateID2
	}
	switch {
	case wire.CVData != nil:
		rec.CVData = *wire.CVData
	case wire.CVData2 != nil:
		rec.CVData = *wire.CVData2
	}

	rec.CVData.EnsureDefaults()
	ensureItemIDs(&rec.CVData)
	return rec, nil
}

// unwrapEnvelope picks the innermost object that should hold the record:
// result.data.cv, else result.data, else result.
func unwrapEnvelope(raw []byte) json.RawMessage {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return raw
	}

	data, ok := outer["data"]
	if !ok {
		return raw
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(data, &inner); err != nil {
		return raw
	}
	if cv, ok := inner["cv"]; ok {
		return cv
	}
	return data
}

// ensureItemIDs assigns fresh ids to list entries that arrived without one,
// e.g. legacy bare-string skills upgraded at read time.
func ensureItemIDs(cv *types.CanonicalCV) {
	for i := range cv.Experience {
		if cv.Experience[i].ID == "" {
			cv.Experience[i].ID = newItemID("exp")
		}
	}
	for i := range cv.Education {
		if cv.Education[i].ID == "" {
			cv.Education[i].ID = newItemID("edu")
		}
	}
	for i := range cv.Skills {
		if cv.Skills[i].ID == "" {
			cv.Skills[i].ID = newItemID("skill")
		}
	}
	for i := range cv.Languages {
		if cv.Languages[i].ID == "" {
			cv.Languages[i].ID = newItemID("lang")
		}
	}
	for i := range cv.Projects {
		if cv.Projects[i].ID == "" {
			cv.Projects[i].ID = newItemID("proj")
		}
	}
	for i := range cv.Certifications {
		if cv.Certifications[i].ID == "" {
			cv.Certifications[i].ID = newItemID("cert")
		}
	}
	for i := range cv.VolunteerExperience {
		if cv.VolunteerExperience[i].ID == "" {
			cv.VolunteerExperience[i].ID = newItemID("vol")
		}
	}
	for i := range cv.HonorsAwards {
		if cv.HonorsAwards[i].ID == "" {
			cv.HonorsAwards[i].ID = newItemID("award")
		}
	}
	for i := range cv.CustomSections {
		if cv.CustomSections[i].ID == "" {
			cv.CustomSections[i].ID = newItemID("custom")
		}
	}
}

func newItemID(kind string) string {
	return kind + "-" + uuid.New().String()
}
