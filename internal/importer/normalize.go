package importer

import (
	"encoding/json"
	"strings"

	"github.com/cvera/cvbuilder/internal/types"
)

// linkedinProfileBase is used to build a profile URL from a bare username
// when no full URL is present in the payload.
const linkedinProfileBase = "https://www.linkedin.com/in/"

// Normalize converts an external profile payload of unknown shape into a
// canonical CV. The payload may be the profile object itself, an array whose
// first element is the profile, or an object wrapping the profile under a
// "data" key. Normalize never fails: a malformed section yields an empty
// section while the others proceed, and "no usable data" is an empty CV.
func Normalize(payload any, cfg Config) *types.CanonicalCV {
	cfg = cfg.withDefaults()
	n := &normalizer{cfg: cfg, stamp: cfg.Now().UnixMilli()}
	return n.run(unwrapPayload(payload))
}

// NormalizeJSON decodes raw JSON and normalizes it. Undecodable input yields
// an empty CV, matching the no-error contract of Normalize.
func NormalizeJSON(data []byte, cfg Config) *types.CanonicalCV {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Normalize(nil, cfg)
	}
	return Normalize(payload, cfg)
}

// unwrapPayload peels the known wrapper shapes, array first, then the "data"
// key, and returns the profile object. Anything else maps to nil.
func unwrapPayload(payload any) map[string]any {
	if list, ok := payload.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		payload = list[0]
	}

	raw := asObject(payload)
	if raw == nil {
		return nil
	}
	if inner := asObject(raw["data"]); inner != nil {
		return inner
	}
	return raw
}

type normalizer struct {
	cfg   Config
	stamp int64
}

func (n *normalizer) run(raw map[string]any) *types.CanonicalCV {
	cv := types.NewCanonicalCV()
	cv.CVLanguage = n.cfg.Language

	if raw != nil {
		cv.PersonalInfo = n.mapPersonalInfo(raw)

		// Each section is mapped independently; bad data in one cannot
		// block the others.
		cv.Experience = guarded(func() []types.Experience { return n.mapExperience(raw) })
		cv.Education = guarded(func() []types.Education { return n.mapEducation(raw) })
		cv.Projects = guarded(func() []types.Project { return n.mapProjects(raw) })
		cv.Certifications = guarded(func() []types.Certification { return n.mapCertifications(raw) })
		cv.VolunteerExperience = guarded(func() []types.VolunteerExperience { return n.mapVolunteering(raw) })
		cv.HonorsAwards = guarded(func() []types.HonorAward { return n.mapAwards(raw) })
		cv.Languages = guarded(func() []types.Language { return n.mapLanguages(raw) })

		cv.Skills = guarded(func() []types.Skill { return n.mapSkills(raw) })
		if len(cv.Skills) == 0 {
			cv.Skills = guarded(func() []types.Skill {
				return n.discoverSkills(cv.Experience, cv.PersonalInfo.Summary)
			})
		}
	}

	// Product default: an imported CV should not look empty. Placeholders
	// carry the IsPlaceholder marker so a save can tell them apart from
	// real data.
	if len(cv.Skills) == 0 {
		cv.Skills = append(cv.Skills, n.cfg.PlaceholderSkills...)
	}
	if len(cv.Languages) == 0 {
		cv.Languages = append(cv.Languages, n.cfg.PlaceholderLanguages...)
	}

	cv.EnsureDefaults()
	return cv
}

// guarded runs one section mapper and absorbs any panic caused by unexpected
// payload shapes, degrading that section to empty.
func guarded[T any](fn func() []T) (out []T) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return fn()
}

func (n *normalizer) mapPersonalInfo(raw map[string]any) types.PersonalInfo {
	// Some providers nest the header fields under personal_info; the
	// canonical shape nests them under personalInfo. Probe the nested
	// object first, then the profile root.
	nested := asObject(raw["personal_info"])
	if nested == nil {
		nested = asObject(raw["personalInfo"])
	}
	probe := func(keys []string) string {
		if nested != nil {
			if s := firstString(nested, keys); s != "" {
				return s
			}
		}
		return firstString(raw, keys)
	}

	info := types.PersonalInfo{
		FullName:       probe(fullNameKeys),
		FirstName:      probe(firstNameKeys),
		LastName:       probe(lastNameKeys),
		Email:          probe(emailKeys),
		Phone:          probe(phoneKeys),
		Website:        probe(websiteKeys),
		LinkedIn:       probe(linkedinKeys),
		Location:       probe(locationKeys),
		ProfilePicture: probe(pictureKeys),
		Summary:        probe(summaryKeys),
	}

	if info.FullName == "" {
		info.FullName = strings.TrimSpace(info.FirstName + " " + info.LastName)
	}
	if info.Location == "" {
		info.Location = joinNonEmpty(probe(cityKeys), probe(countryKeys))
	}
	if info.LinkedIn == "" {
		if username := probe(usernameKeys); username != "" {
			info.LinkedIn = linkedinProfileBase + username
		}
	}
	return info
}

func (n *normalizer) mapExperience(raw map[string]any) []types.Experience {
	var out []types.Experience
	for i, item := range firstList(raw, experienceListKeys) {
		elem := asObject(item)
		if elem == nil {
			continue
		}
		exp := types.Experience{
			ID:          n.itemID("exp", i),
			Position:    firstString(elem, expPositionKeys),
			Company:     firstString(elem, expCompanyKeys),
			Description: firstString(elem, expDescriptionKeys),
			Location:    firstString(elem, expLocationKeys),
		}
		r := dateRangeOf(elem, expRangeKeys, expStartKeys, expEndKeys, n.cfg.PresentMarkers)
		exp.StartDate, exp.EndDate, exp.Current = r.StartDate, r.EndDate, r.Current

		if exp.Company == "" && exp.Position == "" {
			continue
		}
		out = append(out, exp)
	}
	return out
}

func (n *normalizer) mapEducation(raw map[string]any) []types.Education {
	var out []types.Education
	for i, item := range firstList(raw, educationListKeys) {
		elem := asObject(item)
		if elem == nil {
			continue
		}
		edu := types.Education{
			ID:          n.itemID("edu", i),
			Institution: firstString(elem, eduInstitutionKeys),
			Degree:      firstString(elem, eduDegreeKeys),
			Field:       firstString(elem, eduFieldKeys),
			Description: firstString(elem, eduDescriptionKeys),
			GPA:         firstString(elem, eduGPAKeys),
		}
		r := dateRangeOf(elem, eduRangeKeys, eduStartKeys, eduEndKeys, n.cfg.PresentMarkers)
		edu.StartDate, edu.EndDate, edu.Current = r.StartDate, r.EndDate, r.Current

		if edu.Institution == "" && edu.Degree == "" {
			continue
		}
		out = append(out, edu)
	}
	return out
}

func (n *normalizer) mapProjects(raw map[string]any) []types.Project {
	var out []types.Project
	for i, item := range firstList(raw, projectListKeys) {
		elem := asObject(item)
		if elem == nil {
			continue
		}
		proj := types.Project{
			ID:          n.itemID("proj", i),
			Name:        firstString(elem, projNameKeys),
			Description: firstString(elem, projDescKeys),
			Skills:      firstString(elem, projSkillsKeys),
			URL:         firstString(elem, projURLKeys),
		}
		r := dateRangeOf(elem, projRangeKeys, projStartKeys, projEndKeys, n.cfg.PresentMarkers)
		proj.StartDate, proj.EndDate = r.StartDate, r.EndDate

		if proj.Name == "" && proj.Description == "" {
			continue
		}
		out = append(out, proj)
	}
	return out
}

func (n *normalizer) mapCertifications(raw map[string]any) []types.Certification {
	var out []types.Certification
	for i, item := range firstList(raw, certListKeys) {
		elem := asObject(item)
		if elem == nil {
			continue
		}
		cert := types.Certification{
			ID:          n.itemID("cert", i),
			Name:        firstString(elem, certNameKeys),
			Issuer:      firstString(elem, certIssuerKeys),
			Date:        firstString(elem, certDateKeys),
			Description: firstString(elem, certDescKeys),
		}
		if cert.Name == "" && cert.Issuer == "" {
			continue
		}
		out = append(out, cert)
	}
	return out
}

func (n *normalizer) mapVolunteering(raw map[string]any) []types.VolunteerExperience {
	var out []types.VolunteerExperience
	for i, item := range firstList(raw, volListKeys) {
		elem := asObject(item)
		if elem == nil {
			continue
		}
		vol := types.VolunteerExperience{
			ID:           n.itemID("vol", i),
			Organization: firstString(elem, volOrgKeys),
			Role:         firstString(elem, volRoleKeys),
			Cause:        firstString(elem, volCauseKeys),
			Description:  firstString(elem, volDescKeys),
		}
		r := dateRangeOf(elem, volRangeKeys, volStartKeys, volEndKeys, n.cfg.PresentMarkers)
		vol.StartDate, vol.EndDate, vol.Current = r.StartDate, r.EndDate, r.Current

		if vol.Organization == "" && vol.Role == "" {
			continue
		}
		out = append(out, vol)
	}
	return out
}

func (n *normalizer) mapAwards(raw map[string]any) []types.HonorAward {
	var out []types.HonorAward
	for i, item := range firstList(raw, awardListKeys) {
		award := types.HonorAward{ID: n.itemID("award", i)}

		// Some providers deliver awards as bare strings.
		if title := asString(item); title != "" {
			award.Title = title
			out = append(out, award)
			continue
		}

		elem := asObject(item)
		if elem == nil {
			continue
		}
		award.Title = firstString(elem, awardTitleKeys)
		award.Issuer = firstString(elem, awardIssuerKeys)
		award.Date = firstString(elem, awardDateKeys)
		award.Description = firstString(elem, awardDescKeys)
		if award.Title == "" && award.Issuer == "" {
			continue
		}
		out = append(out, award)
	}
	return out
}

func (n *normalizer) mapSkills(raw map[string]any) []types.Skill {
	var out []types.Skill
	for i, item := range firstList(raw, skillListKeys) {
		skill := types.Skill{ID: n.itemID("skill", i), Level: types.DefaultSkillLevel}

		if name := asString(item); name != "" {
			skill.Name = normalizeSkillName(name)
			out = append(out, skill)
			continue
		}

		elem := asObject(item)
		if elem == nil {
			continue
		}
		skill.Name = normalizeSkillName(firstString(elem, skillNameKeys))
		if level := firstString(elem, skillLevelKeys); level != "" {
			skill.Level = level
		}
		if skill.Name == "" {
			continue
		}
		out = append(out, skill)
	}
	return out
}

func (n *normalizer) mapLanguages(raw map[string]any) []types.Language {
	var out []types.Language
	for i, item := range firstList(raw, languageListKeys) {
		lang := types.Language{ID: n.itemID("lang", i), Proficiency: types.DefaultLanguageProficiency}

		if name := asString(item); name != "" {
			lang.Name = name
			out = append(out, lang)
			continue
		}

		elem := asObject(item)
		if elem == nil {
			continue
		}
		lang.Name = firstString(elem, langNameKeys)
		if level := firstString(elem, langLevelKeys); level != "" {
			lang.Proficiency = level
		}
		if lang.Name == "" {
			continue
		}
		out = append(out, lang)
	}
	return out
}

// joinNonEmpty joins the non-empty parts with ", ".
func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
