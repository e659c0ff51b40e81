package importer

import (
	"fmt"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cvera/cvbuilder/internal/types"
)

// skillPatterns is the fixed keyword list matched against profile text when
// no direct skills array is present. Matches keep the casing listed here.
// This is a best-effort heuristic: false negatives and positives are expected.
var skillPatterns = []string{
	"JavaScript", "TypeScript", "Java", "Python", "Go", "C++", "C#",
	"React", "Node.js", "Next.js", "Angular", "Vue.js", "Express.js",
	"HTML", "CSS", "SQL", "MongoDB", "PostgreSQL", "GraphQL", "REST API",
	"Docker", "Kubernetes", "AWS", "Azure", "CI/CD", "DevOps",
	"Spring Boot", "Git", "Linux", "Selenium", "Testing", "SDET",
	"Agile", "Scrum", "Machine Learning", "AI", "Data Science",
	"Microservices", "Quality Assurance",
}

// skillNormalizations maps common variants of skill names (as found in
// direct skills arrays) to canonical casing.
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"node":       "Node.js",
	"reactjs":    "React",
	"react.js":   "React",
	"vuejs":      "Vue.js",
	"vue":        "Vue.js",
	"c++":        "C++",
	"cpp":        "C++",
	"c#":         "C#",
	"csharp":     "C#",
	"k8s":        "Kubernetes",
	"ci/cd":      "CI/CD",
	"postgres":   "PostgreSQL",
}

// keywordRegexps is built once from skillPatterns.
var keywordRegexps = buildKeywordRegexps(skillPatterns)

// buildKeywordRegexps compiles a case-insensitive, word-boundary pattern per
// keyword. Keywords that start or end with a non-word character (C++, C#,
// CI/CD) drop the boundary assertion on that side, since \b does not anchor
// against punctuation.
func buildKeywordRegexps(patterns []string) map[string]*regexp.Regexp {
	isWord := func(b byte) bool {
		return b == '_' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
	}

	out := make(map[string]*regexp.Regexp, len(patterns))
	for _, keyword := range patterns {
		expr := regexp.QuoteMeta(keyword)
		if isWord(keyword[0]) {
			expr = `\b` + expr
		}
		if isWord(keyword[len(keyword)-1]) {
			expr += `\b`
		}
		out[keyword] = regexp.MustCompile(`(?i)` + expr)
	}
	return out
}

// extractSkillsFromText matches the keyword list against free text gathered
// from the profile and returns every distinct hit, in pattern-list order.
func extractSkillsFromText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	var found []string
	for _, keyword := range skillPatterns {
		if seen.Contains(keyword) {
			continue
		}
		if keywordRegexps[keyword].MatchString(text) {
			seen.Add(keyword)
			found = append(found, keyword)
		}
	}
	return found
}

// normalizeSkillName maps a raw skill string to its canonical casing.
func normalizeSkillName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if canonical, ok := skillNormalizations[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// discoverSkills runs the keyword fallback over the already-mapped experience
// entries plus the profile summary, producing marked-as-real skill entries.
func (n *normalizer) discoverSkills(experience []types.Experience, summary string) []types.Skill {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(summary))
	for _, exp := range experience {
		sb.WriteByte('\n')
		sb.WriteString(strings.ToLower(exp.Description))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(exp.Position))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(exp.Company))
	}

	names := extractSkillsFromText(sb.String())
	skills := make([]types.Skill, 0, len(names))
	for i, name := range names {
		skills = append(skills, types.Skill{
			ID:    n.itemID("skill", i),
			Name:  name,
			Level: types.DefaultSkillLevel,
		})
	}
	return skills
}

// itemID generates the stable import id for one mapped list element.
func (n *normalizer) itemID(kind string, index int) string {
	return fmt.Sprintf("%s-imported-%d-%d", kind, n.stamp, index)
}
