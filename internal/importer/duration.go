package importer

import "strings"

// rangeSeparator splits the two halves of a combined duration string like
// "Jan 2020 - Dec 2021".
const rangeSeparator = " - "

// DateRange is the discrete form of a duration string.
type DateRange struct {
	StartDate string
	EndDate   string
	Current   bool
}

// parseDuration splits a combined duration string into discrete start/end/
// current fields.
//
//	"Jan 2020 - Present"  -> {Jan 2020, "", true}
//	"Jan 2020 - Dec 2021" -> {Jan 2020, Dec 2021, false}
//	"Jan 2020"            -> {Jan 2020, "", true}
//	"-" or ""             -> zero range
//
// The second half counts as "present" when it contains any of the configured
// markers, case-insensitively.
func parseDuration(s string, presentMarkers []string) DateRange {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return DateRange{}
	}

	if start, end, found := strings.Cut(s, rangeSeparator); found {
		start = strings.TrimSpace(start)
		end = strings.TrimSpace(end)
		if isPresentMarker(end, presentMarkers) {
			return DateRange{StartDate: start, Current: true}
		}
		return DateRange{StartDate: start, EndDate: end}
	}

	// No separator: the whole string is a start date of something still
	// going on.
	return DateRange{StartDate: s, Current: true}
}

// isPresentMarker reports whether the end half of a duration string marks an
// open-ended range.
func isPresentMarker(end string, presentMarkers []string) bool {
	lower := strings.ToLower(end)
	for _, marker := range presentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// dateRangeOf derives a DateRange for one raw list element. A combined
// duration string (probed through rangeKeys) takes priority; discrete start/
// end/current fields are the fallback.
func dateRangeOf(raw map[string]any, rangeKeys, startKeys, endKeys []string, presentMarkers []string) DateRange {
	if combined := firstString(raw, rangeKeys); combined != "" {
		return parseDuration(combined, presentMarkers)
	}

	r := DateRange{
		StartDate: firstString(raw, startKeys),
		EndDate:   firstString(raw, endKeys),
		Current:   asBool(raw["current"]),
	}
	if isPresentMarker(r.EndDate, presentMarkers) {
		r.EndDate = ""
		r.Current = true
	}
	if r.Current {
		r.EndDate = ""
	}
	return r
}
