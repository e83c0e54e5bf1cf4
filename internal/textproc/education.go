package textproc

import (
	"regexp"
	"sort"
	"strings"

	"searchfind/internal/types"
)

// Placeholders used when half of an education entry is missing
const (
	UnknownDegree      = "Degree not specified"
	UnknownInstitution = "Institution not specified"
)

var (
	educationFallbackRe = regexp.MustCompile(`(?is)(?:education|academic background|qualifications).*?(?:\n\s*\n|\z)`)

	degreeRe = regexp.MustCompile(`(?i)(?:\b(?:Associate|Bachelor|Master)(?:['’]?s)?(?:\s+Degree)?\b|\bDoctor(?:ate)?\b|\bPh\.D\.|\b(?:PhD|MBA|BSc|MSc|BS|BA|MS|MA)\b|\b[BM]\.[SA]\.)(?:[^\n.]*?\b(?:in|of)\s+[^\n,;|(]+)?`)
	diplomaRe = regexp.MustCompile(`(?i)\b(?:High School Diploma|High School|GED|Certificate)\b[^\n.,;|(]*`)

	institutionRe = regexp.MustCompile(`\b(?:University|College|Institute|School) of [A-Z][^\n,;|(]+|\b[A-Z][A-Za-z &]+ (?:University|College|Institute|School)\b`)
	yearRe        = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	trailingRe    = regexp.MustCompile(`[\s,;:|–—-]*(?:\(?\s*(?:19|20)\d{2}.*)?$`)
)

type span struct {
	start, end int
	text       string
}

func findSpans(re *regexp.Regexp, s string) []span {
	var out []span
	for _, loc := range re.FindAllStringIndex(s, -1) {
		out = append(out, span{start: loc[0], end: loc[1], text: s[loc[0]:loc[1]]})
	}
	return out
}

// cleanDegree trims the institution and dates that trail a degree phrase
func cleanDegree(s string) string {
	for _, sep := range []string{" from ", " at ", " - ", " – ", " — "} {
		if i := strings.Index(s, sep); i > 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(trailingRe.ReplaceAllString(s, ""))
}

// EducationEntries parses degrees out of an education section
func EducationEntries(section string) []types.EducationEntry {
	allInstitutions := findSpans(institutionRe, section)

	degrees := findSpans(degreeRe, section)
	for _, d := range findSpans(diplomaRe, section) {
		// "High School" inside "Lincoln High School" names the school
		if !overlaps(degrees, d) && !insideInstitution(allInstitutions, d) {
			degrees = append(degrees, d)
		}
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i].start < degrees[j].start })

	var institutions []span
	for _, inst := range allInstitutions {
		if !startsDegree(degrees, inst) {
			institutions = append(institutions, inst)
		}
	}
	years := findSpans(yearRe, section)

	switch {
	case len(degrees) == 0 && len(institutions) == 0:
		return nil
	case len(degrees) == 0:
		entries := make([]types.EducationEntry, 0, len(institutions))
		for i, inst := range institutions {
			entries = append(entries, types.EducationEntry{
				Degree:      UnknownDegree,
				Institution: cleanDegree(inst.text),
				Year:        positional(years, i),
			})
		}
		return entries
	}

	entries := make([]types.EducationEntry, 0, len(degrees))
	for i, d := range degrees {
		lo := lineStart(section, d.start)
		hi := len(section)
		if i+1 < len(degrees) {
			hi = lineStart(section, degrees[i+1].start)
		}

		institution := UnknownInstitution
		if len(institutions) > 0 {
			if len(institutions) == len(degrees) {
				institution = institutions[i].text
			} else if inst, ok := firstWithin(institutions, lo, hi); ok {
				institution = inst.text
			} else {
				institution = positional(institutions, i)
			}
			institution = cleanDegree(institution)
		}

		year := ""
		if y, ok := lastWithin(years, lo, hi); ok {
			year = y.text
		} else {
			year = positional(years, i)
		}

		entries = append(entries, types.EducationEntry{
			Degree:      cleanDegree(d.text),
			Institution: institution,
			Year:        year,
		})
	}
	return entries
}

func overlaps(spans []span, s span) bool {
	for _, o := range spans {
		if s.start < o.end && o.start < s.end {
			return true
		}
	}
	return false
}

func insideInstitution(institutions []span, s span) bool {
	for _, inst := range institutions {
		if inst.start < s.start && s.end <= inst.end {
			return true
		}
	}
	return false
}

func startsDegree(degrees []span, s span) bool {
	for _, d := range degrees {
		if d.start == s.start {
			return true
		}
	}
	return false
}

func lineStart(s string, pos int) int {
	return strings.LastIndexByte(s[:pos], '\n') + 1
}

func firstWithin(spans []span, lo, hi int) (span, bool) {
	for _, s := range spans {
		if s.start >= lo && s.start < hi {
			return s, true
		}
	}
	return span{}, false
}

func lastWithin(spans []span, lo, hi int) (span, bool) {
	var (
		found span
		ok    bool
	)
	for _, s := range spans {
		if s.start >= lo && s.start < hi {
			found, ok = s, true
		}
	}
	return found, ok
}

// positional pairs the i-th item with the i-th value, falling back to the last one
func positional(spans []span, i int) string {
	switch {
	case len(spans) == 0:
		return ""
	case i < len(spans):
		return spans[i].text
	default:
		return spans[len(spans)-1].text
	}
}
