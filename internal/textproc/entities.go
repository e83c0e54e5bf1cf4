package textproc

import (
	"regexp"
	"strings"

	"searchfind/internal/types"
)

var (
	locationLineRe = regexp.MustCompile(`(?im)^\s*location\s*:\s*(.+)$`)
	cityRegionRe   = regexp.MustCompile(`^[A-Z][A-Za-z .'-]+,\s*(?:[A-Z]{2}|[A-Z][A-Za-z .'-]+)$`)
	headerSplitRe  = regexp.MustCompile(`[|•·\n]`)
	wordRe         = regexp.MustCompile(`[a-z][a-z0-9+#.-]*[a-z0-9+#]|[a-z]`)
)

const (
	maxHeaderLines = 6
	minTermLength  = 4
)

// Contact collects emails, phone numbers and URLs using the catalog patterns
func (e *Extractor) Contact(text string) types.Contact {
	return types.Contact{
		Emails: e.findEntity("email", text),
		Phones: e.findEntity("phone", text),
		URLs:   e.findEntity("url", text),
	}
}

func (e *Extractor) findEntity(name, text string) []string {
	re, ok := e.catalog.EntityRegex(name)
	if !ok {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if _, dup := seen[m]; dup || m == "" {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Location returns an explicit "Location:" value, or the first header
// fragment shaped like "City, ST" or "City, Country".
func Location(text, header string) string {
	if m := locationLineRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if header == "" {
		lines := strings.SplitN(text, "\n", maxHeaderLines+1)
		if len(lines) > maxHeaderLines {
			lines = lines[:maxHeaderLines]
		}
		header = strings.Join(lines, "\n")
	}
	for _, part := range headerSplitRe.Split(header, -1) {
		part = strings.TrimSpace(part)
		if part == "" || strings.ContainsAny(part, "@0123456789") {
			continue
		}
		if cityRegionRe.MatchString(part) {
			return part
		}
	}
	return ""
}

// Words lowercases text and splits it into word tokens
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// SignificantTerms counts the non-stopword words longer than three letters
func (e *Extractor) SignificantTerms(text string) map[string]int {
	terms := make(map[string]int)
	for _, w := range Words(text) {
		if len(w) < minTermLength || e.catalog.IsStopword(w) {
			continue
		}
		terms[w]++
	}
	return terms
}

// minIndustryHits is how many vocabulary mentions an industry needs before it is reported
const minIndustryHits = 2

// Classify guesses the industry of a text from the catalog vocabulary and
// picks the most mentioned subcategory of that industry as its category.
func (e *Extractor) Classify(text string) (industry, category string) {
	best := 0
	var winner *industryMatcher
	for i := range e.industries {
		ind := &e.industries[i]
		hits := 0
		for _, m := range ind.terms {
			hits += len(m.re.FindAllStringIndex(text, -1))
		}
		for _, m := range ind.subcategories {
			hits += len(m.re.FindAllStringIndex(text, -1))
		}
		if hits > best {
			best, winner = hits, ind
		}
	}
	if winner == nil || best < minIndustryHits {
		return "", ""
	}

	top := 0
	for _, m := range winner.subcategories {
		if n := len(m.re.FindAllStringIndex(text, -1)); n > top {
			top, category = n, m.name
		}
	}
	return winner.name, category
}
