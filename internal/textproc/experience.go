package textproc

import (
	"regexp"
	"strings"

	"searchfind/internal/types"
)

// Placeholders used when a field of an experience entry cannot be found
const (
	UnknownTitle   = "Unknown Position"
	UnknownCompany = "Unknown Company"
	UnknownDates   = "Unknown Date Range"
)

const (
	minEntryLength  = 10
	maxHeadingWords = 8
)

var (
	experienceFallbackRe = regexp.MustCompile(`(?is)(?:professional experience|work history|employment|experience).*?(?:\n\s*\n|\z)`)

	titleRe = regexp.MustCompile(`(?i)\b(?:(?:senior|lead|principal|junior|staff)\s+)?[A-Za-z][A-Za-z /.-]*?(?:developer|engineer|manager|director|analyst|designer|consultant|specialist|coordinator|assistant|associate|admin|supervisor|advisor|officer|representative|clerk|intern)\b`)

	companyAtRe     = regexp.MustCompile(`\b(?:at|with|for)\s+([A-Z][\w&.'-]*(?:\s+(?:(?:of|and|the|de|&)\s+)?[A-Z0-9][\w&.'-]*)*)`)
	companyLeadRe   = regexp.MustCompile(`^\s*(?:,|\||@|-|–|—|\bat\b)\s*([A-Z][\w&.'-]*(?:\s+(?:(?:of|and|the|de|&)\s+)?[A-Z0-9][\w&.'-]*)*)`)
	companySuffixRe = regexp.MustCompile(`\b([A-Z][\w&.'-]*(?:\s+[A-Z][\w&.'-]*)*\s+(?:Inc|LLC|Ltd|Corporation|Corp|Company|Co)\b\.?)`)

	monthRangeRe = regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\s*(?:-|–|—|to)\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|Present|Current|Now)\b`)
	yearRangeRe  = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:19|20)\d{2}|Present|Current|Now)\b`)

	allCapsLineRe = regexp.MustCompile(`^[A-Z][^a-z]*$`)
	bulletLineRe  = regexp.MustCompile(`^\s*(?:•|·|-|\*|▪|‣|\d+\.)\s`)
)

// findDateRange returns the first date range in s, month form first
func findDateRange(s string) string {
	if m := monthRangeRe.FindString(s); m != "" {
		return m
	}
	return yearRangeRe.FindString(s)
}

func isBullet(line string) bool {
	return bulletLineRe.MatchString(line)
}

// startsEntry reports whether a line looks like the first line of a new position
func startsEntry(line string) bool {
	if line == "" || isBullet(line) {
		return false
	}
	first := line[0]
	if first < 'A' || first > 'Z' {
		return false
	}
	if allCapsLineRe.MatchString(line) || findDateRange(line) != "" {
		return true
	}
	return len(strings.Fields(line)) <= maxHeadingWords && !strings.HasSuffix(line, ".") && titleRe.MatchString(line)
}

// splitEntries cuts an experience section into one block per position. A
// heading-like line opens a new block once the current block already holds a
// date range or description lines.
func splitEntries(section string) []string {
	var (
		blocks  []string
		current []string
		dated   bool
		body    bool
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
		}
		current, dated, body = nil, false, false
	}

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		heading := startsEntry(line)
		if heading && len(current) > 0 && (dated || body) {
			flush()
		}
		current = append(current, line)
		switch {
		case findDateRange(line) != "":
			dated = true
		case !heading:
			body = true
		}
	}
	flush()
	return blocks
}

// ExperienceEntries parses positions out of an experience section
func ExperienceEntries(section string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range splitEntries(section) {
		if len(strings.TrimSpace(block)) < minEntryLength {
			continue
		}
		entries = append(entries, parseEntry(block))
	}
	return entries
}

func parseEntry(block string) types.ExperienceEntry {
	lines := strings.Split(block, "\n")

	title := UnknownTitle
	titleLine := -1
	for i, line := range lines {
		if isBullet(line) {
			continue
		}
		if loc := titleRe.FindStringIndex(line); loc != nil {
			title = strings.TrimSpace(line[loc[0]:loc[1]])
			titleLine = i
			break
		}
	}

	years := findDateRange(block)
	if years == "" {
		years = UnknownDates
	}

	company := findCompany(lines, titleLine, title, years)

	var description []string
	bullets := 0
	for _, line := range lines {
		if isBullet(line) {
			bullets++
		}
		if strings.Contains(line, title) || strings.Contains(line, company) || strings.Contains(line, years) {
			continue
		}
		description = append(description, strings.TrimSpace(bulletLineRe.ReplaceAllString(line, "")))
	}

	return types.ExperienceEntry{
		Title:       title,
		Company:     company,
		Years:       years,
		Description: strings.Join(description, " "),
		Bullets:     bullets,
	}
}

// headingLines returns the leading lines of an entry, before any bullet
func headingLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if isBullet(line) || len(out) == 3 {
			break
		}
		out = append(out, line)
	}
	return out
}

func findCompany(lines []string, titleLine int, title, years string) string {
	heading := headingLines(lines)
	for _, line := range heading {
		if m := companyAtRe.FindStringSubmatch(line); m != nil {
			return cleanCompany(m[1])
		}
	}

	if titleLine >= 0 {
		line := lines[titleLine]
		if idx := strings.Index(line, title); idx >= 0 {
			if m := companyLeadRe.FindStringSubmatch(line[idx+len(title):]); m != nil {
				return cleanCompany(m[1])
			}
		}
	}

	for _, line := range heading {
		if m := companySuffixRe.FindStringSubmatch(line); m != nil {
			return cleanCompany(m[1])
		}
	}

	// "Acme Corp | 2019 - Present" style lines
	if years != UnknownDates {
		for i, line := range lines {
			idx := strings.Index(line, years)
			if i == titleLine || idx <= 0 {
				continue
			}
			prefix := strings.TrimRight(strings.TrimSpace(line[:idx]), ",|-–—()")
			prefix = strings.TrimSpace(prefix)
			if prefix != "" && prefix[0] >= 'A' && prefix[0] <= 'Z' {
				return cleanCompany(prefix)
			}
		}
	}
	return UnknownCompany
}

func cleanCompany(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ",;:|-")
	return strings.TrimSpace(s)
}
