package textproc

import (
	"sort"
	"strings"

	"searchfind/internal/types"
)

// HeaderSection is the name given to text that precedes the first recognised header
const HeaderSection = "header"

type sectionDef struct {
	name    string
	headers []string
}

var resumeSections = []sectionDef{
	{"experience", []string{"experience", "work experience", "employment history", "work history", "professional experience", "employment"}},
	{"education", []string{"education", "academic background", "educational background", "academic history"}},
	{"skills", []string{"skills", "technical skills", "core competencies", "key skills", "competencies"}},
	{"projects", []string{"projects", "project experience", "key projects", "professional projects"}},
	{"summary", []string{"summary", "professional summary", "executive summary", "profile", "about me", "objective", "career objective"}},
	{"certifications", []string{"certifications", "certificates", "professional certifications", "credentials"}},
	{"languages", []string{"languages", "language proficiency", "language skills"}},
	{"volunteer", []string{"volunteer", "volunteering", "volunteer experience", "community service"}},
	{"publications", []string{"publications", "research publications", "papers", "articles"}},
	{"interests", []string{"interests", "hobbies", "activities", "personal interests"}},
}

var jobSections = []sectionDef{
	{"about_company", []string{"about us", "company overview", "our company", "who we are", "about the company"}},
	{"job_summary", []string{"job summary", "position summary", "role overview", "about the role", "job description"}},
	{"responsibilities", []string{"responsibilities", "duties", "what you'll do", "key responsibilities"}},
	{"requirements", []string{"requirements", "qualifications", "what you need", "must have", "who you are"}},
	{"benefits", []string{"benefits", "perks", "what we offer", "compensation", "why join us"}},
	{"application_process", []string{"how to apply", "application process", "next steps"}},
}

type headerVariant struct {
	section string
	text    string
}

var (
	resumeHeaders = flattenHeaders(resumeSections)
	jobHeaders    = flattenHeaders(jobSections)
)

// flattenHeaders orders variants longest first so "work experience" wins over "experience"
func flattenHeaders(defs []sectionDef) []headerVariant {
	var out []headerVariant
	for _, def := range defs {
		for _, h := range def.headers {
			out = append(out, headerVariant{section: def.name, text: h})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].text) > len(out[j].text) })
	return out
}

// SectionNames returns the canonical section names for a document kind
func SectionNames(kind types.DocumentKind) []string {
	defs := sectionDefs(kind)
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.name)
	}
	return names
}

func sectionDefs(kind types.DocumentKind) []sectionDef {
	if kind == types.KindJobDescription {
		return jobSections
	}
	return resumeSections
}

func headersFor(kind types.DocumentKind) []headerVariant {
	if kind == types.KindJobDescription {
		return jobHeaders
	}
	return resumeHeaders
}

// matchHeader reports whether a line is a section header. A header must lead
// the line and be followed by nothing or by a colon; text after the colon is
// returned as inline content.
func matchHeader(line string, headers []headerVariant) (section, inline string, ok bool) {
	trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#*=_>•· "))
	trimmed = strings.TrimRight(trimmed, "*=_ ")
	for _, h := range headers {
		if len(trimmed) < len(h.text) || !strings.EqualFold(trimmed[:len(h.text)], h.text) {
			continue
		}
		rest := strings.TrimSpace(trimmed[len(h.text):])
		switch {
		case rest == "" || rest == ":":
			return h.section, "", true
		case strings.HasPrefix(rest, ":"):
			return h.section, strings.TrimSpace(rest[1:]), true
		}
	}
	return "", "", false
}

// SplitSections slices text into named sections. Every canonical section of
// the kind is present in the result, empty when its header was not found.
// Text before the first header is kept under HeaderSection.
func SplitSections(text string, kind types.DocumentKind) map[string]string {
	sections := make(map[string]string)
	for _, name := range SectionNames(kind) {
		sections[name] = ""
	}

	headers := headersFor(kind)
	content := map[string][]string{}
	current := HeaderSection

	for _, line := range strings.Split(text, "\n") {
		if section, inline, ok := matchHeader(line, headers); ok {
			current = section
			if inline != "" {
				content[current] = append(content[current], inline)
			}
			continue
		}
		content[current] = append(content[current], strings.TrimRight(line, " \t"))
	}

	for name, lines := range content {
		sections[name] = strings.Trim(strings.Join(lines, "\n"), "\n ")
	}
	if sections[HeaderSection] == "" {
		delete(sections, HeaderSection)
	}
	return sections
}
