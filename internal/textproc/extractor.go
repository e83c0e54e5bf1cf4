// Package textproc turns raw resume and job description text into an
// ExtractedDocument using regular expressions and the reference catalog.
package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"searchfind/internal/catalog"
	"searchfind/internal/types"
)

type skillMatcher struct {
	name string
	re   *regexp.Regexp
}

type industryMatcher struct {
	name          string
	subcategories []skillMatcher
	terms         []skillMatcher
}

// Extractor is safe for concurrent use; all patterns are compiled up front.
type Extractor struct {
	catalog    *catalog.Catalog
	skills     []skillMatcher
	industries []industryMatcher
}

// New builds an extractor over the given catalog, or the built-in one when nil
func New(c *catalog.Catalog) *Extractor {
	if c == nil {
		c = catalog.Default()
	}
	all := c.AllSkills()
	e := &Extractor{catalog: c, skills: make([]skillMatcher, 0, len(all))}
	for _, skill := range all {
		e.skills = append(e.skills, skillMatcher{name: skill, re: skillPattern(skill)})
	}
	for _, name := range c.Industries() {
		ind := c.IndustryTerms(name)
		e.industries = append(e.industries, industryMatcher{
			name:          name,
			subcategories: matchers(ind.Subcategories),
			terms:         matchers(ind.CommonTerms),
		})
	}
	return e
}

func matchers(words []string) []skillMatcher {
	out := make([]skillMatcher, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, skillMatcher{name: w, re: skillPattern(w)})
		}
	}
	return out
}

// Catalog returns the catalog the extractor was built with
func (e *Extractor) Catalog() *catalog.Catalog {
	return e.catalog
}

// skillPattern matches a skill as a whole word. Skills that start or end
// with punctuation, like C++ or .NET, get explicit non-word guards instead
// of \b.
func skillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	// C must not match inside C++ or C#
	left, right := `\b`, `(?:[^\w+#]|$)`
	if r := rune(skill[0]); !isWordRune(r) {
		left = `(?:^|[^\w])`
	}
	if r := rune(skill[len(skill)-1]); !isWordRune(r) {
		right = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + left + quoted + right)
}

func isWordRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// CleanText normalizes line endings and whitespace runs inside lines
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.TrimSpace(text)
}

// WordCount counts whitespace separated words
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Extract builds the structured view of a document. It never fails: steps
// that find nothing leave their field empty.
func (e *Extractor) Extract(text string, kind types.DocumentKind) types.ExtractedDocument {
	text = CleanText(text)
	if kind != types.KindJobDescription {
		kind = types.KindResume
	}

	doc := types.ExtractedDocument{
		Kind:      kind,
		Sections:  SplitSections(text, kind),
		WordCount: WordCount(text),
		Contact:   e.Contact(text),
		Terms:     e.SignificantTerms(text),
		Text:      text,
	}

	doc.Skills = e.Skills(text)
	for _, skill := range doc.Skills {
		ref, ok := e.catalog.CategoryOf(skill)
		if !ok {
			continue
		}
		switch ref.Kind {
		case catalog.KindTechnical:
			doc.TechnicalSkills = append(doc.TechnicalSkills, skill)
		case catalog.KindSoft:
			doc.SoftSkills = append(doc.SoftSkills, skill)
		}
	}

	if kind == types.KindResume {
		section := doc.Sections["experience"]
		if section == "" {
			section = experienceFallbackRe.FindString(text)
		}
		doc.Experience = ExperienceEntries(section)
		doc.JobTitles = jobTitles(doc.Experience)

		section = doc.Sections["education"]
		if section == "" {
			section = educationFallbackRe.FindString(text)
		}
		doc.Education = EducationEntries(section)
	}

	doc.Location = Location(text, doc.Sections[HeaderSection])
	return doc
}

func jobTitles(entries []types.ExperienceEntry) []string {
	var titles []string
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Title == UnknownTitle {
			continue
		}
		key := strings.ToLower(entry.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		titles = append(titles, entry.Title)
	}
	return titles
}

// Skills returns every catalog skill that appears in text as a whole word,
// in catalog order, merged with any extra skills supplied by the caller.
// Nested skills are all kept: "React Native" yields React and React Native.
func (e *Extractor) Skills(text string, extra ...string) []string {
	var skills []string
	seen := make(map[string]struct{})
	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		key := strings.ToLower(skill)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}
	for _, m := range e.skills {
		if m.re.MatchString(text) {
			add(m.name)
		}
	}
	for _, skill := range extra {
		if ref, ok := e.catalog.CategoryOf(skill); ok {
			skill = ref.Name
		}
		add(skill)
	}
	return skills
}
