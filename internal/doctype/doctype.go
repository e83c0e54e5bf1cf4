// Package doctype decides whether a text is a resume, a cover letter or a
// job description, and grades how complete a resume is.
package doctype

import (
	"fmt"
	"regexp"
	"strings"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

// Confidence thresholds on the 0..100 scale. A document is accepted when
// its best type scores at least MediumConfidence.
const (
	HighConfidence   = 80
	MediumConfidence = 30
	LowConfidence    = 10

	MinWordCount = 20

	otherScore = 20
)

// ReasonTooShort is reported for empty or very short input
const ReasonTooShort = "Document is too short or empty"

// scoredKinds is also the tie-break order: the first highest score wins.
var scoredKinds = []types.DocumentKind{
	types.KindResume,
	types.KindCoverLetter,
	types.KindJobDescription,
	types.KindOther,
}

// Validator is stateless apart from its extractor and safe for concurrent use.
type Validator struct {
	extractor *textproc.Extractor
}

// New returns a validator that uses e for section splitting and contact patterns
func New(e *textproc.Extractor) *Validator {
	if e == nil {
		e = textproc.New(nil)
	}
	return &Validator{extractor: e}
}

// Validate classifies text. It never fails; rejection is reported through
// the Valid flag and Reason.
func (v *Validator) Validate(text string) types.ValidationResult {
	text = textproc.CleanText(text)
	words := textproc.WordCount(text)

	if words < MinWordCount {
		scores := make(map[types.DocumentKind]int, len(scoredKinds))
		for _, kind := range scoredKinds {
			scores[kind] = 0
		}
		return types.ValidationResult{
			Valid:        false,
			Reason:       ReasonTooShort,
			DocumentType: types.KindUnknown,
			WordCount:    words,
			Scores:       scores,
		}
	}

	scores := map[types.DocumentKind]int{
		types.KindResume:         v.resumeScore(text),
		types.KindCoverLetter:    coverLetterScore(text),
		types.KindJobDescription: jobDescriptionScore(text),
		types.KindOther:          otherScore,
	}

	best := scoredKinds[0]
	for _, kind := range scoredKinds[1:] {
		if scores[kind] > scores[best] {
			best = kind
		}
	}

	result := types.ValidationResult{
		Valid:        scores[best] >= MediumConfidence,
		DocumentType: best,
		Confidence:   scores[best],
		Scores:       scores,
		WordCount:    words,
	}
	if !result.Valid {
		result.Reason = fmt.Sprintf("Document doesn't appear to be a valid %s", best)
	}

	if best == types.KindResume {
		doc := v.extractor.Extract(text, types.KindResume)
		report := v.Completeness(text, &doc)
		result.Report = &report
		result.MissingSections = report.MissingSections
		result.Completeness = report.Completeness
	}
	return result
}

// ValidateResume validates text and rejects anything that is not a resume
func (v *Validator) ValidateResume(text string) types.ValidationResult {
	result := v.Validate(text)
	if result.Valid && result.DocumentType != types.KindResume {
		result.Valid = false
		result.Reason = "Document is not a valid resume"
	}
	return result
}

var (
	resumeHeadings = wordPatterns(
		"experience", "education", "skills", "summary", "profile", "work history", "employment",
		"qualifications", "projects", "certifications", "references", "publications", "awards",
		"professional experience", "career objective", "technical skills",
	)

	socialRe = regexp.MustCompile(`\b(?:linkedin\.com|github\.com|twitter\.com)/[\w-]+\b`)

	resumeDateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:19|20)\d{2}\s*-\s*(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*-\s*(?:present|current|now)\b`),
		regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* (?:19|20)\d{2}\b`),
	}
	skillIndicators = wordPatterns(
		"proficient in", "experienced with", "skilled in", "knowledge of", "familiar with",
		"expertise in", "competent with", "technical skills", "soft skills",
	)

	coverLetterPhrases = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:dear|to) (?:hiring manager|recruiter|sir|madam)\b`),
		regexp.MustCompile(`\bi am (?:writing|applying) (?:to|for)\b`),
		regexp.MustCompile(`\bi am interested in\b`),
		regexp.MustCompile(`\bthank you for (?:your|the) consideration\b`),
		regexp.MustCompile(`\blook forward to\b`),
		regexp.MustCompile(`\bsincerely\b`),
		regexp.MustCompile(`\bregards\b`),
		regexp.MustCompile(`\benclosed\b`),
		regexp.MustCompile(`\battached\b`),
	}
	companyMentionRes = []*regexp.Regexp{
		regexp.MustCompile(`\bat \w+`),
		regexp.MustCompile(`\b(?:join|with) \w+`),
		regexp.MustCompile(`\b(?:position|role|opportunity) at \w+`),
	}

	jobHeadings = wordPatterns(
		"job description", "responsibilities", "requirements", "qualifications", "about the role",
		"about the company", "skills", "experience required", "education required", "who you are",
		"what you'll do", "benefits", "compensation", "how to apply", "about us", "our company", "the team",
	)
	jobPhrases = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:we are|our company is) (?:seeking|looking for|hiring)\b`),
		regexp.MustCompile(`\bmust have\b`),
		regexp.MustCompile(`\brequired skills\b`),
		regexp.MustCompile(`\bpreferred qualifications\b`),
		regexp.MustCompile(`\bresponsibilities include\b`),
		regexp.MustCompile(`\breport to\b`),
		regexp.MustCompile(`\bwork with\b`),
		regexp.MustCompile(`\bfull[ -]time\b`),
		regexp.MustCompile(`\bpart[ -]time\b`),
		regexp.MustCompile(`\bremote\b`),
		regexp.MustCompile(`\bhybrid\b`),
		regexp.MustCompile(`\bon[ -]site\b`),
		regexp.MustCompile(`\bsalary\b`),
		regexp.MustCompile(`\bemployment type\b`),
		regexp.MustCompile(`\bapply now\b`),
	}

	bulletRe = regexp.MustCompile(`(?m)^[ \t]*(?:•|·|-|\*|\d+\.)\s`)

	yearsExperienceRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d+\+?\s*(?:years|yrs)(?:\s*of\s*|\s+)experience\b`),
		regexp.MustCompile(`\bexperience: \d+\+?\s*(?:years|yrs)\b`),
		regexp.MustCompile(`\bminimum \d+\s*(?:years|yrs)\b`),
	}
)

func wordPatterns(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

// countMatching returns how many patterns match at least once
func countMatching(res []*regexp.Regexp, s string) int {
	n := 0
	for _, re := range res {
		if re.MatchString(s) {
			n++
		}
	}
	return n
}

// countAll returns the total number of matches across patterns
func countAll(res []*regexp.Regexp, s string) int {
	n := 0
	for _, re := range res {
		n += len(re.FindAllStringIndex(s, -1))
	}
	return n
}

// tiered returns the points of the first threshold n reaches
func tiered(n int, steps ...[2]int) int {
	for _, step := range steps {
		if n >= step[0] {
			return step[1]
		}
	}
	return 0
}

func (v *Validator) resumeScore(text string) int {
	lower := strings.ToLower(text)
	score := tiered(countMatching(resumeHeadings, lower), [2]int{4, 40}, [2]int{2, 20}, [2]int{1, 10})

	contact := 0
	for _, name := range []string{"email", "phone"} {
		if re, ok := v.extractor.Catalog().EntityRegex(name); ok && re.MatchString(text) {
			contact++
		}
	}
	if socialRe.MatchString(text) {
		contact++
	}
	score += tiered(contact, [2]int{2, 20}, [2]int{1, 10})
	score += tiered(countAll(resumeDateRes, text), [2]int{3, 20}, [2]int{1, 10})
	score += tiered(countAll(skillIndicators, lower), [2]int{3, 20}, [2]int{1, 10})
	return min(100, score)
}

func coverLetterScore(text string) int {
	lower := strings.ToLower(text)
	score := tiered(countMatching(coverLetterPhrases, lower), [2]int{4, 40}, [2]int{2, 20}, [2]int{1, 10})

	words := strings.Fields(lower)
	if len(words) > 0 {
		pronouns := 0
		for _, w := range words {
			switch w {
			case "i", "me", "my", "mine", "myself":
				pronouns++
			}
		}
		// per mille, so the 2% and 5% steps stay exact
		ratio := pronouns * 1000 / len(words)
		score += tiered(ratio, [2]int{50, 30}, [2]int{20, 15})
	}

	score += tiered(countAll(companyMentionRes, lower), [2]int{2, 20}, [2]int{1, 10})
	if n := len(words); n > 100 && n < 500 {
		score += 10
	}
	return min(100, score)
}

func jobDescriptionScore(text string) int {
	lower := strings.ToLower(text)
	score := tiered(countMatching(jobHeadings, lower), [2]int{4, 40}, [2]int{2, 20}, [2]int{1, 10})
	score += tiered(countMatching(jobPhrases, lower), [2]int{4, 30}, [2]int{2, 15})
	score += tiered(len(bulletRe.FindAllStringIndex(text, -1)), [2]int{10, 20}, [2]int{5, 10})
	score += tiered(countAll(yearsExperienceRes, lower), [2]int{2, 10}, [2]int{1, 5})
	return min(100, score)
}
