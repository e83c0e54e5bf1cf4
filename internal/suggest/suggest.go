// Package suggest turns a match result into prioritised resume improvement
// suggestions, an ATS compatibility estimate and a focused resume outline.
package suggest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

const (
	// StrongMatchThreshold switches the generator to the fixed strong-match set
	StrongMatchThreshold = 85

	lowScore      = 70
	adequateScore = 90

	maxListedSkills   = 5
	maxExtraSkills    = 10
	maxListedKeywords = 5
	maxKeywords       = 10

	// roughly two pages of text
	maxResumeWords = 1000
)

var quantifiedRe = regexp.MustCompile(`(?i)\d+%|increased|decreased|improved|reduced|saved|generated|\$\d+|\d+ hours`)

// Generator is safe for concurrent use.
type Generator struct {
	extractor *textproc.Extractor
}

// New returns a generator that reads keywords with e
func New(e *textproc.Extractor) *Generator {
	if e == nil {
		e = textproc.New(nil)
	}
	return &Generator{extractor: e}
}

// builder accumulates suggestions per category in generation order
type builder struct {
	s types.Suggestions
}

func (b *builder) critical(format string, args ...any) {
	b.s.Critical = append(b.s.Critical, suggestion(types.PriorityHigh, format, args...))
}

func (b *builder) important(format string, args ...any) {
	b.s.Important = append(b.s.Important, suggestion(types.PriorityHigh, format, args...))
}

func (b *builder) recommended(format string, args ...any) {
	b.s.Recommended = append(b.s.Recommended, suggestion(types.PriorityMedium, format, args...))
}

func (b *builder) formatting(format string, args ...any) {
	b.s.Formatting = append(b.s.Formatting, suggestion(types.PriorityLow, format, args...))
}

func (b *builder) longTerm(format string, args ...any) {
	b.s.LongTerm = append(b.s.LongTerm, suggestion(types.PriorityLow, format, args...))
}

func suggestion(p types.Priority, format string, args ...any) types.Suggestion {
	return types.Suggestion{Text: fmt.Sprintf(format, args...), Priority: p}
}

func emptySuggestions() types.Suggestions {
	return types.Suggestions{
		Critical:    []types.Suggestion{},
		Important:   []types.Suggestion{},
		Recommended: []types.Suggestion{},
		Formatting:  []types.Suggestion{},
		LongTerm:    []types.Suggestion{},
	}
}

// Generate builds the suggestion report for one resume and job. The result
// depends only on its inputs.
func (g *Generator) Generate(match types.MatchResult, resume types.ExtractedDocument, job types.JobRequirements) types.SuggestionReport {
	ats := ATSCompatibility(resume)
	report := types.SuggestionReport{
		MatchPercentage: match.OverallScore,
		SkillMatch:      match.Skills.Score,
		ExperienceMatch: match.Experience.Score,
		EducationMatch:  match.Education.Score,
		ATS:             &ats,
	}

	if match.OverallScore >= StrongMatchThreshold {
		report.Suggestions = strongMatchSuggestions()
		return report
	}

	report.MissingKeywords = g.MissingKeywords(job.Text, resume)
	report.Suggestions = g.gapSuggestions(match, resume, job, report.MissingKeywords)
	outline := Outline(match)
	report.Outline = &outline
	return report
}

func strongMatchSuggestions() types.Suggestions {
	b := builder{s: emptySuggestions()}
	b.recommended("Your resume is already well-matched to this job! Consider customizing your cover letter " +
		"to highlight your most relevant experiences.")
	b.recommended("Prepare for interviews by researching the company and preparing stories that demonstrate your skills.")
	b.formatting("Consider small tweaks to emphasize your strongest qualifications for this specific role.")
	return b.s
}

func (g *Generator) gapSuggestions(match types.MatchResult, resume types.ExtractedDocument, job types.JobRequirements, keywords []string) types.Suggestions {
	b := builder{s: emptySuggestions()}
	title := job.Title
	if title == "" {
		title = "target"
	}

	skillSuggestions(&b, match.Skills)
	experienceSuggestions(&b, match.Experience, title)
	educationSuggestions(&b, match.Education.Score)

	if len(keywords) > 0 {
		b.important("Include these keywords from the job description: %s", strings.Join(head(keywords, maxListedKeywords), ", "))
		b.recommended("Many employers use Applicant Tracking Systems (ATS) - incorporate these keywords naturally throughout your resume")
	}

	formattingSuggestions(&b, resume)
	contentSuggestions(&b, resume, title)
	return b.s
}

func skillSuggestions(b *builder, skills types.SkillsMatch) {
	if missing := skills.MissingSkills; len(missing) > 0 {
		b.critical("Add these key required skills to your resume: %s", strings.Join(head(missing, maxListedSkills), ", "))
		b.important("Include these skills in your summary section and demonstrate them in your work experience bullet points")
		if len(missing) > maxListedSkills {
			b.important("Consider highlighting these additional relevant skills: %s",
				strings.Join(missing[maxListedSkills:min(len(missing), maxExtraSkills)], ", "))
		}
	}

	if len(skills.CloseMatches) > 0 {
		partial := make([]string, 0, len(skills.CloseMatches))
		for _, cm := range skills.CloseMatches {
			partial = append(partial, cm.Required)
		}
		b.important("Use exact skill terms from the job description. Replace or expand these skills: %s",
			strings.Join(head(partial, maxListedSkills), ", "))
	}
}

func experienceSuggestions(b *builder, exp types.ExperienceMatch, title string) {
	switch {
	case exp.Score < lowScore:
		if gap := exp.YearsRequired - exp.YearsExperience; gap > 0 {
			b.important("Your resume shows %d years of experience against the %d years required; "+
				"account for the %d year gap with freelance work, internships or substantial projects",
				exp.YearsExperience, exp.YearsRequired, gap)
		}
		b.important("Highlight transferable skills and related projects to compensate for limited direct experience")
		b.recommended("Quantify achievements in your experience section to demonstrate impact relevant to %s", title)
		b.longTerm("Consider gaining additional experience through certifications, volunteering, or side projects related to %s", title)
	case exp.Score < adequateScore:
		b.recommended("Align your work experiences more closely with job requirements by highlighting relevant responsibilities")
		b.recommended("Use industry-specific terminology from the job description in your work experience bullet points")
	}
}

func educationSuggestions(b *builder, score int) {
	switch {
	case score < lowScore:
		b.important("Highlight relevant coursework, training or certifications to compensate for education requirements")
		b.longTerm("Consider pursuing further education or certifications to meet job requirements")
	case score < adequateScore:
		b.recommended("Emphasize your educational achievements and relevant coursework in your education section")
	}
}

func formattingSuggestions(b *builder, resume types.ExtractedDocument) {
	if resume.WordCount > maxResumeWords {
		b.formatting("Your resume is longer than 2 pages. Consider condensing it to focus on the most relevant experiences")
	}

	if len(resume.Experience) > 0 {
		bullets := false
		for _, entry := range resume.Experience {
			if entry.Bullets > 0 {
				bullets = true
				break
			}
		}
		if !bullets {
			b.formatting("Use bullet points to highlight achievements and responsibilities in your work experience section")
		}
	}

	var missing []string
	for _, section := range []string{"experience", "education", "skills"} {
		if !resume.HasSection(section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		b.formatting("Use standard section headings so applicant tracking systems can find your %s", strings.Join(missing, ", "))
	}

	for _, entry := range resume.Experience {
		if entry.Title == textproc.UnknownTitle || entry.Company == textproc.UnknownCompany {
			b.formatting("Use standard job titles and company names in your work history")
			break
		}
	}
}

func contentSuggestions(b *builder, resume types.ExtractedDocument, title string) {
	if resume.HasSection("summary") {
		b.recommended("Customize your summary section to target the %s position specifically", title)
	} else {
		b.recommended("Add a concise professional summary tailored to the %s position", title)
	}

	for _, entry := range resume.Experience {
		if quantifiedRe.MatchString(entry.Description) {
			return
		}
	}
	b.important("Add metrics and quantifiable achievements to your experience section (e.g., 'Increased sales by 20%%')")
}

// MissingKeywords returns the significant job terms absent from the resume,
// most frequent first, ties in order of first appearance.
func (g *Generator) MissingKeywords(jobText string, resume types.ExtractedDocument) []string {
	if strings.TrimSpace(jobText) == "" {
		return nil
	}
	resumeTerms := resume.Terms
	if resumeTerms == nil {
		resumeTerms = g.extractor.SignificantTerms(resume.Text)
	}
	jobTerms := g.extractor.SignificantTerms(jobText)

	first := make(map[string]int)
	for i, w := range textproc.Words(jobText) {
		if _, ok := first[w]; !ok {
			first[w] = i
		}
	}

	var missing []string
	for term := range jobTerms {
		if _, ok := resumeTerms[term]; !ok {
			missing = append(missing, term)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		a, b := missing[i], missing[j]
		if jobTerms[a] != jobTerms[b] {
			return jobTerms[a] > jobTerms[b]
		}
		return first[a] < first[b]
	})
	return head(missing, maxKeywords)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
