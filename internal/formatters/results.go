package formatters

import (
	"fmt"
	"slices"
	"strings"

	"searchfind/internal/catalog"
	"searchfind/internal/types"
)

func tierLabel(t types.Tier) string {
	switch t {
	case types.TierExcellent:
		return "Excellent Match"
	case types.TierVeryGood:
		return "Very Good Match"
	case types.TierGood:
		return "Good Match"
	case types.TierModerate:
		return "Moderate Match"
	case types.TierWeak:
		return "Weak Match"
	case types.TierPoor:
		return "Poor Match"
	}
	return "Unknown"
}

func suggestionTexts(s []types.Suggestion) []string {
	out := make([]string, len(s))
	for i, item := range s {
		out[i] = item.Text
	}
	return out
}

func renderExtracted(p *page, d types.ExtractedDocument) {
	p.title("Extracted %s", strings.ReplaceAll(string(d.Kind), "_", " "))
	p.field("Words", d.WordCount)
	p.fieldIf("Location", d.Location)
	p.gap()

	p.list("Emails", d.Contact.Emails)
	p.list("Phones", d.Contact.Phones)
	p.list("Links", d.Contact.URLs)
	p.list("Technical skills", d.TechnicalSkills)
	p.list("Soft skills", d.SoftSkills)

	if len(d.Experience) > 0 {
		p.section("Experience")
		items := make([]string, 0, len(d.Experience))
		for _, e := range d.Experience {
			line := e.Title
			if e.Company != "" {
				line += " at " + e.Company
			}
			if e.Years != "" {
				line += " (" + e.Years + ")"
			}
			items = append(items, line)
		}
		p.list("", items)
	}
	if len(d.Education) > 0 {
		p.section("Education")
		items := make([]string, 0, len(d.Education))
		for _, e := range d.Education {
			items = append(items, strings.TrimSpace(strings.Join([]string{e.Degree, e.Institution, e.Year}, " ")))
		}
		p.list("", items)
	}

	names := make([]string, 0, len(d.Sections))
	for name := range d.Sections {
		names = append(names, name)
	}
	slices.Sort(names)
	p.list("Sections", names)
}

func renderValidation(p *page, v types.ValidationResult) {
	p.title("Document Validation")
	if v.Valid {
		p.field("Valid", "yes")
	} else {
		p.field("Valid", "no")
		p.fieldIf("Reason", v.Reason)
	}
	p.field("Detected type", v.DocumentType)
	p.field("Confidence", fmt.Sprintf("%d%%", v.Confidence))
	p.field("Words", v.WordCount)
	p.field("Completeness", fmt.Sprintf("%d%%", v.Completeness))
	p.gap()
	p.list("Missing sections", v.MissingSections)

	if v.Report != nil {
		p.section("Completeness")
		rows := make([][]string, 0, len(v.Report.Sections))
		for _, s := range v.Report.Sections {
			rows = append(rows, []string{s.Name, fmt.Sprintf("%.0f", s.Score), s.Rating})
		}
		p.table([]string{"Section", "Score", "Rating"}, rows)
		p.list("Recommendations", v.Report.Recommendations)
	}
}

func renderMatch(p *page, r types.MatchResult) {
	if r.CandidateName != "" {
		p.title("Match: %s for %s", r.CandidateName, r.JobTitle)
	} else {
		p.title("Match: %s", r.JobTitle)
	}
	p.field("Overall", fmt.Sprintf("%d/100 (%s)", r.OverallScore, tierLabel(r.Tier)))
	p.gap()

	p.table([]string{"Component", "Score", "Evaluation"}, [][]string{
		{"Skills", fmt.Sprint(r.Skills.Score), r.Skills.Evaluation},
		{"Experience", fmt.Sprint(r.Experience.Score), r.Experience.Evaluation},
		{"Education", fmt.Sprint(r.Education.Score), r.Education.Evaluation},
		{"Job title", fmt.Sprint(r.JobTitleMatch.Score), r.JobTitleMatch.Evaluation},
		{"Location", fmt.Sprint(r.Location.Score), r.Location.Evaluation},
	})

	p.section("Skills")
	p.list("Matched", r.Skills.ExactMatches)
	closeMatches := make([]string, 0, len(r.Skills.CloseMatches))
	for _, c := range r.Skills.CloseMatches {
		closeMatches = append(closeMatches, fmt.Sprintf("%s ~ %s (%.2f)", c.Required, c.Candidate, c.Similarity))
	}
	p.list("Close", closeMatches)
	p.list("Missing", r.Skills.MissingSkills)

	p.section("Experience")
	p.field("Years", fmt.Sprintf("%d (required %d, preferred %d)",
		r.Experience.YearsExperience, r.Experience.YearsRequired, r.Experience.YearsPreferred))
	p.gap()
	p.list("Relevant areas", r.Experience.AreasMatched)
	p.list("Areas not shown", r.Experience.AreasMissing)

	p.section("Recommendations")
	var recs []string
	recs = append(recs, r.Recommendations.Skills...)
	recs = append(recs, r.Recommendations.Experience...)
	recs = append(recs, r.Recommendations.Education...)
	recs = append(recs, r.Recommendations.Resume...)
	if len(recs) == 0 {
		p.para("None.")
		return
	}
	p.numbered(recs)
}

func renderRanking(p *page, r types.Ranking) {
	p.title("Ranking: %s", r.JobTitle)
	p.field("Candidates", r.TotalCandidates)
	p.field("Ranked", len(r.Matches))
	p.gap()

	rows := make([][]string, 0, len(r.Matches))
	for i, m := range r.Matches {
		name := m.CandidateName
		if name == "" {
			name = m.CandidateID
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			name,
			fmt.Sprint(m.OverallScore),
			tierLabel(m.Tier),
			fmt.Sprint(m.Skills.Score),
			fmt.Sprint(m.Experience.Score),
		})
	}
	p.table([]string{"#", "Candidate", "Score", "Tier", "Skills", "Experience"}, rows)

	if len(r.Skipped) > 0 {
		p.section("Skipped")
		items := make([]string, len(r.Skipped))
		for i, s := range r.Skipped {
			items[i] = fmt.Sprintf("%s: %s", s.CandidateID, s.Reason)
		}
		p.list("", items)
	}
}

func renderSuggestions(p *page, s types.SuggestionReport) {
	p.title("Resume Improvement Suggestions")
	p.field("Match", fmt.Sprintf("%d%%", s.MatchPercentage))
	p.field("Skills / Experience / Education", fmt.Sprintf("%d / %d / %d", s.SkillMatch, s.ExperienceMatch, s.EducationMatch))
	p.gap()
	p.list("Missing keywords", s.MissingKeywords)

	groups := []struct {
		name  string
		items []types.Suggestion
	}{
		{"Critical", s.Suggestions.Critical},
		{"Important", s.Suggestions.Important},
		{"Recommended", s.Suggestions.Recommended},
		{"Formatting", s.Suggestions.Formatting},
		{"Long term", s.Suggestions.LongTerm},
	}
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}
		p.section(g.name)
		p.numbered(suggestionTexts(g.items))
	}

	if s.ATS != nil {
		p.section("ATS Compatibility")
		p.field("Score", fmt.Sprintf("%d (%s)", s.ATS.Score, s.ATS.Level))
		p.gap()
		p.list("Tips", s.ATS.Tips)
	}
	if s.Outline != nil {
		p.section("Focused Outline")
		p.field("Summary", s.Outline.Summary)
		p.field("Experience focus", s.Outline.ExperienceFocus)
		p.field("Education", s.Outline.EducationPresentation)
		p.gap()
		p.list("Skills to emphasize", s.Outline.SkillsToEmphasize)
		p.list("Additional sections", s.Outline.AdditionalSections)
	}
}

func requirementText(r types.Requirement) string {
	switch {
	case len(r.Items) > 0:
		return fmt.Sprintf("%s: %s", r.Type, strings.Join(r.Items, ", "))
	case r.Required != "":
		return fmt.Sprintf("%s: requires %s, has %s", r.Type, r.Required, r.Current)
	case r.Current != "":
		return fmt.Sprintf("%s: %s", r.Type, r.Current)
	case r.Degree != "":
		return fmt.Sprintf("%s: %s", r.Type, r.Degree)
	}
	return r.Type
}

func requirementTexts(rs []types.Requirement) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = requirementText(r)
	}
	return out
}

func writeQualification(p *page, q types.Qualification) {
	if !q.Valid {
		p.field("Error", q.Error)
		p.gap()
		return
	}
	p.field("Match", fmt.Sprintf("%d%% (%s)", q.MatchPercentage, tierLabel(q.Tier)))
	p.gap()
	p.list("Strengths", requirementTexts(q.Strengths))
	p.list("Missing", requirementTexts(q.MissingRequirements))
	p.list("Suggestions", q.Suggestions)
}

func renderQualification(p *page, q types.Qualification) {
	if q.JobID != "" {
		p.title("Qualification: %s", q.JobID)
	} else {
		p.title("Qualification")
	}
	writeQualification(p, q)
}

func renderQualifications(p *page, qs map[string]types.Qualification) {
	p.title("Qualifications")
	ids := make([]string, 0, len(qs))
	for id := range qs {
		ids = append(ids, id)
	}
	// Best match first, ties by job ID
	slices.SortFunc(ids, func(a, b string) int {
		if d := qs[b].MatchPercentage - qs[a].MatchPercentage; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, id := range ids {
		p.section(id)
		writeQualification(p, qs[id])
	}
}

func renderInterview(p *page, q types.InterviewQuestions) {
	if q.Company != "" {
		p.title("Interview Questions: %s at %s", q.JobTitle, q.Company)
	} else {
		p.title("Interview Questions: %s", q.JobTitle)
	}
	p.field("Source", q.Source)
	p.gap()
	p.list("Key skills", q.JobSkills)

	groups := []struct {
		name  string
		items []string
	}{
		{"Technical", q.Technical},
		{"Behavioral", q.Behavioral},
		{"Company", q.CompanyFit},
		{"Generated", q.Generated},
	}
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}
		p.section(g.name)
		p.numbered(g.items)
	}
}

func renderGuidance(p *page, g types.AnswerGuidance) {
	p.title("Answer Guidance: %s", g.QuestionType)
	p.fieldIf("Question", g.Question)
	p.gap()

	p.section(g.Framework.Title)
	p.para(g.Framework.Description)
	for _, step := range g.Framework.Steps {
		p.list(fmt.Sprintf("%s: %s", step.Name, step.Description), step.Tips)
	}
	p.list("Tips", g.SpecificTips)
	p.list("Do", g.Dos)
	p.list("Don't", g.Donts)
}

func renderCatalogStats(p *page, s catalog.Stats) {
	p.title("Reference Catalog")
	p.table([]string{"Entry", "Count"}, [][]string{
		{"Skills", fmt.Sprint(s.Skills)},
		{"Technical categories", fmt.Sprint(s.Technical)},
		{"Soft skill categories", fmt.Sprint(s.Soft)},
		{"Job titles", fmt.Sprint(s.JobTitles)},
		{"Industries", fmt.Sprint(s.Industries)},
		{"Stopwords", fmt.Sprint(s.Stopwords)},
		{"Entity patterns", fmt.Sprint(s.Entities)},
	})
}
