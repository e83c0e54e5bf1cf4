package suggest

import (
	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

const (
	atsBase = 70
	atsStep = 10
	atsHigh = 90
)

var atsTips = []string{
	"Use standard section headings (e.g., 'Experience', 'Education', 'Skills')",
	"Avoid using tables, headers, footers, or complex formatting",
	"Include keywords from job descriptions you're targeting",
	"Use standard job titles and company names",
	"Avoid using acronyms without spelling them out first",
}

// ATSCompatibility estimates how well an applicant tracking system will read
// the resume: a base of 70 plus 10 each for a technical and soft skill mix,
// fully titled experience entries and any education.
func ATSCompatibility(resume types.ExtractedDocument) types.ATSReport {
	score := atsBase
	if len(resume.TechnicalSkills) > 0 && len(resume.SoftSkills) > 0 {
		score += atsStep
	}
	if len(resume.Experience) > 0 && allTitled(resume.Experience) {
		score += atsStep
	}
	if len(resume.Education) > 0 {
		score += atsStep
	}

	report := types.ATSReport{Score: score, Level: "Medium", Tips: []string{}}
	switch {
	case score >= atsHigh:
		report.Level = "High"
	case score < atsBase:
		report.Level = "Low"
	}
	if score < atsHigh {
		report.Tips = append(report.Tips, atsTips...)
	}
	return report
}

func allTitled(entries []types.ExperienceEntry) bool {
	for _, e := range entries {
		if e.Title == textproc.UnknownTitle {
			return false
		}
	}
	return true
}
