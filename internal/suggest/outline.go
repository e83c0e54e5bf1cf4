package suggest

import "searchfind/internal/types"

// Outline sketches a resume focused on the job behind match
func Outline(match types.MatchResult) types.ResumeOutline {
	return types.ResumeOutline{
		Summary:               "A tailored professional summary highlighting your most relevant qualifications",
		SkillsToEmphasize:     append([]string{}, head(match.Skills.MissingSkills, maxListedSkills)...),
		ExperienceFocus:       "Focus on responsibilities and achievements most relevant to this position",
		EducationPresentation: "Format education section to meet job requirements",
		AdditionalSections:    []string{"Certifications", "Projects", "Professional Development"},
	}
}
