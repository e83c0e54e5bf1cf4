package matching

import (
	"fmt"
	"strings"

	"searchfind/internal/types"
)

const (
	maxRecommendedSkills = 5
	maxRecommendedAreas  = 3
	maxRecommendedFields = 3
	tailorThreshold      = 70
	minListedSkills      = 5
	minExperienceEntries = 2
)

func bulletList(intro string, items []string, limit int, outro string) string {
	var b strings.Builder
	b.WriteString(intro)
	for _, item := range items[:min(limit, len(items))] {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
	b.WriteString(outro)
	return b.String()
}

// Recommend derives improvement hints from the sub-scores of a result
func Recommend(resume types.ExtractedDocument, result types.MatchResult) types.Recommendations {
	rec := types.Recommendations{
		Skills:     []string{},
		Experience: []string{},
		Education:  []string{},
		Resume:     []string{},
	}

	if missing := result.Skills.MissingSkills; len(missing) > 0 {
		rec.Skills = append(rec.Skills, bulletList(
			"Consider adding the following missing skills to your resume or working to acquire them:",
			missing, maxRecommendedSkills, ""))
	}

	exp := result.Experience
	if exp.YearsExperience < exp.YearsRequired {
		rec.Experience = append(rec.Experience, fmt.Sprintf(
			"You have %d years of experience but this position requires %d years. "+
				"Consider roles with lower experience requirements or highlight projects/achievements "+
				"that demonstrate advanced expertise.",
			exp.YearsExperience, exp.YearsRequired))
	}
	if len(exp.AreasMissing) > 0 {
		rec.Experience = append(rec.Experience, bulletList(
			"Your experience doesn't show sufficient expertise in these areas:",
			exp.AreasMissing, maxRecommendedAreas,
			"\nConsider highlighting any relevant projects or training in these areas."))
	}

	edu := result.Education
	if edu.RequiredDegree > types.DegreeNone && !edu.HasRequiredEducation {
		rec.Education = append(rec.Education, fmt.Sprintf(
			"This position requires a %s degree. Consider pursuing additional education "+
				"or focusing on positions with different requirements.",
			edu.RequiredDegree))
	}
	if len(edu.FieldMismatches) > 0 {
		rec.Education = append(rec.Education, bulletList(
			"Your education doesn't match these preferred fields of study:",
			edu.FieldMismatches, maxRecommendedFields,
			"\nConsider highlighting relevant coursework or additional training in these areas."))
	}

	if result.OverallScore < tailorThreshold {
		rec.Resume = append(rec.Resume,
			"Your resume could benefit from tailoring to better match this position. "+
				"Highlight relevant skills, experience, and achievements that align with the job requirements.")
	}
	if len(resume.Skills) < minListedSkills {
		rec.Resume = append(rec.Resume,
			"Your resume has fewer skills listed than typical for this position. "+
				"Consider expanding your skills section with relevant technical and soft skills.")
	}
	if len(resume.Experience) < minExperienceEntries {
		rec.Resume = append(rec.Resume,
			"Your work history section could be expanded to better demonstrate your relevant experience. "+
				"Include achievements and responsibilities that align with this role.")
	}
	return rec
}
