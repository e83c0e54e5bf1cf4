package matching

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"searchfind/internal/errors"
	"searchfind/internal/types"
)

const (
	maxQualificationItems = 3
	maxQualificationAreas = 2
)

// colorBounds maps a match percentage to the CSS class shown next to a listing
var colorBounds = []struct {
	min   int
	class string
}{
	{90, "excellent-match"},
	{80, "very-good-match"},
	{70, "good-match"},
	{50, "moderate-match"},
	{30, "low-match"},
}

// ColorClass returns the display class of a match percentage
func ColorClass(pct int) string {
	for _, b := range colorBounds {
		if pct >= b.min {
			return b.class
		}
	}
	return "poor-match"
}

// Qualify condenses a match into the summary shown while browsing jobs
func Qualify(result types.MatchResult) types.Qualification {
	q := types.Qualification{
		Valid:               true,
		JobID:               result.JobID,
		MatchPercentage:     result.OverallScore,
		Tier:                result.Tier,
		ColorClass:          ColorClass(result.OverallScore),
		MissingRequirements: missingRequirements(result),
		Strengths:           strengths(result),
		Match:               &result,
	}
	q.Suggestions = ApplicationSuggestions(q)
	return q
}

// CheckQualification matches resumeText against job and summarises the
// outcome. Failures are reported inside the Qualification.
func (e *Engine) CheckQualification(ctx context.Context, resumeText string, job *types.JobListing) types.Qualification {
	result, err := e.Match(ctx, resumeText, job)
	if err != nil {
		q := types.Qualification{Tier: types.TierUnknown, Error: err.Error()}
		if appErr, ok := errors.As(err); ok {
			q.Error = appErr.Message
		}
		if job != nil {
			q.JobID = job.ID
		}
		return q
	}
	return Qualify(result)
}

// QualifyMany checks one resume against several jobs. The result is keyed by
// job ID; jobs without an ID are skipped.
func (e *Engine) QualifyMany(ctx context.Context, resumeText string, jobs []types.JobListing) (map[string]types.Qualification, error) {
	out := make(map[string]types.Qualification, len(jobs))
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if jobs[i].ID == "" {
			continue
		}
		out[jobs[i].ID] = e.CheckQualification(ctx, resumeText, &jobs[i])
	}
	return out, nil
}

func missingRequirements(r types.MatchResult) []types.Requirement {
	var out []types.Requirement
	if missing := r.Skills.MissingSkills; len(missing) > 0 {
		out = append(out, types.Requirement{Type: "skills", Items: head(missing, maxQualificationItems)})
	}
	exp := r.Experience
	if exp.YearsExperience < exp.YearsRequired {
		out = append(out, types.Requirement{
			Type:     "experience_years",
			Required: strconv.Itoa(exp.YearsRequired),
			Current:  strconv.Itoa(exp.YearsExperience),
		})
	}
	if len(exp.AreasMissing) > 0 {
		out = append(out, types.Requirement{Type: "experience_areas", Items: head(exp.AreasMissing, maxQualificationAreas)})
	}
	if edu := r.Education; edu.RequiredDegree > types.DegreeNone && !edu.HasRequiredEducation {
		out = append(out, types.Requirement{Type: "education", Required: edu.RequiredDegree.String()})
	}
	return head(out, maxQualificationItems)
}

func strengths(r types.MatchResult) []types.Requirement {
	var out []types.Requirement
	if exact := r.Skills.ExactMatches; len(exact) > 0 {
		out = append(out, types.Requirement{Type: "skills", Items: head(exact, maxQualificationItems)})
	}
	exp := r.Experience
	if exp.YearsRequired > 0 && exp.YearsExperience >= exp.YearsRequired {
		out = append(out, types.Requirement{
			Type:     "experience_years",
			Required: strconv.Itoa(exp.YearsRequired),
			Current:  strconv.Itoa(exp.YearsExperience),
		})
	}
	if len(exp.AreasMatched) > 0 {
		out = append(out, types.Requirement{Type: "experience_areas", Items: head(exp.AreasMatched, maxQualificationAreas)})
	}
	if edu := r.Education; edu.HasRequiredEducation && edu.HighestDegree != nil && edu.HighestDegree.Type != "" {
		out = append(out, types.Requirement{Type: "education", Degree: edu.HighestDegree.Type})
	}
	return head(out, maxQualificationItems)
}

// ApplicationSuggestions lists concrete edits to make before applying
func ApplicationSuggestions(q types.Qualification) []string {
	if !q.Valid || q.Match == nil {
		return []string{"Update your resume with relevant skills and experience."}
	}
	r := q.Match

	var out []string
	if missing := r.Skills.MissingSkills; len(missing) > 0 {
		out = append(out, "Add these key skills to your resume: "+strings.Join(head(missing, maxRecommendedSkills), ", "))
	}
	exp := r.Experience
	if exp.YearsExperience < exp.YearsRequired {
		out = append(out, fmt.Sprintf(
			"Highlight any additional experience to meet the %d years requirement. "+
				"Include relevant projects or freelance work.", exp.YearsRequired))
	}
	if len(exp.AreasMissing) > 0 {
		out = append(out, fmt.Sprintf(
			"Emphasize experience in: %s. Include relevant projects or training.",
			strings.Join(head(exp.AreasMissing, maxRecommendedAreas), ", ")))
	}
	if edu := r.Education; edu.RequiredDegree > types.DegreeNone && !edu.HasRequiredEducation {
		out = append(out, fmt.Sprintf(
			"This position requires a %s degree. Highlight relevant coursework, "+
				"certifications, or equivalent experience.", edu.RequiredDegree))
	}
	if q.MatchPercentage < tailorThreshold {
		out = append(out,
			"Tailor your resume specifically for this position by highlighting relevant "+
				"skills and experiences that match the job requirements.")
	}
	if len(out) == 0 {
		return []string{"Your resume appears to be a good match for this position."}
	}
	return out
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
