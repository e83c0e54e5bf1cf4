package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/types"
)

func TestColorClass(t *testing.T) {
	tests := map[int]string{
		100: "excellent-match",
		90:  "excellent-match",
		85:  "very-good-match",
		70:  "good-match",
		50:  "moderate-match",
		30:  "low-match",
		29:  "poor-match",
		0:   "poor-match",
	}
	for pct, want := range tests {
		assert.Equal(t, want, ColorClass(pct), "pct %d", pct)
	}
}

func TestQualify_Gaps(t *testing.T) {
	resume := types.ExtractedDocument{
		Skills: []string{"Python"},
		Experience: []types.ExperienceEntry{
			{Title: "Developer", Years: "2022 - 2024", Description: "Internal tools"},
		},
	}
	job := backendJob()
	job.RequiredSkills = []string{"Python", "Django", "Kubernetes", "Terraform", "Redis"}
	q := Qualify(newTestEngine().Score(resume, job))

	assert.True(t, q.Valid)
	assert.Equal(t, "job-1", q.JobID)
	require.Len(t, q.MissingRequirements, 3)
	assert.Equal(t, types.Requirement{Type: "skills", Items: []string{"Django", "Kubernetes", "Terraform"}}, q.MissingRequirements[0])
	assert.Equal(t, types.Requirement{Type: "experience_years", Required: "5", Current: "2"}, q.MissingRequirements[1])
	assert.Equal(t, types.Requirement{Type: "experience_areas", Items: []string{"payment"}}, q.MissingRequirements[2])

	require.Len(t, q.Strengths, 1)
	assert.Equal(t, types.Requirement{Type: "skills", Items: []string{"Python"}}, q.Strengths[0])

	assert.Equal(t, []string{
		"Add these key skills to your resume: Django, Kubernetes, Terraform, Redis",
		"Highlight any additional experience to meet the 5 years requirement. Include relevant projects or freelance work.",
		"Emphasize experience in: payment. Include relevant projects or training.",
		"This position requires a Bachelor's degree. Highlight relevant coursework, certifications, or equivalent experience.",
		"Tailor your resume specifically for this position by highlighting relevant skills and experiences that match the job requirements.",
	}, q.Suggestions)
	assert.Equal(t, "poor-match", q.ColorClass)
}

func TestQualify_Strengths(t *testing.T) {
	q := Qualify(newTestEngine().Score(strongResume(), backendJob()))

	assert.Empty(t, q.MissingRequirements)
	require.Len(t, q.Strengths, 3)
	assert.Equal(t, "skills", q.Strengths[0].Type)
	assert.Equal(t, types.Requirement{Type: "experience_years", Required: "5", Current: "11"}, q.Strengths[1])
	assert.Equal(t, "experience_areas", q.Strengths[2].Type)
	assert.Equal(t, []string{"Your resume appears to be a good match for this position."}, q.Suggestions)
	assert.Equal(t, "excellent-match", q.ColorClass)
	require.NotNil(t, q.Match)
}

func TestCheckQualification_Invalid(t *testing.T) {
	q := newTestEngine().CheckQualification(context.Background(), "too short", backendListing())

	assert.False(t, q.Valid)
	assert.Equal(t, types.TierUnknown, q.Tier)
	assert.Zero(t, q.MatchPercentage)
	assert.Equal(t, "Document is too short or empty", q.Error)
	assert.Equal(t, "job-1", q.JobID)
	assert.Equal(t, []string{"Update your resume with relevant skills and experience."}, ApplicationSuggestions(q))
}

func TestQualifyMany_KeyedByJobID(t *testing.T) {
	second := backendListing()
	second.ID = "job-2"
	second.Title = "Data Engineer"
	anonymous := backendListing()
	anonymous.ID = ""

	out, err := newTestEngine().QualifyMany(context.Background(), resumeText,
		[]types.JobListing{*backendListing(), *second, *anonymous})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.True(t, out["job-1"].Valid)
	assert.True(t, out["job-2"].Valid)
	assert.GreaterOrEqual(t, out["job-1"].MatchPercentage, out["job-2"].MatchPercentage)
}
