package matching

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/errors"
	"searchfind/internal/types"
)

const resumeText = `Jane Doe
Austin, TX | jane@example.com | (512) 555-0100

Summary
Backend engineer proficient in Python and experienced with distributed systems.

Experience
Backend Engineer at Acme Corp
2017 - Present
- Built payment systems with Django and PostgreSQL
- Moved services to Docker
Software Developer at Initech
2014 - 2017
- Maintained internal tools

Education
Bachelor of Science in Computer Science, State University, 2014

Skills
Python, Django, PostgreSQL, Docker, Git`

const weakResumeText = `John Smith
Denver, CO | john@example.com | (303) 555-0199

Summary
Support specialist proficient in Excel and experienced with customer tickets.

Experience
Support Specialist at Initech
2023 - 2024
- Answered customer tickets

Education
High School Diploma, Lincoln High School, 2019

Skills
Excel`

func backendListing() *types.JobListing {
	return &types.JobListing{
		ID:             "job-1",
		Title:          "Backend Engineer",
		Description:    backendPosting,
		SkillsRequired: types.SkillList{"python", "django"},
		Location:       "Austin, TX",
	}
}

func TestMatch_StrongResume(t *testing.T) {
	result, err := newTestEngine().Match(context.Background(), resumeText, backendListing())
	require.NoError(t, err)

	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, "Backend Engineer", result.JobTitle)
	assert.Contains(t, result.Skills.ExactMatches, "Python")
	assert.Contains(t, result.Skills.ExactMatches, "Django")
	assert.Equal(t, 11, result.Experience.YearsExperience)
	assert.Equal(t, 100, result.JobTitleMatch.Score)
	assert.Equal(t, 100, result.Location.Score)
	assert.True(t, result.Education.HasRequiredEducation)
	assert.GreaterOrEqual(t, result.OverallScore, 80)
}

func TestMatch_InputErrors(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	tests := []struct {
		name     string
		resume   string
		job      *types.JobListing
		wantCode string
	}{
		{"no resume", "  ", backendListing(), errors.ErrCodeInputMissing},
		{"no job", resumeText, nil, errors.ErrCodeInputMissing},
		{"too short", "Jane Doe, engineer", backendListing(), errors.ErrCodeEmptyDocument},
		{"job posting instead of resume", backendPosting + "\n" + backendPosting, backendListing(), errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Match(ctx, tt.resume, tt.job)
			require.Error(t, err)
			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.True(t, errors.IsCallerError(err))
		})
	}
}

func TestMatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestEngine().Match(ctx, resumeText, backendListing())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_OrdersAndSkips(t *testing.T) {
	loader := func(path string) (string, error) {
		if path == "weak.txt" {
			return weakResumeText, nil
		}
		return "", stderrors.New("not found")
	}
	e := newTestEngine(WithDocumentLoader(loader))

	ranking, err := e.Rank(context.Background(), backendListing(), []types.Candidate{
		{ID: "weak", Name: "John", ResumePath: "weak.txt"},
		{ID: "empty"},
		{ID: "strong", ResumeText: resumeText},
		{ID: "missing", ResumePath: "missing.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, "job-1", ranking.JobID)
	assert.Equal(t, 2, ranking.TotalCandidates)
	require.Len(t, ranking.Matches, 2)
	assert.Equal(t, "strong", ranking.Matches[0].CandidateID)
	assert.Equal(t, "Unknown Candidate", ranking.Matches[0].CandidateName)
	assert.Equal(t, "weak", ranking.Matches[1].CandidateID)
	assert.Greater(t, ranking.Matches[0].OverallScore, ranking.Matches[1].OverallScore)

	require.Len(t, ranking.Skipped, 2)
	assert.Equal(t, "empty", ranking.Skipped[0].CandidateID)
	assert.Equal(t, "missing", ranking.Skipped[1].CandidateID)
	assert.Contains(t, ranking.Skipped[1].Reason, "not found")
}

func TestRank_InputErrors(t *testing.T) {
	e := newTestEngine()
	_, err := e.Rank(context.Background(), nil, []types.Candidate{{ID: "a", ResumeText: resumeText}})
	assert.True(t, errors.IsCallerError(err))

	_, err = e.Rank(context.Background(), backendListing(), nil)
	assert.True(t, errors.IsCallerError(err))
}

func TestRank_PathWithoutLoader(t *testing.T) {
	ranking, err := newTestEngine().Rank(context.Background(), backendListing(), []types.Candidate{
		{ID: "a", ResumePath: "a.pdf"},
	})
	require.NoError(t, err)
	assert.Empty(t, ranking.Matches)
	require.Len(t, ranking.Skipped, 1)
	assert.Contains(t, ranking.Skipped[0].Reason, "no document loader")
}
