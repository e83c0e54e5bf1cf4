package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"searchfind/internal/types"
)

const backendPosting = `Backend role on the payments team.
5+ years of experience required. 8 years of experience preferred.
Required: Bachelor's degree in Computer Science.
Experience with payment systems.`

func TestExtractRequirements(t *testing.T) {
	job := types.JobListing{
		ID:             "job-7",
		Title:          " Backend Engineer ",
		Company:        "Globex",
		Description:    backendPosting,
		SkillsRequired: types.SkillList{"python", "django"},
		Location:       "Austin, TX",
		Industry:       "technology",
		Category:       "software_development",
	}
	req := newTestEngine().ExtractRequirements(job)

	assert.Equal(t, "job-7", req.ID)
	assert.Equal(t, "Backend Engineer", req.Title)
	assert.Equal(t, "Austin, TX", req.Location)
	assert.Equal(t, "technology", req.Industry)
	assert.Equal(t, "software_development", req.Category)
	assert.Subset(t, req.RequiredSkills, []string{"Python", "Django"})

	assert.Equal(t, types.DegreeBachelor, req.Education.MinDegree)
	assert.True(t, req.Education.Required)
	assert.Equal(t, []string{"computer science"}, req.Education.PreferredFields)

	assert.Equal(t, 5, req.Experience.MinYears)
	assert.Equal(t, 8, req.Experience.PreferredYears)
	assert.Equal(t, []string{"payment systems"}, req.Experience.Areas)
}

func TestExperienceRequirement_Years(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantMin       int
		wantPreferred int
	}{
		{"none", "build services", 0, 0},
		{"default is required", "3 years of experience with apis", 3, 0},
		{"minimum of several", "at least 4 years experience; 2 yrs experience in sql", 2, 0},
		{"plus is not preference", "5 plus years of experience", 5, 0},
		{"preferred only", "ideally 6 years of experience", 0, 6},
		{"experience of n years", "experience of 7 years in finance", 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := experienceRequirement(tt.text)
			assert.Equal(t, tt.wantMin, req.MinYears)
			assert.Equal(t, tt.wantPreferred, req.PreferredYears)
		})
	}
}

func TestExperienceRequirement_Areas(t *testing.T) {
	req := experienceRequirement("knowledge of distributed systems. proficiency in the go language, background in finance and banking")
	assert.Equal(t, []string{"distributed systems", "go language", "finance banking"}, req.Areas)
}

func TestEducationRequirement(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantLevel    types.DegreeLevel
		wantRequired bool
	}{
		{"none", "we build things", types.DegreeNone, false},
		{"highest mentioned wins", "bachelor's or master's degree preferred", types.DegreeMaster, false},
		{"phd required", "minimum education: phd in physics", types.DegreeDoctorate, true},
		{"high school", "high school diploma", types.DegreeHighSchool, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := educationRequirement(tt.text)
			assert.Equal(t, tt.wantLevel, req.MinDegree)
			assert.Equal(t, tt.wantRequired, req.Required)
		})
	}
}
