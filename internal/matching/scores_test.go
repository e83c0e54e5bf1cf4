package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

func TestScoreSkills_NoRequirements(t *testing.T) {
	e := newTestEngine()
	for _, candidate := range [][]string{nil, {}, {"Python", "Go"}} {
		result := e.scoreSkills(candidate, nil)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, "No specific skills were required for this job", result.Evaluation)
		assert.Empty(t, result.MissingSkills)
	}
}

func TestScoreSkills_AllPresentCaseInsensitive(t *testing.T) {
	result := newTestEngine().scoreSkills(
		[]string{"Python", "Django", "PostgreSQL", "Docker"},
		[]string{"python", "DJANGO", "PostgreSQL"},
	)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL"}, result.ExactMatches)
	assert.Empty(t, result.CloseMatches)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, "Excellent skills match with almost all required skills", result.Evaluation)
}

func TestScoreSkills_ExactFuzzyMissingAreDisjoint(t *testing.T) {
	result := newTestEngine().scoreSkills(
		[]string{"Python", "React Native", "Postgres"},
		[]string{"Python", "React", "PostgreSQL", "Kubernetes"},
	)

	assert.Equal(t, []string{"Python"}, result.ExactMatches)
	require.Len(t, result.CloseMatches, 2)
	assert.Equal(t, "React", result.CloseMatches[0].Required)
	assert.Equal(t, "React Native", result.CloseMatches[0].Candidate)
	assert.Equal(t, "PostgreSQL", result.CloseMatches[1].Required)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)

	for _, cm := range result.CloseMatches {
		assert.NotContains(t, result.MissingSkills, cm.Required)
		assert.NotContains(t, result.ExactMatches, cm.Required)
	}

	// (1 + 0.5*2) / 4
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, "Moderate skills match with some missing critical skills", result.Evaluation)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("python", "python"))
	assert.InDelta(t, 0.947, Similarity("javascript", "javascipt"), 0.001)
	assert.Less(t, Similarity("rust", "python"), 0.5)
}

func TestYearsOfExperience(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Years: "2019 - Present"},
		{Years: "Jan 2015 - Dec 2018"},
		{Years: "2010 to 2012"},
		{Years: "1950 - 2020"},
		{Years: "2020 - 2018"},
		{Years: "Unknown Date Range"},
	}
	// 6 + 3 + 2; the 70 year and negative spans are ignored
	assert.Equal(t, 11, YearsOfExperience(entries, 2025))
}

func TestScoreExperience_Interpolated(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", Years: "2019 - 2025", Description: "APIs"},
	}
	result := newTestEngine().scoreExperience(entries, types.ExperienceRequirement{MinYears: 5, PreferredYears: 8})

	assert.Equal(t, 6, result.YearsExperience)
	assert.Greater(t, result.YearsScore, 80.0)
	assert.Less(t, result.YearsScore, 100.0)
	assert.InDelta(t, 86.7, result.YearsScore, 0.05)
	assert.Contains(t, result.YearsEvaluation, "approaching preferred level (8 years)")
}

func TestScoreExperience_Branches(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name      string
		years     string
		req       types.ExperienceRequirement
		wantYears float64
	}{
		{"no requirement", "2020 - 2021", types.ExperienceRequirement{}, 100},
		{"beyond preferred", "2010 - 2020", types.ExperienceRequirement{MinYears: 3, PreferredYears: 5}, 100},
		{"above minimum only", "2015 - 2020", types.ExperienceRequirement{MinYears: 3}, 90},
		{"capped above minimum", "2000 - 2020", types.ExperienceRequirement{MinYears: 3}, 100},
		{"below minimum", "2018 - 2020", types.ExperienceRequirement{MinYears: 5}, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []types.ExperienceEntry{{Title: "Dev", Years: tt.years}}
			result := e.scoreExperience(entries, tt.req)
			assert.Equal(t, tt.wantYears, result.YearsScore)
			assert.Equal(t, 100.0, result.AreasScore)
			assert.Equal(t, round(tt.wantYears*0.6+40), result.Score)
		})
	}
}

func TestScoreExperience_Areas(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Data Engineer", Company: "Acme", Years: "2020 - 2022", Description: "Built ETL pipelines for Machine Learning teams"},
	}
	result := newTestEngine().scoreExperience(entries, types.ExperienceRequirement{
		Areas: []string{"machine learning", "data", "embedded systems", " "},
	})

	assert.Equal(t, []string{"machine learning", "data"}, result.AreasMatched)
	assert.Equal(t, []string{"embedded systems"}, result.AreasMissing)
	assert.InDelta(t, 66.7, result.AreasScore, 0.05)
	assert.Equal(t, "Experience mostly relevant to job requirements", result.AreasEvaluation)
}

func TestScoreEducation_NoRequirementNoEducation(t *testing.T) {
	result := scoreEducation(nil, types.EducationRequirement{})
	assert.Equal(t, 100, result.Score)
	assert.Nil(t, result.HighestDegree)
	assert.True(t, result.HasRequiredEducation)
}

func TestScoreEducation_RequiredButMissing(t *testing.T) {
	result := scoreEducation(nil, types.EducationRequirement{MinDegree: types.DegreeBachelor, Required: true})
	assert.Equal(t, 0.0, result.DegreeScore)
	// no preferred fields, so the field part is 100: 0.7*0 + 0.3*100
	assert.Equal(t, 30, result.Score)
	assert.Equal(t, "No degree information found in resume", result.DegreeEvaluation)
	assert.False(t, result.HasRequiredEducation)
}

func TestScoreEducation_Levels(t *testing.T) {
	tests := []struct {
		name      string
		degree    string
		req       types.EducationRequirement
		wantScore int
		wantEval  string
	}{
		{
			name:      "exceeds",
			degree:    "Master of Science in Computer Science",
			req:       types.EducationRequirement{MinDegree: types.DegreeBachelor, Required: true},
			wantScore: 100,
			wantEval:  "Education (Master's) exceeds required level (Bachelor's)",
		},
		{
			name:      "below and required",
			degree:    "Associate of Arts in History",
			req:       types.EducationRequirement{MinDegree: types.DegreeMaster, Required: true},
			wantScore: 65,
			wantEval:  "Education (Associate's) is below required level (Master's)",
		},
		{
			name:      "below but preferred only",
			degree:    "High School Diploma",
			req:       types.EducationRequirement{MinDegree: types.DegreeBachelor},
			wantScore: 70,
			wantEval:  "Education (High School) is below required level (Bachelor's)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scoreEducation([]types.EducationEntry{{Degree: tt.degree}}, tt.req)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantEval, result.DegreeEvaluation)
		})
	}
}

func TestScoreEducation_Fields(t *testing.T) {
	entries := []types.EducationEntry{
		{Degree: "Bachelor of Science in Computer Science", Institution: "State University", Year: "2016"},
		{Degree: "High School Diploma", Institution: "Lincoln High School", Year: "2012"},
	}
	result := scoreEducation(entries, types.EducationRequirement{
		MinDegree:       types.DegreeBachelor,
		PreferredFields: []string{"computer science", "mathematics"},
		Required:        true,
	})

	require.NotNil(t, result.HighestDegree)
	assert.Equal(t, "Bachelor's", result.HighestDegree.Type)
	assert.Equal(t, "State University", result.HighestDegree.Institution)
	assert.Equal(t, []string{"computer science"}, result.FieldMatches)
	assert.Equal(t, []string{"mathematics"}, result.FieldMismatches)
	assert.Equal(t, 50.0, result.FieldScore)
	// 0.7*100 + 0.3*50
	assert.Equal(t, 85, result.Score)
}

func TestDegreeLevelOf(t *testing.T) {
	tests := map[string]types.DegreeLevel{
		"PhD in Physics":                  types.DegreeDoctorate,
		"Doctor of Philosophy in Physics": types.DegreeDoctorate,
		"Doctor of Medicine":              types.DegreeDoctorate,
		"MBA":                             types.DegreeMaster,
		"M.S. in Statistics":              types.DegreeMaster,
		"B.A. in English":                 types.DegreeBachelor,
		"Bachelor's degree in Economics":  types.DegreeBachelor,
		"Associate of Applied Science":    types.DegreeAssociate,
		"GED":                             types.DegreeHighSchool,
		"Degree not specified":            types.DegreeNone,
	}
	for degree, want := range tests {
		assert.Equal(t, want, DegreeLevelOf(degree), degree)
	}
}

func TestScoreEducation_DoctorOfPhilosophy(t *testing.T) {
	entries := textproc.EducationEntries("Doctor of Philosophy in Physics, Stanford University, 2015")
	require.Len(t, entries, 1)

	result := scoreEducation(entries, types.EducationRequirement{MinDegree: types.DegreeMaster, Required: true})
	assert.Equal(t, types.DegreeDoctorate, result.CandidateLevel)
	assert.True(t, result.HasRequiredEducation)
	assert.Equal(t, 100.0, result.DegreeScore)
	assert.NotEqual(t, "No degree information found in resume", result.DegreeEvaluation)
}

func TestDegreeField(t *testing.T) {
	assert.Equal(t, "science in computer science", DegreeField("Bachelor of Science in Computer Science"))
	assert.Equal(t, "economics", DegreeField("Bachelor's degree in Economics"))
	assert.Equal(t, "statistics", DegreeField("MS in Statistics"))
	assert.Equal(t, "physics", DegreeField("PhD in Physics"))
	assert.Equal(t, "", DegreeField("MBA"))
}

func TestScoreJobTitle(t *testing.T) {
	result := scoreJobTitle([]string{"Senior Backend Engineer"}, "Backend Engineer")
	assert.Greater(t, result.Score, 50)
	assert.Less(t, result.Score, 100)
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, "Moderate match with previous job title: Senior Backend Engineer", result.Evaluation)

	exact := scoreJobTitle([]string{"Analyst", "backend engineer"}, "Backend Engineer")
	assert.Equal(t, 100, exact.Score)
	assert.Equal(t, "backend engineer", exact.BestMatch)

	assert.Equal(t, 100, scoreJobTitle([]string{"Analyst"}, "").Score)
	assert.Equal(t, 50, scoreJobTitle(nil, "Backend Engineer").Score)

	none := scoreJobTitle([]string{"Chef"}, "Backend Engineer")
	assert.Equal(t, 0, none.Score)
	assert.Equal(t, "No matching job titles found", none.Evaluation)
}

func TestScoreJobTitle_PartialMatchesSorted(t *testing.T) {
	result := scoreJobTitle([]string{
		"Engineer", "Backend Developer", "Senior Backend Engineer", "Platform Engineer Lead", "Chef",
	}, "Backend Engineer")

	require.Len(t, result.PartialMatches, 3)
	assert.Equal(t, "Senior Backend Engineer", result.PartialMatches[0].Title)
	for i := 1; i < len(result.PartialMatches); i++ {
		assert.GreaterOrEqual(t, result.PartialMatches[i-1].Score, result.PartialMatches[i].Score)
	}
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 2.0/3.0, Jaccard("Senior Backend Engineer", "Backend Engineer"), 1e-9)
	assert.Equal(t, 0.0, Jaccard("", "Backend Engineer"))
}

func TestScoreLocation(t *testing.T) {
	tests := []struct {
		candidate, job string
		want           int
	}{
		{"Austin, TX", "Austin, TX", 100},
		{"Austin, TX.", "Austin, TX", 100},
		{"Austin (TX)", "Austin, TX", 100},
		{"Austin/TX", "Austin, TX", 100},
		{"Dallas, TX", "Austin, TX", 50},
		{"Berlin, Germany", "Austin, TX", 0},
		{"Austin, TX", "", 100},
		{"", "Austin, TX", 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreLocation(tt.candidate, tt.job).Score, "%q vs %q", tt.candidate, tt.job)
	}
	assert.Equal(t, "Partial location match: Dallas, TX partially matches job location: Austin, TX",
		scoreLocation("Dallas, TX", "Austin, TX").Evaluation)
}
