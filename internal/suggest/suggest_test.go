package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

const platformPosting = "Operate kubernetes clusters. Kubernetes operators and observability matter. Python services."

func gapMatch() types.MatchResult {
	return types.MatchResult{
		OverallScore: 50,
		Skills: types.SkillsMatch{
			Score:         30,
			MissingSkills: []string{"Kubernetes", "Terraform", "Redis", "Kafka", "GraphQL", "Rust", "Scala"},
			CloseMatches:  []types.CloseMatch{{Required: "React", Candidate: "React Native", Similarity: 0.59}},
		},
		Experience: types.ExperienceMatch{Score: 40, YearsRequired: 5, YearsExperience: 2},
		Education:  types.EducationMatch{Score: 80},
	}
}

func gapResume() types.ExtractedDocument {
	return types.ExtractedDocument{
		Kind:     types.KindResume,
		Sections: map[string]string{"experience": "Developer at Initech", "education": "", "skills": "Python"},
		Experience: []types.ExperienceEntry{
			{Title: "Developer", Company: "Initech", Years: "2022 - 2024", Description: "Maintained tools"},
		},
		WordCount: 300,
		Terms:     map[string]int{"python": 1, "services": 1, "developer": 1},
	}
}

func texts(list []types.Suggestion) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Text
	}
	return out
}

func TestGenerate_StrongMatch(t *testing.T) {
	match := types.MatchResult{OverallScore: StrongMatchThreshold}
	report := New(nil).Generate(match, gapResume(), types.JobRequirements{Title: "Platform Engineer", Text: platformPosting})

	assert.Equal(t, 85, report.MatchPercentage)
	assert.Nil(t, report.Outline)
	assert.Empty(t, report.MissingKeywords)
	assert.Empty(t, report.Suggestions.Critical)
	assert.Empty(t, report.Suggestions.Important)
	assert.Empty(t, report.Suggestions.LongTerm)
	require.Len(t, report.Suggestions.Recommended, 2)
	assert.Contains(t, report.Suggestions.Recommended[0].Text, "already well-matched")
	assert.Equal(t, types.PriorityMedium, report.Suggestions.Recommended[0].Priority)
	require.Len(t, report.Suggestions.Formatting, 1)
	assert.Equal(t, types.PriorityLow, report.Suggestions.Formatting[0].Priority)
	assert.NotNil(t, report.ATS)
}

func TestGenerate_JustBelowStrongMatchUsesGapRules(t *testing.T) {
	match := gapMatch()
	match.OverallScore = StrongMatchThreshold - 1
	report := New(nil).Generate(match, gapResume(), types.JobRequirements{Title: "Platform Engineer", Text: platformPosting})

	assert.NotEmpty(t, report.Suggestions.Critical)
	assert.NotNil(t, report.Outline)
}

func TestGenerate_GapSuggestions(t *testing.T) {
	report := New(nil).Generate(gapMatch(), gapResume(), types.JobRequirements{Title: "Platform Engineer", Text: platformPosting})
	s := report.Suggestions

	assert.Equal(t, []string{
		"Add these key required skills to your resume: Kubernetes, Terraform, Redis, Kafka, GraphQL",
	}, texts(s.Critical))

	assert.Equal(t, []string{
		"Include these skills in your summary section and demonstrate them in your work experience bullet points",
		"Consider highlighting these additional relevant skills: Rust, Scala",
		"Use exact skill terms from the job description. Replace or expand these skills: React",
		"Your resume shows 2 years of experience against the 5 years required; account for the 3 year gap " +
			"with freelance work, internships or substantial projects",
		"Highlight transferable skills and related projects to compensate for limited direct experience",
		"Include these keywords from the job description: kubernetes, operate, clusters, operators, observability",
		"Add metrics and quantifiable achievements to your experience section (e.g., 'Increased sales by 20%')",
	}, texts(s.Important))

	assert.Equal(t, []string{
		"Quantify achievements in your experience section to demonstrate impact relevant to Platform Engineer",
		"Emphasize your educational achievements and relevant coursework in your education section",
		"Many employers use Applicant Tracking Systems (ATS) - incorporate these keywords naturally throughout your resume",
		"Add a concise professional summary tailored to the Platform Engineer position",
	}, texts(s.Recommended))

	assert.Equal(t, []string{
		"Use bullet points to highlight achievements and responsibilities in your work experience section",
		"Use standard section headings so applicant tracking systems can find your education",
	}, texts(s.Formatting))

	require.Len(t, s.LongTerm, 1)
	assert.Contains(t, s.LongTerm[0].Text, "side projects related to Platform Engineer")

	for _, sg := range s.Critical {
		assert.Equal(t, types.PriorityHigh, sg.Priority)
	}
	for _, sg := range s.Important {
		assert.Equal(t, types.PriorityHigh, sg.Priority)
	}
	for _, sg := range s.LongTerm {
		assert.Equal(t, types.PriorityLow, sg.Priority)
	}
	assert.Equal(t, 15, s.Count())

	require.NotNil(t, report.Outline)
	assert.Equal(t, []string{"Kubernetes", "Terraform", "Redis", "Kafka", "GraphQL"}, report.Outline.SkillsToEmphasize)
}

func TestGenerate_Deterministic(t *testing.T) {
	g := New(nil)
	job := types.JobRequirements{Title: "Platform Engineer", Text: platformPosting}
	assert.Equal(t, g.Generate(gapMatch(), gapResume(), job), g.Generate(gapMatch(), gapResume(), job))
}

func TestGenerate_QuantifiedAndSummaryPresent(t *testing.T) {
	resume := gapResume()
	resume.Sections["summary"] = "Platform engineer."
	resume.Experience[0].Description = "Reduced deploy time by 40%"
	resume.Experience[0].Bullets = 2

	match := gapMatch()
	match.Experience = types.ExperienceMatch{Score: 85}
	match.Education = types.EducationMatch{Score: 100}

	s := New(nil).Generate(match, resume, types.JobRequirements{Title: "Platform Engineer"}).Suggestions

	assert.NotContains(t, texts(s.Important), "Add metrics and quantifiable achievements to your experience section (e.g., 'Increased sales by 20%')")
	assert.Contains(t, texts(s.Recommended), "Customize your summary section to target the Platform Engineer position specifically")
	assert.Contains(t, texts(s.Recommended), "Align your work experiences more closely with job requirements by highlighting relevant responsibilities")
	assert.NotContains(t, texts(s.Formatting), "Use bullet points to highlight achievements and responsibilities in your work experience section")
	assert.Empty(t, s.LongTerm)
}

func TestMissingKeywords(t *testing.T) {
	g := New(nil)
	got := g.MissingKeywords(platformPosting, gapResume())
	assert.Equal(t, []string{"kubernetes", "operate", "clusters", "operators", "observability", "matter"}, got)

	assert.Nil(t, g.MissingKeywords("  ", gapResume()))
}

func TestMissingKeywords_UsesResumeTextWhenTermsAbsent(t *testing.T) {
	resume := types.ExtractedDocument{Text: "Kubernetes operators everywhere"}
	got := New(nil).MissingKeywords("kubernetes operators clusters", resume)
	assert.Equal(t, []string{"clusters"}, got)
}

func TestATSCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		resume    types.ExtractedDocument
		wantScore int
		wantLevel string
		wantTips  int
	}{
		{"empty", types.ExtractedDocument{}, 70, "Medium", 5},
		{
			name: "complete",
			resume: types.ExtractedDocument{
				TechnicalSkills: []string{"Python"},
				SoftSkills:      []string{"Mentoring"},
				Experience:      []types.ExperienceEntry{{Title: "Engineer"}},
				Education:       []types.EducationEntry{{Degree: "BS"}},
			},
			wantScore: 100,
			wantLevel: "High",
		},
		{
			name: "untitled entry",
			resume: types.ExtractedDocument{
				Experience: []types.ExperienceEntry{{Title: textproc.UnknownTitle}},
				Education:  []types.EducationEntry{{Degree: "BS"}},
			},
			wantScore: 80,
			wantLevel: "Medium",
			wantTips:  5,
		},
		{
			name: "exactly high",
			resume: types.ExtractedDocument{
				Experience: []types.ExperienceEntry{{Title: "Engineer"}},
				Education:  []types.EducationEntry{{Degree: "BS"}},
			},
			wantScore: 90,
			wantLevel: "High",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ATSCompatibility(tt.resume)
			assert.Equal(t, tt.wantScore, report.Score)
			assert.Equal(t, tt.wantLevel, report.Level)
			assert.Len(t, report.Tips, tt.wantTips)
		})
	}
}
