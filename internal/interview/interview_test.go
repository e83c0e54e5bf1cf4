package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/types"
)

func backendJob() types.JobRequirements {
	return types.JobRequirements{
		ID:             "job-7",
		Title:          "Backend Engineer",
		Company:        "Acme Payments",
		Industry:       "technology",
		RequiredSkills: []string{"Go", "Kubernetes", "PostgreSQL"},
		Text:           "You will join a small team and lead the design of our ledger. Strong problem solving required.",
	}
}

func newGenerator(opts ...Option) *Generator {
	return New(nil, Config{Seed: 42}, opts...)
}

func TestGenerateCounts(t *testing.T) {
	q := newGenerator().Generate(context.Background(), backendJob(), nil)

	assert.Equal(t, SourceTemplates, q.Source)
	assert.Equal(t, "Backend Engineer", q.JobTitle)
	assert.Equal(t, "Acme Payments", q.Company)
	assert.Len(t, q.Technical, 8)
	assert.Len(t, q.Behavioral, 7)
	assert.Len(t, q.CompanyFit, 5)
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, q.JobSkills)
	assert.Empty(t, q.Generated)
	assert.Equal(t, 20, q.Total())
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newGenerator()
	resume := &types.ExtractedDocument{
		Skills:     []string{"Rust"},
		Experience: []types.ExperienceEntry{{Title: "Staff Engineer", Company: "Globex"}},
	}
	first := g.Generate(context.Background(), backendJob(), resume)
	second := g.Generate(context.Background(), backendJob(), resume)
	assert.Equal(t, first, second)
}

func TestGenerateFillsEveryPlaceholder(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		q := New(nil, Config{Seed: seed}).Generate(context.Background(), backendJob(), nil)
		for _, group := range [][]string{q.Technical, q.Behavioral, q.CompanyFit} {
			for _, question := range group {
				assert.NotContains(t, question, "{", "seed %d", seed)
			}
		}
	}
}

func TestBehavioralThemesComeFirst(t *testing.T) {
	q := newGenerator().Generate(context.Background(), backendJob(), nil)

	require.Len(t, q.Behavioral, 7)
	assert.Equal(t, []string{
		"Tell me about a time when you had to work effectively as part of a team.",
		"Describe a situation where you had to lead a team through a challenging project.",
		"Describe a complex problem you faced and how you went about solving it.",
	}, q.Behavioral[:3])

	seen := make(map[string]bool)
	for _, question := range q.Behavioral {
		assert.False(t, seen[question], "duplicate behavioral question %q", question)
		seen[question] = true
	}
}

func TestBehavioralRespectsCount(t *testing.T) {
	g := New(nil, Config{Seed: 1, Behavioral: 2})
	q := g.Generate(context.Background(), backendJob(), nil)
	assert.Len(t, q.Behavioral, 2)
}

func TestCompanyKeyQuestions(t *testing.T) {
	q := newGenerator().Generate(context.Background(), backendJob(), nil)

	require.Len(t, q.CompanyFit, 5)
	assert.Equal(t, []string{
		"Why are you interested in working for Acme Payments?",
		"How do your skills align with the Backend Engineer position?",
		"Where do you see yourself in 5 years?",
	}, q.CompanyFit[:3])
	assert.NotEqual(t, q.CompanyFit[3], q.CompanyFit[4])
}

func TestCompanyDefaults(t *testing.T) {
	job := types.JobRequirements{RequiredSkills: []string{"SQL"}}
	q := New(nil, Config{Seed: 3, Company: 2}).Generate(context.Background(), job, nil)

	assert.Equal(t, []string{
		"Why are you interested in working for the company?",
		"How do your skills align with the this role position?",
	}, q.CompanyFit)
}

func TestLanguageQuestion(t *testing.T) {
	job := types.JobRequirements{Title: "Go Developer", RequiredSkills: []string{"Go"}}
	q := newGenerator().Generate(context.Background(), job, nil)

	assert.Contains(t, q.Technical,
		"Describe a project where you used Go. What specific features of the language did you leverage?")
}

func TestTechnicalUsesCatalogWhenJobHasNoSkills(t *testing.T) {
	job := types.JobRequirements{Title: "Analyst", Text: "Work with numbers."}
	q := newGenerator().Generate(context.Background(), job, nil)

	assert.Len(t, q.Technical, 8)
	assert.Empty(t, q.JobSkills)
}

func TestPersonalisation(t *testing.T) {
	resume := &types.ExtractedDocument{
		Skills:     []string{"Rust", "Go"},
		Experience: []types.ExperienceEntry{{Title: "Staff Engineer", Company: "Globex"}},
	}
	q := newGenerator().Generate(context.Background(), backendJob(), resume)

	assert.Contains(t, q.Technical, "You mentioned Rust as one of your key skills. "+
		"Can you describe a challenging problem you solved using this technology?")
	assert.Contains(t, q.Technical, "In your role as Staff Engineer at Globex, what were the most "+
		"challenging technical problems you faced and how did you overcome them?")
	assert.Contains(t, q.Behavioral, "During your time as Staff Engineer at Globex, "+
		"tell me about a situation where you demonstrated leadership or initiative.")
}

func TestPersonalisationPlaceholders(t *testing.T) {
	resume := &types.ExtractedDocument{
		Experience: []types.ExperienceEntry{{Title: "Unknown Position", Company: "Unknown Company"}},
	}
	q := newGenerator().Generate(context.Background(), backendJob(), resume)

	assert.Contains(t, q.Behavioral, "During your time as your previous role at your previous company, "+
		"tell me about a situation where you demonstrated leadership or initiative.")
}

func TestFallback(t *testing.T) {
	q := newGenerator().Generate(context.Background(), types.JobRequirements{}, nil)

	assert.Equal(t, SourceFallback, q.Source)
	assert.Len(t, q.Technical, 5)
	assert.Len(t, q.Behavioral, 5)
	assert.Len(t, q.CompanyFit, 5)
	assert.Equal(t, "How do you approach debugging a complex issue?", q.Technical[1])
	assert.Equal(t, 15, q.Total())
}

type stubProvider struct {
	questions []string
	err       error
	calls     int
	count     int
}

func (s *stubProvider) GenerateQuestions(_ context.Context, _ types.JobRequirements, _ *types.ExtractedDocument, count int) ([]string, error) {
	s.calls++
	s.count = count
	return s.questions, s.err
}

func TestProviderQuestionsAreAppended(t *testing.T) {
	p := &stubProvider{questions: []string{
		"  ",
		"How would you shard the ledger?",
		"how would you shard the ledger?",
		"Where do you see yourself in 5 years?",
		"What is your on-call philosophy?",
	}}
	q := newGenerator(WithProvider(p)).Generate(context.Background(), backendJob(), nil)

	assert.Equal(t, 1, p.calls)
	assert.Equal(t, 5, p.count)
	assert.Equal(t, SourceTemplatesAI, q.Source)
	assert.Equal(t, []string{"How would you shard the ledger?", "What is your on-call philosophy?"}, q.Generated)
}

func TestProviderErrorKeepsTemplates(t *testing.T) {
	withoutAI := newGenerator().Generate(context.Background(), backendJob(), nil)

	p := &stubProvider{err: errors.New("quota exceeded")}
	q := newGenerator(WithProvider(p)).Generate(context.Background(), backendJob(), nil)

	assert.Equal(t, SourceTemplates, q.Source)
	assert.Empty(t, q.Generated)
	assert.Equal(t, withoutAI, q)
}

func TestProviderLimit(t *testing.T) {
	p := &stubProvider{questions: []string{"A?", "B?", "C?"}}
	q := New(nil, Config{Seed: 42, AIQuestions: 2}, WithProvider(p)).
		Generate(context.Background(), backendJob(), nil)

	assert.Equal(t, []string{"A?", "B?"}, q.Generated)
	assert.Equal(t, 2, p.count)
}

func TestGuidance(t *testing.T) {
	tests := []struct {
		name          string
		kind          string
		question      string
		wantFramework string
		wantTips      []string
		wantFirstDo   string
	}{
		{
			name:          "behavioral with keywords",
			kind:          "Behavioral",
			question:      "Tell me about a conflict in your team",
			wantFramework: "STAR Method",
			wantTips: []string{
				"Take a moment to gather your thoughts before answering",
				"Use specific examples from your experience",
				"Use the STAR method (Situation, Task, Action, Result)",
				"Focus on YOUR specific actions and contributions",
				"Quantify results whenever possible",
				"Highlight your specific role while acknowledging team contribution",
				"Emphasize professional resolution and positive outcomes",
			},
			wantFirstDo: "Use specific, real examples from your experience",
		},
		{
			name:          "technical without question",
			kind:          "technical",
			wantFramework: "Technical Question Framework",
			wantTips:      []string{},
			wantFirstDo:   "Demonstrate your problem-solving approach",
		},
		{
			name:          "difficult uses general advice",
			kind:          "difficult",
			question:      "What is your greatest weakness?",
			wantFramework: "Difficult Question Framework",
			wantTips: []string{
				"Take a moment to gather your thoughts before answering",
				"Use specific examples from your experience",
				"Stay calm and composed, even with challenging questions",
				"Be honest but frame your answer positively",
				"It's okay to briefly pause to organize your thoughts",
				"Mention a genuine weakness, but focus on how you're working to improve it",
			},
			wantFirstDo: "Be honest and authentic in your answers",
		},
		{
			name:          "unknown kind",
			kind:          "salary",
			question:      "What are your salary expectations for this project?",
			wantFramework: "STAR Method",
			wantTips: []string{
				"Take a moment to gather your thoughts before answering",
				"Use specific examples from your experience",
			},
			wantFirstDo: "Be honest and authentic in your answers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Guidance(tt.kind, tt.question)
			assert.Equal(t, tt.kind, g.QuestionType)
			assert.Equal(t, tt.wantFramework, g.Framework.Title)
			assert.Equal(t, tt.wantTips, g.SpecificTips)
			require.Len(t, g.Dos, 5)
			require.Len(t, g.Donts, 5)
			assert.Equal(t, tt.wantFirstDo, g.Dos[0])
		})
	}
}

func TestFrameworksHaveTips(t *testing.T) {
	for _, kind := range []string{KindTechnical, KindBehavioral, KindCompany, KindDifficult} {
		f := frameworkFor(kind)
		require.NotEmpty(t, f.Steps, kind)
		for _, step := range f.Steps {
			assert.NotEmpty(t, step.Tips, "%s/%s", kind, step.Name)
			assert.False(t, strings.HasSuffix(step.Description, "."), "%s/%s", kind, step.Name)
		}
	}
}
