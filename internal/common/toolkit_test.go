package common

import (
	"context"
	"path/filepath"
	"testing"

	"searchfind/internal/catalog"
	"searchfind/internal/config"
	"searchfind/internal/errors"
	"searchfind/internal/interview"
	"searchfind/internal/matching"
	"searchfind/internal/types"
)

const toolkitResume = `Jane Doe
Austin, TX | jane@example.com | (512) 555-0100

Summary
Backend engineer proficient in Python and experienced with distributed systems.

Experience
Backend Engineer at Acme Corp
2017 - Present
- Built payment systems with Django and PostgreSQL
- Moved services to Docker

Education
Bachelor of Science in Computer Science, State University, 2014

Skills
Python, Django, PostgreSQL, Docker, Git`

func newTestToolkit(t *testing.T) *Toolkit {
	t.Helper()
	m := matching.DefaultConfig()
	m.ReferenceYear = 2025
	cfg := &config.Config{Matching: m, Interview: interview.DefaultConfig()}
	return NewToolkit(catalog.Default(), cfg, ToolkitOptions{})
}

func toolkitJob() *types.JobListing {
	return &types.JobListing{
		ID:             "job-1",
		Title:          "Backend Engineer",
		Company:        "Globex",
		Description:    "Backend role on the payments team. 3+ years of experience required.",
		SkillsRequired: types.SkillList{"python", "django", "kubernetes"},
		Location:       "Austin, TX",
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    types.DocumentKind
		wantErr bool
	}{
		{"", types.KindResume, false},
		{"CV", types.KindResume, false},
		{"job", types.KindJobDescription, false},
		{" job_description ", types.KindJobDescription, false},
		{"cover_letter", types.KindCoverLetter, false},
		{"invoice", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil || c != catalog.Default() {
		t.Errorf("empty path should give the built-in catalog, got %v", err)
	}

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	appErr, ok := errors.As(err)
	if !ok || appErr.Code != errors.ErrCodeCatalogLoad {
		t.Errorf("expected CATALOG_LOAD_FAILED, got %v", err)
	}
}

func TestToolkitMatchAndSuggest(t *testing.T) {
	tk := newTestToolkit(t)
	ctx := context.Background()

	result, err := tk.Match(ctx, toolkitResume, toolkitJob())
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.JobID != "job-1" {
		t.Errorf("JobID = %q", result.JobID)
	}

	report, err := tk.Suggest(ctx, toolkitResume, toolkitJob())
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if report.MatchPercentage != result.OverallScore {
		t.Errorf("suggestion match %d != match score %d", report.MatchPercentage, result.OverallScore)
	}
	if report.ATS == nil {
		t.Error("suggestion report should always carry an ATS assessment")
	}
}

func TestToolkitInputErrors(t *testing.T) {
	tk := newTestToolkit(t)
	ctx := context.Background()

	if _, err := tk.Extract(ctx, "   ", types.KindResume); !errors.IsCallerError(err) {
		t.Errorf("Extract(blank) should be a caller error, got %v", err)
	}
	if _, err := tk.Match(ctx, "", toolkitJob()); !errors.IsCallerError(err) {
		t.Errorf("Match(no resume) should be a caller error, got %v", err)
	}
	if _, err := tk.Interview(ctx, nil, ""); !errors.IsCallerError(err) {
		t.Errorf("Interview(nil job) should be a caller error, got %v", err)
	}

	q := tk.Qualify(ctx, "too short", toolkitJob())
	if q.Valid || q.Error == "" {
		t.Errorf("short resume should give an invalid qualification, got %+v", q)
	}
}

func TestToolkitInterview(t *testing.T) {
	tk := newTestToolkit(t)

	questions, err := tk.Interview(context.Background(), toolkitJob(), toolkitResume)
	if err != nil {
		t.Fatalf("Interview() error = %v", err)
	}
	if len(questions.Technical) != 8 || len(questions.Behavioral) != 7 || len(questions.CompanyFit) != 5 {
		t.Errorf("question counts = %d/%d/%d, want 8/7/5",
			len(questions.Technical), len(questions.Behavioral), len(questions.CompanyFit))
	}
	if questions.Company != "Globex" {
		t.Errorf("Company = %q", questions.Company)
	}
}

func TestToolkitValidate(t *testing.T) {
	tk := newTestToolkit(t)
	result := tk.Validate(context.Background(), toolkitResume)
	if !result.Valid || result.DocumentType != types.KindResume {
		t.Errorf("Validate() = %+v, want a valid resume", result)
	}
}
