package formatters

import (
	"strings"
	"testing"

	"searchfind/internal/catalog"
	"searchfind/internal/types"
)

func sampleMatch() types.MatchResult {
	return types.MatchResult{
		MatchID:       "m-1",
		JobTitle:      "Backend Engineer",
		CandidateName: "Jane Doe",
		OverallScore:  78,
		Tier:          types.TierVeryGood,
		Skills: types.SkillsMatch{
			Score:         80,
			Evaluation:    "Strong",
			ExactMatches:  []string{"go", "sql"},
			CloseMatches:  []types.CloseMatch{{Required: "postgresql", Candidate: "postgres", Similarity: 0.9}},
			MissingSkills: []string{"kubernetes"},
		},
		Recommendations: types.Recommendations{Skills: []string{"Learn kubernetes"}},
	}
}

func TestFormatMatchText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleMatch(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"=== MATCH: JANE DOE FOR BACKEND ENGINEER ===",
		"Overall: 78/100 (Very Good Match)",
		"postgresql ~ postgres (0.90)",
		"- kubernetes",
		"1. Learn kubernetes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestFormatMatchMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleMatch(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"# Match: Jane Doe for Backend Engineer",
		"**Overall:** 78/100 (Very Good Match)",
		"| Component | Score | Evaluation |",
		"| Skills | 80 | Strong |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestFormatJSONAndYAML(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleMatch(), "json")
	if err != nil {
		t.Fatalf("json error = %v", err)
	}
	if !strings.Contains(out, `"overallMatch": 78`) {
		t.Errorf("json output missing score:\n%s", out)
	}

	out, err = GlobalRegistry.Format(sampleMatch(), "yaml")
	if err != nil {
		t.Fatalf("yaml error = %v", err)
	}
	if !strings.Contains(out, "overallMatch: 78") || !strings.Contains(out, "matchTier: very_good") {
		t.Errorf("yaml output should use json field names:\n%s", out)
	}
}

func TestFormatUnknown(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleMatch(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := GlobalRegistry.Format(struct{ A int }{1}, "text"); err == nil {
		t.Error("expected error for text of an unregistered type")
	}
}

func TestFormatQualificationsOrdered(t *testing.T) {
	qs := map[string]types.Qualification{
		"job-b": {Valid: true, MatchPercentage: 40, Tier: types.TierWeak},
		"job-a": {Valid: true, MatchPercentage: 90, Tier: types.TierExcellent},
		"job-c": {Valid: false, Error: "Invalid resume format"},
	}
	out, err := GlobalRegistry.Format(qs, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	a := strings.Index(out, "--- job-a ---")
	b := strings.Index(out, "--- job-b ---")
	c := strings.Index(out, "--- job-c ---")
	if a < 0 || b < 0 || c < 0 || a > b || b > c {
		t.Errorf("qualifications not ordered by score:\n%s", out)
	}
	if !strings.Contains(out, "Error: Invalid resume format") {
		t.Errorf("invalid qualification should show its error:\n%s", out)
	}
}

func TestTextTableAlignment(t *testing.T) {
	out, err := GlobalRegistry.Format(catalog.Stats{Skills: 120, JobTitles: 7}, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, "Entry                  Count\n") {
		t.Errorf("header not padded:\n%s", out)
	}
	if !strings.Contains(out, "Skills                 120\n") {
		t.Errorf("row not aligned:\n%s", out)
	}
}

func TestGetSupportedFormats(t *testing.T) {
	got := strings.Join(GlobalRegistry.GetSupportedFormats(), ",")
	if got != "json,markdown,text,yaml" {
		t.Errorf("GetSupportedFormats() = %s", got)
	}
}
