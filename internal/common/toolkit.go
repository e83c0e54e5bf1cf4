package common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"searchfind/internal/catalog"
	"searchfind/internal/config"
	"searchfind/internal/doctype"
	"searchfind/internal/errors"
	"searchfind/internal/interview"
	"searchfind/internal/matching"
	"searchfind/internal/observability"
	"searchfind/internal/suggest"
	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

// Toolkit wires every analysis component to one catalog. It is immutable and
// safe for concurrent use; a catalog change builds a new Toolkit.
type Toolkit struct {
	Catalog     *catalog.Catalog
	Extractor   *textproc.Extractor
	Validator   *doctype.Validator
	Engine      *matching.Engine
	Suggester   *suggest.Generator
	Interviewer *interview.Generator

	obs *observability.Manager
}

// ToolkitOptions are the collaborators shared by every Toolkit a process builds
type ToolkitOptions struct {
	Logger        *errors.Logger
	Loader        matching.DocumentLoader
	Provider      interview.QuestionProvider
	Observability *observability.Manager
}

// LoadCatalog returns the built-in catalog for an empty path, or the built-in
// catalog merged with the YAML file at path
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeCatalogLoad,
			fmt.Sprintf("Cannot load catalog %s", path), err)
	}
	return c, nil
}

// NewToolkit builds the components over cat using the matching and interview configuration
func NewToolkit(cat *catalog.Catalog, cfg *config.Config, opts ToolkitOptions) *Toolkit {
	logger := opts.Logger
	if logger == nil {
		logger = errors.NopLogger()
	}
	extractor := textproc.New(cat)

	engineOpts := []matching.Option{matching.WithLogger(logger)}
	if opts.Loader != nil {
		engineOpts = append(engineOpts, matching.WithDocumentLoader(opts.Loader))
	}
	interviewOpts := []interview.Option{interview.WithLogger(logger)}
	if opts.Provider != nil {
		interviewOpts = append(interviewOpts, interview.WithProvider(opts.Provider))
	}

	return &Toolkit{
		Catalog:     extractor.Catalog(),
		Extractor:   extractor,
		Validator:   doctype.New(extractor),
		Engine:      matching.New(extractor, cfg.Matching, engineOpts...),
		Suggester:   suggest.New(extractor),
		Interviewer: interview.New(extractor, cfg.Interview, interviewOpts...),
		obs:         opts.Observability,
	}
}

// ParseKind maps a user supplied document kind, defaulting to resume
func ParseKind(kind string) (types.DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "resume", "cv":
		return types.KindResume, nil
	case "job", "job_description":
		return types.KindJobDescription, nil
	case "cover_letter":
		return types.KindCoverLetter, nil
	}
	return "", errors.NewValidationError(errors.ErrCodeValidationFailed,
		fmt.Sprintf("unknown document kind %q (use resume, job_description or cover_letter)", kind), nil)
}

// Extract returns the structured view of text
func (t *Toolkit) Extract(ctx context.Context, text string, kind types.DocumentKind) (types.ExtractedDocument, error) {
	if strings.TrimSpace(text) == "" {
		return types.ExtractedDocument{}, errors.NewInputMissingError("document text")
	}
	doc := t.Extractor.Extract(text, kind)
	t.obs.RecordOperation(ctx, "extract", true, attribute.String("kind", string(kind)))
	return doc, nil
}

// Validate classifies text and, for resumes, scores its completeness
func (t *Toolkit) Validate(ctx context.Context, text string) types.ValidationResult {
	result := t.Validator.Validate(text)
	t.obs.RecordDocumentValidated(ctx, string(result.DocumentType), result.Valid)
	return result
}

// Match scores one resume against one job
func (t *Toolkit) Match(ctx context.Context, resumeText string, job *types.JobListing) (types.MatchResult, error) {
	result, err := t.Engine.Match(ctx, resumeText, job)
	t.obs.RecordOperation(ctx, "match", err == nil)
	if err != nil {
		return types.MatchResult{}, err
	}
	t.obs.RecordMatch(ctx, float64(result.OverallScore), string(result.Tier))
	return result, nil
}

// Rank orders candidates for a job
func (t *Toolkit) Rank(ctx context.Context, job *types.JobListing, candidates []types.Candidate) (types.Ranking, error) {
	start := time.Now()
	ranking, err := t.Engine.Rank(ctx, job, candidates)
	t.obs.RecordOperation(ctx, "rank", err == nil)
	if err != nil {
		return types.Ranking{}, err
	}
	t.obs.RecordRanking(ctx, len(candidates), len(ranking.Matches), time.Since(start))
	for _, m := range ranking.Matches {
		t.obs.RecordMatch(ctx, float64(m.OverallScore), string(m.Tier))
	}
	return ranking, nil
}

// Suggest matches a resume against a job and turns the gaps into advice
func (t *Toolkit) Suggest(ctx context.Context, resumeText string, job *types.JobListing) (types.SuggestionReport, error) {
	result, err := t.Match(ctx, resumeText, job)
	if err != nil {
		return types.SuggestionReport{}, err
	}
	resume := t.Extractor.Extract(resumeText, types.KindResume)
	report := t.Suggester.Generate(result, resume, t.Engine.ExtractRequirements(*job))
	t.obs.RecordOperation(ctx, "suggest", true)
	return report, nil
}

// Qualify checks one resume against a single job
func (t *Toolkit) Qualify(ctx context.Context, resumeText string, job *types.JobListing) types.Qualification {
	q := t.Engine.CheckQualification(ctx, resumeText, job)
	t.obs.RecordOperation(ctx, "qualify", q.Valid)
	return q
}

// QualifyMany checks one resume against several jobs, keyed by job ID
func (t *Toolkit) QualifyMany(ctx context.Context, resumeText string, jobs []types.JobListing) (map[string]types.Qualification, error) {
	qs, err := t.Engine.QualifyMany(ctx, resumeText, jobs)
	t.obs.RecordOperation(ctx, "qualify", err == nil, attribute.Int("jobs", len(jobs)))
	return qs, err
}

// Interview generates questions for a job, personalised when resumeText is set
func (t *Toolkit) Interview(ctx context.Context, job *types.JobListing, resumeText string) (types.InterviewQuestions, error) {
	if job == nil {
		return types.InterviewQuestions{}, errors.NewInputMissingError("job listing")
	}
	var resume *types.ExtractedDocument
	if strings.TrimSpace(resumeText) != "" {
		doc := t.Extractor.Extract(resumeText, types.KindResume)
		resume = &doc
	}
	questions := t.Interviewer.Generate(ctx, t.Engine.ExtractRequirements(*job), resume)
	t.obs.RecordOperation(ctx, "interview", true, attribute.String("source", questions.Source))
	return questions, nil
}
