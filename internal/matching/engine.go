// Package matching scores a resume against a job: skills, experience,
// education, job title and location sub-scores, a weighted overall score,
// a match tier and improvement recommendations.
package matching

import (
	"math"
	"time"

	"github.com/google/uuid"

	"searchfind/internal/doctype"
	"searchfind/internal/errors"
	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

// Weights are the contribution of each sub-score to the overall score
type Weights struct {
	Skills     float64 `mapstructure:"skills" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" validate:"gte=0,lte=1"`
	Education  float64 `mapstructure:"education" validate:"gte=0,lte=1"`
	JobTitle   float64 `mapstructure:"jobTitle" validate:"gte=0,lte=1"`
	Location   float64 `mapstructure:"location" validate:"gte=0,lte=1"`
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.JobTitle + w.Location
}

// Config tunes the engine. The zero value of every field falls back to
// the matching field of DefaultConfig.
type Config struct {
	Weights        Weights `mapstructure:"weights"`
	FuzzyThreshold float64 `mapstructure:"fuzzyThreshold" validate:"gte=0,lte=1"`
	// ReferenceYear closes open date ranges ("2019 - Present"); 0 means the current year.
	ReferenceYear int `mapstructure:"referenceYear" validate:"gte=0"`
	Workers       int `mapstructure:"workers" validate:"gte=0"`
}

// DefaultConfig returns the standard weights and thresholds
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:     0.35,
			Experience: 0.30,
			Education:  0.15,
			JobTitle:   0.15,
			Location:   0.05,
		},
		FuzzyThreshold: 0.85,
		Workers:        4,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Weights == (Weights{}) {
		c.Weights = def.Weights
	}
	if c.FuzzyThreshold == 0 {
		c.FuzzyThreshold = def.FuzzyThreshold
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	return c
}

// DocumentLoader turns a resume file path into text for Rank
type DocumentLoader func(path string) (string, error)

// Engine is safe for concurrent use.
type Engine struct {
	cfg       Config
	extractor *textproc.Extractor
	validator *doctype.Validator
	logger    *errors.Logger
	loader    DocumentLoader
	newID     func() string
	now       func() time.Time
}

// Option customises an Engine
type Option func(*Engine)

// WithLogger sets the logger used for ranking diagnostics
func WithLogger(l *errors.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithDocumentLoader lets Rank read candidates that only carry a resume path
func WithDocumentLoader(load DocumentLoader) Option {
	return func(e *Engine) { e.loader = load }
}

// WithIDGenerator replaces the random match ID generator
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New builds an engine over the extractor's catalog
func New(extractor *textproc.Extractor, cfg Config, opts ...Option) *Engine {
	if extractor == nil {
		extractor = textproc.New(nil)
	}
	e := &Engine{
		cfg:       cfg.withDefaults(),
		extractor: extractor,
		validator: doctype.New(extractor),
		logger:    errors.NopLogger(),
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Extractor returns the extractor the engine reads documents with
func (e *Engine) Extractor() *textproc.Extractor {
	return e.extractor
}

func (e *Engine) referenceYear() int {
	if e.cfg.ReferenceYear > 0 {
		return e.cfg.ReferenceYear
	}
	return e.now().Year()
}

// tierBounds is checked in order; the first closed interval containing the score wins.
var tierBounds = []struct {
	tier     types.Tier
	min, max int
}{
	{types.TierExcellent, 90, 100},
	{types.TierVeryGood, 80, 89},
	{types.TierGood, 70, 79},
	{types.TierModerate, 50, 69},
	{types.TierWeak, 30, 49},
	{types.TierPoor, 0, 29},
}

// TierFor maps an overall score to its tier
func TierFor(score int) types.Tier {
	for _, b := range tierBounds {
		if score >= b.min && score <= b.max {
			return b.tier
		}
	}
	return types.TierPoor
}

// Score compares an extracted resume with job requirements. It never fails:
// missing optional inputs produce neutral sub-scores.
func (e *Engine) Score(resume types.ExtractedDocument, job types.JobRequirements) types.MatchResult {
	result := types.MatchResult{
		MatchID:       e.newID(),
		JobID:         job.ID,
		JobTitle:      job.Title,
		Skills:        e.scoreSkills(resume.Skills, job.RequiredSkills),
		Experience:    e.scoreExperience(resume.Experience, job.Experience),
		Education:     scoreEducation(resume.Education, job.Education),
		JobTitleMatch: scoreJobTitle(resume.JobTitles, job.Title),
		Location:      scoreLocation(resume.Location, job.Location),
	}

	w := e.cfg.Weights
	overall := float64(result.Skills.Score)*w.Skills +
		float64(result.Experience.Score)*w.Experience +
		float64(result.Education.Score)*w.Education +
		float64(result.JobTitleMatch.Score)*w.JobTitle +
		float64(result.Location.Score)*w.Location

	result.OverallScore = int(math.Round(overall))
	result.Tier = TierFor(result.OverallScore)
	result.Recommendations = Recommend(resume, result)
	return result
}

func round(x float64) int {
	return int(math.Round(x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
