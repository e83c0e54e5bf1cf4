// Package interview generates interview questions for a job from fixed
// templates, optionally personalised by the candidate's resume and extended
// by an AI question provider.
package interview

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"

	"searchfind/internal/catalog"
	"searchfind/internal/errors"
	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

// Question sources reported in InterviewQuestions.Source
const (
	SourceTemplates   = "templates"
	SourceTemplatesAI = "templates+ai"
	SourceFallback    = "fallback"
)

const (
	maxJobSkills        = 10
	maxFallbackSkills   = 10
	attemptsPerQuestion = 20

	defaultCompany  = "the company"
	defaultRole     = "this role"
	defaultIndustry = "this industry"
	previousRole    = "your previous role"
	previousCompany = "your previous company"
	noAlternative   = "a similar technology"
)

// Config sets question counts and the random seed
type Config struct {
	Seed        uint64 `mapstructure:"seed"`
	Technical   int    `mapstructure:"technical" validate:"gte=0,lte=20"`
	Behavioral  int    `mapstructure:"behavioral" validate:"gte=0,lte=20"`
	Company     int    `mapstructure:"company" validate:"gte=0,lte=10"`
	UseAI       bool   `mapstructure:"useAI"`
	AIQuestions int    `mapstructure:"aiQuestions" validate:"gte=0,lte=20"`
}

// DefaultConfig returns the standard question counts
func DefaultConfig() Config {
	return Config{
		Technical:   8,
		Behavioral:  7,
		Company:     5,
		AIQuestions: 5,
	}
}

// QuestionProvider produces extra questions, typically from a language model
type QuestionProvider interface {
	GenerateQuestions(ctx context.Context, job types.JobRequirements, resume *types.ExtractedDocument, count int) ([]string, error)
}

// Generator is safe for concurrent use; each call draws from its own random source.
type Generator struct {
	cfg      Config
	catalog  *catalog.Catalog
	provider QuestionProvider
	logger   *errors.Logger
}

// Option customises a Generator
type Option func(*Generator)

// WithProvider adds AI generated questions to every result
func WithProvider(p QuestionProvider) Option {
	return func(g *Generator) { g.provider = p }
}

// WithLogger reports provider failures; without it they are discarded
func WithLogger(l *errors.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New builds a generator. Counts that are zero or negative fall back to the defaults.
func New(extractor *textproc.Extractor, cfg Config, opts ...Option) *Generator {
	if extractor == nil {
		extractor = textproc.New(nil)
	}
	def := DefaultConfig()
	if cfg.Technical <= 0 {
		cfg.Technical = def.Technical
	}
	if cfg.Behavioral <= 0 {
		cfg.Behavioral = def.Behavioral
	}
	if cfg.Company <= 0 {
		cfg.Company = def.Company
	}
	if cfg.AIQuestions <= 0 {
		cfg.AIQuestions = def.AIQuestions
	}
	g := &Generator{
		cfg:     cfg,
		catalog: extractor.Catalog(),
		logger:  errors.NopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns technical, behavioural and company questions for a job.
// The same job, resume and seed always give the same questions.
func (g *Generator) Generate(ctx context.Context, job types.JobRequirements, resume *types.ExtractedDocument) types.InterviewQuestions {
	if job.Title == "" && len(job.RequiredSkills) == 0 && strings.TrimSpace(job.Text) == "" {
		return Fallback()
	}

	r := g.rng(job)
	out := types.InterviewQuestions{
		JobTitle:   job.Title,
		Company:    job.Company,
		Technical:  g.technical(r, job.RequiredSkills, g.cfg.Technical),
		Behavioral: behavioral(r, job.Text, g.cfg.Behavioral),
		CompanyFit: company(r, job, g.cfg.Company),
		JobSkills:  append([]string{}, job.RequiredSkills[:min(len(job.RequiredSkills), maxJobSkills)]...),
		Source:     SourceTemplates,
	}
	if resume != nil {
		personaliseTechnical(r, out.Technical, resume)
		personaliseBehavioral(r, out.Behavioral, resume)
	}

	if g.provider != nil {
		extra, err := g.provider.GenerateQuestions(ctx, job, resume, g.cfg.AIQuestions)
		if err != nil {
			g.logger.Warn("AI question generation failed, returning template questions",
				"job_title", job.Title,
				"error", err.Error())
		} else if out.Generated = newQuestions(out, extra, g.cfg.AIQuestions); len(out.Generated) > 0 {
			out.Source = SourceTemplatesAI
		}
	}
	return out
}

// Fallback returns the fixed question set used when a job carries nothing to work from
func Fallback() types.InterviewQuestions {
	return types.InterviewQuestions{
		Technical:  slices.Clone(fallbackTechnical),
		Behavioral: slices.Clone(fallbackBehavioral),
		CompanyFit: slices.Clone(fallbackCompany),
		JobSkills:  []string{},
		Source:     SourceFallback,
	}
}

// rng seeds a PCG source from the configured seed and the job's identity
func (g *Generator) rng(job types.JobRequirements) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%s\x00%s", job.Title, job.Company, strings.Join(job.RequiredSkills, ","))
	return rand.New(rand.NewPCG(g.cfg.Seed, h.Sum64()))
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func (g *Generator) technical(r *rand.Rand, jobSkills []string, n int) []string {
	all := g.catalog.AllSkills()
	pool := slices.Clone(jobSkills)
	if len(pool) == 0 {
		perm := r.Perm(len(all))
		for _, i := range perm[:min(maxFallbackSkills, len(perm))] {
			pool = append(pool, all[i])
		}
	}
	if len(pool) == 0 {
		return slices.Clone(fallbackTechnical[:min(n, len(fallbackTechnical))])
	}
	for len(pool) < n {
		i := r.IntN(len(pool) + len(all))
		if i < len(pool) {
			pool = append(pool, pool[i])
		} else {
			pool = append(pool, all[i-len(pool)])
		}
	}

	questions := make([]string, 0, n)
	used := make(map[string]bool)
	for _, skill := range pool[:n] {
		var available []string
		for _, t := range technicalTemplates {
			if !used[t] {
				available = append(available, t)
			}
		}
		if len(available) == 0 {
			available = technicalTemplates
		}
		tmpl := pick(r, available)
		used[tmpl] = true

		args := []string{"{skill}", skill}
		if strings.Contains(tmpl, "{problem_type}") {
			args = append(args, "{problem_type}", pick(r, problemTypes))
		}
		if strings.Contains(tmpl, "{alternative_skill}") {
			args = append(args, "{alternative_skill}", alternative(r, pool, skill))
		}
		questions = append(questions, strings.NewReplacer(args...).Replace(tmpl))
	}

	var languages []string
	for _, lang := range programmingLanguages {
		if slices.ContainsFunc(jobSkills, func(s string) bool { return strings.EqualFold(s, lang) }) {
			languages = append(languages, lang)
		}
	}
	if len(languages) > 0 && len(questions) > 1 {
		lang := pick(r, languages)
		questions[r.IntN(len(questions))] = fmt.Sprintf(
			"Describe a project where you used %s. What specific features of the language did you leverage?", lang)
	}
	return questions
}

func alternative(r *rand.Rand, pool []string, skill string) string {
	var others []string
	for _, s := range pool {
		if !strings.EqualFold(s, skill) {
			others = append(others, s)
		}
	}
	if len(others) == 0 {
		return noAlternative
	}
	return pick(r, others)
}

func behavioral(r *rand.Rand, jobText string, n int) []string {
	text := strings.ToLower(jobText)
	questions := make([]string, 0, n)
	for _, th := range themes {
		if slices.ContainsFunc(th.words, func(w string) bool { return strings.Contains(text, w) }) {
			questions = append(questions, th.question)
		}
	}

	used := make(map[string]bool)
	for attempts := 0; len(questions) < n && attempts < n*attemptsPerQuestion; attempts++ {
		tmpl := pick(r, behavioralTemplates)
		var args []string
		for _, key := range placeholderKeys {
			ph := "{" + key + "}"
			if !strings.Contains(tmpl, ph) {
				continue
			}
			values := behavioralValues[key]
			var available []string
			for _, v := range values {
				if !used[key+"\x00"+v] {
					available = append(available, v)
				}
			}
			if len(available) == 0 {
				available = values
			}
			v := pick(r, available)
			used[key+"\x00"+v] = true
			args = append(args, ph, v)
		}
		q := tmpl
		if len(args) > 0 {
			q = strings.NewReplacer(args...).Replace(tmpl)
		}
		if !slices.Contains(questions, q) {
			questions = append(questions, q)
		}
	}
	return questions[:min(n, len(questions))]
}

func company(r *rand.Rand, job types.JobRequirements, n int) []string {
	name := orDefault(job.Company, defaultCompany)
	role := orDefault(job.Title, defaultRole)
	industry := orDefault(job.Industry, defaultIndustry)

	questions := []string{
		fmt.Sprintf("Why are you interested in working for %s?", name),
		fmt.Sprintf("How do your skills align with the %s position?", role),
		"Where do you see yourself in 5 years?",
	}
	fill := strings.NewReplacer("{company}", name, "{role}", role, "{industry}", industry)
	templates := slices.Clone(companyTemplates)
	r.Shuffle(len(templates), func(i, j int) { templates[i], templates[j] = templates[j], templates[i] })
	for _, tmpl := range templates {
		if len(questions) >= n {
			break
		}
		if q := fill.Replace(tmpl); !slices.Contains(questions, q) {
			questions = append(questions, q)
		}
	}
	return questions[:min(n, len(questions))]
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// recentRole returns the title and company of the first experience entry,
// with neutral wording in place of extraction placeholders.
func recentRole(resume *types.ExtractedDocument) (title, company string) {
	entry := resume.Experience[0]
	title, company = entry.Title, entry.Company
	if title == "" || title == textproc.UnknownTitle {
		title = previousRole
	}
	if company == "" || company == textproc.UnknownCompany {
		company = previousCompany
	}
	return title, company
}

func personaliseTechnical(r *rand.Rand, questions []string, resume *types.ExtractedDocument) {
	skillIdx := -1
	if len(resume.Skills) > 0 && len(questions) > 2 {
		skillIdx = r.IntN(len(questions))
		questions[skillIdx] = fmt.Sprintf("You mentioned %s as one of your key skills. "+
			"Can you describe a challenging problem you solved using this technology?", resume.Skills[0])
	}
	if len(resume.Experience) > 0 && len(questions) > 3 {
		title, company := recentRole(resume)
		idx := r.IntN(len(questions))
		if idx == skillIdx {
			idx = (idx + 1) % len(questions)
		}
		questions[idx] = fmt.Sprintf("In your role as %s at %s, what were the most challenging "+
			"technical problems you faced and how did you overcome them?", title, company)
	}
}

func personaliseBehavioral(r *rand.Rand, questions []string, resume *types.ExtractedDocument) {
	if len(resume.Experience) == 0 || len(questions) < 3 {
		return
	}
	title, company := recentRole(resume)
	questions[r.IntN(len(questions))] = fmt.Sprintf("During your time as %s at %s, "+
		"tell me about a situation where you demonstrated leadership or initiative.", title, company)
}

// newQuestions keeps provider questions that are non-empty and not already asked
func newQuestions(out types.InterviewQuestions, extra []string, limit int) []string {
	seen := make(map[string]bool)
	for _, group := range [][]string{out.Technical, out.Behavioral, out.CompanyFit} {
		for _, q := range group {
			seen[strings.ToLower(q)] = true
		}
	}
	var kept []string
	for _, q := range extra {
		q = strings.TrimSpace(q)
		key := strings.ToLower(q)
		if q == "" || seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, q)
		if len(kept) == limit {
			break
		}
	}
	return kept
}
