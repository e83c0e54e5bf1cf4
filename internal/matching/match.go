package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"searchfind/internal/doctype"
	"searchfind/internal/errors"
	"searchfind/internal/types"
)

// ReasonNotResume is the error message for text that fails resume validation
const ReasonNotResume = "The provided document does not appear to be a valid resume"

const unknownCandidate = "Unknown Candidate"

// Match validates resumeText as a resume and scores it against job.
// Missing inputs and rejected documents are returned as *errors.AppError.
func (e *Engine) Match(ctx context.Context, resumeText string, job *types.JobListing) (types.MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return types.MatchResult{}, errors.NewInputMissingError("resume")
	}
	if job == nil {
		return types.MatchResult{}, errors.NewInputMissingError("job listing")
	}
	if err := ctx.Err(); err != nil {
		return types.MatchResult{}, err
	}

	validation := e.validator.Validate(resumeText)
	if validation.WordCount < doctype.MinWordCount {
		return types.MatchResult{}, errors.NewEmptyDocumentError(doctype.ReasonTooShort)
	}
	if validation.DocumentType != types.KindResume || validation.Confidence < doctype.MediumConfidence {
		return types.MatchResult{}, errors.NewInvalidDocumentError(ReasonNotResume, validation.Confidence).
			WithContext("documentType", string(validation.DocumentType))
	}

	resume := e.extractor.Extract(resumeText, types.KindResume)
	return e.Score(resume, e.ExtractRequirements(*job)), nil
}

// Rank scores every candidate against job on a bounded worker pool and
// orders the results by overall score, best first. Candidates without
// usable resume text are reported in Skipped instead of failing the ranking.
func (e *Engine) Rank(ctx context.Context, job *types.JobListing, candidates []types.Candidate) (types.Ranking, error) {
	if job == nil {
		return types.Ranking{}, errors.NewInputMissingError("job listing")
	}
	if len(candidates) == 0 {
		return types.Ranking{}, errors.NewInputMissingError("candidate profiles")
	}

	requirements := e.ExtractRequirements(*job)
	results := make([]*types.MatchResult, len(candidates))
	reasons := make([]string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := e.resumeText(candidate)
			if err != nil {
				e.logger.Warn("Skipping candidate", "candidateId", candidate.ID, "error", err.Error())
				reasons[i] = err.Error()
				return nil
			}
			if strings.TrimSpace(text) == "" {
				reasons[i] = "no resume text"
				return nil
			}

			result := e.Score(e.extractor.Extract(text, types.KindResume), requirements)
			result.CandidateID = candidate.ID
			result.CandidateName = candidate.Name
			if result.CandidateName == "" {
				result.CandidateName = unknownCandidate
			}
			results[i] = &result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.Ranking{}, err
	}

	ranking := types.Ranking{
		JobID:    job.ID,
		JobTitle: job.Title,
		Matches:  make([]types.MatchResult, 0, len(candidates)),
	}
	for i, r := range results {
		if r == nil {
			ranking.Skipped = append(ranking.Skipped, types.SkippedCandidate{
				CandidateID: candidates[i].ID,
				Reason:      reasons[i],
			})
			continue
		}
		ranking.Matches = append(ranking.Matches, *r)
	}
	sort.SliceStable(ranking.Matches, func(i, j int) bool {
		return ranking.Matches[i].OverallScore > ranking.Matches[j].OverallScore
	})
	ranking.TotalCandidates = len(ranking.Matches)

	e.logger.Debug("Ranked candidates",
		"jobId", job.ID,
		"matched", ranking.TotalCandidates,
		"skipped", len(ranking.Skipped))
	return ranking, nil
}

func (e *Engine) resumeText(c types.Candidate) (string, error) {
	if c.ResumeText != "" || c.ResumePath == "" {
		return c.ResumeText, nil
	}
	if e.loader == nil {
		return "", fmt.Errorf("resume path %s given but no document loader is configured", c.ResumePath)
	}
	text, err := e.loader(c.ResumePath)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", c.ResumePath, err)
	}
	return text, nil
}
