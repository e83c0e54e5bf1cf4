package matching

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"searchfind/internal/types"
)

// fuzzyWeight is the credit given to a required skill satisfied only by a close match
const fuzzyWeight = 0.5

// Similarity is the Ratcliff-Obershelp ratio of two strings, in [0,1]
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// closeMatch reports whether two lowercase skills are similar enough or one contains the other
func (e *Engine) closeMatch(required, candidate string) (float64, bool) {
	sim := Similarity(required, candidate)
	contains := strings.Contains(candidate, required) || strings.Contains(required, candidate)
	return sim, sim >= e.cfg.FuzzyThreshold || contains
}

// scoreSkills resolves every required skill to exactly one of exact, close
// or missing.
func (e *Engine) scoreSkills(candidate, required []string) types.SkillsMatch {
	required = nonBlank(required)
	if len(required) == 0 {
		return types.SkillsMatch{
			Score:         100,
			Percentage:    100,
			Evaluation:    "No specific skills were required for this job",
			ExactMatches:  []string{},
			CloseMatches:  []types.CloseMatch{},
			MissingSkills: []string{},
		}
	}

	lowered := make([]string, len(candidate))
	index := make(map[string]int, len(candidate))
	for i, s := range candidate {
		lowered[i] = strings.ToLower(strings.TrimSpace(s))
		if _, ok := index[lowered[i]]; !ok {
			index[lowered[i]] = i
		}
	}

	result := types.SkillsMatch{
		ExactMatches:  []string{},
		CloseMatches:  []types.CloseMatch{},
		MissingSkills: []string{},
	}
	for _, req := range required {
		key := strings.ToLower(strings.TrimSpace(req))
		if i, ok := index[key]; ok {
			result.ExactMatches = append(result.ExactMatches, candidate[i])
			continue
		}

		matched := false
		for i, cand := range lowered {
			if cand == "" {
				continue
			}
			if sim, ok := e.closeMatch(key, cand); ok {
				result.CloseMatches = append(result.CloseMatches, types.CloseMatch{
					Required:   req,
					Candidate:  candidate[i],
					Similarity: math.Round(sim*100) / 100,
				})
				matched = true
				break
			}
		}
		if !matched {
			result.MissingSkills = append(result.MissingSkills, req)
		}
	}

	credit := float64(len(result.ExactMatches)) + fuzzyWeight*float64(len(result.CloseMatches))
	pct := math.Min(100, credit/float64(len(required))*100)

	result.Score = round(pct)
	result.Percentage = round1(pct)
	switch {
	case pct >= 90:
		result.Evaluation = "Excellent skills match with almost all required skills"
	case pct >= 75:
		result.Evaluation = "Strong skills match with most required skills"
	case pct >= 50:
		result.Evaluation = "Moderate skills match with some missing critical skills"
	default:
		result.Evaluation = "Limited skills match with several missing required skills"
	}
	return result
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
