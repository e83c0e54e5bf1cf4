package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"searchfind/internal/types"
)

const maxPartialTitles = 3

var titleWordRe = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// wordSet is the set of lowercase letter runs in s
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range titleWordRe.FindAllString(strings.ToLower(s), -1) {
		set[w] = struct{}{}
	}
	return set
}

// Jaccard is |a ∩ b| / |a ∪ b| over the lowercase word sets of two titles
func Jaccard(a, b string) float64 {
	wa, wb := wordSet(a), wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	inter := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(wa)+len(wb)-inter)
}

func scoreJobTitle(titles []string, jobTitle string) types.JobTitleMatch {
	result := types.JobTitleMatch{PartialMatches: []types.TitleScore{}}
	jobTitle = strings.TrimSpace(jobTitle)
	titles = nonBlank(titles)

	switch {
	case jobTitle == "":
		result.Score = 100
		result.Evaluation = "No specific job title to match against"
		return result
	case len(titles) == 0:
		result.Score = 50
		result.Evaluation = "No previous job titles found in resume"
		return result
	}

	best := 0.0
	for _, title := range titles {
		if strings.EqualFold(strings.TrimSpace(title), jobTitle) {
			best = 100
			result.BestMatch = title
			break
		}
		sim := Jaccard(title, jobTitle) * 100
		if sim > 0 {
			result.PartialMatches = append(result.PartialMatches, types.TitleScore{Title: title, Score: round1(sim)})
		}
		if sim > best {
			best = sim
			result.BestMatch = title
		}
	}

	sort.SliceStable(result.PartialMatches, func(i, j int) bool {
		return result.PartialMatches[i].Score > result.PartialMatches[j].Score
	})
	if len(result.PartialMatches) > maxPartialTitles {
		result.PartialMatches = result.PartialMatches[:maxPartialTitles]
	}

	result.Score = round(best)
	switch {
	case best >= 90:
		result.Evaluation = fmt.Sprintf("Excellent match with previous job title: %s", result.BestMatch)
	case best >= 70:
		result.Evaluation = fmt.Sprintf("Strong match with previous job title: %s", result.BestMatch)
	case best >= 50:
		result.Evaluation = fmt.Sprintf("Moderate match with previous job title: %s", result.BestMatch)
	case best > 0:
		result.Evaluation = fmt.Sprintf("Limited match with previous job title: %s", result.BestMatch)
	default:
		result.Evaluation = "No matching job titles found"
	}
	return result
}

func scoreLocation(candidate, job string) types.LocationMatch {
	result := types.LocationMatch{
		CandidateLocation: strings.TrimSpace(candidate),
		JobLocation:       strings.TrimSpace(job),
	}
	switch {
	case result.JobLocation == "":
		result.Score = 100
		result.Evaluation = "No specific location required for this job"
		return result
	case result.CandidateLocation == "":
		result.Score = 50
		result.Evaluation = "No location information found in resume"
		return result
	}

	// letters only, so "Austin (TX)" and "Austin/TX." tokenize like "Austin, TX"
	jobTokens := wordSet(result.JobLocation)
	candTokens := wordSet(result.CandidateLocation)
	inter := 0
	for tok := range jobTokens {
		if _, ok := candTokens[tok]; ok {
			inter++
		}
	}
	ratio := 0.0
	if len(jobTokens) > 0 {
		ratio = float64(inter) / float64(len(jobTokens)) * 100
	}

	result.Score = round(ratio)
	c, j := result.CandidateLocation, result.JobLocation
	switch {
	case ratio >= 90:
		result.Evaluation = fmt.Sprintf("Excellent location match: %s matches job location: %s", c, j)
	case ratio >= 70:
		result.Evaluation = fmt.Sprintf("Good location match: %s is similar to job location: %s", c, j)
	case ratio >= 40:
		result.Evaluation = fmt.Sprintf("Partial location match: %s partially matches job location: %s", c, j)
	default:
		result.Evaluation = fmt.Sprintf("No location match: %s does not match job location: %s", c, j)
	}
	return result
}
