package matching

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"searchfind/internal/types"
)

const maxPlausibleSpan = 50

var spanRe = regexp.MustCompile(`(?i)((?:19|20)\d{2})\s*(?:-|–|—|to)\s*(?:[a-z]+\.?\s+)?(present|current|now|(?:19|20)\d{2})\b`)

// YearsOfExperience sums the durations of all parseable date ranges. Open
// ranges end at refYear; implausible spans are ignored.
func YearsOfExperience(entries []types.ExperienceEntry, refYear int) int {
	total := 0
	for _, entry := range entries {
		m := spanRe.FindStringSubmatch(entry.Years)
		if m == nil {
			continue
		}
		start, _ := strconv.Atoi(m[1])
		end, err := strconv.Atoi(m[2])
		if err != nil {
			end = refYear
		}
		if span := end - start; span >= 0 && span <= maxPlausibleSpan {
			total += span
		}
	}
	return total
}

// yearsScore grades total years against the minimum and preferred years
func yearsScore(total, minYears, preferred int) (float64, string) {
	switch {
	case minYears == 0:
		return 100, "No specific years of experience required"
	case total >= preferred && preferred > minYears:
		return 100, fmt.Sprintf("Experience (%d years) exceeds preferred level (%d years)", total, preferred)
	case total >= minYears && preferred > minYears:
		ratio := float64(total-minYears) / float64(preferred-minYears)
		return 80 + 20*math.Min(1, ratio), fmt.Sprintf(
			"Experience (%d years) meets required (%d years) and is approaching preferred level (%d years)",
			total, minYears, preferred)
	case total >= minYears:
		extra := float64(total - minYears)
		return 80 + math.Min(20, extra*5), fmt.Sprintf(
			"Experience (%d years) exceeds minimum requirement (%d years)", total, minYears)
	default:
		ratio := float64(total) / float64(max(1, minYears))
		return 70 * ratio, fmt.Sprintf(
			"Experience (%d years) is below the required minimum (%d years)", total, minYears)
	}
}

func areasEvaluation(score float64) string {
	switch {
	case score >= 80:
		return "Experience highly relevant to job requirements"
	case score >= 60:
		return "Experience mostly relevant to job requirements"
	case score >= 40:
		return "Experience somewhat relevant to job requirements"
	default:
		return "Limited relevant experience for this position"
	}
}

func (e *Engine) scoreExperience(entries []types.ExperienceEntry, req types.ExperienceRequirement) types.ExperienceMatch {
	total := YearsOfExperience(entries, e.referenceYear())
	yScore, yEval := yearsScore(total, req.MinYears, req.PreferredYears)

	result := types.ExperienceMatch{
		YearsExperience: total,
		YearsRequired:   req.MinYears,
		YearsPreferred:  req.PreferredYears,
		YearsScore:      round1(yScore),
		YearsEvaluation: yEval,
		AreasMatched:    []string{},
		AreasMissing:    []string{},
		Entries:         len(entries),
	}

	areas := nonBlank(req.Areas)
	for _, area := range areas {
		needle := strings.ToLower(area)
		found := false
		for _, entry := range entries {
			if strings.Contains(strings.ToLower(entry.Description), needle) ||
				strings.Contains(strings.ToLower(entry.Title), needle) ||
				strings.Contains(strings.ToLower(entry.Company), needle) {
				found = true
				break
			}
		}
		if found {
			result.AreasMatched = append(result.AreasMatched, area)
		} else {
			result.AreasMissing = append(result.AreasMissing, area)
		}
	}

	aScore := 100.0
	result.AreasEvaluation = "No specific experience areas required"
	if len(areas) > 0 {
		aScore = float64(len(result.AreasMatched)) / float64(len(areas)) * 100
		result.AreasEvaluation = areasEvaluation(aScore)
	}
	result.AreasScore = round1(aScore)

	result.Score = round(yScore*0.6 + aScore*0.4)
	result.Evaluation = yEval
	return result
}
