package matching

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"searchfind/internal/types"
)

// candidateLevels is checked from the highest level down; the first hit wins
var candidateLevels = []struct {
	level types.DegreeLevel
	re    *regexp.Regexp
}{
	{types.DegreeDoctorate, regexp.MustCompile(`\b(?:phd|ph\.d|doctor|doctorate|doctoral)\b`)},
	{types.DegreeMaster, regexp.MustCompile(`\b(?:master|masters|master's|ms|ma|mba|msc|m\.s|m\.a)\b`)},
	{types.DegreeBachelor, regexp.MustCompile(`\b(?:bachelor|bachelors|bachelor's|bs|ba|bsc|b\.a|b\.s)\b`)},
	{types.DegreeAssociate, regexp.MustCompile(`\b(?:associate|associates|associate's|aas|aa|a\.a)\b`)},
	{types.DegreeHighSchool, regexp.MustCompile(`\b(?:high school|diploma|ged)\b`)},
}

var fieldPrefixes = []string{
	"bachelor of", "master of", "doctor of",
	"bachelor's in", "master's in", "doctorate in",
	"bs in", "ba in", "ms in", "ma in", "phd in",
	"b.s. in", "b.a. in", "m.s. in", "m.a. in",
	"bachelor", "master", "doctorate", "associate",
}

var fieldRe = regexp.MustCompile(`\b(?:in|of)\s+([^,;.]+)`)

// DegreeLevelOf ranks a free-text degree name; DegreeNone when no level keyword is present
func DegreeLevelOf(degree string) types.DegreeLevel {
	lower := strings.ToLower(degree)
	for _, c := range candidateLevels {
		if c.re.MatchString(lower) {
			return c.level
		}
	}
	return types.DegreeNone
}

// DegreeField returns the lowercase field of study of a degree name
func DegreeField(degree string) string {
	lower := strings.ToLower(strings.TrimSpace(degree))
	for _, prefix := range fieldPrefixes {
		if i := strings.Index(lower, prefix); i >= 0 {
			rest := strings.TrimPrefix(lower[i+len(prefix):], "'s")
			rest = strings.TrimSpace(rest)
			rest = strings.TrimSpace(strings.TrimPrefix(rest, "degree"))
			rest = strings.TrimSpace(strings.TrimPrefix(rest, "in "))
			if rest != "" {
				return rest
			}
			break
		}
	}
	if m := fieldRe.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// highestDegree picks the entry with the highest recognised level; ties keep the first
func highestDegree(entries []types.EducationEntry) (*types.Degree, types.DegreeLevel) {
	var best *types.Degree
	level := types.DegreeNone
	for _, entry := range entries {
		l := DegreeLevelOf(entry.Degree)
		if l <= level {
			continue
		}
		level = l
		best = &types.Degree{
			Type:        l.String(),
			Field:       DegreeField(entry.Degree),
			Institution: entry.Institution,
			Year:        entry.Year,
		}
	}
	return best, level
}

func degreeScore(candidate, required types.DegreeLevel, mandatory bool) (float64, string) {
	switch {
	case required == types.DegreeNone:
		return 100, "No specific degree requirement for this position"
	case candidate > required:
		return 100, fmt.Sprintf("Education (%s) exceeds required level (%s)", candidate, required)
	case candidate == required:
		return 100, fmt.Sprintf("Education (%s) meets required level (%s)", candidate, required)
	case candidate > types.DegreeNone:
		return float64(candidate) / float64(required) * 100,
			fmt.Sprintf("Education (%s) is below required level (%s)", candidate, required)
	case mandatory:
		return 0, "No degree information found in resume"
	default:
		return 50, "No degree information found in resume"
	}
}

func fieldScore(field string, preferred []string) (score float64, eval string, matches, mismatches []string) {
	matches, mismatches = []string{}, []string{}
	if len(preferred) == 0 {
		return 100, "No specific field of study required", matches, mismatches
	}
	for _, pf := range preferred {
		p := strings.ToLower(strings.TrimSpace(pf))
		if field != "" && (strings.Contains(field, p) || strings.Contains(p, field)) {
			matches = append(matches, pf)
		} else {
			mismatches = append(mismatches, pf)
		}
	}
	if len(matches) == 0 {
		return 40, "Field of study does not match job requirements", matches, mismatches
	}
	score = math.Min(100, float64(len(matches))/float64(len(preferred))*100)
	switch {
	case score >= 80:
		eval = "Field of study highly relevant to job requirements"
	case score >= 50:
		eval = "Field of study somewhat relevant to job requirements"
	default:
		eval = "Field of study has limited relevance to job requirements"
	}
	return score, eval, matches, mismatches
}

// scoreEducation blends degree level and field of study. A job that states no
// degree level is a vacuous pass on the degree part.
func scoreEducation(entries []types.EducationEntry, req types.EducationRequirement) types.EducationMatch {
	highest, level := highestDegree(entries)
	preferred := nonBlank(req.PreferredFields)

	dScore, dEval := degreeScore(level, req.MinDegree, req.Required)
	field := ""
	if highest != nil {
		field = highest.Field
	}
	fScore, fEval, matches, mismatches := fieldScore(field, preferred)

	var combined float64
	if req.MinDegree > types.DegreeNone {
		combined = dScore*0.7 + fScore*0.3
	} else {
		combined = dScore*0.3 + fScore*0.7
	}
	if !req.Required {
		combined = math.Max(70, combined)
	}

	return types.EducationMatch{
		Score:                round(combined),
		Evaluation:           dEval,
		HighestDegree:        highest,
		CandidateLevel:       level,
		RequiredDegree:       req.MinDegree,
		HasRequiredEducation: level >= req.MinDegree,
		DegreeScore:          round1(dScore),
		DegreeEvaluation:     dEval,
		FieldMatches:         matches,
		FieldMismatches:      mismatches,
		FieldScore:           round1(fScore),
		FieldEvaluation:      fEval,
	}
}
