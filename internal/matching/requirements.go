package matching

import (
	"regexp"
	"strconv"
	"strings"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

// jobDegreeLevels recognise degree mentions in job text; the highest mentioned level wins
var jobDegreeLevels = []struct {
	level types.DegreeLevel
	re    *regexp.Regexp
}{
	{types.DegreeDoctorate, regexp.MustCompile(`\b(?:phd|doctorate|doctoral)\b`)},
	{types.DegreeMaster, regexp.MustCompile(`\b(?:master'?s?|ms|ma|mba)\b`)},
	{types.DegreeBachelor, regexp.MustCompile(`\b(?:bachelor'?s?|bs|ba|bsc|undergraduate degree)\b`)},
	{types.DegreeAssociate, regexp.MustCompile(`\b(?:associate'?s?|aas|aa)\b`)},
	{types.DegreeHighSchool, regexp.MustCompile(`\b(?:high school|diploma|ged)\b`)},
}

var (
	educationRequiredRe = regexp.MustCompile(`\b(?:must have|required|minimum)\b.*(?:degree|education)\b`)

	fieldPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:degree|education)[^.]*?\b(?:in|with)\s([^.]*?)(?:\.|,|\(|or |and |preferred|required|\+|;)`),
		regexp.MustCompile(`\b(?:bachelor'?s?|master'?s?|phd|doctorate|ms|ma|mba|bs|ba)\b[^.]*?\b(?:in|with)\s([^.]*?)(?:\.|,|\(|or |and |preferred|required|\+|;)`),
	}
	fieldNoiseRe = regexp.MustCompile(`\b(?:or|and|the|a|an|degree|field)\b`)
	fieldSplitRe = regexp.MustCompile(`[,/]`)

	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)(?:\+|\s*\+|\s*plus|\s*or more)?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`),
		regexp.MustCompile(`experience(?:\s+of)?\s+(\d+)(?:\+|\s*\+|\s*plus|\s*or more)?\s*(?:years?|yrs?)`),
	}
	clauseSplitRe   = regexp.MustCompile(`[.;\n,]`)
	requiredWordsRe = regexp.MustCompile(`\b(?:required|must have|minimum|at least)\b`)
	preferredWordRe = regexp.MustCompile(`\b(?:preferred|ideally|nice to have|plus)\b`)

	areaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`experience (?:in|with) ([^.,;()\n]+)`),
		regexp.MustCompile(`knowledge of ([^.,;()\n]+)`),
		regexp.MustCompile(`proficiency (?:in|with) ([^.,;()\n]+)`),
		regexp.MustCompile(`background (?:in|with) ([^.,;()\n]+)`),
	}
	areaNoiseRe = regexp.MustCompile(`\b(?:and|or|the|a|an)\b`)
)

const minPhraseLength = 3

// ExtractRequirements derives structured requirements from a job listing.
// Skills found in the text are merged with the listing's structured skills.
func (e *Engine) ExtractRequirements(job types.JobListing) types.JobRequirements {
	text := textproc.CleanText(job.FullText())
	lower := strings.ToLower(text)

	industry, category := job.Industry, job.Category
	if industry == "" || category == "" {
		gotIndustry, gotCategory := e.extractor.Classify(text)
		if industry == "" {
			industry = gotIndustry
		}
		if category == "" {
			category = gotCategory
		}
	}

	return types.JobRequirements{
		ID:             job.ID,
		Title:          strings.TrimSpace(job.Title),
		Company:        strings.TrimSpace(job.Company),
		Location:       strings.TrimSpace(job.Location),
		Category:       category,
		Industry:       industry,
		RequiredSkills: e.extractor.Skills(text, job.SkillsRequired...),
		Education:      educationRequirement(lower),
		Experience:     experienceRequirement(lower),
		Text:           text,
	}
}

func educationRequirement(lower string) types.EducationRequirement {
	req := types.EducationRequirement{PreferredFields: []string{}}
	for _, d := range jobDegreeLevels {
		if d.re.MatchString(lower) && d.level > req.MinDegree {
			req.MinDegree = d.level
		}
	}
	req.Required = educationRequiredRe.MatchString(lower)

	seen := make(map[string]bool)
	for _, re := range fieldPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			cleaned := fieldNoiseRe.ReplaceAllString(m[1], "")
			for _, field := range fieldSplitRe.Split(cleaned, -1) {
				field = strings.Join(strings.Fields(field), " ")
				if len(field) < minPhraseLength || seen[field] {
					continue
				}
				seen[field] = true
				req.PreferredFields = append(req.PreferredFields, field)
			}
		}
	}
	return req
}

// experienceRequirement reads years from "N+ years of experience" phrases. A
// number counts as preferred only when the rest of its clause says so
// without also saying it is required.
func experienceRequirement(lower string) types.ExperienceRequirement {
	req := types.ExperienceRequirement{Areas: []string{}}

	var required, preferred []int
	for _, clause := range clauseSplitRe.Split(lower, -1) {
		for _, re := range yearsPatterns {
			for _, loc := range re.FindAllStringSubmatchIndex(clause, -1) {
				n, err := strconv.Atoi(clause[loc[2]:loc[3]])
				if err != nil {
					continue
				}
				// "5 plus years" must not read as "nice to have"
				context := clause[:loc[0]] + " " + clause[loc[1]:]
				if preferredWordRe.MatchString(context) && !requiredWordsRe.MatchString(context) {
					preferred = append(preferred, n)
				} else {
					required = append(required, n)
				}
			}
		}
	}
	if len(required) > 0 {
		req.MinYears = minOf(required)
	}
	if len(preferred) > 0 {
		req.PreferredYears = minOf(preferred)
	}

	seen := make(map[string]bool)
	for _, re := range areaPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			area := strings.Join(strings.Fields(areaNoiseRe.ReplaceAllString(m[1], "")), " ")
			if len(area) < minPhraseLength || seen[area] {
				continue
			}
			seen[area] = true
			req.Areas = append(req.Areas, area)
		}
	}
	return req
}

func minOf(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}
