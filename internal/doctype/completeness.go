package doctype

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"searchfind/internal/types"
)

// Essential resume sections, in report order
const (
	SectionContact    = "contact_info"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

var essentialSections = []string{SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills}

var (
	summaryMentionRe    = regexp.MustCompile(`(?i)\b(?:professional summary|profile|career objective|summary|about me|career summary)\b`)
	experienceMentionRe = regexp.MustCompile(`(?i)\b(?:experience|employment|work history|professional experience|career history)\b`)
	educationMentionRe  = regexp.MustCompile(`(?i)\b(?:education|academic background|degrees?|qualifications)\b`)
	skillsMentionRe     = regexp.MustCompile(`(?i)\b(?:skills|technical skills|competencies|capabilities)\b`)

	experienceDateRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*-\s*(?:(?:19|20)\d{2}|present|current)\b`)
	achievementRe    = regexp.MustCompile(`(?i)\b(?:managed|improved|developed|increased|reduced|created|implemented|achieved|delivered|out?performed)\b`)
	degreeMentionRe  = regexp.MustCompile(`(?i)\b(?:bachelor|master|doctorate|phd|bs|ba|ms|ma|mba|degree)\b|\b(?:b\.s|b\.a|m\.s|m\.a|ph\.d)\.`)
	gradYearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Rating turns a 0..1 section score into a label
func Rating(score float64) string {
	switch {
	case score >= 0.9:
		return "Excellent"
	case score >= 0.7:
		return "Good"
	case score >= 0.4:
		return "Adequate"
	default:
		return "Needs Improvement"
	}
}

// Completeness grades the essential sections of a resume. doc must be the
// extraction of text; it supplies the section bodies.
func (v *Validator) Completeness(text string, doc *types.ExtractedDocument) types.CompletenessReport {
	scores := map[string]float64{}
	present := map[string]bool{}

	emails, phones := len(doc.Contact.Emails) > 0, len(doc.Contact.Phones) > 0
	switch {
	case emails && phones:
		present[SectionContact], scores[SectionContact] = true, 1.0
	case emails || phones:
		present[SectionContact], scores[SectionContact] = true, 0.5
	}

	if summaryMentionRe.MatchString(text) {
		present[SectionSummary], scores[SectionSummary] = true, 0.8
	}
	if body := doc.Section("summary"); strings.TrimSpace(body) != "" {
		present[SectionSummary] = true
		scores[SectionSummary] = lengthScore(len(strings.Fields(body)), 30, 15)
	}

	if experienceMentionRe.MatchString(text) {
		present[SectionExperience] = true
	}
	if body := doc.Section("experience"); strings.TrimSpace(body) != "" {
		present[SectionExperience] = true
		dates := len(experienceDateRe.FindAllStringIndex(body, -1))
		achievements := len(achievementRe.FindAllStringIndex(body, -1))
		switch {
		case dates >= 2 && achievements >= 3:
			scores[SectionExperience] = 1.0
		case dates >= 1 && achievements >= 1:
			scores[SectionExperience] = 0.7
		default:
			scores[SectionExperience] = 0.4
		}
	}

	if educationMentionRe.MatchString(text) {
		present[SectionEducation] = true
	}
	if body := doc.Section("education"); strings.TrimSpace(body) != "" {
		present[SectionEducation] = true
		degree, year := degreeMentionRe.MatchString(body), gradYearRe.MatchString(body)
		switch {
		case degree && year:
			scores[SectionEducation] = 1.0
		case degree || year:
			scores[SectionEducation] = 0.7
		default:
			scores[SectionEducation] = 0.4
		}
	}

	if skillsMentionRe.MatchString(text) {
		present[SectionSkills] = true
	}
	if body := doc.Section("skills"); strings.TrimSpace(body) != "" {
		present[SectionSkills] = true
		scores[SectionSkills] = lengthScore(countListed(body), 10, 5)
	}

	report := types.CompletenessReport{
		Sections:        make([]types.SectionAssessment, 0, len(essentialSections)),
		MissingSections: []string{},
		Recommendations: []string{},
	}
	total, found := 0.0, 0
	for _, name := range essentialSections {
		label := strings.ReplaceAll(name, "_", " ")
		score := scores[name]
		report.Sections = append(report.Sections, types.SectionAssessment{
			Name:    name,
			Present: present[name],
			Score:   score,
			Rating:  Rating(score),
		})
		total += score
		switch {
		case !present[name]:
			report.MissingSections = append(report.MissingSections, label)
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("Add a %s section", label))
		case score < 0.7:
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("Improve your %s section", label))
		}
		if present[name] {
			found++
		}
	}

	n := float64(len(essentialSections))
	report.OverallScore = int(math.Round(total / n * 100))
	report.Completeness = int(math.Round(float64(found) / n * 100))
	return report
}

// lengthScore maps a count onto the 1.0 / 0.7 / 0.4 section scale
func lengthScore(n, high, mid int) float64 {
	switch {
	case n >= high:
		return 1.0
	case n >= mid:
		return 0.7
	default:
		return 0.4
	}
}

// countListed counts entries in a skills section: comma separated when it
// has commas, otherwise split on the first bullet glyph, otherwise words.
func countListed(body string) int {
	split := func(sep string) int {
		n := 0
		for _, part := range strings.Split(body, sep) {
			if strings.TrimSpace(part) != "" {
				n++
			}
		}
		return n
	}
	if strings.Contains(body, ",") {
		return split(",")
	}
	for _, bullet := range []string{"•", "·", "-", "*"} {
		if strings.Contains(body, bullet) {
			return split(bullet)
		}
	}
	return len(strings.Fields(body))
}
