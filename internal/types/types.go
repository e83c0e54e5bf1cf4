package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocumentKind identifies what a piece of text is believed to be
type DocumentKind string

const (
	KindResume         DocumentKind = "resume"
	KindJobDescription DocumentKind = "job_description"
	KindCoverLetter    DocumentKind = "cover_letter"
	KindOther          DocumentKind = "other"
	KindUnknown        DocumentKind = "unknown"
)

// ParseDocumentKind maps user input to a DocumentKind, defaulting to resume
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "resume", "cv":
		return KindResume, nil
	case "job", "job_description", "job-description", "jd":
		return KindJobDescription, nil
	case "cover_letter", "cover-letter", "letter":
		return KindCoverLetter, nil
	default:
		return KindUnknown, fmt.Errorf("unknown document kind: %s", s)
	}
}

// ExperienceEntry is one position parsed from the experience section
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Years       string `json:"years"`
	Description string `json:"description"`
	Bullets     int    `json:"bullets,omitempty"`
}

// EducationEntry is one degree parsed from the education section
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Contact holds contact entities found anywhere in the document
type Contact struct {
	Emails []string `json:"emails,omitempty"`
	Phones []string `json:"phones,omitempty"`
	URLs   []string `json:"urls,omitempty"`
}

// ExtractedDocument is the structured view of a resume or job description.
// It is built fresh for every call and never mutated afterwards.
type ExtractedDocument struct {
	Kind            DocumentKind      `json:"kind"`
	Sections        map[string]string `json:"sections"`
	Skills          []string          `json:"skills"`
	TechnicalSkills []string          `json:"technicalSkills"`
	SoftSkills      []string          `json:"softSkills"`
	JobTitles       []string          `json:"jobTitles"`
	Experience      []ExperienceEntry `json:"experienceEntries"`
	Education       []EducationEntry  `json:"educationEntries"`
	Location        string            `json:"location,omitempty"`
	Contact         Contact           `json:"contact"`
	WordCount       int               `json:"wordCount"`
	Terms           map[string]int    `json:"-"`
	Text            string            `json:"-"`
}

// Section returns the named section or an empty string
func (d *ExtractedDocument) Section(name string) string {
	if d == nil || d.Sections == nil {
		return ""
	}
	return d.Sections[name]
}

// HasSection reports whether the named section has any content
func (d *ExtractedDocument) HasSection(name string) bool {
	return strings.TrimSpace(d.Section(name)) != ""
}

// SkillList accepts either a comma separated string or a list of strings
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = normalizeSkills(list)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("skillsRequired must be a string or a list of strings: %w", err)
	}
	*s = normalizeSkills(strings.Split(str, ","))
	return nil
}

func (s *SkillList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = normalizeSkills(list)
	case yaml.ScalarNode:
		*s = normalizeSkills(strings.Split(node.Value, ","))
	default:
		return fmt.Errorf("skillsRequired must be a string or a list of strings")
	}
	return nil
}

func normalizeSkills(in []string) SkillList {
	out := make(SkillList, 0, len(in))
	for _, skill := range in {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

// JobListing is the caller-supplied job record
type JobListing struct {
	ID             string    `json:"id,omitempty" yaml:"id"`
	Title          string    `json:"title" yaml:"title" validate:"required"`
	Company        string    `json:"company,omitempty" yaml:"company"`
	Description    string    `json:"description" yaml:"description" validate:"required"`
	Requirements   string    `json:"requirements,omitempty" yaml:"requirements"`
	SkillsRequired SkillList `json:"skillsRequired,omitempty" yaml:"skillsRequired"`
	Location       string    `json:"location,omitempty" yaml:"location"`
	Category       string    `json:"category,omitempty" yaml:"category"`
	Industry       string    `json:"industry,omitempty" yaml:"industry"`
}

// FullText joins the description and requirements without repeating text
func (j JobListing) FullText() string {
	text := j.Description
	if j.Requirements != "" && !strings.Contains(text, j.Requirements) {
		text += "\n\n" + j.Requirements
	}
	return text
}

// EducationRequirement is the degree level and fields a job asks for
type EducationRequirement struct {
	MinDegree       DegreeLevel `json:"minDegreeLevel,omitempty"`
	PreferredFields []string    `json:"preferredFields"`
	Required        bool        `json:"required"`
}

// ExperienceRequirement is the years and areas a job asks for
type ExperienceRequirement struct {
	MinYears       int      `json:"minYears"`
	PreferredYears int      `json:"preferredYears"`
	Areas          []string `json:"areas"`
}

// JobRequirements is derived from a JobListing's text and structured fields
type JobRequirements struct {
	ID             string                `json:"id,omitempty"`
	Title          string                `json:"title"`
	Company        string                `json:"company,omitempty"`
	Location       string                `json:"location"`
	Category       string                `json:"category"`
	Industry       string                `json:"industry"`
	RequiredSkills []string              `json:"requiredSkills"`
	Education      EducationRequirement  `json:"educationRequirement"`
	Experience     ExperienceRequirement `json:"experienceRequirement"`
	Text           string                `json:"-"`
}

// Candidate is one resume submitted for ranking
type Candidate struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	Name       string `json:"name,omitempty" yaml:"name"`
	ResumeText string `json:"resumeText,omitempty" yaml:"resumeText"`
	ResumePath string `json:"resumePath,omitempty" yaml:"resumePath"`
}
