package types

// Priority ranks how urgent a suggestion is
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Suggestion struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
}

// Suggestions groups suggestions by category, each list kept in generation order
type Suggestions struct {
	Critical    []Suggestion `json:"critical"`
	Important   []Suggestion `json:"important"`
	Recommended []Suggestion `json:"recommended"`
	Formatting  []Suggestion `json:"formatting"`
	LongTerm    []Suggestion `json:"longTerm"`
}

// Count returns the total number of suggestions
func (s Suggestions) Count() int {
	return len(s.Critical) + len(s.Important) + len(s.Recommended) + len(s.Formatting) + len(s.LongTerm)
}

// ATSReport is the applicant-tracking-system compatibility heuristic
type ATSReport struct {
	Score int      `json:"score"`
	Level string   `json:"level"`
	Tips  []string `json:"tips"`
}

// ResumeOutline is a focused layout for tailoring a resume to one job
type ResumeOutline struct {
	Summary               string   `json:"summary"`
	SkillsToEmphasize     []string `json:"skillsToEmphasize"`
	ExperienceFocus       string   `json:"experienceFocus"`
	EducationPresentation string   `json:"educationPresentation"`
	AdditionalSections    []string `json:"additionalSections"`
}

// SuggestionReport is the full output of the suggestion generator
type SuggestionReport struct {
	MatchPercentage int            `json:"matchPercentage"`
	SkillMatch      int            `json:"skillMatch"`
	ExperienceMatch int            `json:"experienceMatch"`
	EducationMatch  int            `json:"educationMatch"`
	MissingKeywords []string       `json:"missingKeywords,omitempty"`
	Suggestions     Suggestions    `json:"improvementSuggestions"`
	ATS             *ATSReport     `json:"atsCompatibility,omitempty"`
	Outline         *ResumeOutline `json:"focusedResumeOutline,omitempty"`
}

// InterviewQuestions are the generated questions for one job, grouped by kind
type InterviewQuestions struct {
	JobTitle   string   `json:"jobTitle"`
	Company    string   `json:"company,omitempty"`
	Technical  []string `json:"technical"`
	Behavioral []string `json:"behavioral"`
	CompanyFit []string `json:"companySpecific"`
	Generated  []string `json:"generated,omitempty"`
	JobSkills  []string `json:"jobSkills"`
	Source     string   `json:"source"`
}

// Total returns the number of questions across all groups
func (q InterviewQuestions) Total() int {
	return len(q.Technical) + len(q.Behavioral) + len(q.CompanyFit) + len(q.Generated)
}

// FrameworkStep is one stage of an answer framework
type FrameworkStep struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// AnswerFramework is a structure for answering one kind of question
type AnswerFramework struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Steps       []FrameworkStep `json:"steps"`
}

// AnswerGuidance helps a candidate answer one kind of interview question
type AnswerGuidance struct {
	QuestionType string          `json:"questionType"`
	Question     string          `json:"question,omitempty"`
	Framework    AnswerFramework `json:"framework"`
	SpecificTips []string        `json:"specificTips"`
	Dos          []string        `json:"dos"`
	Donts        []string        `json:"donts"`
}
