package types

// Tier is the qualitative bucket of an overall match score
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierVeryGood  Tier = "very_good"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierWeak      Tier = "weak"
	TierPoor      Tier = "poor"
	TierUnknown   Tier = "unknown"
)

// CloseMatch pairs a required skill with the candidate skill that fuzzily satisfied it
type CloseMatch struct {
	Required   string  `json:"required"`
	Candidate  string  `json:"candidate"`
	Similarity float64 `json:"similarity"`
}

type SkillsMatch struct {
	Score         int          `json:"score"`
	Evaluation    string       `json:"evaluation"`
	ExactMatches  []string     `json:"exactMatches"`
	CloseMatches  []CloseMatch `json:"closeMatches"`
	MissingSkills []string     `json:"missingSkills"`
	Percentage    float64      `json:"matchPercentage"`
}

type ExperienceMatch struct {
	Score           int      `json:"score"`
	Evaluation      string   `json:"evaluation"`
	YearsExperience int      `json:"yearsExperience"`
	YearsRequired   int      `json:"yearsRequired"`
	YearsPreferred  int      `json:"yearsPreferred"`
	YearsScore      float64  `json:"yearsScore"`
	YearsEvaluation string   `json:"yearsEvaluation"`
	AreasMatched    []string `json:"relevantAreasMatched"`
	AreasMissing    []string `json:"relevantAreasMissing"`
	AreasScore      float64  `json:"areasScore"`
	AreasEvaluation string   `json:"areasEvaluation"`
	Entries         int      `json:"experienceEntries"`
}

// Degree describes the highest degree found on a resume
type Degree struct {
	Type        string `json:"type"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type EducationMatch struct {
	Score                int         `json:"score"`
	Evaluation           string      `json:"evaluation"`
	HighestDegree        *Degree     `json:"candidateHighestDegree,omitempty"`
	CandidateLevel       DegreeLevel `json:"candidateLevel,omitempty"`
	RequiredDegree       DegreeLevel `json:"requiredDegree,omitempty"`
	HasRequiredEducation bool        `json:"hasRequiredEducation"`
	DegreeScore          float64     `json:"degreeScore"`
	DegreeEvaluation     string      `json:"degreeEvaluation"`
	FieldMatches         []string    `json:"fieldMatches"`
	FieldMismatches      []string    `json:"fieldMismatches"`
	FieldScore           float64     `json:"fieldScore"`
	FieldEvaluation      string      `json:"fieldEvaluation"`
}

// TitleScore is one candidate title and its similarity to the job title
type TitleScore struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

type JobTitleMatch struct {
	Score          int          `json:"score"`
	Evaluation     string       `json:"evaluation"`
	BestMatch      string       `json:"bestMatch,omitempty"`
	PartialMatches []TitleScore `json:"partialMatches"`
}

type LocationMatch struct {
	Score             int    `json:"score"`
	Evaluation        string `json:"evaluation"`
	CandidateLocation string `json:"candidateLocation,omitempty"`
	JobLocation       string `json:"jobLocation,omitempty"`
}

// Recommendations are the categorized improvement hints of a match
type Recommendations struct {
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Resume     []string `json:"resume"`
}

// MatchResult is the scored comparison of one resume against one job
type MatchResult struct {
	MatchID         string          `json:"matchId"`
	JobID           string          `json:"jobId,omitempty"`
	JobTitle        string          `json:"jobTitle"`
	CandidateID     string          `json:"candidateId,omitempty"`
	CandidateName   string          `json:"candidateName,omitempty"`
	OverallScore    int             `json:"overallMatch"`
	Tier            Tier            `json:"matchTier"`
	Skills          SkillsMatch     `json:"skillsMatch"`
	Experience      ExperienceMatch `json:"experienceMatch"`
	Education       EducationMatch  `json:"educationMatch"`
	JobTitleMatch   JobTitleMatch   `json:"jobTitleMatch"`
	Location        LocationMatch   `json:"locationMatch"`
	Recommendations Recommendations `json:"recommendations"`
}

// SkippedCandidate records why a candidate was left out of a ranking
type SkippedCandidate struct {
	CandidateID string `json:"candidateId"`
	Reason      string `json:"reason"`
}

// Ranking is the ordered result of matching many candidates against one job
type Ranking struct {
	JobID           string             `json:"jobId,omitempty"`
	JobTitle        string             `json:"jobTitle"`
	TotalCandidates int                `json:"totalCandidates"`
	Matches         []MatchResult      `json:"matches"`
	Skipped         []SkippedCandidate `json:"skipped,omitempty"`
}

// Requirement is a missing requirement or a strength in a qualification summary
type Requirement struct {
	Type     string   `json:"type"`
	Items    []string `json:"items,omitempty"`
	Required string   `json:"required,omitempty"`
	Current  string   `json:"current,omitempty"`
	Degree   string   `json:"degree,omitempty"`
}

// Qualification is the compact view of a match shown next to a job listing
type Qualification struct {
	Valid               bool          `json:"isValid"`
	Error               string        `json:"error,omitempty"`
	JobID               string        `json:"jobId,omitempty"`
	MatchPercentage     int           `json:"matchPercentage"`
	Tier                Tier          `json:"matchTier"`
	ColorClass          string        `json:"colorClass,omitempty"`
	MissingRequirements []Requirement `json:"missingRequirements,omitempty"`
	Strengths           []Requirement `json:"strengths,omitempty"`
	Suggestions         []string      `json:"applicationSuggestions,omitempty"`
	Match               *MatchResult  `json:"fullResults,omitempty"`
}
