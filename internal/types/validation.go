package types

// SectionAssessment is the completeness score of one essential resume section
type SectionAssessment struct {
	Name    string  `json:"name"`
	Present bool    `json:"present"`
	Score   float64 `json:"score"`
	Rating  string  `json:"rating"`
}

// CompletenessReport describes how complete a resume is
type CompletenessReport struct {
	Sections        []SectionAssessment `json:"sections"`
	OverallScore    int                 `json:"overallScore"`
	Completeness    int                 `json:"completeness"`
	MissingSections []string            `json:"missingSections"`
	Recommendations []string            `json:"recommendations"`
}

// ValidationResult is a tagged outcome: when Valid is false, Reason explains why
// and the remaining fields describe the best guess that was rejected.
type ValidationResult struct {
	Valid           bool                 `json:"isValid"`
	Reason          string               `json:"reason,omitempty"`
	DocumentType    DocumentKind         `json:"documentType"`
	Confidence      int                  `json:"confidence"`
	Scores          map[DocumentKind]int `json:"scores,omitempty"`
	WordCount       int                  `json:"wordCount"`
	MissingSections []string             `json:"missingSections"`
	Completeness    int                  `json:"completeness"`
	Report          *CompletenessReport  `json:"completenessReport,omitempty"`
}
