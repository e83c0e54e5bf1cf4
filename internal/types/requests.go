package types

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct tags of a JobListing
func (j *JobListing) Validate() error {
	return validate.Struct(j)
}

// Validate checks the struct tags of a Candidate
func (c *Candidate) Validate() error {
	return validate.Struct(c)
}

// ExtractRequest asks for the structured view of a document
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=resume job_description cover_letter"`
}

// ValidateRequest asks for the document type of a text
type ValidateRequest struct {
	Text string `json:"text" validate:"required"`
}

// MatchRequest scores one resume against one job
type MatchRequest struct {
	ResumeText string      `json:"resumeText" validate:"required"`
	Job        *JobListing `json:"job" validate:"required"`
}

// RankRequest scores many candidates against one job
type RankRequest struct {
	Job        *JobListing `json:"job" validate:"required"`
	Candidates []Candidate `json:"candidates" validate:"required,min=1,dive"`
}

// QualifyRequest checks one resume against several jobs
type QualifyRequest struct {
	ResumeText string       `json:"resumeText" validate:"required"`
	Jobs       []JobListing `json:"jobs" validate:"required,min=1,dive"`
}

// InterviewRequest asks for interview questions for a job, optionally personalised by a resume
type InterviewRequest struct {
	Job        *JobListing `json:"job" validate:"required"`
	ResumeText string      `json:"resumeText,omitempty"`
}

// GuidanceRequest asks how to answer a kind of interview question
type GuidanceRequest struct {
	QuestionType string `json:"questionType"`
	Question     string `json:"question,omitempty"`
}

func (r *ExtractRequest) Validate() error   { return validate.Struct(r) }
func (r *ValidateRequest) Validate() error  { return validate.Struct(r) }
func (r *MatchRequest) Validate() error     { return validate.Struct(r) }
func (r *RankRequest) Validate() error      { return validate.Struct(r) }
func (r *QualifyRequest) Validate() error   { return validate.Struct(r) }
func (r *InterviewRequest) Validate() error { return validate.Struct(r) }
