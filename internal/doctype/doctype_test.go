package doctype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/textproc"
	"searchfind/internal/types"
)

const resumeText = `Jane Doe
jane@example.com | (512) 555-0100 | linkedin.com/in/janedoe

Summary
Backend engineer proficient in Python and experienced with distributed systems, with knowledge of cloud platforms.

Experience
Software Engineer at Acme Corp
2018 - Present
- Developed billing services
- Improved latency by 30%
- Implemented CI pipelines
- Reduced costs
Junior Developer at Initech
2015 - 2018
- Created reports

Education
Bachelor of Science in Computer Science, State University, 2015

Skills
Python, Go, SQL, Docker, Kubernetes`

const jobText = `We are looking for a Backend Engineer to join our team.

Responsibilities
- Build APIs
- Review code
- Mentor engineers
- Improve reliability
- Write docs

Requirements
- 5+ years of experience with Python
- Must have strong SQL skills

Benefits
Full-time, remote friendly, competitive salary.

How to apply
Apply now via our site.`

const coverLetterText = `Dear Hiring Manager,

I am writing to apply for the Backend Engineer position at Globex. I am interested in this role because my background fits. I look forward to hearing from you. Thank you for your consideration.

Sincerely,
Jane`

func TestValidate_Resume(t *testing.T) {
	result := New(nil).Validate(resumeText)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	assert.Equal(t, types.KindResume, result.DocumentType)
	assert.Equal(t, 90, result.Confidence)
	assert.Equal(t, 90, result.Scores[types.KindResume])
	assert.Equal(t, 20, result.Scores[types.KindOther])
	assert.Equal(t, 100, result.Completeness)
	assert.Empty(t, result.MissingSections)
	require.NotNil(t, result.Report)
	assert.Equal(t, 88, result.Report.OverallScore)
}

func TestValidate_JobDescription(t *testing.T) {
	result := New(nil).Validate(jobText)

	assert.True(t, result.Valid)
	assert.Equal(t, types.KindJobDescription, result.DocumentType)
	assert.Equal(t, 85, result.Confidence)
	assert.GreaterOrEqual(t, result.Confidence, HighConfidence)
	assert.Nil(t, result.Report)
}

func TestValidate_CoverLetter(t *testing.T) {
	result := New(nil).Validate(coverLetterText)

	assert.True(t, result.Valid)
	assert.Equal(t, types.KindCoverLetter, result.DocumentType)
	assert.Equal(t, 90, result.Confidence)
}

func TestValidate_TooShort(t *testing.T) {
	for _, text := range []string{"", "   \n\t", "just a few words here"} {
		result := New(nil).Validate(text)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonTooShort, result.Reason)
		assert.Equal(t, types.KindUnknown, result.DocumentType)
		assert.Zero(t, result.Confidence)
		assert.Len(t, result.Scores, 4)
	}
}

func TestValidate_LowConfidence(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog while the sun sets slowly behind the distant hills and the river keeps flowing toward the sea."
	result := New(nil).Validate(text)

	assert.False(t, result.Valid)
	assert.Equal(t, types.KindOther, result.DocumentType)
	assert.Equal(t, 20, result.Confidence)
	assert.Less(t, result.Confidence, MediumConfidence)
	assert.Equal(t, "Document doesn't appear to be a valid other", result.Reason)
}

func TestValidateResume_RejectsOtherKinds(t *testing.T) {
	v := New(textproc.New(nil))

	assert.True(t, v.ValidateResume(resumeText).Valid)

	result := v.ValidateResume(jobText)
	assert.False(t, result.Valid)
	assert.Equal(t, "Document is not a valid resume", result.Reason)
	assert.Equal(t, types.KindJobDescription, result.DocumentType)
}

func TestCompleteness(t *testing.T) {
	e := textproc.New(nil)
	doc := e.Extract(resumeText, types.KindResume)
	report := New(e).Completeness(resumeText, &doc)

	want := map[string]float64{
		SectionContact:    1.0,
		SectionSummary:    0.7,
		SectionExperience: 1.0,
		SectionEducation:  1.0,
		SectionSkills:     0.7,
	}
	require.Len(t, report.Sections, len(want))
	for _, s := range report.Sections {
		assert.True(t, s.Present, s.Name)
		assert.InDelta(t, want[s.Name], s.Score, 1e-9, s.Name)
	}
	assert.Empty(t, report.Recommendations)
}

func TestCompleteness_MissingSections(t *testing.T) {
	text := "Jane Doe\nI build backend services and like to ship small, well tested changes every week."
	e := textproc.New(nil)
	doc := e.Extract(text, types.KindResume)
	report := New(e).Completeness(text, &doc)

	assert.Equal(t, 0, report.Completeness)
	assert.Equal(t, 0, report.OverallScore)
	assert.Equal(t, []string{"contact info", "summary", "experience", "education", "skills"}, report.MissingSections)
	assert.Contains(t, report.Recommendations, "Add a contact info section")
	for _, s := range report.Sections {
		assert.Equal(t, "Needs Improvement", s.Rating)
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Excellent"},
		{0.9, "Excellent"},
		{0.8, "Good"},
		{0.7, "Good"},
		{0.5, "Adequate"},
		{0.4, "Adequate"},
		{0.0, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.score), "score %v", tt.score)
	}
}

func TestCountListed(t *testing.T) {
	assert.Equal(t, 3, countListed("Go, SQL, Docker"))
	assert.Equal(t, 2, countListed("• Go • SQL"))
	assert.Equal(t, 4, countListed("Go SQL Docker Kubernetes"))
}
