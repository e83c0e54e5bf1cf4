package ai

import (
	"fmt"
	"strings"

	"searchfind/internal/config"
	"searchfind/internal/types"
)

const (
	maxJobTextChars = 4000
	maxResumeSkills = 15
	maxResumeRoles  = 3
)

// DefaultSystemPrompt is the system instruction for interview question generation
const DefaultSystemPrompt = `You are an experienced technical recruiter and hiring manager who prepares structured interviews.

Your principles:
- Every question must be answerable from real professional experience
- Ask about skills and responsibilities that the job description actually names
- Never ask about age, family, religion, health, nationality or other protected characteristics
- Prefer open questions that invite a concrete example over yes/no questions
- Write each question as a single sentence or two, without numbering or commentary`

// DefaultUserPrompt is the user prompt template. Placeholders in double
// braces are replaced before the request is sent.
const DefaultUserPrompt = `Write {{count}} interview questions for the position below.

Mix questions about the required skills, the day-to-day responsibilities and how the candidate works with others.
Do not repeat common generic questions such as "Tell me about yourself" or "Where do you see yourself in 5 years?".

**Position:** {{jobTitle}}
**Company:** {{company}}
**Required skills:** {{skills}}

**Job Description:**
-----
{{jobDescription}}
-----

**Candidate background:**
-----
{{candidate}}
-----

Return the questions in the "questions" array.`

// resolvePrompt selects the prompt in priority order: configured (inline or
// loaded from file), then the built-in default
func resolvePrompt(fromConfig, fromDefault string) string {
	if strings.TrimSpace(fromConfig) != "" {
		return fromConfig
	}
	return fromDefault
}

func systemPrompt(cfg *config.AIConfig) string {
	return resolvePrompt(cfg.Prompts.System, DefaultSystemPrompt)
}

// buildUserPrompt fills the user prompt template for a job and optional resume
func buildUserPrompt(cfg *config.AIConfig, job types.JobRequirements, resume *types.ExtractedDocument, count int) string {
	template := resolvePrompt(cfg.Prompts.User, DefaultUserPrompt)

	r := strings.NewReplacer(
		"{{count}}", fmt.Sprint(count),
		"{{jobTitle}}", orDefault(job.Title, "Not specified"),
		"{{company}}", orDefault(job.Company, "Not specified"),
		"{{skills}}", orDefault(strings.Join(job.RequiredSkills, ", "), "Not specified"),
		"{{jobDescription}}", orDefault(truncate(strings.TrimSpace(job.Text), maxJobTextChars), "Not provided"),
		"{{candidate}}", candidateSummary(resume),
	)
	return r.Replace(template)
}

// candidateSummary lists the resume's skills and most recent roles. Raw
// resume text is never sent.
func candidateSummary(resume *types.ExtractedDocument) string {
	if resume == nil {
		return "Not provided"
	}

	var b strings.Builder
	if len(resume.Skills) > 0 {
		skills := resume.Skills[:min(len(resume.Skills), maxResumeSkills)]
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
	}
	for _, e := range resume.Experience[:min(len(resume.Experience), maxResumeRoles)] {
		fmt.Fprintf(&b, "Role: %s at %s (%s)\n", e.Title, e.Company, e.Years)
	}
	if b.Len() == 0 {
		return "Not provided"
	}
	return strings.TrimSpace(b.String())
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
