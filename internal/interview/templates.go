package interview

// Placeholders are written as {name} and filled with strings.Replacer.
var technicalTemplates = []string{
	"Describe your experience with {skill}.",
	"How have you used {skill} in your previous projects?",
	"Can you explain how {skill} works and when you would use it?",
	"What are the advantages and disadvantages of {skill}?",
	"How would you implement {skill} to solve {problem_type}?",
	"What's your approach to debugging issues with {skill}?",
	"Compare {skill} with {alternative_skill}. When would you choose one over the other?",
	"Describe a challenging problem you solved using {skill}.",
	"How do you stay updated with the latest developments in {skill}?",
	"What best practices do you follow when working with {skill}?",
}

var behavioralTemplates = []string{
	"Tell me about a time when you had to {situation}.",
	"Describe a situation where you {action}. What was the outcome?",
	"How do you handle {challenge}?",
	"Give an example of when you {positive_action}.",
	"Describe a time when you faced {obstacle}. How did you overcome it?",
	"Tell me about a project you're particularly proud of.",
	"How do you prioritize tasks when working on multiple projects?",
	"Describe a situation where you had to work under pressure or with tight deadlines.",
	"Tell me about a time when you had to learn a new skill quickly.",
	"How do you handle feedback or criticism?",
}

var companyTemplates = []string{
	"Why are you interested in working for {company}?",
	"What do you know about our company and our mission?",
	"How do your skills align with the {role} position?",
	"Where do you see yourself in 5 years if you join our company?",
	"What interests you most about this position?",
	"How would your experience contribute to our team?",
	"What challenges do you think {industry} is currently facing?",
	"What do you think sets {company} apart from our competitors?",
	"How do your values align with our company culture?",
	"What questions do you have about the role or our company?",
}

// behavioralValues fills the placeholders of behavioralTemplates.
// Keys are listed in placeholderKeys so filling order is stable.
var behavioralValues = map[string][]string{
	"situation": {
		"faced a challenging deadline",
		"had to resolve a conflict within your team",
		"had to adapt to a major change",
		"failed or made a mistake",
		"had to persuade someone to see your point of view",
		"had to make a difficult decision",
		"went above and beyond for a project",
		"had to deal with a difficult colleague or client",
		"had to prioritize competing tasks",
		"took initiative on a project",
	},
	"action": {
		"led a team through a difficult situation",
		"implemented a significant improvement",
		"solved a complex problem",
		"received critical feedback",
		"had to compromise",
		"disagreed with your manager",
		"had to motivate a demoralized team",
		"had to learn a new skill quickly",
		"had to explain a technical concept to non-technical stakeholders",
		"had to work with limited resources",
	},
	"challenge": {
		"tight deadlines",
		"conflicting priorities",
		"difficult team members",
		"unclear requirements",
		"limited resources",
		"resistance to change",
		"technical obstacles",
		"communication barriers",
		"failures or setbacks",
		"ambiguity",
	},
	"positive_action": {
		"demonstrated leadership",
		"showed creativity in problem-solving",
		"influenced others without formal authority",
		"learned from a failure",
		"successfully managed conflicting priorities",
		"improved a process or system",
		"collaborated across teams",
		"adapted to unexpected changes",
		"received and implemented feedback",
		"mentored or helped a colleague",
	},
	"obstacle": {
		"resistance to your ideas",
		"technical limitations",
		"resource constraints",
		"disagreements within the team",
		"unexpected changes to requirements",
		"tight deadlines",
		"lack of stakeholder support",
		"knowledge gaps",
		"communication challenges",
		"competing priorities",
	},
}

var placeholderKeys = []string{"situation", "action", "challenge", "positive_action", "obstacle"}

var problemTypes = []string{
	"performance optimization",
	"scalability issues",
	"data processing",
	"system integration",
	"security vulnerabilities",
	"user experience challenges",
	"debugging complex issues",
	"legacy system modernization",
	"real-time data handling",
	"cross-platform compatibility",
}

var programmingLanguages = []string{
	"Python", "JavaScript", "Java", "C#", "C++", "Ruby", "PHP", "Swift", "TypeScript", "Go",
}

// theme is a behavioural focus detected from words in the job text
type theme struct {
	words    []string
	question string
}

var themes = []theme{
	{[]string{"team", "collaborate"}, "Tell me about a time when you had to work effectively as part of a team."},
	{[]string{"lead", "manage"}, "Describe a situation where you had to lead a team through a challenging project."},
	{[]string{"problem", "solve"}, "Describe a complex problem you faced and how you went about solving it."},
	{[]string{"communicate", "presentation"}, "Tell me about a time when you had to explain a complex technical concept to a non-technical audience."},
}

var (
	fallbackTechnical = []string{
		"Tell me about your experience with programming languages and frameworks.",
		"How do you approach debugging a complex issue?",
		"Describe your experience with databases and data modeling.",
		"How do you ensure the quality of your code?",
		"Describe your experience with version control systems.",
	}
	fallbackBehavioral = []string{
		"Tell me about a challenging project you worked on recently.",
		"Describe a situation where you had to work under pressure.",
		"How do you handle conflicts within a team?",
		"Describe a situation where you had to learn a new technology quickly.",
		"Tell me about a time when you made a mistake and how you handled it.",
	}
	fallbackCompany = []string{
		"Why are you interested in this position?",
		"What do you know about our company?",
		"Where do you see yourself in 5 years?",
		"What are your strengths and weaknesses?",
		"Do you have any questions for us?",
	}
)
