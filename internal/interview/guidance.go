package interview

import (
	"slices"
	"strings"

	"searchfind/internal/types"
)

// Question kinds accepted by Guidance
const (
	KindTechnical  = "technical"
	KindBehavioral = "behavioral"
	KindCompany    = "company"
	KindDifficult  = "difficult"
)

var starFramework = types.AnswerFramework{
	Title:       "STAR Method",
	Description: "Structure your answer to behavioral questions with this framework",
	Steps: []types.FrameworkStep{
		{Name: "Situation", Description: "Describe the context and background of the situation you faced", Tips: []string{
			"Be specific about when and where the situation occurred",
			"Provide enough context for the interviewer to understand the scenario",
			"Keep it concise - aim for 2-3 sentences",
		}},
		{Name: "Task", Description: "Explain your responsibility or role in the situation", Tips: []string{
			"Clarify what was expected of you",
			"Highlight any challenges or constraints",
			"Make your specific responsibilities clear",
		}},
		{Name: "Action", Description: "Describe the specific actions you took to address the situation", Tips: []string{
			"Focus on YOUR actions (use 'I' instead of 'we')",
			"Be detailed about the steps you took",
			"Highlight relevant skills or qualities you demonstrated",
			"Explain your reasoning for the actions you chose",
		}},
		{Name: "Result", Description: "Share the outcomes of your actions, quantifying if possible", Tips: []string{
			"Use specific metrics or numbers when possible",
			"Mention both immediate results and longer-term impacts",
			"Include what you learned from the experience",
			"Connect the result back to the original situation",
		}},
	},
}

var technicalFramework = types.AnswerFramework{
	Title:       "Technical Question Framework",
	Description: "Approach for answering technical questions effectively",
	Steps: []types.FrameworkStep{
		{Name: "Understand", Description: "Make sure you fully understand what is being asked", Tips: []string{
			"Restate the question in your own words if needed",
			"Ask clarifying questions if any part is unclear",
			"Consider the interviewer's intent behind the question",
		}},
		{Name: "Context", Description: "Provide context about your experience with the topic", Tips: []string{
			"Briefly mention your level of experience with the technology",
			"Reference relevant projects or situations",
			"Position your knowledge appropriately (expert, familiar, etc.)",
		}},
		{Name: "Core Concepts", Description: "Explain the fundamental concepts or principles", Tips: []string{
			"Start with a clear definition or explanation",
			"Cover the most important elements first",
			"Demonstrate depth of understanding beyond surface-level knowledge",
		}},
		{Name: "Application", Description: "Describe how you've applied this knowledge practically", Tips: []string{
			"Give a specific example from your experience",
			"Explain your decision-making process",
			"Highlight challenges and how you overcame them",
		}},
		{Name: "Trade-offs", Description: "Discuss advantages, limitations, and alternatives", Tips: []string{
			"Show balanced thinking by covering pros and cons",
			"Compare with alternative approaches when relevant",
			"Demonstrate awareness of best practices and when to apply them",
		}},
		{Name: "Conclusion", Description: "Summarize your answer concisely", Tips: []string{
			"Circle back to the original question",
			"Reinforce your main points",
			"End with confidence, showing you're open to follow-up questions",
		}},
	},
}

var companyFramework = types.AnswerFramework{
	Title:       "Company/Role Question Framework",
	Description: "Structure for answering questions about your interest in the company or role",
	Steps: []types.FrameworkStep{
		{Name: "Research", Description: "Demonstrate that you've researched the company", Tips: []string{
			"Reference the company's mission, values, products, or recent news",
			"Show you understand their industry position and challenges",
			"Mention specific aspects that genuinely interest you",
		}},
		{Name: "Alignment", Description: "Connect your background and goals to the company and role", Tips: []string{
			"Highlight specific skills or experiences that match their needs",
			"Explain how your career goals align with what the company offers",
			"Show how your values match their company culture",
		}},
		{Name: "Value", Description: "Articulate the value you would bring to the company", Tips: []string{
			"Focus on how you can help solve their specific challenges",
			"Mention unique perspectives or skills you offer",
			"Be specific about contributions you hope to make",
		}},
		{Name: "Enthusiasm", Description: "Express genuine interest and enthusiasm", Tips: []string{
			"Be authentic about why you're excited about this opportunity",
			"Show passion for the industry, technology, or company mission",
			"Demonstrate a forward-looking perspective about the role",
		}},
	},
}

var difficultFramework = types.AnswerFramework{
	Title:       "Difficult Question Framework",
	Description: "Approach for handling challenging or unexpected questions",
	Steps: []types.FrameworkStep{
		{Name: "Pause", Description: "Take a moment to collect your thoughts", Tips: []string{
			"It's okay to briefly pause before answering difficult questions",
			"Use phrases like 'That's a good question' to give yourself time",
			"Don't rush into an answer you haven't thought through",
		}},
		{Name: "Reframe", Description: "Consider the purpose behind the question", Tips: []string{
			"Identify what the interviewer is really trying to learn",
			"Look for opportunities to highlight your strengths",
			"If a question seems negative, find a constructive angle",
		}},
		{Name: "Structure", Description: "Organize your thoughts before speaking", Tips: []string{
			"For complex questions, briefly outline your approach",
			"Start with the most important point",
			"Use a logical progression in your answer",
		}},
		{Name: "Honest Reflection", Description: "Be truthful while remaining positive", Tips: []string{
			"Address weaknesses honestly but constructively",
			"Include what you've learned or how you're improving",
			"Don't avoid the question or be overly negative",
		}},
		{Name: "Concise Closure", Description: "End your answer clearly and positively", Tips: []string{
			"Summarize your main point succinctly",
			"End on a forward-looking or positive note",
			"Don't ramble or leave your answer open-ended",
		}},
	},
}

var commonTips = []string{
	"Take a moment to gather your thoughts before answering",
	"Use specific examples from your experience",
}

var kindTips = map[string][]string{
	KindTechnical: {
		"Show your problem-solving approach, not just the final answer",
		"Explain your thinking step by step",
		"Mention trade-offs or alternatives if relevant",
	},
	KindBehavioral: {
		"Use the STAR method (Situation, Task, Action, Result)",
		"Focus on YOUR specific actions and contributions",
		"Quantify results whenever possible",
	},
	KindCompany: {
		"Show you've researched the company and understand their mission",
		"Connect your skills and experience to the specific role",
		"Express genuine interest in the company and position",
	},
	KindDifficult: {
		"Stay calm and composed, even with challenging questions",
		"Be honest but frame your answer positively",
		"It's okay to briefly pause to organize your thoughts",
	},
}

// keywordTips adds advice when the question mentions any of the words
var keywordTips = []struct {
	words []string
	tip   string
}{
	{[]string{"challenge", "difficult"}, "Focus on how you overcame the challenge, not just the challenge itself"},
	{[]string{"mistake", "fail"}, "Show what you learned from the experience and how you've grown"},
	{[]string{"team", "collaborate"}, "Highlight your specific role while acknowledging team contribution"},
	{[]string{"conflict", "disagree"}, "Emphasize professional resolution and positive outcomes"},
	{[]string{"weakness"}, "Mention a genuine weakness, but focus on how you're working to improve it"},
	{[]string{"project"}, "Choose a relevant project that showcases skills important for this role"},
}

type dosAndDonts struct {
	dos, donts []string
}

var kindDosAndDonts = map[string]dosAndDonts{
	KindTechnical: {
		dos: []string{
			"Demonstrate your problem-solving approach",
			"Show depth of knowledge in your strongest areas",
			"Acknowledge limitations of your approach",
			"Refer to specific experiences with technologies",
			"Ask clarifying questions if needed",
		},
		donts: []string{
			"Don't bluff if you don't know something",
			"Avoid oversimplifying complex concepts",
			"Don't get lost in unnecessary details",
			"Avoid jargon without explanation",
			"Don't criticize technologies or approaches",
		},
	},
	KindBehavioral: {
		dos: []string{
			"Use specific, real examples from your experience",
			"Focus on your individual contribution",
			"Quantify results and achievements",
			"Show what you learned from the experience",
			"Keep your answer structured and concise",
		},
		donts: []string{
			"Don't use hypothetical scenarios instead of real experiences",
			"Avoid vague or generic responses",
			"Don't speak negatively about former colleagues or employers",
			"Avoid taking credit for team accomplishments",
			"Don't ramble or lose focus in your answer",
		},
	},
	KindCompany: {
		dos: []string{
			"Show you've researched the company thoroughly",
			"Connect your skills to the specific role",
			"Express authentic enthusiasm for the opportunity",
			"Ask thoughtful questions about the role or company",
			"Demonstrate alignment with company values",
		},
		donts: []string{
			"Don't give generic answers that could apply to any company",
			"Avoid focusing only on what the company can do for you",
			"Don't mention salary or benefits as your primary motivation",
			"Avoid mentioning only surface-level company facts",
			"Don't express uncertainty about whether the role is right for you",
		},
	},
}

var generalDosAndDonts = dosAndDonts{
	dos: []string{
		"Be honest and authentic in your answers",
		"Stay positive and solution-focused",
		"Take a moment to gather your thoughts if needed",
		"Provide specific examples to support your points",
		"Maintain good eye contact and positive body language",
	},
	donts: []string{
		"Don't badmouth previous employers or colleagues",
		"Avoid being defensive or argumentative",
		"Don't provide overly personal information",
		"Avoid memorized or scripted-sounding answers",
		"Don't rush through difficult questions",
	},
}

func frameworkFor(kind string) types.AnswerFramework {
	switch kind {
	case KindTechnical:
		return technicalFramework
	case KindCompany:
		return companyFramework
	case KindDifficult:
		return difficultFramework
	default:
		return starFramework
	}
}

// Guidance returns an answer framework, tips, and dos and don'ts for a kind
// of question. Unknown kinds get the STAR method and general advice.
// Tips specific to the question are only given when question is non-empty.
func Guidance(questionType, question string) types.AnswerGuidance {
	kind := strings.ToLower(strings.TrimSpace(questionType))
	dd, ok := kindDosAndDonts[kind]
	if !ok {
		dd = generalDosAndDonts
	}
	return types.AnswerGuidance{
		QuestionType: questionType,
		Question:     question,
		Framework:    frameworkFor(kind),
		SpecificTips: specificTips(kind, question),
		Dos:          slices.Clone(dd.dos),
		Donts:        slices.Clone(dd.donts),
	}
}

func specificTips(kind, question string) []string {
	if strings.TrimSpace(question) == "" {
		return []string{}
	}
	tips := slices.Clone(commonTips)
	extra, ok := kindTips[kind]
	if !ok {
		return tips
	}
	tips = append(tips, extra...)

	q := strings.ToLower(question)
	for _, kt := range keywordTips {
		if slices.ContainsFunc(kt.words, func(w string) bool { return strings.Contains(q, w) }) {
			tips = append(tips, kt.tip)
		}
	}
	return tips
}
