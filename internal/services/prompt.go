package services

import (
	"fmt"
	"strings"
	"unicode"

	"alfredoptarigan/resume-tailor/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildTailoringPrompt creates the prompt that rewrites a resume
// against a job description. The model is told to return only the
// tailored text; callers still strip code fences from the response.
func (pb *PromptBuilder) BuildTailoringPrompt(jdText, resumeText string) string {
	return fmt.Sprintf(`Tailor this resume to match the job description. Rewrite the summary and bullet points to include relevant keywords and skills from the JD. Keep it professional and concise. Return only the tailored resume text.

**Job Description:**
%s

**Original Resume:**
%s

**Tailored Resume:**`, jdText, resumeText)
}

// BuildInterviewPrompt creates the prompt for likely interview
// questions, 10 in total across three fixed categories.
func (pb *PromptBuilder) BuildInterviewPrompt(jdText, resumeText string) string {
	return fmt.Sprintf(`Generate 10 likely interview questions for this job. Organize into 3 categories:

1. **Behavioral Questions** (3 questions)
2. **Technical/Skill-Based Questions** (4 questions)
3. **Role-Specific Questions** (3 questions)

Be specific to the resume and job description.

**Job Description:**
%s

**Resume:**
%s`, jdText, resumeText)
}

// BuildChatPrompt creates the resume-coach prompt: persona, resume,
// then the prior transcript replayed in the exact order supplied,
// followed by the new user message and the assistant cue.
func (pb *PromptBuilder) BuildChatPrompt(resumeText string, history []models.ChatTurn, message string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a helpful resume coach. Answer questions about this resume and provide actionable feedback.

**Resume:**
%s

Be concise, professional, and specific.`, resumeText)

	b.WriteString("\n\nConversation:\n")
	for _, turn := range history {
		fmt.Fprintf(&b, "%s: %s\n", titleCase(turn.Role), turn.Content)
	}
	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", message)

	return b.String()
}

// titleCase capitalizes the first letter of each word and lowers the
// rest, for role labels like "user" -> "User".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return b.String()
}
