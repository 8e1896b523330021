package chat

import (
	"strings"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/catalog"
)

const tutorBasePrompt = `You are a study tutor for cloud-certification candidates preparing for Microsoft fundamentals exams.
Stay on certification topics: cloud concepts, Azure services, exam structure, and study strategy.
Keep answers accurate and exam-relevant. When a concept has an official term, use it.`

// buildChatSystemPrompt assembles the tutor instruction, adapted to the
// learner's style profile when one is available. A nil profile yields the
// unadapted base prompt.
func buildChatSystemPrompt(certID string, style *analysis.StyleProfile) string {
	var b strings.Builder
	b.WriteString(tutorBasePrompt)

	if cert, err := catalog.Get(certID); err == nil {
		b.WriteString("\nThe learner is preparing for ")
		b.WriteString(cert.ID)
		b.WriteString(" (")
		b.WriteString(cert.Name)
		b.WriteString("); prefer examples from its exam outline.")
	}

	if style == nil {
		return b.String()
	}

	b.WriteString("\nAdapt your replies to the learner:")

	switch style.Tone {
	case "casual":
		b.WriteString("\n- Keep the tone friendly and informal.")
	case "formal":
		b.WriteString("\n- Keep the tone professional and precise.")
	default:
		b.WriteString("\n- Keep the tone approachable but precise.")
	}

	switch style.Complexity {
	case "simple":
		b.WriteString("\n- Use plain language and avoid jargon unless the exam requires it.")
	case "detailed":
		b.WriteString("\n- Give thorough answers that cover the edge cases.")
	case "technical":
		b.WriteString("\n- Use precise technical terminology without simplifying.")
	}

	switch style.ExplanationStyle {
	case "examples":
		b.WriteString("\n- Lead with a concrete example before the general rule.")
	case "step-by-step":
		b.WriteString("\n- Break explanations into numbered steps.")
	case "analogies":
		b.WriteString("\n- Anchor new concepts with a relatable analogy.")
	case "direct":
		b.WriteString("\n- Answer directly first, then elaborate only if useful.")
	}

	switch style.LearningPreference {
	case "visual":
		b.WriteString("\n- Describe structure spatially: tables, lists, and layouts the learner can picture.")
	case "structured":
		b.WriteString("\n- Organize every answer with clear headings or ordered points.")
	case "conversational":
		b.WriteString("\n- Keep the flow conversational and check understanding as you go.")
	}

	return b.String()
}
