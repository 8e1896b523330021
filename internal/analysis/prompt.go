package analysis

import (
	"fmt"
	"strings"

	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/llm"
)

const styleSystemPrompt = `You are a learning-style analyst for a cloud-certification study coach.
Given a short writing sample from a learner, infer how they prefer to communicate and learn.
Judge only from the sample. Do not guess beyond what the text supports; lower your confidence instead.
Respond with JSON only.`

const contextSystemPrompt = `You are a study advisor for cloud-certification candidates.
Given a study conversation, decide which certification the learner is most likely preparing for and which topics they have touched on.
Pick only from the listed certifications. If the conversation gives weak signal, say so with low confidence.
Respond with JSON only.`

func buildStyleUserMessage(sample string) string {
	var b strings.Builder
	b.WriteString("Analyze the communication style of this writing sample:\n\n")
	b.WriteString(sample)
	return b.String()
}

func buildContextUserMessage(messages []llm.Message) string {
	var b strings.Builder

	b.WriteString("Supported certifications:\n")
	for _, c := range catalog.All() {
		fmt.Fprintf(&b, "- %s: %s\n", c.ID, c.Name)
	}

	b.WriteString("\nConversation:\n")
	for _, m := range messages {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}

	return b.String()
}
