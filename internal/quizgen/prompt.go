package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/realnamesareboring/certifai/internal/catalog"
)

const quizSystemPrompt = `You are an exam content author for cloud certification practice tests.

Rules:
- Write scenario-based multiple-choice questions in the style of the official exam: a short realistic situation, then the question.
- Every question has exactly 4 options with exactly one correct answer. Distractors must be plausible services or approaches a candidate might confuse, not obviously wrong filler.
- Stay strictly inside the given certification domain and its key terms. Do not test material from other domains or certifications.
- The explanation must say why the correct option is right and briefly why each distractor is wrong.
- Use plain text. No markdown, no numbering inside the question text.
- Factual accuracy matters more than variety. Do not invent service names or limits.`

// buildUserMessage assembles the generation request for one domain. The
// response contract is rendered from BatchSchema so prompt and validator
// share one definition.
func buildUserMessage(cert *catalog.Certification, domain *catalog.Domain, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Certification: %s (%s)\n", cert.Name, cert.ID)
	fmt.Fprintf(&b, "Domain: %s (exam weight %s)\n", domain.Name, domain.ExamWeight)
	fmt.Fprintf(&b, "Focus: %s\n", domain.Focus)
	fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(domain.KeyTerms, ", "))

	b.WriteString("Scenario angles to draw from:\n")
	for i, hint := range domain.ScenarioHints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, hint)
	}

	fmt.Fprintf(&b, "\nGenerate exactly %d questions.\n", count)

	b.WriteString("\nRespond with JSON matching this schema exactly:\n")
	b.WriteString(renderSchemaContract())

	return b.String()
}

// renderSchemaContract serializes the batch schema definition for inclusion
// in the prompt text.
func renderSchemaContract() string {
	contract, err := json.Marshal(BatchSchema.Definition)
	if err != nil {
		// The definition is a package-level literal; marshaling it cannot
		// fail at runtime unless the literal itself is broken.
		panic(fmt.Sprintf("quizgen: marshal batch schema: %v", err))
	}
	return string(contract)
}
