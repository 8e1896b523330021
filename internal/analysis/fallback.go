package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/llm"
)

// classifyByKeywords is the deterministic stand-in for LLM context analysis:
// it counts per-certification key-term hits across the conversation and
// suggests the certification with the most. Ties and empty conversations
// resolve to the first catalog entry so the answer is stable.
func classifyByKeywords(messages []llm.Message) ContextResult {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(strings.ToLower(m.Content))
		b.WriteString(" ")
	}
	text := b.String()

	type hit struct {
		certID string
		count  int
		topics []string
	}

	terms := catalog.KeyTermsByCertification()
	hits := make([]hit, 0, len(terms))
	for _, certID := range catalog.IDs() {
		h := hit{certID: certID}
		seen := make(map[string]bool)
		for _, term := range terms[certID] {
			if strings.Contains(text, term) && !seen[term] {
				seen[term] = true
				h.count++
				h.topics = append(h.topics, term)
			}
		}
		sort.Strings(h.topics)
		hits = append(hits, h)
	}

	// Stable sort keeps catalog order among equals.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })
	best := hits[0]

	confidence := "low"
	switch {
	case best.count >= 4:
		confidence = "high"
	case best.count >= 2:
		confidence = "medium"
	}

	reasoning := "No clear certification signal in the conversation."
	if best.count > 0 {
		reasoning = fmt.Sprintf("Matched %d %s topic(s) in the conversation.", best.count, best.certID)
	}

	topics := best.topics
	if topics == nil {
		topics = []string{}
	}

	return ContextResult{
		SuggestedCertification: best.certID,
		Confidence:             confidence,
		Reasoning:              reasoning,
		Topics:                 topics,
		Fallback:               true,
	}
}
