package analysis

import (
	"fmt"

	"github.com/realnamesareboring/certifai/internal/catalog"
)

var (
	tones               = []string{"casual", "formal", "mixed"}
	complexities        = []string{"simple", "detailed", "technical"}
	explanationStyles   = []string{"examples", "step-by-step", "analogies", "direct"}
	learningPreferences = []string{"visual", "conversational", "structured"}
	confidenceLevels    = []string{"high", "medium", "low"}
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func validateStyle(out styleOutput) error {
	if !oneOf(out.Style.Tone, tones) {
		return fmt.Errorf("tone %q outside allowed set", out.Style.Tone)
	}
	if !oneOf(out.Style.Complexity, complexities) {
		return fmt.Errorf("complexity %q outside allowed set", out.Style.Complexity)
	}
	if !oneOf(out.Style.ExplanationStyle, explanationStyles) {
		return fmt.Errorf("explanationStyle %q outside allowed set", out.Style.ExplanationStyle)
	}
	if !oneOf(out.Style.LearningPreference, learningPreferences) {
		return fmt.Errorf("learningPreference %q outside allowed set", out.Style.LearningPreference)
	}
	if !oneOf(out.Confidence, confidenceLevels) {
		return fmt.Errorf("confidence %q outside allowed set", out.Confidence)
	}
	return nil
}

func validateContext(out contextOutput) error {
	if !catalog.IsKnown(out.SuggestedCertification) {
		return fmt.Errorf("suggested certification %q is not in the catalog", out.SuggestedCertification)
	}
	if !oneOf(out.Confidence, confidenceLevels) {
		return fmt.Errorf("confidence %q outside allowed set", out.Confidence)
	}
	return nil
}
