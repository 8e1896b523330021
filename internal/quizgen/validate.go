package quizgen

import "fmt"

// batchOutput is the raw parsed LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Domain      string   `json:"domain"`
}

// validateBatch structurally checks a parsed generation response. Any
// deviation rejects the whole batch; a single broken question is judged
// worse than regenerating from the static bank, so there is no per-field
// repair.
func validateBatch(out batchOutput) error {
	if len(out.Questions) == 0 {
		return fmt.Errorf("empty questions array")
	}
	for i, q := range out.Questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateQuestion(q questionOutput) error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.Correct < 0 || q.Correct > 3 {
		return fmt.Errorf("correct index %d out of range [0,3]", q.Correct)
	}
	if q.Explanation == "" {
		return fmt.Errorf("explanation is empty")
	}
	return nil
}
