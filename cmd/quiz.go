package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realnamesareboring/certifai/internal/llm"
	"github.com/realnamesareboring/certifai/internal/quizgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a quiz from the terminal",
	Long: "Generates exam-style questions for a certification domain using the configured " +
		"LLM provider, or the built-in fallback bank when none is configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		certID, _ := cmd.Flags().GetString("cert")
		domain, _ := cmd.Flags().GetString("domain")
		count, _ := cmd.Flags().GetInt("count")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		ctx := context.Background()

		cfg := llm.ConfigFromEnv()
		cfg.Retry.MaxAttempts = 1
		provider := buildProvider(ctx, cfg, nil)

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		batch, err := gen.Generate(ctx, certID, domain, count)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		if batch.UsedFallback {
			fmt.Printf("(fallback questions: %s)\n\n", batch.FallbackReason)
		}

		for _, q := range batch.Questions {
			fmt.Printf("%d. %s\n", q.ID, q.Text)
			for i, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+i, opt)
			}
			if showAnswers {
				fmt.Printf("   answer: %c — %s\n", 'A'+q.Correct, q.Explanation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().String("cert", "AZ-900", "Certification code")
	quizCmd.Flags().String("domain", "Cloud Concepts", "Exam domain")
	quizCmd.Flags().Int("count", 5, "Number of questions")
	quizCmd.Flags().Bool("answers", false, "Print correct answers and explanations")
}
