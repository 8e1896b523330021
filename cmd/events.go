package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/realnamesareboring/certifai/internal/config"
	"github.com/realnamesareboring/certifai/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded audit events",
}

var eventsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		repo, closeFn, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-16s  %-24s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("-", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "yes"
			if !e.Success {
				ok = "no"
			}
			fmt.Printf("%-6d  %-19s  %-16s  %-24s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Format("2006-01-02 15:04:05"),
				e.Purpose,
				e.Model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var eventsQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "List recent quiz lifecycle events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		repo, closeFn, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		events, err := repo.QueryQuizEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No quiz events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-10s  %-8s  %-32s  %-5s  %-8s  %s\n",
			"Seq", "Timestamp", "Kind", "Cert", "Domain", "Qs", "Fallback", "Score")
		fmt.Println(strings.Repeat("-", 110))

		for _, e := range events {
			score := "-"
			if e.Kind == "scored" {
				score = fmt.Sprintf("%d/%d (%d%%)", e.Score, e.QuestionCount, e.Percentage)
			}
			fallback := ""
			if e.UsedFallback {
				fallback = "yes"
			}
			fmt.Printf("%-6d  %-19s  %-10s  %-8s  %-32s  %-5d  %-8s  %s\n",
				e.Sequence,
				e.Timestamp.Format("2006-01-02 15:04:05"),
				e.Kind,
				e.CertificationID,
				e.Domain,
				e.QuestionCount,
				fallback,
				score,
			)
		}
		return nil
	},
}

func openEventRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	path := resolveDBPath(cmd, cfg.Store.Path)
	if path == "" {
		return nil, nil, fmt.Errorf("no event database configured; set CERTIFAI_DB_PATH or pass --db")
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return s.EventRepo(), func() { s.Close() }, nil
}

func init() {
	eventsLLMCmd.Flags().Int("limit", 20, "Maximum events to show")
	eventsLLMCmd.Flags().String("purpose", "", "Filter by purpose (quiz-gen, chat, style-analysis, context-analysis)")
	eventsQuizCmd.Flags().Int("limit", 20, "Maximum events to show")

	eventsCmd.AddCommand(eventsLLMCmd)
	eventsCmd.AddCommand(eventsQuizCmd)
}
