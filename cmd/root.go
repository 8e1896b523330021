package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "certifai",
	Short: "Cloud certification study coach",
	Long: "Certifai — backend for an AI-powered cloud-certification study coach: " +
		"quiz generation, scoring, and a gated tutor chat over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides CERTIFAI_DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event database path using the --db flag when
// set, otherwise the configured path. Empty disables the event store.
func resolveDBPath(cmd *cobra.Command, configured string) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return configured
}
