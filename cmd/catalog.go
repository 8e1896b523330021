package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/realnamesareboring/certifai/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List supported certifications and their exam domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		for _, cert := range catalog.All() {
			fmt.Printf("%s — %s\n", cert.ID, cert.Name)
			for _, d := range cert.Domains {
				fmt.Printf("  %-45s %s\n", d.Name, d.ExamWeight)
				if verbose {
					fmt.Printf("    %s\n", d.Focus)
					fmt.Printf("    key terms: %s\n", strings.Join(d.KeyTerms, ", "))
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("verbose", false, "Include domain focus and key terms")
}
