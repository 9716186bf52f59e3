package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanbit-labs/weekrep-cli/internal/logger"
)

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "Summarize the database by week",
	Long: `Fetches every page of the configured database, groups them into
week buckets under the selected policy, and prints a short preview of
each week.`,
	Args: cobra.NoArgs,
	RunE: runWeeks,
}

func init() {
	addReportFlags(weeksCmd)
	rootCmd.AddCommand(weeksCmd)
}

func runWeeks(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	databaseID, err := resolveDatabase()
	if err != nil {
		return err
	}

	weekly, err := buildWeeklyService()
	if err != nil {
		return err
	}

	ctx := context.Background()

	logger.Section("Fetch")
	docs, err := documentService.ListDocuments(ctx, databaseID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	logger.Section("Classify")
	buckets, err := weekly.Classify(docs)
	if err != nil {
		return err
	}

	weeks := weekly.Weeks()
	logger.Info("%d week(s) populated", len(weeks))
	if len(weeks) == 0 {
		cmd.Println("No dated documents found.")
		return nil
	}

	for _, week := range weeks {
		preview, err := weekly.Preview(week)
		if err != nil {
			return err
		}

		cmd.Printf("Week %d", preview.Week)
		if preview.Range != nil {
			cmd.Printf("  [%s]", preview.Range)
		}
		cmd.Printf("  -  %d document(s)\n", preview.Total)

		for i := range preview.Documents {
			doc := &preview.Documents[i]
			cmd.Printf("  - %s", doc.Title())
			if doc.DateInfo != nil {
				cmd.Printf("  (%s)", doc.DateInfo.Formatted)
			}
			cmd.Println()
		}
		if preview.More > 0 {
			cmd.Printf("  ... and %d more\n", preview.More)
		}
		cmd.Println()
	}

	classified := 0
	for _, bucket := range buckets {
		classified += len(bucket)
	}
	cmd.Printf("Total: %d weeks, %d documents", len(weeks), classified)
	if skipped := len(docs) - classified; skipped > 0 {
		cmd.Printf(" (%d without a date)", skipped)
	}
	cmd.Println()
	return nil
}
