package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
	"github.com/hanbit-labs/weekrep-cli/internal/logger"
	"github.com/hanbit-labs/weekrep-cli/internal/render"
)

var weekCmd = &cobra.Command{
	Use:   "week [number]",
	Short: "Print one week's documents in full",
	Long: `Fetches the documents of one week bucket and renders each
document's block tree as text.`,
	Args: cobra.ExactArgs(1),
	RunE: runWeek,
}

func init() {
	addReportFlags(weekCmd)
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	week, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: week %q is not a number", domain.ErrInvalidInput, args[0])
	}

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

	if _, err := weekly.Classify(docs); err != nil {
		return err
	}

	bucket, err := weekly.Bucket(week)
	if err != nil {
		if errors.Is(err, domain.ErrWeekNotFound) {
			return fmt.Errorf("week %d has no documents (populated weeks: %v)", week, weekly.Weeks())
		}
		return err
	}

	cmd.Printf("Week %d  -  %d document(s)\n", week, len(bucket))
	maxDepth := resolveMaxDepth()
	logger.Info("rendering %d document(s) for week %d (depth budget %d)", len(bucket), week, maxDepth)

	for i := range bucket {
		doc := &bucket[i]

		cmd.Println()
		cmd.Printf("== %s ==\n", doc.Title())
		if doc.DateInfo != nil {
			cmd.Printf("Date: %s\n", doc.DateInfo.Formatted)
		}
		if doc.URL != "" {
			cmd.Printf("URL:  %s\n", doc.URL)
		}
		for _, prop := range doc.Properties {
			if prop.Type == domain.PropertyTitle || prop.Value == "" {
				continue
			}
			cmd.Printf("%s: %s\n", prop.Name, prop.Value)
		}

		tree, err := documentService.FetchTree(ctx, doc.ID, maxDepth)
		if err != nil {
			cmd.Printf("\n(content unavailable: %v)\n", err)
			continue
		}

		if body := render.Blocks(tree.Blocks); body != "" {
			cmd.Println()
			cmd.Println(body)
		}
		if len(tree.Failed) > 0 {
			cmd.Printf("(%d nested section(s) could not be fetched)\n", len(tree.Failed))
		}
	}

	return nil
}
