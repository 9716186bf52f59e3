// Package cli implements the command-line driving adapter.
//
// Commands hold no business logic. They resolve configuration, call the
// core services through the driving ports, and print the results.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanbit-labs/weekrep-cli/internal/adapters/driven/config/file"
	"github.com/hanbit-labs/weekrep-cli/internal/connectors/notion"
	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driven"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driving"
	"github.com/hanbit-labs/weekrep-cli/internal/core/services"
	"github.com/hanbit-labs/weekrep-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Flags shared by the weeks and week commands.
var (
	policyFlag   string
	anchorFlag   string
	databaseFlag string
)

// Services used by the commands. Populated lazily by initServices;
// tests inject fakes directly.
var (
	configStore     driven.ConfigStore
	documentService driving.DocumentService
)

var rootCmd = &cobra.Command{
	Use:   "weekrep",
	Short: "Browse a Notion database as weekly reports",
	Long: `weekrep fetches the pages of a Notion database, groups them into
week buckets, and renders their content in the terminal.

Point it at a database with 'weekrep config', then run 'weekrep weeks'
for the summary or 'weekrep week N' for one week's documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		if configStore == nil {
			store, err := file.NewConfigStore(configDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			configStore = store
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Config directory (default ~/.weekrep)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// addReportFlags registers the flags shared by the report commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&policyFlag, "policy", "p", "", "Week policy: project, monthly, or iso (default from config)")
	cmd.Flags().StringVarP(&anchorFlag, "anchor", "a", "", "Project start date YYYY-MM-DD (required for the project policy)")
	cmd.Flags().StringVarP(&databaseFlag, "database", "d", "", "Database ID (default from config)")
}

// initServices wires the Notion-backed document service if no test
// injected one.
func initServices() error {
	if documentService != nil {
		return nil
	}

	token := configStore.GetString("notion.token")
	if token == "" {
		token = os.Getenv("NOTION_API_KEY")
	}
	if token == "" {
		return errors.New("no API token: run 'weekrep config set notion.token <token>' or set NOTION_API_KEY")
	}

	documentService = services.NewDocumentService(notion.NewStore(token))
	return nil
}

// resolveDatabase returns the database ID from the flag or config.
func resolveDatabase() (string, error) {
	id := databaseFlag
	if id == "" {
		id = configStore.GetString("notion.database_id")
	}
	if id == "" {
		return "", errors.New("no database: pass --database or run 'weekrep config set notion.database_id <id>'")
	}
	return id, nil
}

// buildWeeklyService constructs a weekly service from the flags, falling
// back to config for anything not passed explicitly.
func buildWeeklyService() (driving.WeeklyService, error) {
	policyName := policyFlag
	if policyName == "" {
		policyName = configStore.GetString("report.policy")
	}
	if policyName == "" {
		policyName = string(domain.WeekPolicyProject)
	}

	policy, err := domain.ParseWeekPolicy(policyName)
	if err != nil {
		return nil, err
	}

	var params domain.WeekParams
	anchorText := anchorFlag
	if anchorText == "" {
		anchorText = configStore.GetString("report.anchor")
	}
	if anchorText != "" {
		anchor, ok := domain.ParseDate(strings.TrimSpace(anchorText))
		if !ok {
			return nil, fmt.Errorf("%w: anchor %q is not a YYYY-MM-DD date", domain.ErrInvalidInput, anchorText)
		}
		params.Anchor = anchor
	}

	return services.NewWeeklyService(policy, params)
}

// resolveMaxDepth returns the recursion budget for block trees.
func resolveMaxDepth() int {
	if depth := configStore.GetInt("report.max_depth"); depth > 0 {
		return depth
	}
	return services.DefaultMaxDepth
}
