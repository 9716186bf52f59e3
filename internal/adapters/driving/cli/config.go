package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and set configuration values.

Common keys:
  notion.token        Internal-integration token
  notion.database_id  Default database to report on
  report.policy       Default week policy (project, monthly, iso)
  report.anchor       Project start date for the project policy
  report.max_depth    Block tree recursion budget`,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := configStore.Set(key, coerceValue(value)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

// coerceValue stores numeric and boolean command-line arguments with
// their natural TOML type. Keys like report.max_depth are read back
// through the typed getters, which do not convert strings.
func coerceValue(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	val, ok := configStore.Get(key)
	if !ok {
		cmd.Printf("%s is not set\n", key)
		return nil
	}

	cmd.Printf("%v\n", val)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	cmd.Println(configStore.Path())
	return nil
}
