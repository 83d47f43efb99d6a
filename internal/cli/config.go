package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinvalidate/create-validator/internal/branding"
	"github.com/tinvalidate/create-validator/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage project settings",
	Long: `Read and write settings stored in ` + branding.ConfigName() + `.yaml in the current directory.

Keys: ` + strings.Join(config.Keys(), ", ") + `
Each key can also be set with ` + branding.EnvVar("<key>") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := config.Set(e.fs, e.dir, key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		value, err := config.Get(e.fs, e.dir, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
