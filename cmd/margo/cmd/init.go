package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dquint/margo/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file to ~/.margo/config.yaml.

Examples:
  margo init            # Write default config (refuses to overwrite)
  margo init --force    # Overwrite an existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// runInit handles the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.NewConfig()
	if err := cfg.Save(path); err != nil {
		return err
	}

	cmd.Printf("Wrote default config to %s\n", path)
	return nil
}
