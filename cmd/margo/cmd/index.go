package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dquint/margo/internal/errors"
	"github.com/dquint/margo/internal/fileindex"
)

// indexCmd represents the index command.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the configured roots and report indexed files",
	Long: `Scan the configured index roots for markdown files and print a
summary. Useful for checking what the finder will see without starting
the TUI.

Examples:
  margo index            # Scan and print the file count
  margo index --list     # Print every indexed path`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolP("list", "l", false, "Print every indexed path")
}

// runIndex handles the index command.
func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := fileindex.Scan(cmd.Context(), cfg.Index.Roots)
	if err != nil {
		return errors.Wrap(err, errors.ErrIndex, "index scan failed")
	}

	list, _ := cmd.Flags().GetBool("list")
	if list {
		for _, p := range paths {
			cmd.Println(p)
		}
	}
	cmd.Printf("Indexed %d markdown files under %v\n", len(paths), cfg.Index.Roots)
	return nil
}
