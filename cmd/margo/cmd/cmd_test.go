package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dquint/margo/internal/config"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "margo [file...]",
		Short: "margo - terminal markdown reader",
		Long: `Margo is a terminal markdown reader with tabs, a fuzzy file
finder and a command palette.`,
	}
	root.Version = "test"
	root.SetVersionTemplate("margo {{.Version}}\n")
	root.PersistentFlags().String("config", "", "Path to config file")

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE:  runInit,
	}
	initC.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	root.AddCommand(initC)

	indexC := &cobra.Command{
		Use:   "index",
		Short: "Scan the configured roots and report indexed files",
		RunE:  runIndex,
	}
	indexC.Flags().BoolP("list", "l", false, "Print every indexed path")
	root.AddCommand(indexC)

	versionC := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
	root.AddCommand(versionC)

	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := newTestRoot()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantErr:    false,
			wantOutput: "Available Commands:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantErr:    false,
			wantOutput: "margo",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"margo", "commit:", "go:", "platform:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output = %q, want to contain %q", out, want)
		}
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "init", "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Wrote default config") {
		t.Errorf("Output = %q, want write confirmation", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "palette: "+config.DefaultPaletteChord) {
		t.Errorf("written config missing default palette chord:\n%s", data)
	}
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := execute(t, "init", "--config", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := execute(t, "init", "--config", path); err == nil {
		t.Error("second init without --force should fail")
	}

	if _, err := execute(t, "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestIndexCommand(t *testing.T) {
	docs := t.TempDir()
	if err := os.WriteFile(filepath.Join(docs, "a.md"), []byte("# a\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.NewConfig()
	cfg.Index.Roots = []string{docs}
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := execute(t, "index", "--config", cfgPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Indexed 1 markdown files") {
		t.Errorf("Output = %q, want indexed count", out)
	}
}

func TestIndexCommand_List(t *testing.T) {
	docs := t.TempDir()
	if err := os.WriteFile(filepath.Join(docs, "notes.md"), []byte("# n\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.NewConfig()
	cfg.Index.Roots = []string{docs}
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := execute(t, "index", "--config", cfgPath, "--list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "notes.md") {
		t.Errorf("Output = %q, want listed path", out)
	}
}
