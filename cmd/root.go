package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/parser"
	"github.com/abhisek/intake/internal/schema"
	"github.com/abhisek/intake/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Guided-assessment questionnaire engine",
	Long: "Intake runs structured questionnaires: sectioned interviews with typed,\n" +
		"conditionally-required questions, validated answers, and a canonical\n" +
		"record as output.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTAKE_DB env var)")
	rootCmd.PersistentFlags().String("schema", "", "Path to questionnaire definition (.yaml, .json, or .md)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INTAKE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the session store for the command's database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// loadSchema reads and loads the questionnaire definition named by --schema.
// Markdown is parsed with the questionnaire grammar; everything else is
// treated as a YAML/JSON definition document.
func loadSchema(cmd *cobra.Command) (*schema.Schema, error) {
	path, _ := cmd.Flags().GetString("schema")
	if path == "" {
		return nil, fmt.Errorf("--schema is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema definition: %w", err)
	}
	defer f.Close()

	var sections []schema.Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		sections, err = parser.NewMarkdownParser().Parse(f)
	default:
		sections, err = parser.ParseDefinition(f)
	}
	if err != nil {
		return nil, err
	}

	return schema.Load(sections)
}
