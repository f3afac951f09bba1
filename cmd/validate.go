package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/parser"
	"github.com/abhisek/intake/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Validate a questionnaire definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open definition: %w", err)
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
			color.Red("invalid: %v", err)
			return err
		}

		sc, err := schema.Load(sections)
		if err != nil {
			color.Red("invalid: %v", err)
			return err
		}

		color.Green("ok: %d sections, %d questions", len(sc.Sections()), sc.Len())
		return nil
	},
}
