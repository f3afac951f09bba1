package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
	"github.com/abhisek/intake/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assemble a completed session into its canonical record",
	Long: "Report validates completeness, assembles the canonical record, and\n" +
		"prints it as JSON. With --markdown a human-readable report is written\n" +
		"instead. Fails without side effects if required questions are missing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema(cmd)
		if err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("session")
		if id == "" {
			return fmt.Errorf("--session is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		sess, err := st.LoadSession(ctx, id)
		if err != nil {
			return err
		}

		rec, err := assess.Assemble(sc, sess)
		if err != nil {
			var ce *assess.CompletenessError
			if errors.As(err, &ce) {
				color.Red("cannot assemble record:")
				for _, qid := range ce.Missing {
					q, _ := sc.Question(qid)
					fmt.Printf("  %s: %s\n", qid, q.Prompt)
				}
			}
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if markdown, _ := cmd.Flags().GetBool("markdown"); markdown {
			title, _ := cmd.Flags().GetString("title")
			assessor, _ := cmd.Flags().GetString("assessor")
			meta := assess.ReportMeta{Title: title, Assessor: assessor, GeneratedAt: time.Now()}
			if _, err := fmt.Fprint(out, assess.RenderReport(sc, rec, meta)); err != nil {
				return err
			}
		} else {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
		}

		if err := st.SetStatus(ctx, sess.ID(), store.StatusCompleted); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("session", "", "Session id")
	reportCmd.Flags().String("out", "", "Write output to file instead of stdout")
	reportCmd.Flags().Bool("markdown", false, "Render a markdown report instead of the JSON record")
	reportCmd.Flags().String("title", "", "Report title (markdown only)")
	reportCmd.Flags().String("assessor", "", "Assessor name (markdown only)")
}
