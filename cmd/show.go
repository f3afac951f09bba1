package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the questionnaire overview",
	Long: "Show prints every section and question. With --session, answered\n" +
		"questions are checked off and inapplicable ones marked as skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema(cmd)
		if err != nil {
			return err
		}

		sess := assess.NewSession()
		if id, _ := cmd.Flags().GetString("session"); id != "" {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			sess, err = st.LoadSession(cmd.Context(), id)
			if err != nil {
				return err
			}
		}

		app := assess.Applicability(sc, sess)
		bold := color.New(color.Bold)

		answered, total := 0, 0
		for _, sec := range sc.Sections() {
			bold.Printf("%s (%s)\n", sec.Title, sec.ID)
			for _, q := range sec.Questions {
				marker := "[ ]"
				switch {
				case !app[q.ID]:
					marker = " - "
				case sessionAnswered(sess, q.ID):
					marker = "[x]"
					answered++
				}
				if app[q.ID] {
					total++
				}

				required := ""
				if q.Required {
					required = " *"
				}
				fmt.Printf("  %s %s: %s%s\n", marker, q.ID, q.Prompt, required)
				if len(q.Options) > 0 {
					fmt.Printf("      options: %s\n", strings.Join(q.Options, " | "))
				}
			}
			fmt.Println()
		}

		fmt.Printf("progress: %d/%d applicable questions answered (* = required)\n", answered, total)
		return nil
	},
}

func init() {
	showCmd.Flags().String("session", "", "Session id to overlay answers from")
}

// sessionAnswered mirrors the engine's non-empty answer rule for display.
func sessionAnswered(sess *assess.Session, questionID string) bool {
	v, ok := sess.Answer(questionID)
	return ok && strings.TrimSpace(v) != ""
}
