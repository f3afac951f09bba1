package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show answering progress for a session",
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

		sess, err := st.LoadSession(cmd.Context(), id)
		if err != nil {
			return err
		}

		p := assess.Progress(sc, sess)

		for _, sp := range p.Sections {
			fmt.Printf("%-40s %2d/%2d answered (%d/%d required)\n",
				sp.Title, sp.Answered, sp.Total, sp.RequiredAnswered, sp.Required)
		}
		fmt.Printf("\noverall: %d/%d answered, %d/%d required\n",
			p.Answered, p.Total, p.RequiredAnswered, p.Required)

		if p.Complete() {
			color.Green("ready: all required questions answered")
			return nil
		}

		color.Yellow("missing required questions:")
		for _, qid := range p.MissingRequired {
			q, _ := sc.Question(qid)
			fmt.Printf("  %s: %s\n", qid, q.Prompt)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().String("session", "", "Session id")
}
