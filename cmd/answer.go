package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
)

var answerCmd = &cobra.Command{
	Use:   "answer <question-id> <value>...",
	Short: "Submit an answer to one question",
	Args:  cobra.MinimumNArgs(2),
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

		questionID := args[0]
		value := strings.Join(args[1:], " ")

		if err := sess.Submit(sc, questionID, value); err != nil {
			return err
		}
		if err := st.SaveAnswer(ctx, sess.ID(), questionID, value); err != nil {
			return err
		}

		p := assess.Progress(sc, sess)
		fmt.Printf("saved %s; %d/%d applicable questions answered\n", questionID, p.Answered, p.Total)
		return nil
	},
}

func init() {
	answerCmd.Flags().String("session", "", "Session id")
}
