package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <question-id>",
	Short: "Remove the stored answer for one question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		sess.Clear(questionID)
		if err := st.DeleteAnswer(ctx, sess.ID(), questionID); err != nil {
			return err
		}

		fmt.Printf("cleared %s\n", questionID)
		return nil
	},
}

func init() {
	clearCmd.Flags().String("session", "", "Session id")
}
