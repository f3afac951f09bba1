package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		if archive, _ := cmd.Flags().GetBool("archive"); archive {
			n, err := st.ArchiveInProgress(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				fmt.Printf("archived %d in-progress session(s)\n", n)
			}
		}

		sess := assess.NewSession()
		if err := st.CreateSession(ctx, sess); err != nil {
			return err
		}

		fmt.Println(sess.ID())
		return nil
	},
}

func init() {
	newCmd.Flags().Bool("archive", false, "Archive any in-progress sessions first")
}
