package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List assessment sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		infos, err := st.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no sessions")
			return nil
		}

		for _, info := range infos {
			fmt.Printf("%s  %-11s  %3d answers  updated %s\n",
				info.ID, info.Status, info.Answered, info.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}
