package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPuzzleCommand() *cobra.Command {
	var reveal bool
	command := &cobra.Command{
		Use:   "puzzle",
		Short: "Show today's puzzle number",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			identity, err := todaysPuzzle(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Today is puzzle number %d.\n", identity.Number)
			if reveal {
				_, _ = fmt.Fprintf(out, "The secret word is %s.\n", identity.Secret)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&reveal, "reveal", false, "Print the secret word")
	return command
}
