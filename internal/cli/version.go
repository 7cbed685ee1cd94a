package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the interm version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "interm %s (commit %s, built %s)\n", version, commit, date)
			return err
		},
	}
}
