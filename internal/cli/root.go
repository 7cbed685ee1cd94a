// Package cli wires the interm commands together.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "interm",
		Short: "interm rewrites terminal lines in place",
		Long: `interm prints a block of lines to the terminal and rewrites any one of
them in place, without disturbing the others.

The download command runs a simulated set of concurrent downloads, each with
its own progress line.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
