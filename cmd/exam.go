package cmd

import (
	"github.com/spf13/cobra"
)

// examCmd is an explicit alias for the default action: running the
// root command bare already starts a test.
var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start a proctored test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
