package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the sitedeploy command",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := cmd.Root()
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", root.Name(), root.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
