package cmd

import (
	"fmt"

	"github.com/marcus/folio/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(output.Stdout, "folio %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
