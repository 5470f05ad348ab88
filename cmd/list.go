package cmd

import (
	"fmt"

	"github.com/marcus/folio/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, _, err := loadCatalog(cmd.Flags())
		if err != nil {
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				output.JSONError("catalog", err.Error())
			} else {
				output.Error("%v", err)
			}
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(projects)
		}

		if len(projects) == 0 {
			fmt.Fprintln(output.Stdout, "No projects")
			return nil
		}

		nodes := make([]output.TreeNode, len(projects))
		for i, p := range projects {
			nodes[i] = output.ProjectNode(p)
		}
		showRefs, _ := cmd.Flags().GetBool("refs")
		opts := output.TreeRenderOptions{ShowDetail: true}
		if !showRefs {
			opts.MaxDepth = 1
		}
		for _, line := range output.RenderTreeLines(nodes, opts) {
			fmt.Fprintln(output.Stdout, line)
		}
		return nil
	},
}

func init() {
	addCatalogFlag(listCmd)
	listCmd.Flags().Bool("json", false, "output as JSON")
	listCmd.Flags().BoolP("refs", "r", false, "show media and download references")
	rootCmd.AddCommand(listCmd)
}
