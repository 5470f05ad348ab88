package cmd

import (
	"fmt"

	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change folio settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := getBaseDir()
		cfg, err := config.Load(dir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Fprintf(output.Stdout, "config:  %s\n", config.Path(dir))
		fmt.Fprintf(output.Stdout, "catalog: %s\n", config.ResolveCatalog(dir, cfg, ""))
		return output.JSON(cfg)
	},
}

var configCatalogCmd = &cobra.Command{
	Use:   "catalog <path>",
	Short: "Set the default catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetCatalog(getBaseDir(), args[0]); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Default catalog set to %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCatalogCmd)
	rootCmd.AddCommand(configCmd)
}
