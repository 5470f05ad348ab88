package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/marcus/folio/internal/catalog"
	"github.com/marcus/folio/internal/output"
	"github.com/marcus/folio/pkg/showcase"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <title>",
	Short: "Write a project's modal as a standalone HTML page",
	Long: `Render one project as an HTML page holding the modal. Descriptions are
HTML-escaped unless --trust-markup (or trust_markup in the config) is set, in
which case they are emitted as markup after sanitizing. With --prose the
description is rendered as markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, cfg, err := loadCatalog(cmd.Flags())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		p, err := catalog.Find(projects, args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		opts := showcase.PageOptions{TrustMarkup: cfg.TrustMarkup, Prose: cfg.Prose}
		if cmd.Flags().Changed("trust-markup") {
			opts.TrustMarkup, _ = cmd.Flags().GetBool("trust-markup")
		}
		if cmd.Flags().Changed("prose") {
			opts.Prose, _ = cmd.Flags().GetBool("prose")
		}

		page, err := showcase.RenderPage(&p, opts)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			fmt.Fprint(output.Stdout, page)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(out, []byte(page), 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		slog.Debug("page exported", "title", p.Title, "out", out, "trusted", opts.TrustMarkup)
		output.Success("Exported %s to %s", p.Title, out)
		return nil
	},
}

func init() {
	addCatalogFlag(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	exportCmd.Flags().Bool("trust-markup", false, "emit description markup verbatim after sanitizing")
	exportCmd.Flags().Bool("prose", false, "render the description as markdown")
	rootCmd.AddCommand(exportCmd)
}
