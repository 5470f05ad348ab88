package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/marcus/folio/internal/catalog"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project to the catalog",
	Long: `Add a project to the catalog. Without --title an interactive form asks for
each field. The catalog file is created if it does not exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := projectFromFlags(cmd.Flags())

		if p.Title == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				err := errors.New("--title is required when stdin is not a terminal")
				output.Error("%v", err)
				return err
			}
			if err := projectForm(&p).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					output.Warning("aborted")
					return nil
				}
				return fmt.Errorf("project form: %w", err)
			}
		}
		if err := validateTitle(p.Title); err != nil {
			output.Error("%v", err)
			return err
		}

		dir := getBaseDir()
		cfg, err := config.Load(dir)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		override, _ := cmd.Flags().GetString("catalog")
		path := config.ResolveCatalog(dir, cfg, override)

		if err := catalog.Append(path, p); err != nil {
			output.Error("%v", err)
			return err
		}
		slog.Debug("project added", "title", p.Title, "catalog", path)
		output.Success("Added %s to %s", p.Title, path)
		return nil
	},
}

// projectFromFlags builds a project from the add flags. The description
// accepts "\n" escapes so multi-line text fits on one command line.
func projectFromFlags(flags *pflag.FlagSet) models.Project {
	var p models.Project
	p.Title, _ = flags.GetString("title")
	p.Image, _ = flags.GetString("image")
	p.Video, _ = flags.GetString("video")
	p.PDFURL, _ = flags.GetString("pdf")
	desc, _ := flags.GetString("description")
	p.DetailedDescription = strings.ReplaceAll(desc, `\n`, "\n")
	p.Title = strings.TrimSpace(p.Title)
	return p
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// projectForm asks for every field, prefilled from p.
func projectForm(p *models.Project) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&p.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title("Image").
				Description("Optional image path or URL").
				Value(&p.Image),
			huh.NewInput().
				Title("Video").
				Description("Optional video path or URL; shown instead of the image").
				Value(&p.Video),
			huh.NewInput().
				Title("PDF").
				Description("Optional download link").
				Value(&p.PDFURL),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Description").
				Description("Plain text; each line break is kept").
				Value(&p.DetailedDescription),
		),
	)
}

func init() {
	addCatalogFlag(addCmd)
	addCmd.Flags().StringP("title", "t", "", "project title")
	addCmd.Flags().String("image", "", "image path or URL")
	addCmd.Flags().String("video", "", "video path or URL")
	addCmd.Flags().String("pdf", "", "PDF download link")
	addCmd.Flags().StringP("description", "d", "", `description (use \n for line breaks)`)
	rootCmd.AddCommand(addCmd)
}
