package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/catalog"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/internal/output"
	"github.com/marcus/folio/pkg/showcase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Open the project browser, or one project by title",
	Long: `Open the interactive project browser. With a title, the closest match is
opened directly in its modal. When stdout is not a terminal the project is
printed as markdown instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, cfg, err := loadCatalog(cmd.Flags())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		var chosen *models.Project
		idx := -1
		if len(args) == 1 {
			idx, err = catalog.Index(projects, args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}
			chosen = &projects[idx]
		}

		static, _ := cmd.Flags().GetBool("static")
		if static || !term.IsTerminal(int(os.Stdout.Fd())) {
			return printStatic(projects, chosen)
		}

		m := showcase.NewModel(projects, modalOptions(cmd.Flags(), cfg))
		if chosen != nil {
			m.Open(idx)
		}

		slog.Info("starting browser", "projects", len(projects))
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
			return fmt.Errorf("run browser: %w", err)
		}
		return nil
	},
}

// printStatic writes the chosen project, or every project, as markdown.
func printStatic(projects []models.Project, chosen *models.Project) error {
	if chosen != nil {
		fmt.Fprint(output.Stdout, showcase.FormatMarkdown(chosen))
		return nil
	}
	for i := range projects {
		if i > 0 {
			fmt.Fprintln(output.Stdout)
		}
		fmt.Fprint(output.Stdout, showcase.FormatMarkdown(&projects[i]))
	}
	return nil
}

// loadCatalog reads the config and the catalog it points at. The --catalog
// flag overrides the configured path.
func loadCatalog(flags *pflag.FlagSet) ([]models.Project, *models.Config, error) {
	dir := getBaseDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	override, _ := flags.GetString("catalog")
	path := config.ResolveCatalog(dir, cfg, override)

	projects, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cfg, fmt.Errorf("no catalog at %s (create one with 'folio add')", path)
		}
		return nil, cfg, err
	}
	slog.Debug("catalog loaded", "path", path, "projects", len(projects))
	return projects, cfg, nil
}

// modalOptions merges config values with flags. Flags win when set.
func modalOptions(flags *pflag.FlagSet, cfg *models.Config) showcase.Options {
	opts := showcase.Options{
		Prose:      cfg.Prose,
		ProseStyle: cfg.ProseStyleOrDefault(),
		Width:      cfg.ModalWidth,
	}
	if flags.Changed("prose") {
		opts.Prose, _ = flags.GetBool("prose")
	}
	if flags.Changed("style") {
		opts.ProseStyle, _ = flags.GetString("style")
	}
	if flags.Changed("width") {
		opts.Width, _ = flags.GetInt("width")
	}
	return opts
}

func addCatalogFlag(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "catalog file (default from config, then "+models.DefaultCatalog+")")
}

func init() {
	addCatalogFlag(showCmd)
	showCmd.Flags().Bool("prose", false, "render descriptions through the markdown renderer")
	showCmd.Flags().String("style", "", "markdown style: dark, light, notty, ascii, dracula, pink, tokyo-night")
	showCmd.Flags().Int("width", 0, "fixed modal width (0 = 80% of the terminal)")
	showCmd.Flags().Bool("static", false, "print markdown instead of opening the browser")
	rootCmd.AddCommand(showCmd)
}
