package showcase

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/pkg/showcase/modal"
	"github.com/marcus/folio/pkg/showcase/mouse"
	"github.com/marcus/folio/pkg/showcase/richtext"
)

const (
	actionClose    = "close"
	actionDownload = "download"

	// CloseLabel is the footer button label.
	CloseLabel = "Close"
	// CloseGlyph is the header close control.
	CloseGlyph = "✕"
	// MediaGlyph marks the media block.
	MediaGlyph = "▣"

	defaultScreenW = 80
	defaultScreenH = 24
)

// Options control how a ProjectModal renders.
type Options struct {
	Prose      bool   // render the description through glamour
	ProseStyle string // glamour style, e.g. "dark"
	Width      int    // fixed modal width; 0 derives it from the screen
}

// DownloadRequestedMsg is emitted when the download link is activated.
type DownloadRequestedMsg struct {
	URL   string
	Title string
}

// ProjectModal shows one project over a dimmed backdrop. It has no
// open/closed state: the owner shows it by calling View and hides it by
// dropping it. Every close trigger calls onClose.
type ProjectModal struct {
	project *models.Project
	onClose func()
	opts    Options

	modal *modal.Modal
	body  *modal.ScrollSection
	mouse *mouse.Handler
	doc   richtext.Document

	width, height int
	showMedia     bool
	compact       bool // one-line download link

	// memoized body render
	bodyWidth int
	bodyText  string
}

// NewProjectModal builds the modal for project. A nil project yields a
// modal that renders nothing and ignores input.
func NewProjectModal(project *models.Project, onClose func(), opts Options) *ProjectModal {
	pm := &ProjectModal{project: project, onClose: onClose, opts: opts, mouse: mouse.NewHandler()}
	if project == nil {
		return pm
	}

	pm.doc = richtext.Parse(project.DetailedDescription)
	pm.body = modal.Scroll(pm.renderBody, 0)

	// Descriptor strings reach the terminal only through TerminalSafe
	title := richtext.TerminalSafe(project.Title)
	md := modal.New(title,
		modal.WithCloseGlyph(CloseGlyph),
		modal.WithCloseOnBackdropClick(true),
		modal.WithPrimaryAction(actionClose),
	)
	md.AddSection(modal.Divider())
	if src, ok := MediaSource(*project); ok {
		md.AddSection(modal.When(func() bool { return pm.showMedia },
			mediaSection(title, richtext.TerminalSafe(src))))
	}
	md.AddSection(pm.body)
	if project.HasDownload() {
		label, url := DownloadLabel(title), richtext.TerminalSafe(project.PDFURL)
		md.AddSection(modal.When(func() bool { return !pm.compact },
			modal.Link(actionDownload, label, url,
				modal.LinkStyle(modal.DownloadButton, modal.DownloadButtonFocused),
				modal.LinkMargin(1),
			)))
		md.AddSection(modal.When(func() bool { return pm.compact },
			modal.Link(actionDownload, label, url,
				modal.LinkStyle(modal.DownloadButtonCompact, modal.DownloadButtonCompactFocused),
			)))
	}
	md.AddSection(modal.Divider())
	md.AddSection(modal.Buttons(modal.Btn(" "+CloseLabel+" ", actionClose)).Align(lipgloss.Right))
	pm.modal = md

	pm.resize(defaultScreenW, defaultScreenH)
	return pm
}

// MediaSource returns the media reference to display. Video wins over image.
func MediaSource(p models.Project) (string, bool) {
	switch {
	case p.Video != "":
		return p.Video, true
	case p.Image != "":
		return p.Image, true
	default:
		return "", false
	}
}

// DownloadLabel is the download link label for a project title.
func DownloadLabel(title string) string {
	return "Download " + title + " (PDF)"
}

// Project returns the descriptor being shown, or nil.
func (pm *ProjectModal) Project() *models.Project {
	return pm.project
}

// Update handles a message and returns a follow-up command.
func (pm *ProjectModal) Update(msg tea.Msg) tea.Cmd {
	if pm.project == nil {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.resize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return pm.dispatch(pm.modal.HandleKey(msg))
	case tea.MouseMsg:
		return pm.dispatch(pm.modal.HandleMouse(msg, pm.mouse))
	}
	return nil
}

func (pm *ProjectModal) dispatch(action string, cmd tea.Cmd) tea.Cmd {
	switch action {
	case modal.ActionDismiss, actionClose:
		if pm.onClose != nil {
			pm.onClose()
		}
	case actionDownload:
		p := pm.project
		return tea.Batch(cmd, func() tea.Msg {
			return DownloadRequestedMsg{URL: p.PDFURL, Title: p.Title}
		})
	}
	return cmd
}

// View renders the modal over background, which is dimmed as the backdrop.
func (pm *ProjectModal) View(background string) string {
	if pm.project == nil {
		return ""
	}
	return modal.Overlay(background, pm.fit(), pm.width, pm.height)
}

// fit renders the panel, shrinking the body, then dropping the media block,
// then compacting the download link until it fits the screen height. Hit
// regions come from the last render, so the footer stays clickable on
// short screens.
func (pm *ProjectModal) fit() string {
	panel := pm.modal.Render(pm.width, pm.height, pm.mouse)
	for over := lipgloss.Height(panel) - pm.height; over > 0; over = lipgloss.Height(panel) - pm.height {
		switch {
		case pm.body.MaxHeight() != 1:
			pm.body.SetMaxHeight(max(1, pm.body.MaxHeight()-over))
		case pm.showMedia:
			pm.showMedia = false
		case pm.project.HasDownload() && !pm.compact:
			pm.compact = true
		default:
			return panel
		}
		panel = pm.modal.Render(pm.width, pm.height, pm.mouse)
	}
	return panel
}

// resize recomputes modal width and body height for a screen size.
// The panel is 80% of the screen in both directions, width capped 40-100.
func (pm *ProjectModal) resize(width, height int) {
	pm.width, pm.height = width, height
	pm.showMedia = pm.project.HasMedia()
	pm.compact = false

	w := pm.opts.Width
	if w <= 0 {
		w = min(max(width*80/100, 40), 100)
	}
	pm.modal.SetWidth(w)

	// border (2) + header + two dividers + footer
	chrome := 6
	if pm.project.HasMedia() {
		chrome += 4
	}
	if pm.project.HasDownload() {
		chrome += 5
	}
	pm.body.SetMaxHeight(max(3, height*80/100-chrome))
}

func (pm *ProjectModal) renderBody(width int) string {
	if width == pm.bodyWidth && pm.bodyText != "" {
		return pm.bodyText
	}

	var text string
	if pm.opts.Prose {
		style := pm.opts.ProseStyle
		if style == "" {
			style = "dark"
		}
		text = pm.doc.Prose(width, style)
	} else {
		text = pm.doc.Wrap(width)
	}
	if pm.doc.Fallback {
		text = modal.MutedText.Render(text)
	}

	pm.bodyWidth, pm.bodyText = width, text
	return text
}

// mediaSection shows the still reference framed like a thumbnail, labelled
// with the project title as its accessible name.
func mediaSection(alt, src string) modal.Section {
	return modal.Custom(func(contentWidth int, _, _ string) modal.RenderedSection {
		inner := max(1, contentWidth-4)
		label := ansi.Truncate(MediaGlyph+" "+alt, inner, "…")
		ref := ansi.SetHyperlink(src) + ansi.Truncate(src, inner, "…") + ansi.ResetHyperlink()

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(modal.BorderNormal).
			Padding(0, 1).
			Width(contentWidth - 2).
			Render(label + "\n" + modal.MutedText.Render(ref))

		return modal.RenderedSection{Content: box + "\n "}
	}, nil)
}

