package showcase

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/pkg/showcase/modal"
	"github.com/marcus/folio/pkg/showcase/mouse"
	"github.com/marcus/folio/pkg/showcase/richtext"
)

const (
	pickerListID  = "projects"
	itemPrefix    = "project-"
	pickerVisible = 10
)

// StatusMsg replaces the status line.
type StatusMsg struct {
	Text    string
	IsError bool
}

// Model is the Bubble Tea program behind `folio show`. It lists the catalog
// in a picker and mounts a ProjectModal for the chosen entry. The modal's
// onClose unmounts it.
type Model struct {
	projects []models.Project
	opts     Options
	keys     keyMap

	picker      *modal.Modal
	pickerMouse *mouse.Handler
	selected    int

	active *ProjectModal

	status      string
	statusIsErr bool

	width, height int

	// copy writes to the system clipboard; replaced in tests.
	copy func(string) error
}

// NewModel builds the host model. projects is not modified.
func NewModel(projects []models.Project, opts Options) *Model {
	m := &Model{
		projects:    projects,
		opts:        opts,
		keys:        defaultKeyMap(),
		pickerMouse: mouse.NewHandler(),
		width:       defaultScreenW,
		height:      defaultScreenH,
		copy:        copyToClipboard,
	}
	m.picker = m.createPicker()
	return m
}

func (m *Model) createPicker() *modal.Modal {
	items := make([]modal.ListItem, len(m.projects))
	for i, p := range m.projects {
		var tags []string
		if p.HasMedia() {
			tags = append(tags, "media")
		}
		if p.HasDownload() {
			tags = append(tags, "pdf")
		}
		items[i] = modal.ListItem{ID: itemPrefix + strconv.Itoa(i), Label: richtext.TerminalSafe(p.Title), Hint: strings.Join(tags, " ")}
	}

	md := modal.New("Projects",
		modal.WithWidth(60),
		modal.WithVariant(modal.VariantInfo),
		modal.WithPrimaryAction(pickerListID),
	)
	md.AddSection(modal.List(pickerListID, items, &m.selected, modal.WithMaxVisible(pickerVisible)))
	md.AddSection(modal.Spacer())
	md.AddSection(modal.StyledText(hint(m.keys.Quit, m.keys.Copy, m.keys.Download), modal.MutedText))
	md.AddSection(modal.When(func() bool { return m.status != "" }, modal.Custom(
		func(contentWidth int, _, _ string) modal.RenderedSection {
			style := modal.StatusText
			if m.statusIsErr {
				style = modal.ErrorText
			}
			return modal.RenderedSection{Content: style.Width(contentWidth).Render(richtext.TerminalSafe(m.status))}
		}, nil)))
	return md
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Active returns the mounted project modal, or nil.
func (m *Model) Active() *ProjectModal { return m.active }

// Open mounts the project at index i.
func (m *Model) Open(i int) {
	if i < 0 || i >= len(m.projects) {
		return
	}
	m.selected = i
	p := m.projects[i]
	m.active = NewProjectModal(&p, m.unmount, m.opts)
	m.active.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	slog.Debug("modal mounted", "title", p.Title)
}

func (m *Model) unmount() {
	if m.active != nil {
		slog.Debug("modal unmounted", "title", m.active.Project().Title)
	}
	m.active = nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.active != nil {
			m.active.Update(msg)
		}
		return m, nil

	case StatusMsg:
		m.status, m.statusIsErr = msg.Text, msg.IsError
		return m, nil

	case DownloadRequestedMsg:
		return m, m.copyCmd(msg.URL, "Copied download link for "+msg.Title)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			return m, tea.Quit
		}
		if m.active != nil {
			return m, m.handleActiveKey(msg)
		}
		return m, m.handlePickerKey(msg)

	case tea.MouseMsg:
		if m.active != nil {
			return m, m.active.Update(msg)
		}
		action, cmd := m.picker.HandleMouse(msg, m.pickerMouse)
		return m, tea.Batch(cmd, m.pickerAction(action))
	}
	return m, nil
}

func (m *Model) handleActiveKey(msg tea.KeyMsg) tea.Cmd {
	p := m.active.Project()
	switch {
	case key.Matches(msg, m.keys.Copy):
		return m.copyCmd(FormatMarkdown(p), "Copied "+p.Title+" as markdown")
	case key.Matches(msg, m.keys.Download):
		if !p.HasDownload() {
			return statusCmd("No download for "+p.Title, true)
		}
		return m.copyCmd(p.PDFURL, "Copied download link for "+p.Title)
	}
	return m.active.Update(msg)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	action, cmd := m.picker.HandleKey(msg)
	return tea.Batch(cmd, m.pickerAction(action))
}

// pickerAction mounts the modal for a chosen list item. Enter on the list
// itself opens the current selection.
func (m *Model) pickerAction(action string) tea.Cmd {
	switch {
	case action == pickerListID:
		m.Open(m.selected)
	case strings.HasPrefix(action, itemPrefix):
		i, err := strconv.Atoi(strings.TrimPrefix(action, itemPrefix))
		if err != nil {
			slog.Debug("bad picker action", "action", action, "err", err)
			return nil
		}
		m.Open(i)
	}
	return nil
}

// copyCmd copies text and reports the outcome on the status line.
func (m *Model) copyCmd(text, ok string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			slog.Debug("clipboard", "err", err)
			return StatusMsg{Text: fmt.Sprintf("Copy failed: %v", err), IsError: true}
		}
		return StatusMsg{Text: ok}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, IsError: isErr} }
}

// View implements tea.Model. The picker frame becomes the dimmed backdrop
// while a project modal is mounted.
func (m *Model) View() string {
	picker := modal.Overlay("", m.picker.Render(m.width, m.height, m.pickerMouse), m.width, m.height)
	if m.active == nil {
		return picker
	}
	return m.active.View(picker)
}
