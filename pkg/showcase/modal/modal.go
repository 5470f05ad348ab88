package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/pkg/showcase/mouse"
)

// Reserved action and region IDs.
const (
	// ActionDismiss is returned for Esc, a backdrop click (when enabled)
	// and a click on the close glyph.
	ActionDismiss = "dismiss"

	BackdropID   = "modal-backdrop"
	PanelID      = "modal-panel"
	CloseGlyphID = "modal-close"
)

const (
	defaultWidth = 50
	minWidth     = 20
	// border (1) + padding (1) on each side
	chromeX = 2
	// scroll step for the mouse wheel
	wheelStep = 3
)

// Variant selects the modal's accent color.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// Section is one vertical block of modal content.
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Scrollable sections receive wheel events over the panel.
type Scrollable interface {
	ScrollBy(lines int)
}

// RenderedSection is the output of Section.Render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// FocusableInfo describes an interactive area, relative to its section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	NoFocus bool // clickable only, skipped by Tab
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the modal width including border.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the accent color.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithPrimaryAction sets the action returned by Enter when nothing is focused.
func WithPrimaryAction(actionID string) Option {
	return func(m *Modal) { m.primaryAction = actionID }
}

// WithCloseOnBackdropClick makes a backdrop click return ActionDismiss.
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// WithCloseGlyph adds a clickable close glyph at the right of the header.
func WithCloseGlyph(glyph string) Option {
	return func(m *Modal) { m.closeGlyph = glyph }
}

// Modal is a declarative dialog. It keeps focus and hover state only;
// whether it is shown is up to the owner.
type Modal struct {
	title           string
	width           int
	variant         Variant
	primaryAction   string
	closeOnBackdrop bool
	closeGlyph      string

	sections []Section

	focusIDs []string
	focusIdx int
	hoverID  string
}

// New creates a modal with the given title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{title: title, width: defaultWidth, focusIdx: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// SetWidth changes the modal width including border.
func (m *Modal) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// FocusedID returns the ID of the focused element, or "".
func (m *Modal) FocusedID() string {
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusIDs) {
		return ""
	}
	return m.focusIDs[m.focusIdx]
}

// HoveredID returns the ID under the mouse, or "".
func (m *Modal) HoveredID() string {
	return m.hoverID
}

// SetFocus focuses id if it was present in the last render.
func (m *Modal) SetFocus(id string) {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			return
		}
	}
}

// panelWidth clamps the configured width to the screen. Screens narrower
// than minWidth get a panel as wide as the screen.
func (m *Modal) panelWidth(screenW int) int {
	w := m.width
	if screenW > 0 && w > screenW-2 {
		w = screenW - 2
	}
	w = max(w, minWidth)
	if screenW > 0 {
		w = min(w, screenW)
	}
	return max(w, chromeX*2+1)
}

// center returns the top-left corner of a w x h block centred on the screen.
func center(screenW, screenH, w, h int) (int, int) {
	return max(0, (screenW-w)/2), max(0, (screenH-h)/2)
}

// Render draws the panel and registers hit regions for a screenW x screenH
// screen. The returned string is the panel only; use Overlay to composite it.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	width := m.panelWidth(screenW)
	contentWidth := width - chromeX*2
	focusID := m.FocusedID()
	accent := variantColor(m.variant)

	type placed struct {
		info FocusableInfo
		y    int
	}
	var (
		lines     []string
		focusable []placed
	)

	// Header: title left, close glyph right
	glyphW := ansi.StringWidth(m.closeGlyph)
	titleW := contentWidth
	if glyphW > 0 {
		titleW = contentWidth - glyphW - 1
	}
	title := ModalTitle.Foreground(accent).Render(ansi.Truncate(m.title, titleW, "…"))
	header := title
	if glyphW > 0 {
		glyphStyle := CloseGlyph
		if m.hoverID == CloseGlyphID {
			glyphStyle = CloseHover
		}
		gap := max(1, contentWidth-lipgloss.Width(title)-glyphW)
		header = title + strings.Repeat(" ", gap) + glyphStyle.Render(m.closeGlyph)
	}
	lines = append(lines, header)

	for _, s := range m.sections {
		rs := s.Render(contentWidth, focusID, m.hoverID)
		if rs.Content == "" {
			continue
		}
		top := len(lines)
		for _, f := range rs.Focusables {
			focusable = append(focusable, placed{info: f, y: top})
		}
		lines = append(lines, strings.Split(rs.Content, "\n")...)
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(contentWidth + 2).
		Render(strings.Join(lines, "\n"))

	panelW, panelH := lipgloss.Size(panel)
	x, y := center(screenW, screenH, panelW, panelH)
	originX, originY := x+chromeX, y+1

	m.focusIDs = m.focusIDs[:0]
	if handler != nil {
		handler.Clear()
		handler.HitMap.AddRect(BackdropID, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(PanelID, x, y, panelW, panelH, nil)
		if glyphW > 0 {
			handler.HitMap.AddRect(CloseGlyphID, originX+contentWidth-glyphW, originY, glyphW, 1, nil)
		}
	}
	for _, p := range focusable {
		if handler != nil {
			handler.HitMap.AddRect(p.info.ID, originX+p.info.OffsetX, originY+p.y+p.info.OffsetY, p.info.Width, p.info.Height, nil)
		}
		if !p.info.NoFocus {
			m.focusIDs = append(m.focusIDs, p.info.ID)
		}
	}

	m.clampFocus()
	return panel
}

// clampFocus keeps focusIdx valid after a render, preferring the primary action.
func (m *Modal) clampFocus() {
	if len(m.focusIDs) == 0 {
		m.focusIdx = -1
		return
	}
	if m.focusIdx >= 0 && m.focusIdx < len(m.focusIDs) {
		return
	}
	m.focusIdx = 0
	if m.primaryAction != "" {
		m.SetFocus(m.primaryAction)
	}
}

// HandleKey processes a key press and returns an action ID, or "".
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionDismiss, nil
	case "tab":
		m.cycleFocus(1)
		return "", nil
	case "shift+tab":
		m.cycleFocus(-1)
		return "", nil
	}

	action, cmd := m.updateSections(msg)
	if action != "" {
		return action, cmd
	}

	if msg.String() == "enter" {
		if id := m.FocusedID(); id != "" {
			return id, cmd
		}
		return m.primaryAction, cmd
	}
	return "", cmd
}

// HandleMouse processes a mouse event against the regions from the last
// Render and returns an action ID, or "".
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) (string, tea.Cmd) {
	if handler == nil {
		return "", nil
	}
	action := handler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return "", nil
		}
		switch action.Region.ID {
		case BackdropID:
			if m.closeOnBackdrop {
				return ActionDismiss, nil
			}
			return "", nil
		case PanelID:
			// Contained: a click inside the panel never reaches the backdrop
			return "", nil
		case CloseGlyphID:
			return ActionDismiss, nil
		}
		m.SetFocus(action.Region.ID)
		return action.Region.ID, nil

	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil {
			switch action.Region.ID {
			case BackdropID, PanelID:
			default:
				m.hoverID = action.Region.ID
			}
		}
		return "", nil

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region == nil || action.Region.ID == BackdropID {
			return "", nil
		}
		delta := wheelStep
		if action.Type == mouse.ActionScrollUp {
			delta = -wheelStep
		}
		for _, s := range m.sections {
			if sc, ok := s.(Scrollable); ok {
				sc.ScrollBy(delta)
			}
		}
	}
	return "", nil
}

func (m *Modal) cycleFocus(delta int) {
	n := len(m.focusIDs)
	if n == 0 {
		return
	}
	m.focusIdx = ((m.focusIdx+delta)%n + n) % n
}

func (m *Modal) updateSections(msg tea.Msg) (string, tea.Cmd) {
	focusID := m.FocusedID()
	var cmds []tea.Cmd
	for _, s := range m.sections {
		action, cmd := s.Update(msg, focusID)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if action != "" {
			return action, tea.Batch(cmds...)
		}
	}
	return "", tea.Batch(cmds...)
}

// Overlay dims background and draws panel centred on a width x height screen.
// The placement matches the hit regions registered by Render.
func Overlay(background, panel string, width, height int) string {
	bgLines := strings.Split(ansi.Strip(background), "\n")
	panelLines := strings.Split(panel, "\n")
	panelW, panelH := lipgloss.Size(panel)
	x, y := center(width, height, panelW, panelH)

	out := make([]string, height)
	for row := 0; row < height; row++ {
		bg := ""
		if row < len(bgLines) {
			bg = bgLines[row]
		}
		bg = padRight(ansi.Truncate(bg, width, ""), width)

		pi := row - y
		if pi < 0 || pi >= len(panelLines) {
			out[row] = Backdrop.Render(bg)
			continue
		}

		left := ansi.Truncate(bg, x, "")
		right := ansi.TruncateLeft(bg, x+panelW, "")
		line := padRight(panelLines[pi], panelW)
		out[row] = Backdrop.Render(left) + line + Backdrop.Render(right)
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
