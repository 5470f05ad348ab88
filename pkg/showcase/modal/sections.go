package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// textSection renders static wrapped text.
type textSection struct {
	text  string
	style lipgloss.Style
}

// Text creates a static text section, wrapped to the content width.
func Text(s string) Section {
	return &textSection{text: s, style: Body}
}

// StyledText is Text with a custom style.
func StyledText(s string, style lipgloss.Style) Section {
	return &textSection{text: s, style: style}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	if s.text == "" {
		return RenderedSection{}
	}
	return RenderedSection{Content: s.style.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type spacerSection struct{}

// Spacer creates a blank line.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type dividerSection struct{}

// Divider creates a horizontal rule across the content width.
func Divider() Section { return dividerSection{} }

func (dividerSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: Rule.Render(strings.Repeat("─", contentWidth))}
}

func (dividerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// ButtonDef describes one button.
type ButtonDef struct {
	Label string
	ID    string
}

// Btn creates a button definition. ID is returned as the action when activated.
func Btn(label, id string) ButtonDef {
	return ButtonDef{Label: label, ID: id}
}

// ButtonsSection is a row of buttons.
type ButtonsSection struct {
	buttons []ButtonDef
	align   lipgloss.Position
}

// Buttons creates a left-aligned button row.
func Buttons(btns ...ButtonDef) *ButtonsSection {
	return &ButtonsSection{buttons: btns, align: lipgloss.Left}
}

// Align sets the horizontal alignment of the row.
func (s *ButtonsSection) Align(pos lipgloss.Position) *ButtonsSection {
	s.align = pos
	return s
}

const buttonGap = 2

func (s *ButtonsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.buttons) == 0 {
		return RenderedSection{}
	}

	rendered := make([]string, len(s.buttons))
	total := 0
	for i, b := range s.buttons {
		rendered[i] = buttonStyle(b, focusID, hoverID).Render(b.Label)
		total += lipgloss.Width(rendered[i])
	}
	total += buttonGap * (len(s.buttons) - 1)

	lead := 0
	switch s.align {
	case lipgloss.Right:
		lead = max(0, contentWidth-total)
	case lipgloss.Center:
		lead = max(0, (contentWidth-total)/2)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", lead))
	focusables := make([]FocusableInfo, 0, len(s.buttons))
	x := lead
	for i, r := range rendered {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", buttonGap))
			x += buttonGap
		}
		w := lipgloss.Width(r)
		sb.WriteString(r)
		focusables = append(focusables, FocusableInfo{ID: s.buttons[i].ID, OffsetX: x, Width: w, Height: 1})
		x += w
	}

	return RenderedSection{Content: sb.String(), Focusables: focusables}
}

func (s *ButtonsSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

func buttonStyle(b ButtonDef, focusID, hoverID string) lipgloss.Style {
	switch b.ID {
	case focusID:
		return ButtonFocused
	case hoverID:
		return ButtonHover
	default:
		return Button
	}
}

// LinkOption configures a link section.
type LinkOption func(*linkSection)

// LinkStyle sets the normal and focused styles.
func LinkStyle(normal, focused lipgloss.Style) LinkOption {
	return func(s *linkSection) {
		s.style = normal
		s.focused = focused
	}
}

// LinkMargin adds blank lines above and below the link.
func LinkMargin(lines int) LinkOption {
	return func(s *linkSection) { s.margin = max(0, lines) }
}

type linkSection struct {
	id      string
	label   string
	url     string
	style   lipgloss.Style
	focused lipgloss.Style
	margin  int
}

// Link creates a centred hyperlink block. The label is wrapped in an OSC 8
// hyperlink to url; activating it returns id.
func Link(id, label, url string, opts ...LinkOption) Section {
	s := &linkSection{id: id, label: label, url: url, style: Button, focused: ButtonFocused}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *linkSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	style := s.style
	if focusID == s.id || hoverID == s.id {
		style = s.focused
	}

	// Leave room for the style's frame so the label never wraps
	label := ansi.Truncate(s.label, max(1, contentWidth-style.GetHorizontalFrameSize()), "…")
	block := style.Render(ansi.SetHyperlink(s.url) + label + ansi.ResetHyperlink())
	w, h := lipgloss.Size(block)
	x := max(0, (contentWidth-w)/2)
	placed := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, block)

	pad := strings.Repeat("\n", s.margin)
	return RenderedSection{
		Content:    pad + placed + pad,
		Focusables: []FocusableInfo{{ID: s.id, OffsetX: x, OffsetY: s.margin, Width: w, Height: h}},
	}
}

func (s *linkSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// ScrollSection renders content through a viewport capped at maxHeight lines.
type ScrollSection struct {
	vp        viewport.Model
	content   func(width int) string
	maxHeight int
}

// Scroll creates a scrollable section. maxHeight <= 0 means no cap.
func Scroll(content func(width int) string, maxHeight int) *ScrollSection {
	return &ScrollSection{vp: viewport.New(0, 0), content: content, maxHeight: maxHeight}
}

// SetMaxHeight changes the visible line cap.
func (s *ScrollSection) SetMaxHeight(h int) {
	s.maxHeight = h
}

// MaxHeight returns the visible line cap; <= 0 means no cap.
func (s *ScrollSection) MaxHeight() int {
	return s.maxHeight
}

// YOffset returns the current scroll position.
func (s *ScrollSection) YOffset() int {
	return s.vp.YOffset
}

// ScrollBy scrolls down (positive) or up (negative).
func (s *ScrollSection) ScrollBy(lines int) {
	if lines > 0 {
		s.vp.ScrollDown(lines)
	} else if lines < 0 {
		s.vp.ScrollUp(-lines)
	}
}

func (s *ScrollSection) Render(contentWidth int, _, _ string) RenderedSection {
	text := s.content(contentWidth)
	if text == "" {
		return RenderedSection{}
	}

	height := lipgloss.Height(text)
	if s.maxHeight > 0 && height > s.maxHeight {
		height = s.maxHeight
	}
	s.vp.Width = contentWidth
	s.vp.Height = height
	s.vp.SetContent(text)

	return RenderedSection{Content: s.vp.View()}
}

func (s *ScrollSection) Update(msg tea.Msg, _ string) (string, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}
	switch keyMsg.String() {
	case "up", "k":
		s.vp.ScrollUp(1)
	case "down", "j":
		s.vp.ScrollDown(1)
	case "pgup":
		s.vp.PageUp()
	case "pgdown", " ":
		s.vp.PageDown()
	case "home", "g":
		s.vp.GotoTop()
	case "end", "G":
		s.vp.GotoBottom()
	}
	return "", nil
}

type whenSection struct {
	cond    func() bool
	section Section
}

// When renders section only while cond returns true.
func When(cond func() bool, section Section) Section {
	return &whenSection{cond: cond, section: section}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.section.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.section.Update(msg, focusID)
}

// ScrollBy forwards wheel events when the wrapped section scrolls.
func (s *whenSection) ScrollBy(lines int) {
	if sc, ok := s.section.(Scrollable); ok && s.cond() {
		sc.ScrollBy(lines)
	}
}

type customSection struct {
	render func(contentWidth int, focusID, hoverID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom builds a section from functions. update may be nil.
func Custom(
	render func(contentWidth int, focusID, hoverID string) RenderedSection,
	update func(msg tea.Msg, focusID string) (string, tea.Cmd),
) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}
