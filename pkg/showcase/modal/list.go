package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ListItem represents an item in a list section.
type ListItem struct {
	ID    string // Action returned when the item is chosen
	Label string
	Hint  string // Muted text after the label
}

// ListOption is a functional option for List sections.
type ListOption func(*listSection)

// listSection renders a scrollable list of items.
type listSection struct {
	id           string
	items        []ListItem
	selectedIdx  *int // owned by the caller
	maxVisible   int
	scrollOffset int
}

// List creates a list section with selectable items.
// selectedIdx points at the caller's selection and may be nil.
func List(id string, items []ListItem, selectedIdx *int, opts ...ListOption) Section {
	s := &listSection{
		id:          id,
		items:       items,
		selectedIdx: selectedIdx,
		maxVisible:  5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxVisible sets the maximum number of visible items.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

func (s *listSection) selected() int {
	if s.selectedIdx == nil {
		return 0
	}
	return *s.selectedIdx
}

func (s *listSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{Content: MutedText.Render("(no projects)")}
	}

	visibleCount := min(s.maxVisible, len(s.items))
	selectedIdx := s.selected()

	// Keep selection visible
	if selectedIdx < s.scrollOffset {
		s.scrollOffset = selectedIdx
	} else if selectedIdx >= s.scrollOffset+visibleCount {
		s.scrollOffset = selectedIdx - visibleCount + 1
	}
	s.scrollOffset = min(max(s.scrollOffset, 0), max(0, len(s.items)-visibleCount))

	listIsFocused := focusID == s.id

	var lines []string
	var itemRegions []FocusableInfo
	if s.scrollOffset > 0 {
		lines = append(lines, MutedText.Render("↑ more above"))
	}

	for i := 0; i < visibleCount; i++ {
		itemIdx := s.scrollOffset + i
		item := s.items[itemIdx]
		isSelected := s.selectedIdx != nil && *s.selectedIdx == itemIdx

		style := ListItemNormal
		switch {
		case isSelected && listIsFocused:
			style = ListItemFocused
		case isSelected, item.ID == hoverID:
			style = ListItemSelected
		}

		cursor := "  "
		if isSelected {
			cursor = ListCursor.Render("> ")
		}

		label := item.Label
		if item.Hint != "" {
			label += " " + MutedText.Render(item.Hint)
		}
		label = ansi.Truncate(label, max(1, contentWidth-2), "…")

		itemRegions = append(itemRegions, FocusableInfo{
			ID:      item.ID,
			OffsetY: len(lines),
			Width:   contentWidth,
			Height:  1,
			NoFocus: true,
		})
		lines = append(lines, cursor+style.Render(label))
	}

	if s.scrollOffset+visibleCount < len(s.items) {
		lines = append(lines, MutedText.Render("↓ more below"))
	}

	// The list is one Tab stop; items are separately clickable
	focusables := append([]FocusableInfo{{
		ID:     s.id,
		Width:  contentWidth,
		Height: len(lines),
	}}, itemRegions...)

	return RenderedSection{
		Content:    strings.Join(lines, "\n"),
		Focusables: focusables,
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.selectedIdx == nil {
		return "", nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if *s.selectedIdx > 0 {
			*s.selectedIdx--
		}
	case "down", "j":
		if *s.selectedIdx < len(s.items)-1 {
			*s.selectedIdx++
		}
	case "home", "g":
		*s.selectedIdx = 0
	case "end", "G":
		*s.selectedIdx = len(s.items) - 1
	case "enter":
		if *s.selectedIdx >= 0 && *s.selectedIdx < len(s.items) {
			return s.items[*s.selectedIdx].ID, nil
		}
	}
	return "", nil
}
