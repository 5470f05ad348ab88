// Package modal provides a declarative modal dialog library with automatic
// hit region management for mouse support.
//
// Hit regions are registered during Render in screen space: a full-screen
// backdrop first, the dialog panel over it, then every focusable element.
// The panel is therefore a containment boundary: clicks inside it that miss
// every control are consumed and never reported as backdrop clicks.
//
// # Quick Start
//
//	m := modal.New("Report", modal.WithCloseGlyph("✕"), modal.WithCloseOnBackdropClick(true)).
//	    AddSection(modal.Text("Quarterly numbers")).
//	    AddSection(modal.Divider()).
//	    AddSection(modal.Buttons(modal.Btn(" Close ", "close")).Align(lipgloss.Right))
//
//	// In View():
//	panel := m.Render(screenW, screenH, mouseHandler)
//	frame := modal.Overlay(background, panel, screenW, screenH)
//
//	// In Update():
//	if action, cmd := m.HandleMouse(mouseMsg, mouseHandler); action != "" {
//	    switch action {
//	    case modal.ActionDismiss, "close":
//	        onClose()
//	    }
//	}
//
// # Built-in Sections
//
//   - Text(s string) - static text, auto-wrapped
//   - Spacer() - blank line
//   - Divider() - horizontal rule
//   - Buttons(btns ...ButtonDef) - button row with focus/hover styling
//   - Link(id, label, url string, opts...) - OSC 8 hyperlink block
//   - Scroll(content func(width int) string, maxHeight int) - scrollable body
//   - List(id string, items []ListItem, selectedIdx *int, opts...) - scrollable list
//   - When(condition func() bool, section) - conditional rendering
//   - Custom(renderFn, updateFn) - escape hatch for complex content
//
// # Options
//
//   - WithWidth(w int) - set modal width (default: 50)
//   - WithVariant(v Variant) - set accent color (Default, Danger, Warning, Info)
//   - WithPrimaryAction(actionID string) - action for implicit Enter submit
//   - WithCloseOnBackdropClick(close bool) - close on backdrop click
//   - WithCloseGlyph(glyph string) - clickable close glyph in the header
package modal
