package modal

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Warning      = lipgloss.Color("214")
	Info         = lipgloss.Color("45")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")

	// DownloadRed is the fill of download links (#DC3545).
	DownloadRed = lipgloss.Color("#DC3545")
	White       = lipgloss.Color("#FFFFFF")
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("245")).
			Padding(0, 2)
)

// DownloadButton is the block style for download links: red fill, white
// bold text, rounded corners, centred label.
var DownloadButton = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(DownloadRed).
	Background(DownloadRed).
	Foreground(White).
	Bold(true).
	Align(lipgloss.Center).
	Padding(0, 2)

// DownloadButtonFocused is DownloadButton with an emphasised border.
var DownloadButtonFocused = DownloadButton.
	BorderForeground(White).
	Underline(true)

// DownloadButtonCompact is the borderless one-line download style used
// when the screen is too short for DownloadButton.
var DownloadButtonCompact = lipgloss.NewStyle().
	Background(DownloadRed).
	Foreground(White).
	Bold(true).
	Align(lipgloss.Center).
	Padding(0, 2)

// DownloadButtonCompactFocused is DownloadButtonCompact, underlined.
var DownloadButtonCompactFocused = DownloadButtonCompact.Underline(true)

// Text styles
var (
	ModalTitle = lipgloss.NewStyle().Bold(true)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	Body       = lipgloss.NewStyle()
	CloseGlyph = lipgloss.NewStyle().Foreground(Muted)
	CloseHover = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Rule       = lipgloss.NewStyle().Foreground(BorderNormal)
	Backdrop   = lipgloss.NewStyle().Faint(true).Foreground(Muted)
	StatusText = lipgloss.NewStyle().Foreground(Info)
	ErrorText  = lipgloss.NewStyle().Foreground(Error)
)

// List styles for list sections
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ListItemSelected = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255"))

	ListItemFocused = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// variantColor returns the border/title color for a variant.
func variantColor(v Variant) lipgloss.Color {
	switch v {
	case VariantDanger:
		return Error
	case VariantWarning:
		return Warning
	case VariantInfo:
		return Info
	default:
		return Primary
	}
}
