package showcase

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/marcus/folio/internal/models"
)

// copyToClipboard copies text to the system clipboard.
// Uses pbcopy on macOS, xclip on Linux, clip.exe on Windows.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// FormatMarkdown formats a project as markdown for the clipboard and for
// non-interactive output.
func FormatMarkdown(p *models.Project) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n", p.Title))

	if src, ok := MediaSource(*p); ok {
		sb.WriteString(fmt.Sprintf("\n![%s](%s)\n", p.Title, src))
	}

	if p.DetailedDescription != "" {
		sb.WriteString("\n")
		// Markdown needs a trailing backslash for a hard break
		sb.WriteString(strings.ReplaceAll(p.DetailedDescription, "\n", "\\\n"))
		sb.WriteString("\n")
	}

	if p.PDFURL != "" {
		sb.WriteString(fmt.Sprintf("\n[%s](%s)\n", DownloadLabel(p.Title), p.PDFURL))
	}

	return sb.String()
}
