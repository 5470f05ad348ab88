package showcase

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/pkg/showcase/modal"
	"github.com/marcus/folio/pkg/showcase/richtext"
)

// plainLines strips styling and trailing padding from a frame.
func plainLines(frame string) []string {
	lines := strings.Split(ansi.Strip(frame), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func lineIndex(lines []string, substr string) int {
	for i, l := range lines {
		if strings.Contains(l, substr) {
			return i
		}
	}
	return -1
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// mount renders pm at 100x40 and returns the frame plus a close counter.
func mount(t *testing.T, p *models.Project) (*ProjectModal, *int, string) {
	t.Helper()
	closes := 0
	pm := NewProjectModal(p, func() { closes++ }, Options{})
	pm.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return pm, &closes, pm.View("")
}

func clickID(t *testing.T, pm *ProjectModal, id string) tea.Cmd {
	t.Helper()
	r := pm.mouse.HitMap.Find(id)
	if r == nil {
		t.Fatalf("region %q not registered", id)
	}
	return pm.Update(leftClick(r.Rect.X+r.Rect.W/2, r.Rect.Y+r.Rect.H/2))
}

func TestNilProjectRendersNothing(t *testing.T) {
	called := false
	pm := NewProjectModal(nil, func() { called = true }, Options{})

	if got := pm.View("background"); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
	pm.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pm.Update(leftClick(0, 0))
	if called {
		t.Error("nil project modal invoked onClose")
	}
}

func TestEndToEndDemo(t *testing.T) {
	p := &models.Project{Title: "Demo", DetailedDescription: "Line1\nLine2"}
	pm, closes, frame := mount(t, p)
	lines := plainLines(frame)

	header := lineIndex(lines, "Demo")
	if header < 0 || !strings.Contains(lines[header], CloseGlyph) {
		t.Fatalf("header with title and close glyph not found:\n%s", strings.Join(lines, "\n"))
	}

	l1, l2 := lineIndex(lines, "Line1"), lineIndex(lines, "Line2")
	if l1 < 0 || l2 != l1+1 {
		t.Errorf("Line1 at %d, Line2 at %d; want consecutive lines", l1, l2)
	}
	if strings.Contains(lines[l1], "Line2") {
		t.Error("Line1 and Line2 rendered on one line")
	}

	if strings.Contains(frame, MediaGlyph) {
		t.Error("media block rendered without media")
	}
	if strings.Contains(frame, "Download") {
		t.Error("download block rendered without pdfUrl")
	}

	clickID(t, pm, actionClose)
	if *closes != 1 {
		t.Errorf("footer click invoked onClose %d times, want 1", *closes)
	}
}

func TestCloseTriggers(t *testing.T) {
	p := &models.Project{Title: "Report", DetailedDescription: "text"}

	t.Run("backdrop", func(t *testing.T) {
		pm, closes, _ := mount(t, p)
		pm.Update(leftClick(0, 0))
		if *closes != 1 {
			t.Errorf("onClose called %d times, want 1", *closes)
		}
	})

	t.Run("glyph", func(t *testing.T) {
		pm, closes, _ := mount(t, p)
		clickID(t, pm, modal.CloseGlyphID)
		if *closes != 1 {
			t.Errorf("onClose called %d times, want 1", *closes)
		}
	})

	t.Run("footer", func(t *testing.T) {
		pm, closes, _ := mount(t, p)
		clickID(t, pm, actionClose)
		if *closes != 1 {
			t.Errorf("onClose called %d times, want 1", *closes)
		}
	})

	t.Run("clicks inside panel are contained", func(t *testing.T) {
		pm, closes, frame := mount(t, p)
		lines := plainLines(frame)
		y := lineIndex(lines, "text")
		x := strings.Index(lines[y], "text")
		pm.Update(leftClick(x, y))

		panel := pm.mouse.HitMap.Find(modal.PanelID).Rect
		pm.Update(leftClick(panel.X, panel.Y))
		pm.Update(leftClick(panel.X+panel.W-1, panel.Y+panel.H-1))

		if *closes != 0 {
			t.Errorf("inside clicks invoked onClose %d times, want 0", *closes)
		}
	})

	t.Run("no debouncing", func(t *testing.T) {
		pm, closes, _ := mount(t, p)
		clickID(t, pm, actionClose)
		clickID(t, pm, actionClose)
		pm.Update(leftClick(0, 0))
		if *closes != 3 {
			t.Errorf("onClose called %d times, want 3", *closes)
		}
	})

	t.Run("escape", func(t *testing.T) {
		pm, closes, _ := mount(t, p)
		pm.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if *closes != 1 {
			t.Errorf("onClose called %d times, want 1", *closes)
		}
	})
}

func TestFallbackDescription(t *testing.T) {
	_, _, frame := mount(t, &models.Project{Title: "Empty"})
	plain := ansi.Strip(frame)
	if n := strings.Count(plain, richtext.FallbackText); n != 1 {
		t.Errorf("fallback text count = %d, want 1", n)
	}

	_, _, frame = mount(t, &models.Project{Title: "Full", DetailedDescription: "details"})
	if strings.Contains(ansi.Strip(frame), richtext.FallbackText) {
		t.Error("fallback shown for a non-empty description")
	}
}

func TestMediaPriority(t *testing.T) {
	tests := []struct {
		name    string
		project models.Project
		want    string
		present bool
	}{
		{"both prefers video", models.Project{Title: "M", Image: "/img/still.png", Video: "/vid/clip.mp4"}, "/vid/clip.mp4", true},
		{"image only", models.Project{Title: "M", Image: "/img/still.png"}, "/img/still.png", true},
		{"video only", models.Project{Title: "M", Video: "/vid/clip.mp4"}, "/vid/clip.mp4", true},
		{"none", models.Project{Title: "M"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := MediaSource(tt.project)
			if ok != tt.present || src != tt.want {
				t.Errorf("MediaSource() = (%q, %v), want (%q, %v)", src, ok, tt.want, tt.present)
			}

			_, _, frame := mount(t, &tt.project)
			plain := ansi.Strip(frame)
			if strings.Contains(plain, MediaGlyph) != tt.present {
				t.Errorf("media block present = %v, want %v", !tt.present, tt.present)
			}
			if tt.present && !strings.Contains(plain, tt.want) {
				t.Errorf("media source %q not rendered", tt.want)
			}
			if tt.project.Video != "" && tt.project.Image != "" && strings.Contains(plain, tt.project.Image) {
				t.Error("image reference rendered although video is set")
			}
		})
	}
}

func TestMediaAltIsTitle(t *testing.T) {
	_, _, frame := mount(t, &models.Project{Title: "Gallery", Image: "/a.png"})
	lines := plainLines(frame)
	if i := lineIndex(lines, MediaGlyph); i < 0 || !strings.Contains(lines[i], MediaGlyph+" Gallery") {
		t.Errorf("media label should carry the title:\n%s", strings.Join(lines, "\n"))
	}
}

func TestDownloadLink(t *testing.T) {
	const pdf = "/files/x.pdf"

	pm, closes, frame := mount(t, &models.Project{Title: "Report", PDFURL: pdf})
	if n := strings.Count(frame, "8;;"+pdf); n != 1 {
		t.Errorf("download link count = %d, want 1", n)
	}
	if !strings.Contains(ansi.Strip(frame), DownloadLabel("Report")) {
		t.Error("download label missing")
	}
	if !strings.Contains(DownloadLabel("Report"), "Report") {
		t.Error("download label must include the title")
	}

	cmd := clickID(t, pm, actionDownload)
	if cmd == nil {
		t.Fatal("download click returned no command")
	}
	var got *DownloadRequestedMsg
	switch msg := cmd().(type) {
	case DownloadRequestedMsg:
		got = &msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if d, ok := c().(DownloadRequestedMsg); ok {
				got = &d
			}
		}
	}
	if got == nil || got.URL != pdf || got.Title != "Report" {
		t.Errorf("download msg = %+v", got)
	}
	if *closes != 0 {
		t.Error("download click closed the modal")
	}

	_, _, frame = mount(t, &models.Project{Title: "Report"})
	if strings.Contains(frame, "8;;") && strings.Contains(frame, ".pdf") {
		t.Error("download link rendered without pdfUrl")
	}
}

func TestDescriptorNotMutated(t *testing.T) {
	p := &models.Project{Title: "T", Image: "/i.png", Video: "/v.mp4", DetailedDescription: "a\nb", PDFURL: "/p.pdf"}
	before := *p
	pm, _, _ := mount(t, p)
	pm.Update(tea.KeyMsg{Type: tea.KeyTab})
	pm.Update(leftClick(0, 0))
	pm.View("")
	if *p != before {
		t.Errorf("descriptor mutated: %+v -> %+v", before, *p)
	}
}

func TestBodyScrollsWhenLong(t *testing.T) {
	var rows []string
	for i := 0; i < 100; i++ {
		rows = append(rows, "row")
	}
	pm, _, frame := mount(t, &models.Project{Title: "Long", DetailedDescription: strings.Join(rows, "\n")})

	if got := len(plainLines(frame)); got != 40 {
		t.Errorf("frame height = %d, want screen height 40", got)
	}
	panel := pm.mouse.HitMap.Find(modal.PanelID).Rect
	if panel.H > 40*80/100 {
		t.Errorf("panel height %d exceeds 80%% of the screen", panel.H)
	}

	pm.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if pm.body.YOffset() == 0 {
		t.Error("pgdown did not scroll the body")
	}
}

func TestProseOption(t *testing.T) {
	pm := NewProjectModal(&models.Project{Title: "P", DetailedDescription: "Line1\nLine2"}, nil, Options{Prose: true, ProseStyle: "notty"})
	pm.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	lines := plainLines(pm.View(""))
	l1, l2 := lineIndex(lines, "Line1"), lineIndex(lines, "Line2")
	if l1 < 0 || l2 <= l1 {
		t.Errorf("prose body lost line break: Line1=%d Line2=%d", l1, l2)
	}
}

func TestViewDropsControlSequences(t *testing.T) {
	p := &models.Project{
		Title:               "T\x1b]0;pwned\x07",
		Video:               "/v.mp4\x1b[2J",
		DetailedDescription: "copy \x1b]52;c;aGk=\x07me\n\x1b[2Jclear\x07",
		PDFURL:              "/x.pdf\x07",
	}
	_, _, frame := mount(t, p)

	for _, seq := range []string{"\x1b]0;", "\x1b]52;", "\x1b[2J", "pwned"} {
		if strings.Contains(frame, seq) {
			t.Errorf("frame contains %q", seq)
		}
	}
	plain := ansi.Strip(frame)
	if strings.ContainsAny(plain, "\x1b\x07") {
		t.Errorf("frame has control bytes outside styling: %q", plain)
	}
	if !strings.Contains(plain, "copy me") || !strings.Contains(plain, "clear") {
		t.Error("description text lost while removing control sequences")
	}
}

func TestPanelFitsShortScreen(t *testing.T) {
	p := &models.Project{
		Title:               "Short",
		Image:               "/s.png",
		DetailedDescription: strings.Repeat("line\n", 20),
		PDFURL:              "/s.pdf",
	}

	tests := []struct {
		name          string
		width, height int
		media         int // 1 shown, 0 dropped, -1 either
	}{
		{"roomy", 100, 40, 1},
		{"short drops media", 80, 14, 0},
		{"very short", 80, 10, 0},
		{"narrow", 16, 20, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closes := 0
			pm := NewProjectModal(p, func() { closes++ }, Options{})
			pm.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			frame := pm.View("")

			panel := pm.mouse.HitMap.Find(modal.PanelID).Rect
			if panel.Y+panel.H > tt.height || panel.X+panel.W > tt.width {
				t.Fatalf("panel %+v exceeds %dx%d screen", panel, tt.width, tt.height)
			}
			if shown := strings.Contains(frame, MediaGlyph); tt.media >= 0 && shown != (tt.media == 1) {
				t.Errorf("media shown = %v, want %v", shown, tt.media == 1)
			}
			if lineIndex(plainLines(frame), CloseLabel) < 0 {
				t.Error("footer close button cut off")
			}

			clickID(t, pm, actionClose)
			if closes != 1 {
				t.Errorf("footer click closes = %d, want 1", closes)
			}
		})
	}
}
