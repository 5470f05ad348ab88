package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/folio/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"bare array", `[{"title":"A"},{"title":"B"}]`, 2},
		{"object", `{"projects":[{"title":"A","pdfUrl":"/a.pdf"}]}`, 1},
		{"whitespace", "  \n[]\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Parse() = %d projects, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse should fail on invalid JSON")
	}
}

func TestParseFields(t *testing.T) {
	got, err := Parse([]byte(`[{"title":"Report","image":"/i.png","video":"/v.mp4","detailedDescription":"a\nb","pdfUrl":"/files/x.pdf"}]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := models.Project{
		Title:               "Report",
		Image:               "/i.png",
		Video:               "/v.mp4",
		DetailedDescription: "a\nb",
		PDFURL:              "/files/x.pdf",
	}
	if got[0] != want {
		t.Errorf("Parse() = %+v, want %+v", got[0], want)
	}
}

func TestSaveLoadAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "projects.json")

	if err := Append(path, models.Project{Title: "First"}); err != nil {
		t.Fatalf("Append to missing file failed: %v", err)
	}
	if err := Append(path, models.Project{Title: "Second", PDFURL: "/s.pdf"}); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[0].Title != "First" || got[1].PDFURL != "/s.pdf" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestSaveKeepsFileMode(t *testing.T) {
	dir := t.TempDir()

	fresh := filepath.Join(dir, "fresh.json")
	if err := Save(fresh, []models.Project{{Title: "A"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(fresh)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0644 {
		t.Errorf("new catalog mode = %o, want 644", got)
	}

	shared := filepath.Join(dir, "shared.json")
	if err := os.WriteFile(shared, []byte(`[]`), 0664); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(shared, 0664); err != nil {
		t.Fatal(err)
	}
	if err := Append(shared, models.Project{Title: "B"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	info, err = os.Stat(shared)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0664 {
		t.Errorf("rewritten catalog mode = %o, want 664", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing: got %v, want ErrNotExist", err)
	}
}

func TestFind(t *testing.T) {
	projects := []models.Project{
		{Title: "Weather Dashboard"},
		{Title: "Report"},
		{Title: "Report Generator"},
	}

	tests := []struct {
		query string
		want  string
	}{
		{"report", "Report"},
		{"REPORT GENERATOR", "Report Generator"},
		{"wthr", "Weather Dashboard"},
	}

	for _, tt := range tests {
		got, err := Find(projects, tt.query)
		if err != nil {
			t.Errorf("Find(%q) failed: %v", tt.query, err)
			continue
		}
		if got.Title != tt.want {
			t.Errorf("Find(%q) = %q, want %q", tt.query, got.Title, tt.want)
		}
	}

	if _, err := Find(projects, "zzzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(zzzz) err = %v, want ErrNotFound", err)
	}
	if _, err := Find(projects, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(\"\") err = %v, want ErrNotFound", err)
	}
}

func TestIndex(t *testing.T) {
	projects := []models.Project{
		{Title: "Weather Dashboard"},
		{Title: "Report", PDFURL: "/old.pdf"},
		{Title: "Report", PDFURL: "/new.pdf"},
		{Title: "Atlas"},
	}

	tests := []struct {
		query string
		want  int
	}{
		{"report", 1},
		{"atlas", 3},
		{"wthr", 0},
	}

	for _, tt := range tests {
		got, err := Index(projects, tt.query)
		if err != nil {
			t.Errorf("Index(%q) failed: %v", tt.query, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}

	if i, err := Index(projects, "zzzz"); !errors.Is(err, ErrNotFound) || i != -1 {
		t.Errorf("Index(zzzz) = %d, %v; want -1, ErrNotFound", i, err)
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"sequence", "- title: A\n- title: B\n", 2},
		{"sequence after comment", "# projects\n- title: A\n", 1},
		{"mapping", "projects:\n  - title: A\n    pdfUrl: /a.pdf\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYAML([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseYAML: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d projects, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := ParseYAML([]byte("projects: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestYAMLMultilineDescription(t *testing.T) {
	got, err := ParseYAML([]byte("- title: Demo\n  detailedDescription: |\n    Line1\n    Line2\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if got[0].DetailedDescription != "Line1\nLine2\n" {
		t.Errorf("description = %q", got[0].DetailedDescription)
	}
}

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	want := models.Project{Title: "Y", Video: "/v.mp4", DetailedDescription: "a\nb"}

	if err := Append(path, want); err != nil {
		t.Fatalf("Append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[0] == '{' {
		t.Errorf("expected YAML on disk, got %q", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}
