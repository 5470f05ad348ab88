// Package catalog reads and writes the JSON or YAML files that hold
// showcase projects.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/folio/internal/models"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no project matches a lookup.
var ErrNotFound = errors.New("project not found")

// file is the on-disk shape. A bare array of projects is accepted too.
type file struct {
	Projects []models.Project `json:"projects" yaml:"projects"`
}

// isYAML reports whether path names a YAML catalog.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a catalog from path.
func Load(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if isYAML(path) {
		return ParseYAML(data)
	}
	return Parse(data)
}

// Parse decodes catalog JSON, either {"projects": [...]} or [...].
func Parse(data []byte) ([]models.Project, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var projects []models.Project
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		return projects, nil
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return f.Projects, nil
}

// ParseYAML decodes a YAML catalog, either a "projects:" mapping or a
// top-level sequence.
func ParseYAML(data []byte) ([]models.Project, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err == nil {
		return f.Projects, nil
	}

	var projects []models.Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return projects, nil
}

// Save writes projects to path in the object form. The file is replaced
// atomically and keeps the mode of the file it replaces (0644 when new).
func Save(path string, projects []models.Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := encode(path, file{Projects: projects})
	if err != nil {
		return err
	}

	// Atomic write: temp file + rename
	tmp, err := os.CreateTemp(filepath.Dir(path), "catalog-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

// encode marshals f in the format implied by path's extension.
func encode(path string, f file) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(f)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Append loads path (missing file = empty catalog), adds p and saves.
func Append(path string, p models.Project) error {
	projects, err := Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return Save(path, append(projects, p))
}

// titleSource adapts projects for fuzzy matching
type titleSource []models.Project

func (s titleSource) String(i int) string {
	return strings.ToLower(s[i].Title)
}

func (s titleSource) Len() int {
	return len(s)
}

// Find returns the project whose title best matches query.
// An exact (case-insensitive) title match wins over fuzzy scoring.
func Find(projects []models.Project, query string) (models.Project, error) {
	i, err := Index(projects, query)
	if err != nil {
		return models.Project{}, err
	}
	return projects[i], nil
}

// Index is Find returning the position of the match in projects, so callers
// can tell apart projects that share a title.
func Index(projects []models.Project, query string) (int, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, ErrNotFound
	}

	for i, p := range projects {
		if strings.ToLower(p.Title) == q {
			return i, nil
		}
	}

	matches := fuzzy.FindFrom(q, titleSource(projects))
	if len(matches) == 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return matches[0].Index, nil
}
