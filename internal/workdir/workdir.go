// Package workdir resolves the folio base directory, so commands run from
// a subdirectory find the project's .folio settings.
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/marcus/folio/internal/models"
)

const (
	rootFile = ".folio-root"
	folioDir = ".folio"
)

// ResolveBaseDir resolves folio's root with conservative heuristics:
//  1. Honor .folio-root in the current directory.
//  2. Use current directory if it already has a .folio directory or a catalog.
//  3. If inside git, check git root for .folio-root, .folio or a catalog.
//
// If no markers are found, it returns the original baseDir unchanged.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	if resolved, ok := readRootFile(baseDir); ok {
		return resolved
	}
	if hasMarker(baseDir) {
		return baseDir
	}

	gitRoot, err := gitTopLevel(baseDir)
	if err != nil || gitRoot == "" {
		return baseDir
	}
	gitRoot = filepath.Clean(gitRoot)

	if resolved, ok := readRootFile(gitRoot); ok {
		return resolved
	}
	if hasMarker(gitRoot) {
		return gitRoot
	}

	return baseDir
}

func readRootFile(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}

	resolved := strings.TrimSpace(string(content))
	if resolved == "" {
		return "", false
	}
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(dir, resolved)
	}

	return filepath.Clean(resolved), true
}

func hasMarker(dir string) bool {
	if fi, err := os.Stat(filepath.Join(dir, folioDir)); err == nil && fi.IsDir() {
		return true
	}
	fi, err := os.Stat(filepath.Join(dir, models.DefaultCatalog))
	return err == nil && !fi.IsDir()
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
