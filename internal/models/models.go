package models

import "strings"

// Project describes one showcase entry. It is owned by the caller and
// treated as read-only by everything that renders it.
type Project struct {
	Title               string `json:"title" yaml:"title"`
	Image               string `json:"image,omitempty" yaml:"image,omitempty"`
	Video               string `json:"video,omitempty" yaml:"video,omitempty"`
	DetailedDescription string `json:"detailedDescription,omitempty" yaml:"detailedDescription,omitempty"`
	PDFURL              string `json:"pdfUrl,omitempty" yaml:"pdfUrl,omitempty"`
}

// HasMedia reports whether the project carries an image or video reference.
func (p Project) HasMedia() bool {
	return p.Image != "" || p.Video != ""
}

// HasDownload reports whether the project links a downloadable document.
func (p Project) HasDownload() bool {
	return p.PDFURL != ""
}

// Config holds folio settings persisted in .folio/config.json
type Config struct {
	Catalog     string `json:"catalog,omitempty"`      // Default catalog path, relative to the base dir
	ModalWidth  int    `json:"modal_width,omitempty"`  // 0 = derive from terminal width
	Prose       bool   `json:"prose,omitempty"`        // Render descriptions through glamour
	ProseStyle  string `json:"prose_style,omitempty"`  // glamour style name (dark, light, notty)
	TrustMarkup bool   `json:"trust_markup,omitempty"` // Emit description markup verbatim (sanitized) in HTML export
}

// DefaultCatalog is used when neither flags nor config name a catalog.
const DefaultCatalog = "projects.json"

// CatalogPath returns the configured catalog or the default.
func (c Config) CatalogPath() string {
	if strings.TrimSpace(c.Catalog) == "" {
		return DefaultCatalog
	}
	return c.Catalog
}

// ProseStyleOrDefault returns the glamour style, defaulting to dark.
func (c Config) ProseStyleOrDefault() string {
	switch c.ProseStyle {
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		return c.ProseStyle
	default:
		return "dark"
	}
}
