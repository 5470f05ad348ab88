package showcase

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/marcus/folio/internal/models"
	"github.com/marcus/folio/pkg/showcase/richtext"
)

// PageOptions control RenderPage.
type PageOptions struct {
	// TrustMarkup emits the description verbatim (after sanitizing) instead
	// of escaping it. Only set this for catalogs you author.
	TrustMarkup bool
	// Prose renders the description as markdown. Ignored with TrustMarkup.
	Prose bool
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title         string
	Media         string
	Description   template.HTML
	Fallback      bool
	PDFURL        string
	DownloadLabel string
	CloseLabel    string
	CloseGlyph    string
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// RenderPage renders project as a standalone HTML page holding the modal.
// A nil project renders an empty string.
func RenderPage(project *models.Project, opts PageOptions) (string, error) {
	if project == nil {
		return "", nil
	}

	doc := richtext.Parse(project.DetailedDescription)
	var desc string
	switch {
	case opts.TrustMarkup:
		desc = richtext.Sanitize(doc.Markup())
	case opts.Prose:
		desc = doc.ProseHTML()
	default:
		desc = doc.HTML()
	}

	data := pageData{
		Title:       project.Title,
		Description: template.HTML(desc),
		Fallback:    doc.Fallback,
		PDFURL:      project.PDFURL,
		CloseLabel:  CloseLabel,
		CloseGlyph:  CloseGlyph,
	}
	if src, ok := MediaSource(*project); ok {
		data.Media = src
	}
	if project.HasDownload() {
		data.DownloadLabel = DownloadLabel(project.Title)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering page for %q: %w", project.Title, err)
	}
	return buf.String(), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; }
.backdrop { position: fixed; inset: 0; background: rgba(0, 0, 0, 0.6); display: flex; align-items: center; justify-content: center; }
.panel { background: #fff; border-radius: 8px; width: 80vw; max-width: 56rem; max-height: 80vh; display: flex; flex-direction: column; }
.panel header, .panel footer { display: flex; align-items: center; padding: 1rem; }
.panel header { justify-content: space-between; border-bottom: 1px solid #ddd; }
.panel footer { justify-content: flex-end; border-top: 1px solid #ddd; }
.panel h2 { margin: 0; }
.body { padding: 1rem; overflow-y: auto; }
.media { display: block; max-width: 100%; margin: 0 auto 1rem; }
.prose { line-height: 1.6; }
.prose .fallback { color: #6c757d; }
.close-glyph { background: none; border: none; font-size: 1.25rem; cursor: pointer; }
.close { padding: 0.5rem 1rem; border-radius: 4px; border: 1px solid #ccc; background: #f8f9fa; cursor: pointer; }
.download { display: block; width: fit-content; margin: 1rem auto; padding: 0.5rem 1rem; background: #DC3545; color: #fff; font-weight: bold; border-radius: 5px; text-decoration: none; }
</style>
</head>
<body>
<div class="backdrop" data-close>
  <div class="panel" role="dialog" aria-modal="true" aria-labelledby="modal-title">
    <header>
      <h2 id="modal-title">{{.Title}}</h2>
      <button type="button" class="close-glyph" aria-label="{{.CloseLabel}}" data-close>{{.CloseGlyph}}</button>
    </header>
    <div class="body">
      {{- if .Media}}
      <img class="media" src="{{.Media}}" alt="{{.Title}}">
      {{- end}}
      <div class="prose">{{if .Fallback}}<div class="fallback">{{.Description}}</div>{{else}}{{.Description}}{{end}}</div>
      {{- if .PDFURL}}
      <a class="download" href="{{.PDFURL}}" download>{{.DownloadLabel}}</a>
      {{- end}}
    </div>
    <footer>
      <button type="button" class="close" data-close>{{.CloseLabel}}</button>
    </footer>
  </div>
</div>
<script>
document.querySelectorAll("[data-close]").forEach(function (el) {
  el.addEventListener("click", function (e) {
    if (e.target !== el) { return; }
    document.querySelector(".backdrop").remove();
  });
});
document.querySelector(".panel").addEventListener("click", function (e) { e.stopPropagation(); });
</script>
</body>
</html>
`
