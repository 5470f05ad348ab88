// Package richtext turns plain project descriptions into a typed sequence of
// text spans and line breaks, and renders that sequence for the terminal or
// for HTML.
//
// Plain text is never interpreted as markup. The only verbatim output is
// Document.Markup, which callers must opt into and should pass through
// Sanitize before embedding it in a page. Terminal outputs never carry
// escape sequences or control characters from the source text.
package richtext

import (
	"bytes"
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
)

// FallbackText is shown when a project has no detailed description.
const FallbackText = "No detailed description available."

// BreakMarker is the line-break marker used in markup output.
const BreakMarker = "<br />"

// Kind identifies a span type.
type Kind int

const (
	SpanText Kind = iota
	SpanBreak
)

// Span is one piece of a Document.
type Span struct {
	Kind Kind
	Text string // empty for breaks
}

// Document is a parsed description.
type Document struct {
	Spans    []Span
	Fallback bool // true when the source text was empty
}

// Parse splits plain text on newlines. Every newline becomes a SpanBreak;
// all other characters are kept as-is. Empty text yields the fallback document.
func Parse(plain string) Document {
	if plain == "" {
		return Document{
			Spans:    []Span{{Kind: SpanText, Text: FallbackText}},
			Fallback: true,
		}
	}

	parts := strings.Split(plain, "\n")
	spans := make([]Span, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			spans = append(spans, Span{Kind: SpanBreak})
		}
		if part != "" {
			spans = append(spans, Span{Kind: SpanText, Text: part})
		}
	}
	return Document{Spans: spans}
}

// Breaks returns the number of line breaks in the document.
func (d Document) Breaks() int {
	n := 0
	for _, s := range d.Spans {
		if s.Kind == SpanBreak {
			n++
		}
	}
	return n
}

// Markup returns the description as trusted markup: text verbatim, one
// BreakMarker per newline. The fallback is wrapped in a paragraph.
func (d Document) Markup() string {
	return d.join(func(s string) string { return s })
}

// HTML is Markup with every text span HTML-escaped.
func (d Document) HTML() string {
	return d.join(html.EscapeString)
}

func (d Document) join(text func(string) string) string {
	if d.Fallback {
		return "<p>" + text(FallbackText) + "</p>"
	}
	var sb strings.Builder
	for _, s := range d.Spans {
		switch s.Kind {
		case SpanBreak:
			sb.WriteString(BreakMarker)
		default:
			sb.WriteString(text(s.Text))
		}
	}
	return sb.String()
}

// Lines returns one entry per text segment between breaks, made
// TerminalSafe. Empty segments (consecutive newlines) are kept as empty
// strings.
func (d Document) Lines() []string {
	lines := []string{""}
	for _, s := range d.Spans {
		if s.Kind == SpanBreak {
			lines = append(lines, "")
			continue
		}
		lines[len(lines)-1] += TerminalSafe(s.Text)
	}
	return lines
}

// TerminalSafe removes ANSI escape sequences and C0/C1 control characters
// from s. Tabs become spaces.
func TerminalSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// Wrap renders the document for a terminal of the given width.
func (d Document) Wrap(width int) string {
	text := strings.Join(d.Lines(), "\n")
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, " -")
}

// Prose renders the document as markdown through glamour using the named
// style. Every break stays a line break. Rendering errors fall back to Wrap.
func (d Document) Prose(width int, style string) string {
	if d.Fallback {
		return d.Wrap(width)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return d.Wrap(width)
	}

	rendered, err := renderer.Render(strings.Join(d.Lines(), "\n"))
	if err != nil {
		return d.Wrap(width)
	}

	// Glamour adds trailing newlines and a leading blank line
	return strings.Trim(rendered, "\n\r\t ")
}

// md renders prose for HTML. Raw HTML in the source is dropped and every
// newline is a hard break.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldhtml.WithHardWraps()),
)

// ProseHTML renders the document as markdown for a page, the HTML
// counterpart of Prose. The result is sanitized. Rendering errors and the
// fallback use HTML.
func (d Document) ProseHTML() string {
	if d.Fallback {
		return d.HTML()
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.Join(d.Lines(), "\n")), &buf); err != nil {
		return d.HTML()
	}
	return Sanitize(strings.TrimSpace(buf.String()))
}

var ugc = bluemonday.UGCPolicy()

// Sanitize applies the user-generated-content policy to trusted markup
// before it is embedded in a page.
func Sanitize(markup string) string {
	return ugc.Sanitize(markup)
}
