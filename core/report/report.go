package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Format selects how a Document is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a case-insensitive format name. An empty string yields FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text or markdown)", s)
	}
}

type formatKey struct{}

// WithFormat returns a context that asks calculators to render in f.
func WithFormat(ctx context.Context, f Format) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, formatKey{}, f)
}

// FormatFromContext returns the format attached with WithFormat, or FormatText.
func FormatFromContext(ctx context.Context) Format {
	if ctx == nil {
		return FormatText
	}
	if f, ok := ctx.Value(formatKey{}).(Format); ok && f != "" {
		return f
	}
	return FormatText
}

// Section is a titled bullet list.
type Section struct {
	Heading string
	Items   []string
}

// Document is the structured form of a calculator report.
type Document struct {
	Title      string
	Paragraphs []string
	Sections   []Section
	// Note is a trailing remark such as a disclaimer.
	Note string
}

// Render renders doc in the format found in ctx.
func Render(ctx context.Context, doc Document) (string, error) {
	if FormatFromContext(ctx) == FormatMarkdown {
		return doc.Markdown()
	}
	return doc.Text(), nil
}

// Text renders doc as plain text: title, paragraphs, then each section as
// "Heading:" followed by "- item" lines, then the note. Blocks are separated
// by a blank line.
func (d Document) Text() string {
	var lines []string
	if d.Title != "" {
		lines = append(lines, d.Title)
	}
	lines = append(lines, d.Paragraphs...)

	for _, s := range d.Sections {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		if s.Heading != "" {
			lines = append(lines, s.Heading+":")
		}
		for _, item := range s.Items {
			lines = append(lines, "- "+item)
		}
	}

	if d.Note != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, d.Note)
	}
	return strings.Join(lines, "\n")
}

var htmlTemplate = template.Must(template.New("report").Parse(
	`{{if .Title}}<h2>{{.Title}}</h2>{{end}}` +
		`{{range .Paragraphs}}<p>{{.}}</p>{{end}}` +
		`{{range .Sections}}{{if .Heading}}<h3>{{.Heading}}</h3>{{end}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>{{end}}` +
		`{{if .Note}}<p><em>{{.Note}}</em></p>{{end}}`,
))

// HTML renders doc as an HTML fragment with all text escaped.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

// Markdown renders doc as Markdown by converting its HTML form.
func (d Document) Markdown() (string, error) {
	html, err := d.HTML()
	if err != nil {
		return "", err
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert report to Markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
