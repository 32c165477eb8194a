package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderedSection is a README section with its body converted to HTML.
type RenderedSection struct {
	Heading string
	Body    template.HTML
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy = bluemonday.UGCPolicy()
)

// RenderMarkdown converts a README body to sanitized HTML.
func RenderMarkdown(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

// RenderReadme converts every section of a README.
func RenderReadme(sections []ReadmeSection) ([]RenderedSection, error) {
	out := make([]RenderedSection, 0, len(sections))
	for _, s := range sections {
		body, err := RenderMarkdown(s.Body)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Heading, err)
		}
		out = append(out, RenderedSection{Heading: s.Heading, Body: body})
	}
	return out, nil
}
