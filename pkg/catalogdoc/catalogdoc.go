// Package catalogdoc renders diagnostic catalogs as a browsable error index,
// as Markdown or as HTML converted with goldmark.
package catalogdoc

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/yaklabco/flexar/pkg/diag"
)

// DefaultTitle is the heading of the generated index.
const DefaultTitle = "Error index"

// Generator renders error indexes.
type Generator struct {
	title string
	md    goldmark.Markdown
}

// New creates a generator. An empty title uses DefaultTitle.
func New(title string) *Generator {
	if title == "" {
		title = DefaultTitle
	}
	return &Generator{
		title: title,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAttribute()),
		),
	}
}

// Anchor returns the fragment identifier of a code's section.
func Anchor(code string) string {
	return strings.ToLower(code)
}

// Markdown renders the catalogs: an overview table linking to one section
// per template, grouped by catalog in the order given.
func (g *Generator) Markdown(catalogs ...*diag.Catalog) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", g.title)
	buf.WriteString("| Code | Category | Message |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, catalog := range catalogs {
		for _, tmpl := range catalog.Templates() {
			fmt.Fprintf(&buf, "| [%s](#%s) | %s | %s |\n",
				tmpl.Code, Anchor(tmpl.Code), escapeCell(tmpl.Category), escapeCell(tmpl.Placeholder()))
		}
	}

	for _, catalog := range catalogs {
		fmt.Fprintf(&buf, "\n## %s\n", catalog.Name())
		for _, tmpl := range catalog.Templates() {
			fmt.Fprintf(&buf, "\n### %s: %s {#%s}\n\n", tmpl.Code, tmpl.Category, Anchor(tmpl.Code))
			fmt.Fprintf(&buf, "> %s\n", tmpl.Placeholder())
			if doc := strings.TrimSpace(tmpl.Doc); doc != "" {
				fmt.Fprintf(&buf, "\n%s\n", doc)
			}
		}
	}

	return buf.Bytes()
}

// HTML renders the catalogs as a standalone HTML page.
func (g *Generator) HTML(ctx context.Context, catalogs ...*diag.Catalog) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render cancelled: %w", err)
	}

	var body bytes.Buffer
	if err := g.md.Convert(g.Markdown(catalogs...), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(g.title))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
