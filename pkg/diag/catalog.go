package diag

import (
	"fmt"
	"strings"

	"github.com/yaklabco/flexar/pkg/source"
)

// Template is a catalog entry: a stable code, a category label, and a
// message made of literal segments. A template with N segments takes
// exactly N-1 arguments, which are placed between the segments.
type Template struct {
	Code     string
	Category string
	Segments []string

	// Doc is optional Markdown documentation, usually with an example report.
	Doc string
}

// Define returns a template. With a single segment the message is fixed.
func Define(code, category string, segments ...string) Template {
	if len(segments) == 0 {
		segments = []string{""}
	}
	return Template{Code: code, Category: category, Segments: segments}
}

// WithDoc returns a copy of t with documentation attached.
func (t Template) WithDoc(doc string) Template {
	t.Doc = doc
	return t
}

// Arity returns the number of literal segments.
func (t Template) Arity() int {
	return len(t.Segments)
}

// Format interleaves args between the literal segments. Supplying anything
// other than Arity()-1 arguments panics with *InternalError.
func (t Template) Format(args ...any) string {
	if len(args) != len(t.Segments)-1 {
		internalf("template %s expected %d arg(s) but received %d",
			t.Code, len(t.Segments)-1, len(args))
	}

	var builder strings.Builder
	for idx, segment := range t.Segments {
		if idx > 0 {
			builder.WriteString(fmt.Sprint(args[idx-1]))
		}
		builder.WriteString(segment)
	}
	return builder.String()
}

// At instantiates the template at pos.
func (t Template) At(pos source.Position, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:     t.Code,
		Category: t.Category,
		Message:  t.Format(args...),
		Pos:      pos,
	}
}

// Placeholder returns the message with each argument slot shown as "{n}".
func (t Template) Placeholder() string {
	var builder strings.Builder
	for idx, segment := range t.Segments {
		if idx > 0 {
			fmt.Fprintf(&builder, "{%d}", idx-1)
		}
		builder.WriteString(segment)
	}
	return builder.String()
}

// Catalog is a read-only table of templates keyed by code. It is built once
// and never mutated, so it is safe to share between goroutines.
type Catalog struct {
	name      string
	byCode    map[string]int
	templates []Template
}

// NewCatalog builds a catalog. Duplicate codes panic with *InternalError.
func NewCatalog(name string, templates ...Template) *Catalog {
	catalog := &Catalog{
		name:      name,
		byCode:    make(map[string]int, len(templates)),
		templates: make([]Template, 0, len(templates)),
	}
	for _, tmpl := range templates {
		if _, dup := catalog.byCode[tmpl.Code]; dup {
			internalf("catalog %s: duplicate code %s", name, tmpl.Code)
		}
		catalog.byCode[tmpl.Code] = len(catalog.templates)
		catalog.templates = append(catalog.templates, tmpl)
	}
	return catalog
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Get looks up a template by code.
func (c *Catalog) Get(code string) (Template, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return Template{}, false
	}
	return c.templates[idx], true
}

// MustGet looks up a template and panics with *InternalError when the code
// is unknown.
func (c *Catalog) MustGet(code string) Template {
	tmpl, ok := c.Get(code)
	if !ok {
		internalf("catalog %s: unknown code %s", c.name, code)
	}
	return tmpl
}

// At instantiates the template registered under code.
func (c *Catalog) At(code string, pos source.Position, args ...any) *Diagnostic {
	return c.MustGet(code).At(pos, args...)
}

// Templates returns the templates in declaration order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}
