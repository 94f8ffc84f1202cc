package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/Koushiik20/ResuMate/internal/types"
)

// templateFiles holds the built-in resume template markup
//
//go:embed templates/*.html.tmpl
var templateFiles embed.FS

// Layout is the rendered output of a template: a self-contained HTML
// surface suitable for on-screen preview and for PDF export.
type Layout struct {
	TemplateID string
	HTML       string
}

// Renderer maps a resume document to a visual layout. Implementations must
// be stateless: the same document always produces the same output.
type Renderer interface {
	ID() string
	Render(doc *types.ResumeDocument) (*Layout, error)
}

// htmlRenderer renders the shared view model through one parsed HTML template
type htmlRenderer struct {
	id   string
	tmpl *template.Template
}

func (r *htmlRenderer) ID() string { return r.id }

func (r *htmlRenderer) Render(doc *types.ResumeDocument) (*Layout, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, BuildTemplateData(doc)); err != nil {
		return nil, &RenderError{
			Message: fmt.Sprintf("failed to execute template %q", r.id),
			Cause:   err,
		}
	}
	return &Layout{TemplateID: r.id, HTML: sb.String()}, nil
}

// newHTMLRenderer parses an embedded template file into a renderer
func newHTMLRenderer(id string) (*htmlRenderer, error) {
	name := id + ".html.tmpl"
	tmpl, err := template.New(name).ParseFS(templateFiles, "templates/"+name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %q", id),
			Cause:   err,
		}
	}
	return &htmlRenderer{id: id, tmpl: tmpl}, nil
}

// builtinTemplates lists the shipped template identifiers. "modern",
// "classic", "creative" and "minimal" are the original template family;
// "executive" was folded in from the sibling builder family.
var builtinTemplates = []string{"modern", "classic", "creative", "minimal", "executive"}

// Registry resolves template identifiers to renderers. Lookup never fails:
// an unknown identifier resolves to the default renderer.
type Registry struct {
	renderers map[string]Renderer
	defaultID string
}

// NewRegistry builds a registry holding all built-in templates, with
// "modern" as the default. Template files are embedded, so parse failures
// indicate a packaging bug and surface as an error here rather than at
// render time.
func NewRegistry() (*Registry, error) {
	reg := &Registry{
		renderers: make(map[string]Renderer, len(builtinTemplates)),
		defaultID: types.DefaultTemplate,
	}
	for _, id := range builtinTemplates {
		r, err := newHTMLRenderer(id)
		if err != nil {
			return nil, err
		}
		reg.renderers[id] = r
	}
	return reg, nil
}

// Register adds or replaces a renderer under its own id
func (reg *Registry) Register(r Renderer) {
	reg.renderers[r.ID()] = r
}

// Resolve returns the renderer for id, or the default renderer when the
// identifier is unknown. It never returns nil for a registry built by
// NewRegistry.
func (reg *Registry) Resolve(id string) Renderer {
	if r, ok := reg.renderers[id]; ok {
		return r
	}
	return reg.renderers[reg.defaultID]
}

// IDs returns the registered template identifiers in sorted order
func (reg *Registry) IDs() []string {
	ids := make([]string, 0, len(reg.renderers))
	for id := range reg.renderers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
