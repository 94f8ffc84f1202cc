// Package preview keeps a rendered surface in sync with the document store.
// Whenever the document or the selected template changes, the controller
// re-renders synchronously so there is never a stale-preview window.
package preview

import (
	"log"
	"sync"

	"github.com/Koushiik20/ResuMate/internal/rendering"
	"github.com/Koushiik20/ResuMate/internal/store"
	"github.com/Koushiik20/ResuMate/internal/types"
)

// Surface is the current rendered preview. Key changes whenever the
// selected template changes; consumers use it to force a remount so no
// transient layout state leaks from the previously selected template.
type Surface struct {
	HTML       string
	TemplateID string
	Key        int
}

// Controller renders the selected template for the current document and
// exposes the result for on-screen display and export. It holds no state
// of its own beyond the remount key.
type Controller struct {
	mu       sync.Mutex
	store    *store.Store
	registry *rendering.Registry
	surface  Surface
	lastID   string
}

// NewController wires a controller to the store and renders the initial
// surface. It registers itself as the store's change listener.
func NewController(s *store.Store, registry *rendering.Registry) *Controller {
	c := &Controller{
		store:    s,
		registry: registry,
	}
	c.render(s.Document())
	s.OnChange(c.render)
	return c
}

// render resolves the document's template through the registry (unknown
// identifiers fall back to the default renderer) and replaces the surface.
func (c *Controller) render(doc *types.ResumeDocument) {
	renderer := c.registry.Resolve(doc.Template)

	layout, err := renderer.Render(doc)
	if err != nil {
		// Embedded templates render pure data; a failure here is a bug,
		// but the previous surface stays intact rather than going blank.
		log.Printf("[PREVIEW] render failed for template %q: %v", doc.Template, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if layout.TemplateID != c.lastID {
		c.surface.Key++
		c.lastID = layout.TemplateID
	}
	c.surface.HTML = layout.HTML
	c.surface.TemplateID = layout.TemplateID
}

// Surface returns the current rendered preview
func (c *Controller) Surface() Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}
