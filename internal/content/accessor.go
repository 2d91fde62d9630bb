package content

import "github.com/MrSnakeDoc/linkshelf/internal/domain"

// Accessor is a read-only view over a loaded document. All getters are
// safe on a nil document and on missing sections.
type Accessor struct {
	doc *domain.Content
}

// NewAccessor wraps doc. doc may be nil.
func NewAccessor(doc *domain.Content) *Accessor {
	return &Accessor{doc: doc}
}

func (a *Accessor) SiteInfo() domain.SiteInfo {
	if a == nil || a.doc == nil {
		return domain.SiteInfo{}
	}
	return a.doc.Site
}

func (a *Accessor) Stats() []domain.Stat {
	if a == nil || a.doc == nil {
		return nil
	}
	return a.doc.Stats
}

func (a *Accessor) QuickLinks() []domain.QuickLink {
	if a == nil || a.doc == nil {
		return nil
	}
	return a.doc.QuickLinks
}

func (a *Accessor) Categories() domain.Categories {
	if a == nil || a.doc == nil {
		return domain.Categories{}
	}
	return a.doc.Categories
}

func (a *Accessor) Footer() domain.Footer {
	if a == nil || a.doc == nil {
		return domain.Footer{}
	}
	return a.doc.Footer
}

// Tips returns the raw tips value. Nothing on the page consumes it.
func (a *Accessor) Tips() any {
	if a == nil || a.doc == nil {
		return nil
	}
	return a.doc.Tips
}

// CategoryResources returns the resources of a category, or an empty slice
// when the identifier is unknown.
func (a *Accessor) CategoryResources(categoryID string) []domain.Resource {
	cat, ok := a.Categories().Get(categoryID)
	if !ok || cat.Resources == nil {
		return []domain.Resource{}
	}
	return cat.Resources
}

// Document exposes the underlying document for encoders.
func (a *Accessor) Document() *domain.Content {
	if a == nil {
		return nil
	}
	return a.doc
}
