package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// MemoryIndex holds the content snapshot currently served.
// A snapshot is never modified in place: reloads swap it wholesale,
// so a reader always sees one consistent document.
type MemoryIndex struct {
	mu         sync.RWMutex
	doc        *domain.Content
	categories int
	resources  int
	lastReload time.Time // Timestamp of last successful load
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// Update replaces the current snapshot.
func (idx *MemoryIndex) Update(doc *domain.Content) {
	categories, resources := 0, 0
	if doc != nil {
		categories = doc.Categories.Len()
		for _, entry := range doc.Categories.Entries() {
			resources += len(entry.Category.Resources)
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.doc = doc
	idx.categories = categories
	idx.resources = resources
	idx.lastReload = time.Now()
}

// Accessor returns a read-only view over the current snapshot.
// Before the first load the view is empty.
func (idx *MemoryIndex) Accessor() *content.Accessor {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return content.NewAccessor(idx.doc)
}

// Loaded reports whether a document has been stored.
func (idx *MemoryIndex) Loaded() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.doc != nil
}

// CategoryCount returns the number of categories of the current snapshot.
func (idx *MemoryIndex) CategoryCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.categories
}

// ResourceCount returns the number of resources across all categories.
func (idx *MemoryIndex) ResourceCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.resources
}

// LastReload returns the timestamp of the last snapshot swap.
func (idx *MemoryIndex) LastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
