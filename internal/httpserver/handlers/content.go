package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

type contentResponse struct {
	Site       domain.SiteInfo    `json:"site"`
	Stats      []domain.Stat      `json:"stats"`
	QuickLinks []domain.QuickLink `json:"quickLinks"`
	Categories domain.Categories  `json:"categories"`
	Footer     domain.Footer      `json:"footer"`
	Tips       any                `json:"tips,omitempty"`
	LoadedAt   string             `json:"loadedAt"`
}

// Content exposes the served document as JSON. Categories keep document
// order.
func Content(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.MemoryIndex.Loaded() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "content not loaded yet"})
			return
		}

		acc := d.MemoryIndex.Accessor()
		stats := acc.Stats()
		if stats == nil {
			stats = []domain.Stat{}
		}
		links := acc.QuickLinks()
		if links == nil {
			links = []domain.QuickLink{}
		}

		writeJSON(w, http.StatusOK, contentResponse{
			Site:       acc.SiteInfo(),
			Stats:      stats,
			QuickLinks: links,
			Categories: acc.Categories(),
			Footer:     acc.Footer(),
			Tips:       acc.Tips(),
			LoadedAt:   d.MemoryIndex.LastReload().UTC().Format(time.RFC3339),
		})
	}
}
