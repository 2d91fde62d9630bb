package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready      bool `json:"ready"`
	Categories int  `json:"categories"`
	Resources  int  `json:"resources"`
}

// Readyz answers 503 until a content snapshot is served.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{
			Ready:      d.MemoryIndex.Loaded(),
			Categories: d.MemoryIndex.CategoryCount(),
			Resources:  d.MemoryIndex.ResourceCount(),
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
