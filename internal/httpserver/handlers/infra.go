package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Categories *int   `json:"categories,omitempty"`
	Resources  *int   `json:"resources,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the content snapshot and of the preference
// mirror.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := d.MemoryIndex.CategoryCount()
		resources := d.MemoryIndex.ResourceCount()
		lastReload := "never"
		if t := d.MemoryIndex.LastReload(); !t.IsZero() {
			lastReload = t.UTC().Format(time.RFC3339)
		}

		components := map[string]componentStatus{
			"content": {
				OK:         d.MemoryIndex.Loaded(),
				Categories: &categories,
				Resources:  &resources,
				LastReload: lastReload,
			},
			"preferences": checkPreferences(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if c, ok := components["content"]; ok && !c.OK {
		return "critical"
	}
	if p, ok := components["preferences"]; ok && !p.OK {
		return "degraded"
	}
	return "ok"
}

func checkPreferences(ctx context.Context, d deps.Deps) componentStatus {
	if d.Preferences == nil {
		return componentStatus{OK: true, Mode: "cookie"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Preferences.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "cookie",
			Impact: "preferences-not-mirrored",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true, Mode: "cookie+redis"}
}
