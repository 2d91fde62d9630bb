package handlers

import (
	"context"
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/render"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

// Page renders the resource directory with the theme of the visitor.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.MemoryIndex.Loaded() {
			http.Error(w, "content not loaded yet", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), preferenceTimeout)
		defer cancel()

		root := theme.NewClassList()
		ctrl := theme.New(ctx, themeStore(d, w, r, false), theme.ClientHint(r), root, d.Logger)

		page := render.BuildPage(d.MemoryIndex.Accessor(), ctrl.IsDark(), root.String())
		page.ToggleAction = ThemePath

		h := w.Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Set("Cache-Control", "private, no-cache")
		h.Set("Accept-CH", theme.HintHeader)
		h.Add("Vary", theme.HintHeader)
		h.Add("Vary", "Cookie")

		err := d.Renderer.Render(w, page)
		d.Metrics.ObserveRender(err)
		if err != nil {
			d.Logger.Error("failed to render page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
