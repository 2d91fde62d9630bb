package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

// ThemePath is where the page posts theme toggles.
const ThemePath = "/theme"

type themeResponse struct {
	Mode string `json:"mode"`
	Dark bool   `json:"dark"`
}

// ToggleTheme flips the visitor theme and persists it. Browsers are sent
// back to the local "return" path with 303; JSON clients get the new mode.
func ToggleTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), preferenceTimeout)
		defer cancel()

		ctrl := theme.New(ctx, themeStore(d, w, r, true), theme.ClientHint(r), nil, d.Logger)
		ctrl.Toggle(ctx)
		d.Metrics.ObserveToggle(ctrl.Mode())

		d.Logger.Debug("theme toggled", logger.String("mode", ctrl.Mode()))

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			writeJSON(w, http.StatusOK, themeResponse{Mode: ctrl.Mode(), Dark: ctrl.IsDark()})
			return
		}
		http.Redirect(w, r, localPath(r.PostFormValue("return")), http.StatusSeeOther)
	}
}

// localPath keeps p only if it is a path on this site, "/" otherwise.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, `/\`) {
		return "/"
	}
	u, err := url.Parse(p)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return p
}
