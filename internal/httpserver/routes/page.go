package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
)

func init() {
	Register("page", registerPage)
	Register("theme", registerTheme)
	Register("content", registerContent)
}

func registerPage(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
}

func registerTheme(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:           d.ToggleBurst,
		RefillPerMinute: d.ToggleRefillPerMinute,
		MaxEntries:      10_000,
		TrustProxy:      d.TrustProxy,
	})).Post(handlers.ThemePath, handlers.ToggleTheme(d))
}

func registerContent(r chi.Router, d deps.Deps) {
	r.Get("/api/content", handlers.Content(d))
}
