package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

// preferenceTimeout bounds the Redis round trips of one request.
const preferenceTimeout = 750 * time.Millisecond

const defaultVisitorCookie = "linkshelf_visitor"

// themeStore builds the preference store of one request: the theme cookie,
// followed by the Redis mirror when it is enabled and the visitor carries
// an id. With issue set, visitors without an id get a fresh one.
func themeStore(d deps.Deps, w http.ResponseWriter, r *http.Request, issue bool) theme.Store {
	cookie := theme.NewCookieStore(d.ThemeCookie, r, w)
	if d.Preferences == nil {
		return cookie
	}

	name := d.VisitorCookie
	if name == "" {
		name = defaultVisitorCookie
	}

	id := visitorID(r, name)
	if id == "" {
		if !issue {
			return cookie
		}
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    id,
			Path:     "/",
			MaxAge:   int(d.ThemeCookie.MaxAge / time.Second),
			Secure:   d.ThemeCookie.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return theme.Layered{cookie, d.Preferences.ForVisitor(id)}
}

// visitorID returns the visitor id cookie, "" when absent or not a uuid.
func visitorID(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}
