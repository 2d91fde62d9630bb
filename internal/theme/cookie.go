package theme

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// CookieOptions configures the preference cookie.
type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// CookieStore keeps the preference in a cookie of the current request.
// It is bound to one request/response pair.
type CookieStore struct {
	opts CookieOptions
	r    *http.Request
	w    http.ResponseWriter
}

// NewCookieStore binds a store to r and w. w may be nil for read-only use.
func NewCookieStore(opts CookieOptions, r *http.Request, w http.ResponseWriter) *CookieStore {
	if opts.Name == "" {
		opts.Name = "theme"
	}
	return &CookieStore{opts: opts, r: r, w: w}
}

func (s *CookieStore) Load(_ context.Context) (string, error) {
	c, err := s.r.Cookie(s.opts.Name)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

func (s *CookieStore) Save(_ context.Context, mode string) error {
	if s.w == nil {
		return errors.New("cookie store is read-only")
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.opts.Name,
		Value:    mode,
		Path:     "/",
		MaxAge:   int(s.opts.MaxAge / time.Second),
		Secure:   s.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
