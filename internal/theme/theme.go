// Package theme owns the light/dark mode of a page.
//
// The mode is decided once per page from the persisted preference, then the
// reported system preference, then light. A toggle flips it, updates the
// document root marker and persists the new value.
package theme

import (
	"context"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

const (
	// Dark and Light are the only values ever persisted.
	Dark  = "dark"
	Light = "light"

	// DarkMarker is the class placed on the document root in dark mode.
	DarkMarker = "dark"
)

// Store persists the preference. Load returns "" when nothing is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, mode string) error
}

// SystemPreference reports whether the client prefers a dark scheme.
type SystemPreference func() (bool, error)

// Root is the document root the dark marker is applied to.
type Root interface {
	Add(class string)
	Remove(class string)
}

// Resolve applies the initialization order: a saved "dark" or "light"
// wins, otherwise the system preference decides.
func Resolve(saved string, systemDark bool) bool {
	switch saved {
	case Dark:
		return true
	case Light:
		return false
	default:
		return systemDark
	}
}

// Flip is the toggle transition.
func Flip(dark bool) bool { return !dark }

// ModeOf names a state.
func ModeOf(dark bool) string {
	if dark {
		return Dark
	}
	return Light
}

// Controller is the single owner of one page's theme state.
type Controller struct {
	dark  bool
	store Store
	root  Root
	log   logger.Logger
}

// New reads the persisted preference, falls back to the system preference
// and applies the result to root. Read failures degrade to light.
// system may be nil when no signal is available.
func New(ctx context.Context, store Store, system SystemPreference, root Root, log logger.Logger) *Controller {
	c := &Controller{store: store, root: root, log: log}

	saved := ""
	if store != nil {
		v, err := store.Load(ctx)
		if err != nil {
			log.Debug("theme preference unavailable", logger.Error(err))
		} else {
			saved = v
		}
	}

	systemDark := false
	if saved != Dark && saved != Light && system != nil {
		v, err := system()
		if err != nil {
			log.Debug("system color scheme unavailable", logger.Error(err))
		} else {
			systemDark = v
		}
	}

	c.dark = Resolve(saved, systemDark)
	c.apply()
	return c
}

// IsDark reports the current state.
func (c *Controller) IsDark() bool { return c.dark }

// Mode returns "dark" or "light".
func (c *Controller) Mode() string { return ModeOf(c.dark) }

// Toggle flips the state, updates the root marker and persists the new
// mode. A failed write is logged; the in-memory state still flips.
func (c *Controller) Toggle(ctx context.Context) bool {
	c.dark = Flip(c.dark)
	c.apply()

	if c.store != nil {
		if err := c.store.Save(ctx, c.Mode()); err != nil {
			c.log.Warn("failed to persist theme preference",
				logger.String("mode", c.Mode()),
				logger.Error(err))
		}
	}
	return c.dark
}

func (c *Controller) apply() {
	if c.root == nil {
		return
	}
	if c.dark {
		c.root.Add(DarkMarker)
	} else {
		c.root.Remove(DarkMarker)
	}
}
