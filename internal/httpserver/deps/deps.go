package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/index"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/metrics"
	"github.com/MrSnakeDoc/linkshelf/internal/render"
	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

// PreferenceMirror persists theme preferences beyond the cookie.
type PreferenceMirror interface {
	ForVisitor(visitorID string) theme.Store
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	AllowedHosts []string // Host headers allowed on /reload
	AllowedCIDRS []string // IPs allowed on /reload, /metrics and /infra
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins  []string // origins allowed to read the public endpoints

	MemoryIndex   *index.MemoryIndex // served content snapshot
	Renderer      *render.Renderer
	Metrics       *metrics.Metrics
	ReloadTrigger chan struct{} // manual content reload

	ThemeCookie   theme.CookieOptions
	VisitorCookie string           // visitor id cookie name, used with Preferences
	Preferences   PreferenceMirror // nil = cookie only

	ToggleBurst           int // theme toggle rate limit per client IP
	ToggleRefillPerMinute int
}
