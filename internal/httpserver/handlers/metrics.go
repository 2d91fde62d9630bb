package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

// Metrics serves the Prometheus registry.
func Metrics(d deps.Deps) http.Handler {
	return d.Metrics.Handler()
}
