package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveRender(nil)
	m.ObserveRender(nil)
	m.ObserveRender(errors.New("boom"))
	m.ObserveToggle("dark")
	m.ObserveReload(nil, 7, 42)
	m.ObserveReload(errors.New("bad file"), 0, 0)
	m.SetPreferences(map[string]int{"dark": 4, "light": 2})

	out := scrape(t, m)
	for _, want := range []string{
		"linkshelf_page_renders_total 2",
		"linkshelf_render_errors_total 1",
		`linkshelf_theme_toggles_total{mode="dark"} 1`,
		`linkshelf_content_reloads_total{result="success"} 1`,
		`linkshelf_content_reloads_total{result="failure"} 1`,
		"linkshelf_categories 7",
		"linkshelf_resources 42",
		`linkshelf_theme_preferences{mode="dark"} 4`,
		`linkshelf_theme_preferences{mode="light"} 2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}

func TestFailedReloadKeepsGauges(t *testing.T) {
	m := New()
	m.ObserveReload(nil, 3, 9)
	m.ObserveReload(errors.New("bad file"), 0, 0)

	out := scrape(t, m)
	if !strings.Contains(out, "linkshelf_categories 3") {
		t.Error("failed reload should not reset the categories gauge")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	m.ObserveRender(nil)
	m.ObserveToggle("light")
	m.ObserveReload(nil, 1, 1)
	m.SetPreferences(map[string]int{"dark": 1})

	if m.Registry() != nil {
		t.Error("nil metrics should have no registry")
	}
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
