package homepage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeServices(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeServices(t, `---
- Infrastructure:
    - AdGuard Home:
        icon: adguard-home.svg
        href: https://adguard.domain.ext
        description: Network-wide ads & trackers blocking DNS server
        widget:
          type: adguard
- Media:
    - Jellyfin:
        href: https://jf.domain.ext
`)

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg) != 2 {
		t.Fatalf("Load() returned %d groups, want 2", len(cfg))
	}
	svc := cfg[0]["Infrastructure"][0]["AdGuard Home"]
	if svc.Href != "https://adguard.domain.ext" || svc.Icon != "adguard-home.svg" {
		t.Errorf("AdGuard Home = %+v", svc)
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	path := writeServices(t, `---
- Infrastructure:
    - AdGuard Home:
        href: {{HOMEPAGE_VAR_ADGUARD_URL}}
        description: "{{HOMEPAGE_VAR_DESC}}"
`)

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	svc := cfg[0]["Infrastructure"][0]["AdGuard Home"]
	if svc.Href != "" || svc.Description != "" {
		t.Errorf("template variables should be blanked, got %+v", svc)
	}
}

func TestLoaderLoadErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() on a missing file should fail")
	}

	path := writeServices(t, "- Infrastructure: [unclosed\n")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() on invalid YAML should fail")
	}
}
