package homepage

import (
	"errors"
	"reflect"
	"testing"
)

func TestMapKeepsGroupAndServiceOrder(t *testing.T) {
	cfg := ServicesConfig{
		{
			"Media": []map[string]ServiceProps{
				{"Jellyfin": {Href: "https://jf.domain.ext", Icon: "🎬", Description: "Streaming"}},
				{"Sonarr": {Href: "http://sonarr.lan:8989/", Icon: "sonarr.png"}},
			},
		},
		{
			"Infrastructure": []map[string]ServiceProps{
				{"AdGuard Home": {Href: "https://adguard.domain.ext"}},
			},
		},
	}

	c, err := Map(cfg, "Open")
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if got, want := c.Categories.IDs(), []string{"media", "infrastructure"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}

	media, _ := c.Categories.Get("media")
	if media.Name != "Media" || len(media.Resources) != 2 {
		t.Fatalf("media = %+v", media)
	}

	jf := media.Resources[0]
	if jf.Title != "Jellyfin" || jf.Icon != "🎬" || jf.Subtitle != "jf.domain.ext" || jf.Description != "Streaming" {
		t.Errorf("Jellyfin = %+v", jf)
	}
	if len(jf.Buttons) != 1 || jf.Buttons[0].Text != "Open" || jf.Buttons[0].Href != "https://jf.domain.ext" || !jf.Buttons[0].Primary {
		t.Errorf("Jellyfin buttons = %+v", jf.Buttons)
	}

	sonarr := media.Resources[1]
	if sonarr.Icon != DefaultIcon || sonarr.Subtitle != "sonarr.lan" {
		t.Errorf("Sonarr = %+v", sonarr)
	}

	if c.Site.Description != "3 services in 2 groups" {
		t.Errorf("Site.Description = %q", c.Site.Description)
	}
}

func TestMapMergesGroupsWithSameSlug(t *testing.T) {
	cfg := ServicesConfig{
		{"Home Lab": []map[string]ServiceProps{{"A": {Href: "https://a.example"}}}},
		{"home-lab": []map[string]ServiceProps{{"B": {Href: "https://b.example"}}}},
	}

	c, err := Map(cfg, "Open")
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got := c.Categories.IDs(); !reflect.DeepEqual(got, []string{"home-lab"}) {
		t.Fatalf("IDs() = %v", got)
	}
	cat, _ := c.Categories.Get("home-lab")
	if cat.Name != "Home Lab" || len(cat.Resources) != 2 || cat.Resources[1].Title != "B" {
		t.Errorf("merged category = %+v", cat)
	}
}

func TestMapSkipsUnusableHrefs(t *testing.T) {
	cfg := ServicesConfig{
		{
			"Mixed": []map[string]ServiceProps{
				{"Empty": {Href: ""}},
				{"Relative": {Href: "/admin"}},
				{"Script": {Href: "javascript:alert(1)"}},
				{"Good": {Href: "https://good.example"}},
			},
		},
	}

	c, err := Map(cfg, "Open")
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	cat, _ := c.Categories.Get("mixed")
	if len(cat.Resources) != 1 || cat.Resources[0].Title != "Good" {
		t.Errorf("resources = %+v", cat.Resources)
	}
}

func TestMapNoServices(t *testing.T) {
	cfg := ServicesConfig{
		{"Broken": []map[string]ServiceProps{{"Empty": {Href: ""}}}},
	}
	if _, err := Map(cfg, "Open"); !errors.Is(err, ErrNoServices) {
		t.Errorf("Map() error = %v, want ErrNoServices", err)
	}
	if _, err := Map(nil, "Open"); !errors.Is(err, ErrNoServices) {
		t.Errorf("Map(nil) error = %v, want ErrNoServices", err)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Media", "media"},
		{"Home Lab", "home-lab"},
		{"  Dev / Tools  ", "dev-tools"},
		{"影视 资源", "影视-资源"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapFallbackGroupID(t *testing.T) {
	cfg := ServicesConfig{
		{"***": []map[string]ServiceProps{{"A": {Href: "https://a.example"}}}},
	}
	c, err := Map(cfg, "Open")
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got := c.Categories.IDs(); !reflect.DeepEqual(got, []string{"group-1"}) {
		t.Errorf("IDs() = %v", got)
	}
}
