package homepage

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// DefaultIcon is used for services whose icon is an image reference.
const DefaultIcon = "🔗"

// ErrNoServices is returned when a file has no service with a usable href.
var ErrNoServices = errors.New("no valid services found in homepage config")

// Map turns homepage groups into categories and services into resource
// cards, both in file order. The category id is a slug of the group name;
// groups sharing a slug are merged. Services without an absolute http(s)
// href are skipped.
func Map(cfg ServicesConfig, buttonText string) (*domain.Content, error) {
	var (
		order []string
		byID  = map[string]*domain.Category{}
		total int
	)

	for gi, group := range cfg {
		for _, groupName := range sortedKeys(group) {
			id := slug(groupName)
			if id == "" {
				id = fmt.Sprintf("group-%d", gi+1)
			}
			cat, ok := byID[id]
			if !ok {
				cat = &domain.Category{Icon: DefaultIcon, Name: groupName, Resources: []domain.Resource{}}
				byID[id] = cat
				order = append(order, id)
			}

			for _, svc := range group[groupName] {
				for _, name := range sortedKeys(svc) {
					res, ok := mapService(name, svc[name], buttonText)
					if !ok {
						continue
					}
					cat.Resources = append(cat.Resources, res)
					total++
				}
			}
		}
	}

	if total == 0 {
		return nil, ErrNoServices
	}

	entries := make([]domain.CategoryEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, domain.CategoryEntry{ID: id, Category: *byID[id]})
	}

	return &domain.Content{
		Site: domain.SiteInfo{
			Title:       "Services",
			Description: fmt.Sprintf("%d services in %d groups", total, len(order)),
		},
		Categories: domain.NewCategories(entries...),
	}, nil
}

func mapService(name string, props ServiceProps, buttonText string) (domain.Resource, bool) {
	u, err := url.Parse(strings.TrimSpace(props.Href))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return domain.Resource{}, false
	}

	return domain.Resource{
		Icon:        serviceIcon(props.Icon),
		Title:       name,
		Subtitle:    u.Hostname(),
		Description: props.Description,
		Buttons: []domain.Button{
			{Text: buttonText, Href: u.String(), Primary: true},
		},
	}, true
}

// serviceIcon keeps emoji-like icons; homepage image names ("sonarr.png",
// "mdi-server", "si-github") become the default icon.
func serviceIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return DefaultIcon
	}
	for _, r := range icon {
		if r <= unicode.MaxASCII {
			return DefaultIcon
		}
	}
	return icon
}

// slug lowercases s and joins its letters and digits with dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// sortedKeys makes iteration over the single-key maps deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
