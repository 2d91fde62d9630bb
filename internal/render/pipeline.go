package render

import (
	"strings"

	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

// Button variants.
const (
	VariantPrimary = "primary"
	VariantNeutral = "neutral"
)

const (
	primaryButtonClass = "bg-gradient-to-r from-emerald-500 to-cyan-500 dark:from-emerald-600 dark:to-cyan-600 text-white hover:from-emerald-600 hover:to-cyan-600 shadow-md hover:shadow-lg"
	neutralButtonClass = "bg-gray-100 dark:bg-gray-700 text-gray-700 dark:text-gray-200 hover:bg-gray-200 dark:hover:bg-gray-600 shadow-sm"

	highlightQuickLinkClass = "bg-gradient-to-br from-orange-500 via-red-500 to-pink-500 text-white"
	plainQuickLinkClass     = "bg-white dark:bg-gray-800 text-gray-800 dark:text-gray-200 hover:bg-gradient-to-br hover:from-blue-50 hover:to-purple-50 dark:hover:from-gray-700 dark:hover:to-gray-600"
)

// Link is an href plus how it opens. External links open in a new browsing
// context without referrer or opener.
type Link struct {
	Href     string
	External bool
}

// NewLink classifies href. In-page anchors and site-relative paths stay in
// the current page; everything else is external.
func NewLink(href string) Link {
	external := href != "" && !strings.HasPrefix(href, "#") &&
		!(strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//"))
	return Link{Href: href, External: external}
}

// NavItem is one entry of the header navigation.
type NavItem struct {
	Name       string
	Icon       string
	Link       Link
	HoverClass string
}

// QuickLinkView is a shortcut of the quick-links strip.
type QuickLinkView struct {
	Icon      string
	Title     string
	Link      Link
	Highlight bool
	Class     string
}

// ButtonView is an action link of a card.
type ButtonView struct {
	Text    string
	Icon    string
	Link    Link
	Variant string
	Class   string
}

// Primary reports the emphasized variant.
func (b ButtonView) Primary() bool { return b.Variant == VariantPrimary }

// CardView is one resource card.
type CardView struct {
	Icon        string
	Title       string
	Subtitle    string
	Description string // full text; the template clamps it visually
	Buttons     []ButtonView
	Palette     Palette
}

// SectionView is a category section with its cards.
type SectionView struct {
	ID     string // page anchor
	Icon   string
	Name   string
	Colors ColorPair
	Cards  []CardView
}

// StatView is one card of the stats banner.
type StatView struct {
	Icon   string
	Value  string
	Label  string
	Accent string
}

// FooterView holds the footer texts and links.
type FooterView struct {
	Disclaimer string
	Copyright  string
	Links      []FooterLinkView
}

// Empty reports a footer with nothing to show.
func (f FooterView) Empty() bool {
	return f.Disclaimer == "" && f.Copyright == "" && len(f.Links) == 0
}

// FooterLinkView is one footer link.
type FooterLinkView struct {
	Text string
	Link Link
}

// BuildNav maps the static navigation table.
func BuildNav(entries []NavEntry) []NavItem {
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, NavItem{
			Name:       e.Name,
			Icon:       e.Icon,
			Link:       NewLink(e.Href),
			HoverClass: NavHoverClass(e.Color),
		})
	}
	return items
}

// BuildQuickLinks keeps source order and duplicates.
func BuildQuickLinks(links []domain.QuickLink) []QuickLinkView {
	views := make([]QuickLinkView, 0, len(links))
	for _, l := range links {
		class := plainQuickLinkClass
		if l.Highlight {
			class = highlightQuickLinkClass
		}
		views = append(views, QuickLinkView{
			Icon:      l.Icon,
			Title:     l.Title,
			Link:      NewLink(l.Href),
			Highlight: l.Highlight,
			Class:     class,
		})
	}
	return views
}

// BuildSections renders one section per category, in category order.
func BuildSections(categories domain.Categories) []SectionView {
	entries := categories.Entries()
	sections := make([]SectionView, 0, len(entries))
	for _, e := range entries {
		cards := make([]CardView, 0, len(e.Category.Resources))
		for _, res := range e.Category.Resources {
			cards = append(cards, BuildCard(e.ID, res))
		}
		sections = append(sections, SectionView{
			ID:     e.ID,
			Icon:   e.Category.Icon,
			Name:   e.Category.Name,
			Colors: CategoryColor(e.ID),
			Cards:  cards,
		})
	}
	return sections
}

// BuildCard maps a resource of the given category.
func BuildCard(categoryID string, res domain.Resource) CardView {
	return CardView{
		Icon:        res.Icon,
		Title:       res.Title,
		Subtitle:    res.Subtitle,
		Description: res.Description,
		Buttons:     BuildButtons(res.Buttons),
		Palette:     CardPalette(categoryID),
	}
}

// BuildButtons keeps array order. A nil list gives an empty row.
func BuildButtons(buttons []domain.Button) []ButtonView {
	views := make([]ButtonView, 0, len(buttons))
	for _, b := range buttons {
		variant, class := VariantNeutral, neutralButtonClass
		if b.Primary {
			variant, class = VariantPrimary, primaryButtonClass
		}
		views = append(views, ButtonView{
			Text:    b.Text,
			Icon:    b.Icon,
			Link:    NewLink(b.Href),
			Variant: variant,
			Class:   class,
		})
	}
	return views
}

// BuildStats is a straight mapping; the colour token only feeds the hover accent.
func BuildStats(stats []domain.Stat) []StatView {
	views := make([]StatView, 0, len(stats))
	for _, s := range stats {
		views = append(views, StatView{
			Icon:   s.Icon,
			Value:  s.Value,
			Label:  s.Label,
			Accent: s.Color,
		})
	}
	return views
}

// BuildFooter maps the footer texts and classifies its links.
func BuildFooter(f domain.Footer) FooterView {
	links := make([]FooterLinkView, 0, len(f.Links))
	for _, l := range f.Links {
		links = append(links, FooterLinkView{Text: l.Text, Link: NewLink(l.Href)})
	}
	return FooterView{
		Disclaimer: f.Disclaimer,
		Copyright:  f.Copyright,
		Links:      links,
	}
}

// Page is everything the page template needs.
type Page struct {
	Site       domain.SiteInfo
	Dark       bool
	RootClass  string
	Nav        []NavItem
	QuickLinks []QuickLinkView
	Sections   []SectionView
	Stats      []StatView
	Footer     FooterView

	// ToggleAction is where the theme form posts to. Empty hides the form
	// (static exports).
	ToggleAction string
}

// BuildPage composes the whole page from the accessor and theme state.
func BuildPage(acc *content.Accessor, dark bool, rootClass string) Page {
	return Page{
		Site:       acc.SiteInfo(),
		Dark:       dark,
		RootClass:  rootClass,
		Nav:        BuildNav(Navigation),
		QuickLinks: BuildQuickLinks(acc.QuickLinks()),
		Sections:   BuildSections(acc.Categories()),
		Stats:      BuildStats(acc.Stats()),
		Footer:     BuildFooter(acc.Footer()),
	}
}
