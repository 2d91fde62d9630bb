package domain

// Content is the whole directory document: everything the page shows.
//
// It is loaded once (or swapped wholesale on reload) and never mutated
// afterwards. Every field is optional; missing sections render as nothing.
type Content struct {
	Site       SiteInfo    `json:"site" yaml:"site"`
	Stats      []Stat      `json:"stats" yaml:"stats"`
	QuickLinks []QuickLink `json:"quickLinks" yaml:"quickLinks"`
	Categories Categories  `json:"categories" yaml:"categories"`
	Footer     Footer      `json:"footer" yaml:"footer"`

	// Tips is passed through untouched. No section renders it.
	Tips any `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// SiteInfo carries the site-wide texts.
type SiteInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	BookmarkTip string `json:"bookmarkTip" yaml:"bookmarkTip"`
}

// Stat is one decorative figure of the stats banner.
// Color is an opaque gradient token (e.g. "from-blue-500 to-cyan-500").
type Stat struct {
	Icon  string `json:"icon" yaml:"icon"`
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

// QuickLink is a shortcut shown in the promotional strip.
type QuickLink struct {
	Icon      string `json:"icon" yaml:"icon"`
	Title     string `json:"title" yaml:"title"`
	Href      string `json:"href" yaml:"href"`
	Highlight bool   `json:"highlight" yaml:"highlight"`
}

// Category groups resources under an anchor-addressable section.
type Category struct {
	Icon      string     `json:"icon" yaml:"icon"`
	Name      string     `json:"name" yaml:"name"`
	Resources []Resource `json:"resources" yaml:"resources"`
}

// Resource is a single directory entry.
type Resource struct {
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Subtitle    string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Buttons     []Button `json:"buttons" yaml:"buttons"`
}

// Button is an action link of a resource card.
// Primary only selects visual emphasis.
type Button struct {
	Text    string `json:"text" yaml:"text"`
	Href    string `json:"href" yaml:"href"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Primary bool   `json:"primary" yaml:"primary"`
}

// Footer holds the bottom-of-page texts and links.
type Footer struct {
	Disclaimer string       `json:"disclaimer" yaml:"disclaimer"`
	Copyright  string       `json:"copyright" yaml:"copyright"`
	Links      []FooterLink `json:"links" yaml:"links"`
}

// FooterLink is a plain text link of the footer.
type FooterLink struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}
