package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// text decodes any scalar as its literal string. Numbers keep their source
// spelling, null is empty, objects and arrays are dropped.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
	case '{', '[', 'n':
	default:
		// numbers, true, false
		*t = text(data)
	}
	return nil
}

func (t *text) UnmarshalYAML(node *yaml.Node) error {
	*t = ""
	if node.Kind == yaml.ScalarNode && node.Tag != "!!null" {
		*t = text(node.Value)
	}
	return nil
}

// flag decodes booleans, "true"/"false" style strings and numbers
// (non-zero is true). Anything else is false.
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = false
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '{', '[', 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flag(parseFlag(s))
	default:
		*f = flag(parseFlag(string(data)))
	}
	return nil
}

func (f *flag) UnmarshalYAML(node *yaml.Node) error {
	*f = false
	if node.Kind == yaml.ScalarNode && node.Tag != "!!null" {
		*f = flag(parseFlag(node.Value))
	}
	return nil
}

func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0
	}
	return false
}

// builder is a lenient mirror of a content type.
type builder[T any] interface {
	build() T
}

func decodeJSON[R builder[T], T any](data []byte, dst *T) error {
	var raw R
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*dst = raw.build()
	return nil
}

func decodeYAML[R builder[T], T any](node *yaml.Node, dst *T) error {
	var raw R
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*dst = raw.build()
	return nil
}

type siteFields struct {
	Title       text `json:"title" yaml:"title"`
	Description text `json:"description" yaml:"description"`
	BookmarkTip text `json:"bookmarkTip" yaml:"bookmarkTip"`
}

func (f siteFields) build() SiteInfo {
	return SiteInfo{Title: string(f.Title), Description: string(f.Description), BookmarkTip: string(f.BookmarkTip)}
}

func (s *SiteInfo) UnmarshalJSON(data []byte) error { return decodeJSON[siteFields](data, s) }

func (s *SiteInfo) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[siteFields](node, s) }

type statFields struct {
	Icon  text `json:"icon" yaml:"icon"`
	Value text `json:"value" yaml:"value"`
	Label text `json:"label" yaml:"label"`
	Color text `json:"color" yaml:"color"`
}

func (f statFields) build() Stat {
	return Stat{Icon: string(f.Icon), Value: string(f.Value), Label: string(f.Label), Color: string(f.Color)}
}

func (s *Stat) UnmarshalJSON(data []byte) error { return decodeJSON[statFields](data, s) }

func (s *Stat) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[statFields](node, s) }

type quickLinkFields struct {
	Icon      text `json:"icon" yaml:"icon"`
	Title     text `json:"title" yaml:"title"`
	Href      text `json:"href" yaml:"href"`
	Highlight flag `json:"highlight" yaml:"highlight"`
}

func (f quickLinkFields) build() QuickLink {
	return QuickLink{Icon: string(f.Icon), Title: string(f.Title), Href: string(f.Href), Highlight: bool(f.Highlight)}
}

func (q *QuickLink) UnmarshalJSON(data []byte) error { return decodeJSON[quickLinkFields](data, q) }

func (q *QuickLink) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[quickLinkFields](node, q) }

type categoryFields struct {
	Icon      text       `json:"icon" yaml:"icon"`
	Name      text       `json:"name" yaml:"name"`
	Resources []Resource `json:"resources" yaml:"resources"`
}

func (f categoryFields) build() Category {
	return Category{Icon: string(f.Icon), Name: string(f.Name), Resources: f.Resources}
}

func (c *Category) UnmarshalJSON(data []byte) error { return decodeJSON[categoryFields](data, c) }

func (c *Category) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[categoryFields](node, c) }

type resourceFields struct {
	Icon        text     `json:"icon" yaml:"icon"`
	Title       text     `json:"title" yaml:"title"`
	Subtitle    text     `json:"subtitle" yaml:"subtitle"`
	Description text     `json:"description" yaml:"description"`
	Buttons     []Button `json:"buttons" yaml:"buttons"`
}

func (f resourceFields) build() Resource {
	return Resource{
		Icon:        string(f.Icon),
		Title:       string(f.Title),
		Subtitle:    string(f.Subtitle),
		Description: string(f.Description),
		Buttons:     f.Buttons,
	}
}

func (r *Resource) UnmarshalJSON(data []byte) error { return decodeJSON[resourceFields](data, r) }

func (r *Resource) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[resourceFields](node, r) }

type buttonFields struct {
	Text    text `json:"text" yaml:"text"`
	Href    text `json:"href" yaml:"href"`
	Icon    text `json:"icon" yaml:"icon"`
	Primary flag `json:"primary" yaml:"primary"`
}

func (f buttonFields) build() Button {
	return Button{Text: string(f.Text), Href: string(f.Href), Icon: string(f.Icon), Primary: bool(f.Primary)}
}

func (b *Button) UnmarshalJSON(data []byte) error { return decodeJSON[buttonFields](data, b) }

func (b *Button) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[buttonFields](node, b) }

type footerFields struct {
	Disclaimer text         `json:"disclaimer" yaml:"disclaimer"`
	Copyright  text         `json:"copyright" yaml:"copyright"`
	Links      []FooterLink `json:"links" yaml:"links"`
}

func (f footerFields) build() Footer {
	return Footer{Disclaimer: string(f.Disclaimer), Copyright: string(f.Copyright), Links: f.Links}
}

func (f *Footer) UnmarshalJSON(data []byte) error { return decodeJSON[footerFields](data, f) }

func (f *Footer) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[footerFields](node, f) }

type footerLinkFields struct {
	Text text `json:"text" yaml:"text"`
	Href text `json:"href" yaml:"href"`
}

func (f footerLinkFields) build() FooterLink {
	return FooterLink{Text: string(f.Text), Href: string(f.Href)}
}

func (l *FooterLink) UnmarshalJSON(data []byte) error { return decodeJSON[footerLinkFields](data, l) }

func (l *FooterLink) UnmarshalYAML(node *yaml.Node) error { return decodeYAML[footerLinkFields](node, l) }
