package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CategoryEntry pairs a category with its identifier.
type CategoryEntry struct {
	ID       string
	Category Category
}

// Categories is a category map that remembers document order.
//
// The identifier doubles as the page anchor of the section, and the
// order of the keys in the source document is the display order.
// A key repeated in the source keeps its first position and takes the
// last value.
type Categories struct {
	order []string
	byID  map[string]Category
}

// NewCategories builds an ordered map from entries, in the given order.
func NewCategories(entries ...CategoryEntry) Categories {
	var c Categories
	for _, e := range entries {
		c.set(e.ID, e.Category)
	}
	return c
}

func (c *Categories) set(id string, cat Category) {
	if c.byID == nil {
		c.byID = make(map[string]Category)
	}
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = cat
}

// Len returns the number of categories.
func (c Categories) Len() int { return len(c.order) }

// IDs returns the identifiers in display order.
func (c Categories) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Get looks up a category by identifier.
func (c Categories) Get(id string) (Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// Entries returns every category in display order.
func (c Categories) Entries() []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, CategoryEntry{ID: id, Category: c.byID[id]})
	}
	return entries
}

// UnmarshalJSON walks the object token by token so key order survives.
func (c *Categories) UnmarshalJSON(data []byte) error {
	*c = Categories{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if tok == nil {
		// null
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("categories: unexpected key %v", keyTok)
		}

		var cat Category
		if err := dec.Decode(&cat); err != nil {
			return fmt.Errorf("categories: decode %q: %w", id, err)
		}
		c.set(id, cat)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}

// MarshalJSON writes the categories back as an object in display order.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML reads a mapping node; yaml.Node keeps keys in source order.
func (c *Categories) UnmarshalYAML(node *yaml.Node) error {
	*c = Categories{}

	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("categories: expected mapping at line %d", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var cat Category
		if err := valNode.Decode(&cat); err != nil {
			return fmt.Errorf("categories: decode %q: %w", keyNode.Value, err)
		}
		c.set(keyNode.Value, cat)
	}
	return nil
}

// MarshalYAML emits a mapping node so the export keeps display order.
func (c Categories) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range c.order {
		var val yaml.Node
		if err := val.Encode(c.byID[id]); err != nil {
			return nil, fmt.Errorf("categories: encode %q: %w", id, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}
