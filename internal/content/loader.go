package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/linkshelf/internal/domain"
)

//go:embed default_content.json
var defaultDocument []byte

// Format is the encoding of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything that is not
// .yaml/.yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader reads the content document from disk, or the built-in one when
// no path is configured.
type Loader struct {
	filePath string
}

// NewLoader creates a new content loader. An empty path selects the
// embedded default document.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where documents come from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the document.
func (l *Loader) Load() (*domain.Content, error) {
	if l.filePath == "" {
		doc, err := Parse(defaultDocument, FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded content: %w", err)
		}
		return doc, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	doc, err := Parse(data, FormatFor(l.filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.filePath, err)
	}
	return doc, nil
}

// Parse decodes a document. Entries are not validated: the file is a
// trusted build artifact and odd values are passed through as they are.
// Mistyped scalars are coerced, so only a broken document structure fails.
func Parse(data []byte, format Format) (*domain.Content, error) {
	var doc domain.Content

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid content yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid content json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content format %q", format)
	}

	return &doc, nil
}
