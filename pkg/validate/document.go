package validate

import (
	"bytes"
	"fmt"
	"io"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📄 Document is a parsed project configuration. Only its top-level keys are
// inspected.
type Document map[string]any

// ErrNotMapping is returned when the configuration root is not a mapping
var ErrNotMapping = errors.New("configuration root is not a mapping")

// ErrMultipleDocuments is returned when the data holds more than one YAML document
var ErrMultipleDocuments = errors.New("expected a single YAML document")

// 📝 ParseDocument parses YAML configuration data holding one document
func ParseDocument(data []byte) (Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var raw any
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	var next any
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrMultipleDocuments
		}
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	switch m := raw.(type) {
	case map[string]any:
		return Document(m), nil
	case map[any]any:
		doc := make(Document, len(m))
		for k, v := range m {
			doc[fmt.Sprint(k)] = v
		}
		return doc, nil
	default:
		return nil, ErrNotMapping
	}
}

// HasSection reports whether a top-level key is present
func (d Document) HasSection(name string) bool {
	_, ok := d[name]
	return ok
}
