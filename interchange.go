package ssml

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-ssml/ast"
)

// MarshalJSON encodes doc as tagged records:
//
//	{"elements": [{"type": "Speak", "data": {"version": "1.1", ..., "children": [...]}}]}
//
// Text records carry their content as a bare string in "data". Absent
// optional fields encode as null.
func MarshalJSON(doc *ast.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes a document produced by MarshalJSON.
func UnmarshalJSON(data []byte) (*ast.Document, error) {
	doc := &ast.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// MarshalYAML encodes doc with the same record layout as MarshalJSON.
func MarshalYAML(doc *ast.Document) ([]byte, error) {
	data, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("ssml: converting to yaml: %w", err)
	}
	return out, nil
}

// UnmarshalYAML decodes a document produced by MarshalYAML.
func UnmarshalYAML(data []byte) (*ast.Document, error) {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("ssml: converting from yaml: %w", err)
	}
	return UnmarshalJSON(js)
}
