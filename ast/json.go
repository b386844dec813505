package ast

import (
	"encoding/json"
	"fmt"
)

// UnknownKindError is returned when an interchange record names no known element kind.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("ssml: unknown element type %q", e.Name)
}

// record is the interchange form of one element: {"type": <kind>, "data": <fields>}.
type record struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalElement returns the tagged-record JSON encoding of e. Text encodes
// its data as a bare string; every other kind encodes its fields as an object.
func MarshalElement(e Element) ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	var data any = e
	if t, ok := e.(*Text); ok {
		data = t.Value
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("ssml: encoding %s: %w", e.Kind(), err)
	}
	return json.Marshal(record{Type: e.Kind().String(), Data: raw})
}

// UnmarshalElement decodes a record produced by MarshalElement.
func UnmarshalElement(data []byte) (Element, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("ssml: decoding element: %w", err)
	}
	k, ok := ParseKind(r.Type)
	if !ok {
		return nil, &UnknownKindError{Name: r.Type}
	}
	if k == KindText {
		var s string
		if err := json.Unmarshal(r.Data, &s); err != nil {
			return nil, fmt.Errorf("ssml: decoding %s: %w", k, err)
		}
		return &Text{Value: s}, nil
	}
	e := k.newElement()
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, e); err != nil {
			return nil, fmt.Errorf("ssml: decoding %s: %w", k, err)
		}
	}
	return e, nil
}

// MarshalJSON encodes the sequence as an array of element records.
func (n Nodes) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	raws := make([]json.RawMessage, 0, len(n))
	for _, e := range n {
		raw, err := MarshalElement(e)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return json.Marshal(raws)
}

// UnmarshalJSON decodes an array of element records.
func (n *Nodes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = nil
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("ssml: decoding children: %w", err)
	}
	out := make(Nodes, 0, len(raws))
	for _, raw := range raws {
		e, err := UnmarshalElement(raw)
		if err != nil {
			return err
		}
		out = append(out, e)
	}
	*n = out
	return nil
}

type documentJSON struct {
	Elements Nodes `json:"elements"`
}

// MarshalJSON encodes the document as {"elements": [records...]}.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Elements: d.Elements})
}

// UnmarshalJSON decodes a document produced by MarshalJSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	var v documentJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	d.Elements = v.Elements
	return nil
}
