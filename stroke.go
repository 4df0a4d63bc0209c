package inkpad

import (
	"encoding/json"
	"fmt"
	"io"
)

// Stroke is one continuous pen gesture from press to release, stored
// as an ordered point list plus its rendering attributes. Strokes are
// created atomically when a gesture ends and are never mutated
// afterwards; the pad only appends them, pops the most recent one
// (undo) or replaces the whole collection (clear, load).
type Stroke struct {
	Points   []Point `json:"points"`
	Color    string  `json:"color"`
	MinWidth float64 `json:"minWidth"`
	MaxWidth float64 `json:"maxWidth"`
}

// clone returns a deep copy of the stroke, detaching the point slice.
func (s Stroke) clone() Stroke {
	cp := s
	cp.Points = make([]Point, len(s.Points))
	copy(cp.Points, s.Points)
	return cp
}

// DecodeStrokes parses serialized stroke data from r. The payload must
// be a JSON array of stroke records; anything else is rejected without
// producing a partial result.
func DecodeStrokes(r io.Reader) ([]Stroke, error) {
	var strokes []Stroke

	dec := json.NewDecoder(r)
	if err := dec.Decode(&strokes); err != nil {
		return nil, fmt.Errorf("invalid stroke data: %v", err)
	}
	return strokes, nil
}

// EncodeStrokes writes the strokes as indented JSON to w.
func EncodeStrokes(w io.Writer, strokes []Stroke) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(strokes); err != nil {
		return fmt.Errorf("unable to encode the stroke data: %v", err)
	}
	return nil
}
