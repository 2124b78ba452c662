package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Encode writes the document as two-space indented JSON without HTML escaping.
// Map keys are emitted in sorted order, so equal documents encode to equal bytes.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FontsDigest hashes the encoded fonts map. The header is excluded so two runs
// over the same upstream data produce the same digest.
func (d *SourceDocument) FontsDigest() (string, error) {
	data, err := Encode(d.Fonts)
	if err != nil {
		return "", fmt.Errorf("encode fonts: %w", err)
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}
