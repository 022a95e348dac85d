package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalDoc encodes an entity document for storage
func MarshalDoc(v any) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalDoc decodes an entity document, rejecting unknown fields so that
// a corrupted or foreign record fails loudly instead of round-tripping with
// silently dropped data.
func UnmarshalDoc(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode stored document: %w", err)
	}
	return nil
}
