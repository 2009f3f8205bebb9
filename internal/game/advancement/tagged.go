package advancement

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KindNone is the tag of an unmade tagged choice.
const KindNone = "none"

type tagged struct {
	Kind       string          `json:"kind"`
	Selections json.RawMessage `json:"selections,omitempty"`
}

// MarshalTagged encodes a tagged choice as {"kind": ..., "selections": ...}.
// A nil selections value omits the selections member.
func MarshalTagged(kind string, selections any) ([]byte, error) {
	t := tagged{Kind: kind}
	if selections != nil {
		raw, err := json.Marshal(selections)
		if err != nil {
			return nil, fmt.Errorf("encoding %s selections: %w", kind, err)
		}
		t.Selections = raw
	}
	return json.Marshal(t)
}

// UnmarshalTagged splits a tagged choice into its kind and raw selections.
// JSON null decodes as KindNone.
func UnmarshalTagged(data []byte) (string, json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return KindNone, nil, nil
	}
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return "", nil, fmt.Errorf("decoding tagged choice: %w", err)
	}
	if t.Kind == "" {
		t.Kind = KindNone
	}
	return t.Kind, t.Selections, nil
}

// DecodeSelections unmarshals raw into v, leaving v untouched when raw is empty.
func DecodeSelections(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
