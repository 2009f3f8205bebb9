package snapshot

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec turns values into blobs and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Name identifies the encoding, e.g. in log fields and file extensions.
	Name() string
}

// JSON encodes with encoding/json, honouring custom marshalers.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.MarshalIndent(v, "", "  ") }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) Name() string                       { return "json" }

// YAML encodes with gopkg.in/yaml.v3. Values pass through their JSON form
// first, so tagged choices keep the same {kind, selections} layout and the
// json field names apply.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

func (YAML) Unmarshal(data []byte, v any) error {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("yaml document is not representable as json: %w", err)
	}
	return json.Unmarshal(raw, v)
}

func (YAML) Name() string { return "yaml" }
