package fighter

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// ErrInvalidSnapshot is returned when a snapshot document fails schema validation or parsing.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

//go:embed snapshot.schema.json
var snapshotSchema string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("snapshot.schema.json", snapshotSchema)
})

// Format is the encoding of a snapshot document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension; anything other
// than .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Snapshot is the serialized form of a Fighter.
type Snapshot struct {
	ID              string                    `json:"id,omitempty"`
	Name            string                    `json:"name"`
	Gang            string                    `json:"gang,omitempty"`
	Type            string                    `json:"type,omitempty"`
	Characteristics map[string]int            `json:"characteristics"`
	Effects         []effect.Spec             `json:"effects,omitempty"`
	Equipment       []inventory.EquippedItem  `json:"equipment,omitempty"`
	Weapons         []inventory.WeaponProfile `json:"weapons,omitempty"`
	Skills          []string                  `json:"skills,omitempty"`
}

// Build converts s into a validated Fighter. Characteristic names may be
// canonical or abbreviated. Effects are built through effect.Spec.Build, so
// one malformed effect rejects the whole snapshot.
//
// Postcondition: Returns a Fighter that passes Validate, or a non-nil error.
func (s Snapshot) Build() (*Fighter, error) {
	base := make(ruleset.Profile, len(s.Characteristics))
	for name, v := range s.Characteristics {
		c, err := ruleset.ParseCharacteristic(name)
		if err != nil {
			return nil, fmt.Errorf("%w: characteristics: %w", ErrInvalidFighter, err)
		}
		if _, dup := base[c]; dup {
			return nil, fmt.Errorf("%w: characteristic %q given twice", ErrInvalidFighter, c)
		}
		base[c] = v
	}
	effects, err := effect.NewSet(s.Effects...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFighter, err)
	}
	f := &Fighter{
		ID:        s.ID,
		Name:      s.Name,
		Gang:      s.Gang,
		Type:      s.Type,
		Base:      base,
		Effects:   effects,
		Equipment: append([]inventory.EquippedItem(nil), s.Equipment...),
		Weapons:   append([]inventory.WeaponProfile(nil), s.Weapons...),
		Skills:    append([]string(nil), s.Skills...),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeSnapshot parses a JSON or YAML snapshot document, validates it against
// the snapshot schema and builds the Fighter.
//
// Postcondition: Returns a valid Fighter, or an error wrapping
// ErrInvalidSnapshot (malformed document) or ErrInvalidFighter (bad values).
func DecodeSnapshot(data []byte, format Format) (*Fighter, error) {
	doc, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling snapshot schema: %w", err)
	}
	var raw any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	var s Snapshot
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return s.Build()
}

// toJSON normalizes a document to JSON bytes so one schema and one decoder
// serve both formats.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: parsing yaml: %w", ErrInvalidSnapshot, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: converting yaml: %w", ErrInvalidSnapshot, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidSnapshot, format)
}
