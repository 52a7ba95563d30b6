// Package catalog loads the static reference tables the rules engine resolves
// names against. Tables are built once and are read-only afterwards.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gangsheet/content"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/reference"
)

// File names expected at the root of a content directory.
const (
	ArmourFile       = "armour.yaml"
	WeaponTraitsFile = "weapon_traits.yaml"
	SkillsFile       = "skills.yaml"
	EquipmentFile    = "equipment.yaml"
)

// ErrUnknownKind is returned when a description kind is not one of the Kind constants.
var ErrUnknownKind = errors.New("unknown reference kind")

// Kind selects a description table.
type Kind string

const (
	KindTrait     Kind = "trait"
	KindSkill     Kind = "skill"
	KindEquipment Kind = "equipment"
	KindArmour    Kind = "armour"
)

// Catalog holds every reference table.
type Catalog struct {
	Armour    *reference.Table[inventory.ArmourDef]
	Traits    *reference.Table[reference.Description]
	Skills    *reference.Table[reference.Description]
	Equipment *reference.Table[reference.Description]
}

// Default loads the tables embedded in the binary.
//
// Postcondition: Returns a populated Catalog or a non-nil error.
func Default() (*Catalog, error) {
	return Load(content.FS)
}

// LoadDir loads the tables from the YAML files in dir.
//
// Precondition: dir must be a readable directory containing the four table files.
// Postcondition: Returns a populated Catalog or a non-nil error.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads the four table files from fsys.
//
// Postcondition: Returns a populated Catalog or the first error encountered.
func Load(fsys fs.FS) (*Catalog, error) {
	armours, err := decodeFile[inventory.ArmourDef](fsys, ArmourFile)
	if err != nil {
		return nil, err
	}
	armourByName := make(map[string]inventory.ArmourDef, len(armours))
	for i, a := range armours {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", ArmourFile, i, err)
		}
		if _, dup := armourByName[a.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate entry %q", ArmourFile, a.Name)
		}
		armourByName[a.Name] = a
	}
	armourTable, err := reference.NewTable(armourByName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ArmourFile, err)
	}

	c := &Catalog{Armour: armourTable}
	for _, dst := range []struct {
		file  string
		table **reference.Table[reference.Description]
	}{
		{WeaponTraitsFile, &c.Traits},
		{SkillsFile, &c.Skills},
		{EquipmentFile, &c.Equipment},
	} {
		t, err := loadDescriptions(fsys, dst.file)
		if err != nil {
			return nil, err
		}
		*dst.table = t
	}
	return c, nil
}

// Descriptions returns the description table for kind. KindArmour has no
// description table of its own; use Describe for it.
func (c *Catalog) Descriptions(kind Kind) (*reference.Table[reference.Description], error) {
	switch kind {
	case KindTrait:
		return c.Traits, nil
	case KindSkill:
		return c.Skills, nil
	case KindEquipment:
		return c.Equipment, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Describe resolves name in the table for kind. An unmatched name yields
// (Description{}, false, nil); only an unknown kind is an error.
func (c *Catalog) Describe(kind Kind, name string) (reference.Description, bool, error) {
	if kind == KindArmour {
		def, ok := c.Armour.Lookup(name)
		if !ok {
			return reference.Description{}, false, nil
		}
		return reference.Description{Name: def.Name, Text: def.Description}, true, nil
	}
	t, err := c.Descriptions(kind)
	if err != nil {
		return reference.Description{}, false, err
	}
	d, ok := reference.LookupDescription(name, t)
	return d, ok, nil
}

// DescribeItem resolves an equipped item name against the equipment table,
// falling back to the armour table.
func (c *Catalog) DescribeItem(name string) reference.Described {
	d := reference.Describe([]string{name}, c.Equipment)[0]
	if d.Found {
		return d
	}
	if canonical, ok := c.Armour.Canonical(name); ok {
		def, _ := c.Armour.Lookup(canonical)
		return reference.Described{Name: name, Canonical: canonical, Description: def.Description, Found: true}
	}
	return d
}

func loadDescriptions(fsys fs.FS, file string) (*reference.Table[reference.Description], error) {
	entries, err := decodeFile[reference.Description](fsys, file)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]reference.Description, len(entries))
	for i, d := range entries {
		if d.Name == "" {
			return nil, fmt.Errorf("%s: entry %d: name must not be empty", file, i)
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate entry %q", file, d.Name)
		}
		byName[d.Name] = d
	}
	t, err := reference.NewTable(byName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return t, nil
}

func decodeFile[T any](fsys fs.FS, file string) ([]T, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", file, err)
	}
	var out []T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %q: %w", file, err)
	}
	return out, nil
}
