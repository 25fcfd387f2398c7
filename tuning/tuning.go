// Package tuning holds the read-only catalog of instrument tunings.
package tuning

import (
	_ "embed"
	"fmt"

	"github.com/jsphweid/fretdex/pitch"
	"gopkg.in/yaml.v3"
)

//go:embed tunings.yml
var catalogYaml []byte

type (
	ID       string
	Category string
)

const (
	Guitar   Category = "guitar"
	Bass     Category = "bass"
	Ukulele  Category = "ukulele"
	Mandolin Category = "mandolin"
)

const DefaultID ID = "guitar-standard"

// StringConfig is the open pitch of one string.
type StringConfig struct {
	Open   pitch.Class `json:"openNote"`
	Octave int         `json:"octave"`
}

func (s StringConfig) OpenNote() pitch.Note {
	return pitch.Note{Class: s.Open, Octave: s.Octave}
}

// NoteAt is the note sounded at fret on this string.
func (s StringConfig) NoteAt(fret int) pitch.Note {
	return pitch.NoteAtFret(s.Open, s.Octave, fret)
}

func (s *StringConfig) UnmarshalYAML(value *yaml.Node) error {
	n, err := pitch.ParseNote(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = StringConfig{Open: n.Class, Octave: n.Octave}
	return nil
}

// Preset is a named tuning. Strings run from the highest string to the lowest.
type Preset struct {
	ID       ID             `yaml:"id" json:"id"`
	Name     string         `yaml:"name" json:"name"`
	Category Category       `yaml:"category" json:"category"`
	Strings  []StringConfig `yaml:"strings" json:"strings"`
}

// Instrument is what the fretboard is drawn from. It never shares its string
// slice with the catalog.
type Instrument struct {
	Name    string         `json:"name"`
	Strings []StringConfig `json:"strings"`
}

func (p Preset) Instrument() Instrument {
	return Instrument{Name: p.Name, Strings: copyStrings(p.Strings)}
}

func (p Preset) clone() Preset {
	p.Strings = copyStrings(p.Strings)
	return p
}

func copyStrings(s []StringConfig) []StringConfig {
	res := make([]StringConfig, len(s))
	copy(res, s)
	return res
}

var (
	presets    []Preset
	byID       map[ID]int
	categories []Category
)

func init() {
	var err error
	presets, err = parseCatalog(catalogYaml)
	if err != nil {
		panic("tuning catalog: " + err.Error())
	}
	byID = make(map[ID]int, len(presets))
	seen := make(map[Category]bool)
	for i, p := range presets {
		byID[p.ID] = i
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
}

func parseCatalog(data []byte) ([]Preset, error) {
	var res []Preset
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	ids := make(map[ID]bool)
	for _, p := range res {
		if p.ID == "" {
			return nil, fmt.Errorf("preset %q has no id", p.Name)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		ids[p.ID] = true
		if len(p.Strings) == 0 {
			return nil, fmt.Errorf("preset %q has no strings", p.ID)
		}
	}
	return res, nil
}

// All returns every preset in catalog order.
func All() []Preset {
	res := make([]Preset, len(presets))
	for i, p := range presets {
		res[i] = p.clone()
	}
	return res
}

func ByCategory(c Category) []Preset {
	var res []Preset
	for _, p := range presets {
		if p.Category == c {
			res = append(res, p.clone())
		}
	}
	return res
}

// Categories lists categories in order of first appearance.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// Lookup finds a preset by id. Callers are expected to pass ids taken from
// the catalog itself, so absence is reported rather than treated as an error.
func Lookup(id ID) (Preset, bool) {
	i, ok := byID[id]
	if !ok {
		return Preset{}, false
	}
	return presets[i].clone(), true
}

func InstrumentFor(id ID) (Instrument, bool) {
	p, ok := Lookup(id)
	if !ok {
		return Instrument{}, false
	}
	return p.Instrument(), true
}

// Default is the standard six string guitar.
func Default() Instrument {
	inst, _ := InstrumentFor(DefaultID)
	return inst
}
