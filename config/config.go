package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"gopkg.in/yaml.v3"
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

const filename = "preferences.yml"

// Config is what the user last chose. Every field has a default in the
// embedded preferences.yml.
type Config struct {
	Tuning       tuning.ID             `yaml:"tuning"`
	Root         pitch.Class           `yaml:"root"`
	Type         theory.Type           `yaml:"type"`
	Enharmonic   enharmonic.Preference `yaml:"enharmonic"`
	MinFret      int                   `yaml:"minFret"`
	MaxFret      int                   `yaml:"maxFret"`
	Theme        string                `yaml:"theme"`
	Markers      string                `yaml:"markers"`
	NoteDuration float64               `yaml:"noteDuration"`
	NoteGap      float64               `yaml:"noteGap"`
}

func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultPreferencesYaml, &c); err != nil {
		panic("default preferences: " + err.Error())
	}
	return &c
}

func Path() (string, error) {
	dir, err := constants.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// Load returns the defaults overlaid with the user's file, if there is one.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, ok := tuning.Lookup(c.Tuning); !ok {
		return fmt.Errorf("unknown tuning %q", c.Tuning)
	}
	if c.MinFret < 0 || c.MaxFret < c.MinFret || c.MaxFret > fretboard.LastFret {
		return fmt.Errorf("bad fret range %d-%d", c.MinFret, c.MaxFret)
	}
	if c.MaxFret-c.MinFret > fretboard.MaxSpan {
		return fmt.Errorf("fret range %d-%d is wider than %d frets", c.MinFret, c.MaxFret, fretboard.MaxSpan)
	}
	if c.NoteDuration <= 0 || c.NoteGap < 0 {
		return fmt.Errorf("bad note timing %v/%v", c.NoteDuration, c.NoteGap)
	}
	return nil
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Selection() theory.Selection {
	return theory.NewSelection(c.Root, c.Type)
}
