package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert := assert.New(t)
	assert.Equal(tuning.ID("guitar-standard"), c.Tuning)
	assert.Equal(pitch.C, c.Root)
	assert.Equal(theory.Major, c.Type)
	assert.Equal(enharmonic.Auto, c.Enharmonic)
	assert.Equal(15, c.MaxFret)
	assert.Equal("indigo", c.Theme)
	assert.NoError(c.Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yml")
	require.NoError(t, os.WriteFile(path, []byte("root: Bb\ntype: dorian\nenharmonic: flats\n"), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pitch.ASharp, c.Root)
	assert.Equal(t, theory.Dorian, c.Type)
	assert.Equal(t, enharmonic.Flats, c.Enharmonic)
	assert.Equal(t, tuning.ID("guitar-standard"), c.Tuning)
	assert.Equal(t, theory.NewSelection(pitch.ASharp, theory.Dorian).Notes(), c.Selection().Notes())
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"type.yml":   "type: bebop\n",
		"tuning.yml": "tuning: sitar\n",
		"frets.yml":  "minFret: 10\nmaxFret: 2\n",
		"root.yml":   "root: H\n",
		"wide.yml":   "minFret: 0\nmaxFret: 60\n",
		"huge.yml":   "minFret: 9223372036854775806\nmaxFret: 9223372036854775807\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := LoadFile(path)
		assert.Error(t, err, name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.yml")
	c := Default()
	c.Root = pitch.FSharp
	c.Type = theory.HarmonicMinor
	c.Enharmonic = enharmonic.Sharps
	require.NoError(t, c.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
