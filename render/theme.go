package render

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yml
var themesYaml []byte

const DefaultTheme = "indigo"

type ScaleColors struct {
	Root           string `yaml:"root"`
	Third          string `yaml:"third"`
	Fifth          string `yaml:"fifth"`
	OtherImportant string `yaml:"otherImportant"`
	Second         string `yaml:"second"`
	Fourth         string `yaml:"fourth"`
	Sixth          string `yaml:"sixth"`
	Seventh        string `yaml:"seventh"`
	Others         string `yaml:"others"`
}

type Theme struct {
	Name        string      `yaml:"name"`
	Nut         string      `yaml:"nut"`
	Fret        string      `yaml:"fret"`
	NoteDefault string      `yaml:"noteDefault"`
	NoteText    string      `yaml:"noteText"`
	Scale       ScaleColors `yaml:"scale"`
}

var themes = func() map[string]Theme {
	var m map[string]Theme
	if err := yaml.Unmarshal(themesYaml, &m); err != nil {
		panic("themes: " + err.Error())
	}
	return m
}()

func ThemeNames() []string {
	return util.GetKeys(themes)
}

func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// DegreeColor picks the fill for a scale degree. Root, third and fifth get
// the strongest colours.
func (t Theme) DegreeColor(info theory.DegreeInfo) lipgloss.Color {
	c := t.Scale.Others
	if info.Important {
		switch info.Degree {
		case 1:
			c = t.Scale.Root
		case 3:
			c = t.Scale.Third
		case 5:
			c = t.Scale.Fifth
		default:
			c = t.Scale.OtherImportant
		}
	} else {
		switch info.Degree {
		case 2:
			c = t.Scale.Second
		case 4:
			c = t.Scale.Fourth
		case 6:
			c = t.Scale.Sixth
		case 7:
			c = t.Scale.Seventh
		}
	}
	return lipgloss.Color(c)
}
