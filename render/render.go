// Package render draws a projected fretboard as styled terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/theory"
)

type MarkerMode int

const (
	Numbers MarkerMode = iota
	Dots
	NoMarkers
)

func ParseMarkerMode(s string) (MarkerMode, bool) {
	switch s {
	case "numbers":
		return Numbers, true
	case "dots":
		return Dots, true
	case "none":
		return NoMarkers, true
	}
	return Numbers, false
}

const cellWidth = 5

type Options struct {
	Theme   Theme
	Markers MarkerMode
	// Degrees shows the scale degree next to member notes.
	Degrees bool
	// Cursor highlights one cell; String < 0 disables it.
	Cursor fretboard.Position
}

func DefaultOptions() Options {
	th, _ := LookupTheme(DefaultTheme)
	return Options{Theme: th, Markers: Numbers, Degrees: true, Cursor: fretboard.Position{String: -1}}
}

// FretMarker is the label above a fret.
func FretMarker(fret int, mode MarkerMode) string {
	switch mode {
	case Numbers:
		if fret > 0 {
			return strconv.Itoa(fret)
		}
	case Dots:
		switch fret % 24 {
		case 12, 0:
			if fret > 0 {
				return "••"
			}
		case 3, 5, 7, 9, 15, 17, 19, 21:
			return "•"
		}
	}
	return ""
}

// Board renders one line per string plus a marker line.
func Board(b fretboard.Board, opts Options) string {
	center := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().Width(5).Foreground(lipgloss.Color(opts.Theme.Nut))
	fretStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Theme.Fret))
	plainNote := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Theme.NoteDefault))
	textColor := lipgloss.Color(opts.Theme.NoteText)

	var out strings.Builder

	out.WriteString(labelStyle.Render(""))
	for fret := b.MinFret; fret <= b.MaxFret; fret++ {
		out.WriteString(fretStyle.Render(center.Render(FretMarker(fret, opts.Markers))))
		out.WriteString(" ")
	}
	out.WriteString("\n")

	for s, row := range b.Rows {
		str := b.Instrument.Strings[s]
		out.WriteString(labelStyle.Render(str.OpenNote().String()))
		for _, cell := range row {
			text := string(cell.Label)
			if opts.Degrees && cell.Degree != nil {
				text += strconv.Itoa(cell.Degree.Degree)
			}
			var style lipgloss.Style
			switch {
			case cell.Member:
				style = center.Background(opts.Theme.DegreeColor(*cell.Degree)).Foreground(textColor)
				if cell.Degree.Important {
					style = style.Bold(true)
				}
			case b.Selection != nil:
				// not in the selection: keep the grid, hide the name
				text = "-"
				style = center.Inherit(fretStyle)
			default:
				style = center.Inherit(plainNote)
			}
			if opts.Cursor.String == s && opts.Cursor.Fret == cell.Fret {
				style = style.Reverse(true)
			}
			sep := fretStyle.Render("|")
			if cell.Fret == 0 {
				sep = lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Theme.Nut)).Render("‖")
			}
			out.WriteString(style.Render(text))
			out.WriteString(sep)
		}
		out.WriteString("\n")
	}
	return out.String()
}

// Legend lists the selection's notes with their degrees.
func Legend(sel theory.Selection, spell func(theory.DegreeInfo) string, opts Options) string {
	var parts []string
	for _, c := range sel.Notes() {
		info, _ := sel.DegreeInfo(c)
		style := lipgloss.NewStyle().
			Background(opts.Theme.DegreeColor(info)).
			Foreground(lipgloss.Color(opts.Theme.NoteText)).
			Padding(0, 1)
		parts = append(parts, style.Render(fmt.Sprintf("%s %s", spell(info), theory.OrdinalSuffix(info.Degree))))
	}
	root, _ := sel.DegreeInfo(sel.Root())
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %s", spell(root), sel.Type().Label()))
	return title + "  " + strings.Join(parts, " ")
}
