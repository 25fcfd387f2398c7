// Package tui is an interactive fretboard explorer for the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/audio"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
)

const help = "←/→ root  ↑/↓ type  shift+arrows cursor  enter play cursor  t/T tuning  e spelling  [/] slide  -/+ width  p play  s scale  q quit"

// State is everything the explorer can change. It is returned by Run so the
// caller can save it.
type State struct {
	Tuning     tuning.ID
	Selection  theory.Selection
	Enharmonic enharmonic.Preference
	Window     fretboard.Window
}

type playedMsg struct{ err error }

// Model is the bubbletea model. The player may be nil, in which case play
// keys only report that there is no sound.
type Model struct {
	state   State
	presets []tuning.Preset
	types   []theory.Type
	opts    render.Options
	player  audio.Player
	cursor  fretboard.Position

	ctx     context.Context
	cancel  context.CancelFunc
	playing bool
	status  string
}

func New(s State, opts render.Options, player audio.Player) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		state:   s,
		presets: tuning.All(),
		types:   theory.AllTypes(),
		opts:    opts,
		player:  player,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (m Model) State() State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) instrument() tuning.Instrument {
	inst, ok := tuning.InstrumentFor(m.state.Tuning)
	if !ok {
		return tuning.Default()
	}
	return inst
}

// cursorCell is the cursor kept inside the current instrument and window.
func (m Model) cursorCell() fretboard.Position {
	inst := m.instrument()
	w := m.state.Window.Normalize()
	s := util.Clamp(m.cursor.String, 0, len(inst.Strings)-1)
	f := util.Clamp(m.cursor.Fret, w.Min, w.Max)
	return fretboard.Position{String: s, Fret: f, Note: inst.Strings[s].NoteAt(f)}
}

func (m Model) moveCursor(ds, df int) Model {
	c := m.cursorCell()
	m.cursor = fretboard.Position{String: c.String + ds, Fret: c.Fret + df}
	m.cursor = m.cursorCell()
	return m
}

func (m Model) board() fretboard.Board {
	sel := m.state.Selection
	return fretboard.Project(m.instrument(), &sel, m.state.Enharmonic, m.state.Window)
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m Model) cycleTuning(step int) Model {
	ids := make([]tuning.ID, len(m.presets))
	for i, p := range m.presets {
		ids[i] = p.ID
	}
	m.state.Tuning = ids[wrap(indexOf(ids, m.state.Tuning)+step, len(ids))]
	return m
}

func (m Model) cycleType(step int) Model {
	i := indexOf(m.types, m.state.Selection.Type())
	m.state.Selection = m.state.Selection.WithType(m.types[wrap(i+step, len(m.types))])
	return m
}

func (m Model) slide(step int) Model {
	w := m.state.Window
	if w.Min+step < 0 || w.Max+step > fretboard.LastFret {
		return m
	}
	w.Min += step
	w.Max += step
	m.state.Window = w
	return m
}

func (m Model) resize(step int) Model {
	w := m.state.Window
	w.Max = util.Clamp(w.Max+step, w.Min, util.Min(w.Min+fretboard.MaxSpan, fretboard.LastFret))
	m.state.Window = w
	return m
}

func (m Model) play(mode audio.Mode) (Model, tea.Cmd) {
	if m.player == nil {
		m.status = "no sound device"
		return m, nil
	}
	if m.playing {
		return m, nil
	}
	notes := audio.Sequence(m.board(), mode)
	if len(notes) == 0 {
		m.status = "nothing to play in this window"
		return m, nil
	}
	m.playing = true
	m.status = fmt.Sprintf("playing %d notes", len(notes))
	ctx, player := m.ctx, m.player
	dur, gap := mode.Timing()
	return m, func() tea.Msg {
		return playedMsg{err: audio.PlaySequence(ctx, player, audio.Frequencies(notes), dur, gap)}
	}
}

func (m Model) playCursor() (Model, tea.Cmd) {
	if m.player == nil {
		m.status = "no sound device"
		return m, nil
	}
	if m.playing {
		return m, nil
	}
	n := m.cursorCell().Note
	m.playing = true
	ctx, player := m.ctx, m.player
	dur, gap := audio.AllHighlighted.Timing()
	return m, func() tea.Msg {
		return playedMsg{err: audio.PlaySequence(ctx, player, []float64{n.Frequency()}, dur, gap)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case playedMsg:
		m.playing = false
		m.status = ""
		if msg.err != nil && msg.err != context.Canceled {
			m.status = msg.err.Error()
		}
		return m, nil
	case tea.KeyMsg:
		sel := m.state.Selection
		switch msg.String() {
		case "shift+left":
			m = m.moveCursor(0, -1)
		case "shift+right":
			m = m.moveCursor(0, 1)
		case "shift+up":
			m = m.moveCursor(-1, 0)
		case "shift+down":
			m = m.moveCursor(1, 0)
		case "enter":
			return m.playCursor()
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "right", "l":
			m.state.Selection = sel.WithRoot(pitch.Mod(int(sel.Root()) + 1))
		case "left", "h":
			m.state.Selection = sel.WithRoot(pitch.Mod(int(sel.Root()) - 1))
		case "down", "j":
			m = m.cycleType(1)
		case "up", "k":
			m = m.cycleType(-1)
		case "t":
			m = m.cycleTuning(1)
		case "T":
			m = m.cycleTuning(-1)
		case "e":
			prefs := enharmonic.Preferences()
			m.state.Enharmonic = prefs[wrap(indexOf(prefs, m.state.Enharmonic)+1, len(prefs))]
		case "]":
			m = m.slide(1)
		case "[":
			m = m.slide(-1)
		case "+", "=":
			m = m.resize(1)
		case "-":
			m = m.resize(-1)
		case "p":
			return m.play(audio.AllHighlighted)
		case "s":
			return m.play(audio.Ascending)
		}
	}
	return m, nil
}

func (m Model) View() string {
	sel := m.state.Selection
	inst := m.instrument()
	spell := enharmonic.Resolver{Preference: m.state.Enharmonic, Root: sel.Root().Sharp()}
	dim := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(inst.Name))
	b.WriteString(dim.Render(fmt.Sprintf("  frets %d-%d  spelling %s", m.state.Window.Min, m.state.Window.Max, m.state.Enharmonic)))
	b.WriteString("\n")
	b.WriteString(render.Legend(sel, func(info theory.DegreeInfo) string {
		return string(spell.Spell(info.Class))
	}, m.opts))
	b.WriteString("\n\n")
	opts := m.opts
	cur := m.cursorCell()
	opts.Cursor = cur
	b.WriteString(render.Board(m.board(), opts))
	b.WriteString(describeCursor(cur, sel, spell))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(dim.Render(help))
	b.WriteString("\n")
	return b.String()
}

func describeCursor(p fretboard.Position, sel theory.Selection, spell enharmonic.Resolver) string {
	name := fmt.Sprintf("string %d fret %d: %s%d", p.String+1, p.Fret, spell.Spell(p.Note.Class), p.Note.Octave)
	if info, ok := sel.DegreeInfo(p.Note.Class); ok {
		return name + ", " + theory.OrdinalSuffix(info.Degree)
	}
	return name
}

// Run blocks until the user quits and returns the final state.
func Run(s State, opts render.Options, player audio.Player) (State, error) {
	res, err := tea.NewProgram(New(s, opts, player), tea.WithAltScreen()).Run()
	if err != nil {
		return s, err
	}
	return res.(Model).State(), nil
}
