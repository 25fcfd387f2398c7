package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

const listenSettle = 80 * time.Millisecond

func init() {
	listenCmd.Flags().String("port", "", "MIDI input port (default FRETDEX_MIDI_IN or the first port)")
	rootCmd.AddCommand(listenCmd)
}

// describeRecent reports the last notes played against sel: the interval
// between the two most recent, then each note's place in sel.
func describeRecent(notes []pitch.Note, sel theory.Selection, spell enharmonic.Resolver) string {
	var parts []string
	if len(notes) == 2 {
		semis := pitch.Interval(notes[0].Class, notes[1].Class)
		parts = append(parts, fmt.Sprintf("%s→%s %s", spell.Spell(notes[0].Class), spell.Spell(notes[1].Class), pitch.IntervalName(semis)))
	}
	for _, n := range notes {
		name := fmt.Sprintf("%s%d", spell.Spell(n.Class), n.Octave)
		info, ok := sel.DegreeInfo(n.Class)
		if !ok {
			parts = append(parts, name+" not in "+sel.String())
			continue
		}
		parts = append(parts, name+" "+theory.OrdinalSuffix(info.Degree))
	}
	return strings.Join(parts, ", ")
}

func inPort(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := constants.GetMidiInPort(); p != "" {
		return p, nil
	}
	ports := midi.InPortNames()
	if len(ports) == 0 {
		return "", fmt.Errorf("no MIDI input ports")
	}
	return ports[0], nil
}

// listener keeps the two most recent notes and reports once input settles.
type listener struct {
	mu       sync.Mutex
	recent   *fretboard.Queue[pitch.Note]
	sel      theory.Selection
	spell    enharmonic.Resolver
	out      io.Writer
	debounce func(func())
}

func newListener(sel theory.Selection, pref enharmonic.Preference, out io.Writer) *listener {
	return &listener{
		recent:   fretboard.NewRecent[pitch.Note](),
		sel:      sel,
		spell:    enharmonic.Resolver{Preference: pref, Root: sel.Root().Sharp()},
		out:      out,
		debounce: debounce.New(listenSettle),
	}
}

func (l *listener) onKey(key, velocity uint8) {
	l.mu.Lock()
	l.recent.Push(midi.NoteFor(key))
	l.mu.Unlock()
	l.debounce(l.report)
}

func (l *listener) report() {
	l.mu.Lock()
	notes := l.recent.Items()
	l.mu.Unlock()
	fmt.Fprintln(l.out, describeRecent(notes, l.sel, l.spell))
}

var listenCmd = &cobra.Command{
	Use:   "listen [root] [type]",
	Short: "Names notes played on a MIDI keyboard against a chord or scale",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionArgs(args)
		if err != nil {
			return err
		}
		flag, _ := cmd.Flags().GetString("port")
		port, err := inPort(flag)
		if err != nil {
			return err
		}
		defer midi.CloseDriver()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		l := newListener(sel, cfg.Enharmonic, cmd.OutOrStdout())
		slog.Info("listening", "port", port, "selection", sel.String())
		return midi.Listen(ctx, port, l.onKey)
	},
}
