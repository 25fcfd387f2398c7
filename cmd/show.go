package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

var (
	minFret int
	maxFret int
)

func init() {
	showCmd.Flags().IntVar(&minFret, "min", -1, "first fret shown")
	showCmd.Flags().IntVar(&maxFret, "max", -1, "last fret shown")
	showCmd.Flags().String("markers", "", "fret markers: numbers, dots or none")
	showCmd.Flags().Bool("all", false, "show every note, no chord or scale")
	rootCmd.AddCommand(showCmd)
}

// checkWindow refuses windows the board would have to cut short. Max below
// Min is fine and shows the single fret at Min.
func checkWindow(w fretboard.Window) error {
	switch {
	case w.Min < 0:
		return fmt.Errorf("%w: min fret must be 0 or more, got %d", ErrBadWindow, w.Min)
	case w.Min > fretboard.LastFret:
		return fmt.Errorf("%w: min fret must be at most %d", ErrBadWindow, fretboard.LastFret)
	case w.Max >= w.Min && w.Max-w.Min > fretboard.MaxSpan:
		return fmt.Errorf("%w: at most %d frets at once", ErrBadWindow, fretboard.MaxSpan)
	}
	return nil
}

// window applies --min/--max over the configured range.
func window() (fretboard.Window, error) {
	w := fretboard.Window{Min: cfg.MinFret, Max: cfg.MaxFret}
	if minFret >= 0 {
		w.Min = minFret
	}
	if maxFret >= 0 {
		w.Max = maxFret
	}
	if err := checkWindow(w); err != nil {
		return w, err
	}
	return w, nil
}

func renderOptions(markers string) (render.Options, error) {
	opts := render.DefaultOptions()
	th, ok := render.LookupTheme(cfg.Theme)
	if !ok {
		return opts, fmt.Errorf("unknown theme %q (have %v)", cfg.Theme, render.ThemeNames())
	}
	opts.Theme = th
	if markers == "" {
		markers = cfg.Markers
	}
	mode, ok := render.ParseMarkerMode(markers)
	if !ok {
		return opts, fmt.Errorf("unknown marker mode %q", markers)
	}
	opts.Markers = mode
	return opts, nil
}

var showCmd = &cobra.Command{
	Use:   "show [root] [type]",
	Short: "Draws the fretboard with a chord or scale highlighted",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := lookupInstrument(cfg.Tuning)
		if err != nil {
			return err
		}
		w, err := window()
		if err != nil {
			return err
		}
		markers, _ := cmd.Flags().GetString("markers")
		opts, err := renderOptions(markers)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")

		var sel *theory.Selection
		if !all {
			s, err := selectionArgs(args)
			if err != nil {
				return err
			}
			sel = &s
		}

		board := fretboard.Project(inst, sel, cfg.Enharmonic, w)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, inst.Name)
		if sel != nil {
			r := enharmonic.Resolver{Preference: cfg.Enharmonic, Root: sel.Root().Sharp()}
			fmt.Fprintln(out, render.Legend(*sel, func(info theory.DegreeInfo) string {
				return string(r.Spell(info.Class))
			}, opts))
		}
		fmt.Fprint(out, render.Board(board, opts))
		return nil
	},
}
