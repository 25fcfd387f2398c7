package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jsphweid/fretdex/audio"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
)

func init() {
	playCmd.Flags().Bool("scale", false, "play each note once, ascending, instead of every highlighted fret")
	playCmd.Flags().Bool("dry-run", false, "print the notes instead of playing them")
	playCmd.Flags().IntVar(&minFret, "min", -1, "first fret")
	playCmd.Flags().IntVar(&maxFret, "max", -1, "last fret")
	rootCmd.AddCommand(playCmd)
}

// playable is a player that may hold a device open.
type playable interface {
	audio.Player
	io.Closer
}

// openPlayer prefers the MIDI out port named by FRETDEX_MIDI_OUT and falls back
// to the sound card.
func openPlayer() (playable, func(context.Context) error, error) {
	if port := constants.GetMidiOutPort(); port != "" {
		p, err := midi.OpenPlayer(port)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("playing through midi", "port", port)
		return p, func(context.Context) error { return nil }, nil
	}
	p, err := audio.NewOtoPlayer(constants.SampleRate)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Wait, nil
}

var playCmd = &cobra.Command{
	Use:   "play [root] [type]",
	Short: "Plays the highlighted notes",
	Long: `Plays every highlighted fret from low to high, or with --scale each chord or
scale note once in ascending order. Set FRETDEX_MIDI_OUT to send the notes to a
MIDI port instead of the sound card.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := lookupInstrument(cfg.Tuning)
		if err != nil {
			return err
		}
		w, err := window()
		if err != nil {
			return err
		}
		sel, err := selectionArgs(args)
		if err != nil {
			return err
		}
		scale, _ := cmd.Flags().GetBool("scale")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		board := fretboard.Project(inst, &sel, cfg.Enharmonic, w)
		mode := audio.AllHighlighted
		if scale {
			mode = audio.Ascending
		}
		notes := audio.Sequence(board, mode)
		if len(notes) == 0 {
			return fmt.Errorf("nothing of %s between frets %d and %d", sel, board.MinFret, board.MaxFret)
		}
		if dryRun {
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %8.2f Hz\n", n, n.Frequency())
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		p, wait, err := openPlayer()
		if err != nil {
			return err
		}
		defer p.Close()
		defer midi.CloseDriver()

		slog.Info("playing", "selection", sel.String(), "notes", len(notes))
		dur, gap := mode.Timing()
		if err := audio.PlaySequence(ctx, p, audio.Frequencies(notes), dur, gap); err != nil {
			return err
		}
		return wait(ctx)
	},
}
