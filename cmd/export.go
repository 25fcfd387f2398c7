package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jsphweid/fretdex/audio"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
)

func init() {
	exportCmd.Flags().StringP("out", "o", "fretdex.mid", "file to write")
	exportCmd.Flags().Bool("scale", false, "each note once, ascending")
	exportCmd.Flags().IntVar(&minFret, "min", -1, "first fret")
	exportCmd.Flags().IntVar(&maxFret, "max", -1, "last fret")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [root] [type]",
	Short: "Writes the highlighted notes to a MIDI file",
	Long: `Writes the notes play would play to a standard MIDI file. Note length and
gap come from noteDuration and noteGap in the preferences.`,
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
		sel, err := selectionArgs(args)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		scale, _ := cmd.Flags().GetBool("scale")

		board := fretboard.Project(inst, &sel, cfg.Enharmonic, w)
		mode := audio.AllHighlighted
		if scale {
			mode = audio.Ascending
		}
		notes := audio.Sequence(board, mode)
		dur := time.Duration(cfg.NoteDuration * float64(time.Second))
		gap := time.Duration(cfg.NoteGap * float64(time.Second))
		s := midi.Export(notes, dur, gap)
		if err := s.WriteFile(out); err != nil {
			return fmt.Errorf("could not write %s: %w", out, err)
		}
		slog.Info("exported", "file", out, "notes", len(notes))
		return nil
	},
}
