package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

func init() {
	identifyCmd.Flags().String("midi", "", "identify every chord in a MIDI file instead")
	identifyCmd.Flags().Int("limit", 5, "matches to show per chord")
	identifyCmd.Flags().Duration("from", 0, "with --midi, skip notes before this time")
	identifyCmd.Flags().Int("max-notes", 0, "with --midi, stop after this many note events per track")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify [note...]",
	Short: "Finds chords and scales containing the given notes",
	Example: `  fretdex identify C E G
  fretdex identify --midi song.mid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		path, _ := cmd.Flags().GetString("midi")
		out := cmd.OutOrStdout()
		if path != "" {
			s, err := midi.ReadMidiFile(path)
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetDuration("from")
			maxNotes, _ := cmd.Flags().GetInt("max-notes")
			if from > 0 || maxNotes > 0 {
				s = midi.Excerpt(s, from, maxNotes)
			}
			chords := chord.Distinct(chord.GetChords(s))
			slog.Debug("read chords", "file", path, "count", len(chords))
			for _, c := range chords {
				matches := theory.Identify(chord.Classes(c))
				fmt.Fprintf(out, "%6dms  %-16s %s\n", c.Offset, chord.CreateChordKey(c.Keys), describe(matches, limit))
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("give some notes or --midi")
		}
		var classes []pitch.Class
		for _, a := range args {
			c, err := parseClass(a)
			if err != nil {
				return err
			}
			classes = append(classes, c)
		}
		fmt.Fprintln(out, describe(theory.Identify(classes), limit))
		return nil
	},
}

func describe(matches []theory.Selection, limit int) string {
	if len(matches) == 0 {
		return "no match"
	}
	var res string
	for i, m := range matches {
		if i == limit {
			res += fmt.Sprintf(" (+%d more)", len(matches)-limit)
			break
		}
		if i > 0 {
			res += ", "
		}
		res += m.String()
	}
	return res
}
