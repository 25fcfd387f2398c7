package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <string> <fret>",
	Short: "Shows the note at a string and fret",
	Long: `Shows the note at a string and fret. Strings are numbered from 1, the
highest-pitched string. Any fret number is accepted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := lookupInstrument(cfg.Tuning)
		if err != nil {
			return err
		}
		str, err := strconv.Atoi(args[0])
		if err != nil || str < 1 || str > len(inst.Strings) {
			return fmt.Errorf("string must be 1-%d, got %q", len(inst.Strings), args[0])
		}
		fret, err := strconv.Atoi(args[1])
		if err != nil || fret < 0 {
			return fmt.Errorf("fret must be a non-negative number, got %q", args[1])
		}
		n := inst.Strings[str-1].NoteAt(fret)
		label := enharmonic.DisplaySpelling(n.Class.Sharp(), cfg.Enharmonic, "")
		fmt.Fprintf(cmd.OutOrStdout(), "%s%d  %.2f Hz  midi %d\n", label, n.Octave, n.Frequency(), n.MIDI())
		return nil
	},
}
