package cmd

import (
	"log/slog"

	"github.com/jsphweid/fretdex/audio"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/tui"
	"github.com/spf13/cobra"
)

func init() {
	tuiCmd.Flags().Bool("mute", false, "don't open a sound device")
	tuiCmd.Flags().Bool("no-save", false, "don't remember choices in the preferences file")
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explores the fretboard interactively",
	Long: `Opens an interactive fretboard. The tuning, chord or scale, spelling and fret
window you end on are saved as your preferences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := lookupInstrument(cfg.Tuning); err != nil {
			return err
		}
		opts, err := renderOptions("")
		if err != nil {
			return err
		}

		var player audio.Player
		if mute, _ := cmd.Flags().GetBool("mute"); !mute {
			p, _, err := openPlayer()
			if err != nil {
				slog.Warn("no sound", "err", err)
			} else {
				defer p.Close()
				defer midi.CloseDriver()
				player = p
			}
		}

		final, err := tui.Run(tui.State{
			Tuning:     cfg.Tuning,
			Selection:  cfg.Selection(),
			Enharmonic: cfg.Enharmonic,
			Window:     fretboard.Window{Min: cfg.MinFret, Max: cfg.MaxFret},
		}, opts, player)
		if err != nil {
			return err
		}

		if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
			return nil
		}
		cfg.Tuning = final.Tuning
		cfg.Root = final.Selection.Root()
		cfg.Type = final.Selection.Type()
		cfg.Enharmonic = final.Enharmonic
		cfg.MinFret, cfg.MaxFret = final.Window.Min, final.Window.Max
		return cfg.Save()
	},
}
