package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

var (
	ErrUnknownTuning     = errors.New("unknown tuning")
	ErrUnknownType       = errors.New("unknown chord or scale type")
	ErrUnknownNote       = errors.New("unknown note")
	ErrUnknownPreference = errors.New("unknown enharmonic preference")
	ErrBadWindow         = errors.New("bad fret window")
)

var (
	debug      bool
	tuningFlag string
	enharmFlag string
	themeFlag  string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Chords and scales on any fretboard",
	Long: `fretdex works out which note sits under every string and fret of an
instrument in any tuning, and which of those notes belong to a chord or scale.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(debug)
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("tuning") {
			cfg.Tuning = tuning.ID(tuningFlag)
		}
		if cmd.Flags().Changed("enharmonic") {
			p, err := parsePreference(enharmFlag)
			if err != nil {
				return err
			}
			cfg.Enharmonic = p
		}
		if cmd.Flags().Changed("theme") {
			cfg.Theme = themeFlag
		}
		slog.Debug("config", "tuning", cfg.Tuning, "root", cfg.Root, "type", cfg.Type, "enharmonic", cfg.Enharmonic)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&tuningFlag, "tuning", "t", "", "tuning id (see `fretdex tunings`)")
	rootCmd.PersistentFlags().StringVarP(&enharmFlag, "enharmonic", "e", "", "accidental spelling: auto, sharps or flats")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "colour theme")
}

// initLogger routes slog output to stderr at info, or debug with source
// locations when asked.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func parsePreference(s string) (enharmonic.Preference, error) {
	p, ok := enharmonic.ParsePreference(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreference, s)
	}
	return p, nil
}

func parseClass(s string) (pitch.Class, error) {
	c, ok := pitch.ParseClass(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, s)
	}
	return c, nil
}

func parseType(s string) (theory.Type, error) {
	t, ok := theory.ParseType(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

func lookupInstrument(id tuning.ID) (tuning.Instrument, error) {
	inst, ok := tuning.InstrumentFor(id)
	if !ok {
		return tuning.Instrument{}, fmt.Errorf("%w: %q", ErrUnknownTuning, id)
	}
	return inst, nil
}

// selectionArgs reads optional [root] [type] arguments, falling back to the
// configured selection.
func selectionArgs(args []string) (theory.Selection, error) {
	root, typ := cfg.Root, cfg.Type
	var err error
	if len(args) > 0 {
		if root, err = parseClass(args[0]); err != nil {
			return theory.Selection{}, err
		}
	}
	if len(args) > 1 {
		if typ, err = parseType(args[1]); err != nil {
			return theory.Selection{}, err
		}
	}
	return theory.NewSelection(root, typ), nil
}
