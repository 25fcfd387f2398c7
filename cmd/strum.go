package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/strum"
	"github.com/spf13/cobra"
)

func init() {
	strumCmd.Flags().String("device", "", "serial device (default FRETDEX_SERIAL)")
	strumCmd.Flags().Int("position", 0, "lowest fret of the hand position")
	strumCmd.Flags().Int("span", 3, "frets the hand can reach above the position")
	strumCmd.Flags().Bool("dry-run", false, "print the frame instead of sending it")
	strumCmd.Flags().Bool("list", false, "list serial devices and exit")
	rootCmd.AddCommand(strumCmd)
}

func formatVoicing(frets []int) string {
	parts := make([]string, len(frets))
	for i, f := range frets {
		if f == fretboard.Muted {
			parts[i] = "x"
		} else {
			parts[i] = fmt.Sprint(f)
		}
	}
	return strings.Join(parts, " ")
}

var strumCmd = &cobra.Command{
	Use:   "strum [root] [type]",
	Short: "Sends a chord voicing to a strumming board over serial",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			ports, err := strum.Ports()
			if err != nil {
				return err
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		}

		inst, err := lookupInstrument(cfg.Tuning)
		if err != nil {
			return err
		}
		sel, err := selectionArgs(args)
		if err != nil {
			return err
		}
		position, _ := cmd.Flags().GetInt("position")
		span, _ := cmd.Flags().GetInt("span")

		frets := fretboard.Voicing(inst, sel, position, span)
		frame, err := strum.FrameFor(frets, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", sel, formatVoicing(frets))

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "% X\n", frame.Encode())
			return nil
		}
		device, _ := cmd.Flags().GetString("device")
		if device == "" {
			device = constants.GetSerialDevice()
		}
		port, err := strum.OpenPort(device, constants.SerialBaud)
		if err != nil {
			return err
		}
		defer port.Close()
		if err := port.SendFrame(frame); err != nil {
			return err
		}
		slog.Debug("strummed", "selection", sel.String(), "device", device)
		return nil
	},
}
