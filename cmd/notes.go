package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(typesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes [root] [type]",
	Short: "Lists the notes of a chord or scale",
	Example: `  fretdex notes C major
  fretdex notes A pentatonic-minor -e flats`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionArgs(args)
		if err != nil {
			return err
		}
		r := enharmonic.Resolver{Preference: cfg.Enharmonic, Root: sel.Root().Sharp()}
		var parts []string
		for _, c := range sel.Notes() {
			info, _ := sel.DegreeInfo(c)
			mark := ""
			if info.Important {
				mark = "*"
			}
			parts = append(parts, fmt.Sprintf("%s(%d%s)", r.Spell(c), info.Degree, mark))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s]: %s\n", r.Spell(sel.Root()), sel.Type().Label(), sel.Kind(), strings.Join(parts, " "))
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists chord and scale types",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range theory.Categories() {
			fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Kind)
			for _, t := range c.Types {
				fmt.Fprintf(out, "  %-18s %-24s %v\n", t, t.Label(), theory.Intervals(t))
			}
		}
	},
}
