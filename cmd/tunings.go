package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	tuningsCmd.Flags().String("category", "", "only show one instrument category")
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists the tuning presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		categories := tuning.Categories()
		if category != "" {
			categories = []tuning.Category{tuning.Category(category)}
		}
		out := cmd.OutOrStdout()
		for _, c := range categories {
			presets := tuning.ByCategory(c)
			if len(presets) == 0 {
				return fmt.Errorf("no tunings in category %q", c)
			}
			fmt.Fprintf(out, "%s\n", c)
			for _, p := range presets {
				var notes []string
				for _, s := range p.Strings {
					notes = append(notes, s.OpenNote().String())
				}
				fmt.Fprintf(out, "  %-24s %-28s %s\n", p.ID, p.Name, strings.Join(notes, " "))
			}
		}
		return nil
	},
}
