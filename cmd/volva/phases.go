package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/volvasvoyage/internal/daycycle"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Show the day phases",
	Args:  cobra.NoArgs,
	Run:   runPhases,
}

func runPhases(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-8s  %-11s  %-4s  %s\n", "Phase", "Hours", "Rest", "Danger")
	fmt.Fprintf(out, "  %-8s  %-11s  %-4s  %s\n", "-----", "-----", "----", "------")
	for _, p := range daycycle.Phases() {
		hours := fmt.Sprintf("%02d:00-%02d:59", p.Start, p.End)
		fmt.Fprintf(out, "  %-8s  %-11s  %-4s  %s  %s\n", p.ID, hours, yesNo(p.CanRest), yesNo(p.Danger), p.Emoji)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Resting is allowed at 23:00 and throughout the Night.")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
