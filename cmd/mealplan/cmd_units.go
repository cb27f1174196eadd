package main

import (
	"fmt"

	"mealplan/internal/contracts"
	"mealplan/internal/failure"

	"github.com/spf13/cobra"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Show the unit of every numeric contract field",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := contracts.UnitsPolicy()
			for _, field := range contracts.UnitFields() {
				if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", field, units[field]); err != nil {
					return failure.Wrap(failure.KindOutput, err, "failed to write output")
				}
			}
			return nil
		},
	}
}
