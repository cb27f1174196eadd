package main

import (
	"sort"
	"strings"

	"mealplan/internal/contracts"
	"mealplan/internal/failure"
	"mealplan/internal/payload"

	"github.com/spf13/cobra"
)

// shapeParsers maps --shape values to document parsers.
var shapeParsers = map[string]func([]byte, payload.Format) (any, error){
	"request": func(data []byte, f payload.Format) (any, error) {
		return contracts.ParseDocument[contracts.MealPlanRequest](data, f)
	},
	"response": func(data []byte, f payload.Format) (any, error) {
		return contracts.ParseDocument[contracts.MealPlanResponse](data, f)
	},
}

func shapeNames() []string {
	names := make([]string, 0, len(shapeParsers))
	for name := range shapeParsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newValidateCmd(a *app) *cobra.Command {
	var (
		flags documentFlags
		shape string
	)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a request or response document",
		Long: `Checks a document against the MealPlanRequest or MealPlanResponse
contract. Undeclared fields, string-typed numbers, unknown enum values and
out-of-order meals are all rejected; only the first problem is reported.

On success the document is re-serialized canonically to stdout.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, ok := shapeParsers[shape]
			if !ok {
				return failure.Validationf("unknown shape %q (expected %s)", shape, strings.Join(shapeNames(), " or "))
			}
			data, inFormat, err := a.readDocument(cmd, flags)
			if err != nil {
				return err
			}
			v, err := parse(data, inFormat)
			if err != nil {
				return err
			}
			return a.writeDocument(v, flags)
		},
	}
	flags.register(validateCmd)
	validateCmd.Flags().StringVarP(&shape, "shape", "s", "request", "Contract to validate against: "+strings.Join(shapeNames(), ", "))
	return validateCmd
}
