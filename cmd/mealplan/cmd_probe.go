package main

import (
	"fmt"
	"strings"

	"mealplan/internal/application"
	"mealplan/internal/contracts"
	"mealplan/internal/domain"
	"mealplan/internal/failure"
	"mealplan/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProbeCmd(a *app) *cobra.Command {
	var simulateError string

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Run a deterministic placeholder command",
		Long: `Prints a fixed readiness message. With --simulate-error the named
failure is raised instead, exercising the error-to-exit-code mapping:

  validation  exit 2
  domain      exit 3
  config      exit 4
  output      exit 4
  runtime     exit 4`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := map[string]any{}
			if cmd.Flags().Changed("simulate-error") {
				raw["simulate_error"] = simulateError
			}
			return a.runProbe(raw)
		},
	}

	kinds := strings.Join(domain.Strings(contracts.SimulatedErrorKinds()), ", ")
	probeCmd.Flags().StringVar(&simulateError, "simulate-error", "",
		fmt.Sprintf("Simulate a named error pathway (%s)", kinds))
	return probeCmd
}

func (a *app) runProbe(raw map[string]any) error {
	req, err := contracts.Parse[contracts.ProbeRequest](raw)
	if err != nil {
		return err
	}

	log := a.log.Get(logging.CategoryApplication)
	if req.SimulateError != nil {
		log.Debug("probe simulating failure", zap.String("kind", string(*req.SimulateError)))
	}

	resp, err := application.RunProbe(req)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(a.stdout, resp.Message); err != nil {
		return failure.Wrap(failure.KindOutput, err, "failed to write output")
	}
	return nil
}
