// Package application holds the use cases invoked by the CLI. They are pure
// functions of their parsed input: no I/O, no hidden state.
package application

import (
	"errors"

	"mealplan/internal/contracts"
	"mealplan/internal/failure"
)

// ProbeReadyMessage is the fixed success output of RunProbe.
const ProbeReadyMessage = "mealplan stub: ready"

// RunProbe returns the deterministic placeholder output, or the failure
// named by req.SimulateError.
func RunProbe(req contracts.ProbeRequest) (contracts.ProbeResponse, error) {
	if req.SimulateError != nil {
		switch *req.SimulateError {
		case contracts.SimulateValidation:
			return contracts.ProbeResponse{}, failure.Validation("simulated validation failure")
		case contracts.SimulateDomain:
			return contracts.ProbeResponse{}, failure.DomainRule("simulated domain rule failure")
		case contracts.SimulateConfig:
			return contracts.ProbeResponse{}, failure.Config("simulated config failure")
		case contracts.SimulateOutput:
			return contracts.ProbeResponse{}, failure.Output("simulated output failure")
		case contracts.SimulateRuntime:
			// Unclassified on purpose.
			return contracts.ProbeResponse{}, errors.New("simulated runtime failure")
		}
	}
	return contracts.ProbeResponse{Message: ProbeReadyMessage}, nil
}
