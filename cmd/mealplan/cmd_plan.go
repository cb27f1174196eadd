package main

import (
	"io"
	"os"

	"mealplan/internal/application"
	"mealplan/internal/contracts"
	"mealplan/internal/failure"
	"mealplan/internal/logging"
	"mealplan/internal/payload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// documentFlags are shared by commands that read a request or response file.
type documentFlags struct {
	input        string
	inputFormat  string
	outputFormat string
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input document path, or - for stdin (required)")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "", "Input format: json or yaml (default: from file extension)")
	cmd.Flags().StringVarP(&f.outputFormat, "format", "f", "", "Output format: json or yaml (default: output.format from config)")
}

func newPlanCmd(a *app) *cobra.Command {
	var flags documentFlags

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a meal plan from a request document",
		Long: `Parses a MealPlanRequest document (JSON or YAML) and prints the
MealPlanResponse. Until the calculation pathway exists the response is the
zeroed placeholder with six meals in canonical order.

Example:
  mealplan plan --input request.yaml --format json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, inFormat, err := a.readDocument(cmd, flags)
			if err != nil {
				return err
			}
			req, err := contracts.ParseDocument[contracts.MealPlanRequest](data, inFormat)
			if err != nil {
				return err
			}
			a.log.Get(logging.CategoryContracts).Debug("request parsed",
				zap.Int("age", req.Age),
				zap.String("carb_mode", string(req.CarbMode)))

			resp, err := application.RunPlan(req)
			if err != nil {
				return err
			}
			return a.writeDocument(resp, flags)
		},
	}
	flags.register(planCmd)
	return planCmd
}

// readDocument loads the --input document and resolves its format.
func (a *app) readDocument(cmd *cobra.Command, flags documentFlags) ([]byte, payload.Format, error) {
	if flags.input == "" {
		return nil, "", failure.Validation("--input is required")
	}

	format := payload.FormatFromPath(flags.input)
	if flags.inputFormat != "" {
		f, err := payload.ParseFormat(flags.inputFormat)
		if err != nil {
			return nil, "", failure.Validation(err.Error())
		}
		format = f
	}

	var (
		data []byte
		err  error
	)
	if flags.input == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(flags.input)
	}
	if err != nil {
		return nil, "", failure.Wrap(failure.KindValidation, err, "failed to read input")
	}
	a.log.Get(logging.CategoryCLI).Debug("input loaded",
		zap.String("path", flags.input),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)))
	return data, format, nil
}

// writeDocument encodes v in the requested (or configured) format to stdout.
func (a *app) writeDocument(v any, flags documentFlags) error {
	name := a.cfg.Output.Format
	if flags.outputFormat != "" {
		name = flags.outputFormat
	}
	format, err := payload.ParseFormat(name)
	if err != nil {
		return failure.Validation(err.Error())
	}

	data, err := payload.Encode(v, format)
	if err != nil {
		return failure.Wrap(failure.KindOutput, err, "failed to encode output")
	}
	if _, err := a.stdout.Write(data); err != nil {
		return failure.Wrap(failure.KindOutput, err, "failed to write output")
	}
	a.log.Get(logging.CategoryOutput).Debug("output written",
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)))
	return nil
}
