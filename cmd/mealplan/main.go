package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mealplan/internal/config"
	"mealplan/internal/failure"
	"mealplan/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state of a single invocation. Nothing outlives Execute.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mealplan",
		Short: "Mealplan command-line interface.",
		Long: `mealplan plans daily macro targets and per-meal allocations.

The calculation pathway is not implemented yet: plan returns a zeroed
response shape and probe returns a fixed message. The request and response
contracts are enforced in full.`,
		Args:               noArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: behave like --help.
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: $MEALPLAN_CONFIG or mealplan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return failure.Validation(err.Error())
	})

	rootCmd.AddCommand(newProbeCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newUnitsCmd(a))
	return rootCmd
}

// bootstrap loads .env, the config file and the invocation logger.
func (a *app) bootstrap() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(config.ResolvePath(a.configPath))
	if err != nil {
		return err
	}
	a.cfg = cfg

	cfg.Logging.Verbose = a.verbose
	log, err := logging.New(cfg.Logging, a.stderr)
	if err != nil {
		return failure.Wrap(failure.KindConfig, err, "failed to initialize logger")
	}
	a.log = log
	a.log.Get(logging.CategoryBoot).Debug("configuration loaded",
		zap.String("path", config.ResolvePath(a.configPath)),
		zap.String("output_format", cfg.Output.Format))
	return nil
}

// noArgs rejects positional arguments as a validation failure.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return failure.Validation(err.Error())
	}
	return nil
}

// Execute runs the CLI with args (excluding argv[0]) and returns the process
// exit code. Failures are reported as exactly one "Error: <message>" line on
// stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: logging.Nop()}

	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	code := failure.ExitCodeFor(err)
	if err != nil {
		a.log.Get(logging.CategoryCLI).Debug("command failed",
			zap.Stringer("kind", failure.KindOf(err)),
			zap.Int("exit_code", int(code)))
		fmt.Fprintf(stderr, "Error: %s\n", singleLine(err.Error()))
	}
	a.log.Close()
	return int(code)
}

func singleLine(msg string) string {
	return strings.ReplaceAll(strings.TrimSpace(msg), "\n", " ")
}

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
