// Package cli implements the lsss command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/logging"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/metrics"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUnsatisfied = 2
)

type app struct {
	v        *viper.Viper
	stdout   io.Writer
	stderr   io.Writer
	settings Settings
	logger   logging.Logger
	registry *prometheus.Registry
	tracer   lsss.Tracer
}

// Execute runs the lsss command with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the lsss command with args, writing results to stdout and
// diagnostics to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	root, a := newRoot(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	// Flush even when the command failed.
	if ferr := a.flushMetrics(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, lsss.ErrUnsatisfiedAccessStructure) {
			return ExitUnsatisfied
		}
		return ExitError
	}
	return ExitOK
}

// NewRootCommand builds a fresh command tree with its own configuration.
// --metrics output is written by Run, not by the returned command.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root, _ := newRoot(stdout, stderr)
	return root
}

func newRoot(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lsss",
		Short: "Linear secret sharing over prime fields",
		Long: `lsss splits a secret into one share per row of an access matrix and
computes the coefficients that recover it from an authorized set of
attributes.

Built-in fields:
  - bn254:     scalar field of the BN254 pairing curve
  - bls12-381: scalar field of the BLS12-381 pairing curve
  - secp256k1: scalar field of secp256k1

Every flag can also be set through an LSSS_ environment variable
(LSSS_FIELD, LSSS_LOG_LEVEL, ...) or a YAML file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (YAML)")
	flags.String(keyField, "", "field to work in (default: the policy's field, else bn254)")
	flags.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(keySeed, "", "derive split randomness from this seed; never use for real secrets")
	flags.StringP(keyOutput, "o", string(OutputFormatText), "output format (text, json)")
	flags.Bool(keyTrace, false, "log each reconstruction step at debug level")
	flags.Bool(keyMetrics, false, "write Prometheus metrics to stderr when the command finishes")
	_ = a.v.BindPFlags(flags) // only fails on a nil flag set

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.splitCommand(),
		a.reconstructCommand(),
		a.roundtripCommand(),
		a.policyCommand(),
		a.fieldsCommand(),
		a.versionCommand(),
	)
	return root, a
}

func (a *app) setup() error {
	s, err := loadSettings(a.v)
	if err != nil {
		return err
	}
	a.settings = s

	level, _ := logging.ParseLevel(s.LogLevel) // validated by loadSettings
	if s.Trace {
		level = slog.LevelDebug
	}
	a.logger = logging.NewText(a.stderr, level).With("cmd", "lsss")

	var tracers []lsss.Tracer
	if s.Trace {
		tracers = append(tracers, lsss.NewLogTracer(a.logger))
	}
	if s.Metrics {
		a.registry = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(a.registry)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		tracers = append(tracers, collector)
	}
	a.tracer = lsss.MultiTracer(tracers...)
	return nil
}

func (a *app) flushMetrics() error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.stderr, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func (a *app) printer() *Printer {
	return NewPrinter(a.settings.Output, a.stdout)
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
