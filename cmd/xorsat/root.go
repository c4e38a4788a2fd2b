package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gokanxor/internal/config"
	"github.com/gitrdm/gokanxor/internal/parallel"
	"github.com/gitrdm/gokanxor/pkg/xorsat"
	"github.com/gitrdm/gokanxor/pkg/xorsat/verify"
)

type options struct {
	config.Config
	debug   bool
	version bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	o := options{Config: cfg}

	cmd := &cobra.Command{
		Use:          "xorsat [flags] FILE...",
		Short:        "Count and sample the solutions of XOR script constraints",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				if strings.EqualFold(o.Format, config.FormatYAML) {
					enc := yaml.NewEncoder(cmd.OutOrStdout())
					if err := enc.Encode(xorsat.GetVersionInfo()); err != nil {
						return err
					}
					return enc.Close()
				}
				fmt.Fprintln(cmd.OutOrStdout(), xorsat.GetVersion())
				return nil
			}
			if len(args) == 0 {
				return errors.New("expected at least one input file (use - for standard input)")
			}
			if err := o.Validate(); err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			lvl, _ := o.Level()
			logger.SetLevel(lvl)
			if o.debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Debugf("log level %s", logger.Level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return o.run(ctx, cmd.OutOrStdout(), logger, args)
		},
	}

	cmd.Flags().StringVar(&o.LogLevel, "log-level", cfg.LogLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().StringVarP(&o.Format, "format", "o", cfg.Format, "output format: text or yaml")
	cmd.Flags().IntVar(&o.Workers, "workers", cfg.Workers, "files solved concurrently (0 uses the number of CPUs)")
	cmd.Flags().BoolVar(&o.Verify, "verify", cfg.Verify, "cross-check every count with an independent SAT solver")
	cmd.Flags().IntVar(&o.VerifyLimit, "verify-limit", cfg.VerifyLimit, "maximum models enumerated by --verify (0 for no limit)")
	cmd.Flags().StringVar(&o.MetricsFile, "metrics-file", cfg.MetricsFile, "write solver metrics in Prometheus text format to this file")
	cmd.Flags().BoolVar(&o.version, "version", false, "displays the xorsat version")

	return cmd
}

// outcome is the result of solving one input file.
type outcome struct {
	path     string
	result   xorsat.Result
	output   string
	verified bool
	err      error
}

func (o *options) run(ctx context.Context, out io.Writer, logger *logrus.Logger, paths []string) error {
	monitor := xorsat.NewMonitor()

	pool := parallel.NewWorkerPool(o.Workers)
	defer pool.Shutdown()

	outcomes, err := parallel.Map(ctx, pool, len(paths), func(ctx context.Context, i int) outcome {
		return o.solveFile(ctx, logger, monitor, paths[i])
	})
	if err != nil {
		return err
	}
	for _, oc := range outcomes {
		if oc.err != nil {
			return errors.Wrapf(oc.err, "%s", oc.path)
		}
	}

	if err := o.write(out, outcomes); err != nil {
		return err
	}

	if o.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		if err := reg.Register(xorsat.NewCollector(monitor)); err != nil {
			return errors.Wrap(err, "register metrics")
		}
		if err := prometheus.WriteToTextfile(o.MetricsFile, reg); err != nil {
			return errors.Wrapf(err, "write metrics to %s", o.MetricsFile)
		}
	}
	logger.WithField("stats", monitor.Snapshot().String()).Info("done")
	return nil
}

func (o *options) solveFile(ctx context.Context, logger *logrus.Logger, monitor *xorsat.Monitor, path string) outcome {
	oc := outcome{path: path}
	log := logger.WithField("file", path)

	r, err := open(path)
	if err != nil {
		oc.err = err
		return oc
	}
	defer r.Close()

	p, err := xorsat.ParseProblem(r)
	if err != nil {
		oc.err = errors.Wrap(err, "parse")
		return oc
	}
	log.WithFields(logrus.Fields{
		"variables": p.VariableCount,
		"scripts":   p.ScriptCount,
	}).Debug("parsed problem")

	res, runErr := xorsat.Run(ctx, p, xorsat.WithLogger(log), xorsat.WithMonitor(monitor))
	oc.result = res
	oc.output, oc.err = xorsat.Output(res, runErr)
	if oc.err != nil {
		return oc
	}
	if runErr != nil {
		log.WithError(runErr).Debug("no solution")
	}

	if o.Verify {
		if err := verify.Check(ctx, p, res, runErr, o.VerifyLimit); err != nil {
			oc.err = errors.Wrap(err, "verify")
			return oc
		}
		oc.verified = true
		log.Debug("verified against SAT oracle")
	}
	return oc
}

func (o *options) write(out io.Writer, outcomes []outcome) error {
	if strings.EqualFold(o.Format, config.FormatYAML) {
		return writeYAML(out, outcomes)
	}
	for _, oc := range outcomes {
		if len(outcomes) > 1 {
			if _, err := fmt.Fprintf(out, "# %s\n", oc.path); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out, oc.output); err != nil {
			return err
		}
	}
	return nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}
