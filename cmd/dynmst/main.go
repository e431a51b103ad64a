// Command dynmst is an interactive shell over a mutable weighted graph: add
// and remove edges, then ask for the minimum spanning tree of what is there.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/dynmst/config"
	"github.com/katalvlaran/dynmst/console"
	"github.com/katalvlaran/dynmst/core"
	"github.com/katalvlaran/dynmst/logutil"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagMaxEdges  = "max-edges"
	flagMaxNodes  = "max-nodes"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go func() {
		// Restore default handling after the first signal so a second one
		// kills the process.
		<-ctx.Done()
		cancel()
	}()

	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "dynmst failed:", err)
		cancel()
		os.Exit(1) // nolint:gocritic
	}
}

// newRootCmd builds the dynmst command reading menu input from in, printing
// to out, and logging to errOut.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dynmst",
		Short:         "dynmst maintains a weighted graph and reports its minimum spanning tree.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), conf, in, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringP(flagConfig, "c", "", "Path to a TOML config file")
	flags.StringP(flagLogLevel, "L", "", "Set the log level (debug, info, warn, error)")
	flags.String(flagLogFormat, "", "Set the log format (text, json)")
	flags.Int(flagMaxEdges, core.DefaultMaxEdges, "Maximum number of stored edges")
	flags.Int(flagMaxNodes, core.DefaultMaxNodes, "Vertex ids must be below this value")
	return cmd
}

// loadConfig starts from defaults, applies the config file, then explicitly
// set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf := config.NewConfig()
	flags := cmd.Flags()

	path, err := flags.GetString(flagConfig)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return nil, errors.Annotatef(err, "load config %s", path)
		}
	}

	if flags.Changed(flagLogLevel) {
		if conf.Log.Level, err = flags.GetString(flagLogLevel); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if flags.Changed(flagLogFormat) {
		if conf.Log.Format, err = flags.GetString(flagLogFormat); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if flags.Changed(flagMaxEdges) {
		if conf.Graph.MaxEdges, err = flags.GetInt(flagMaxEdges); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if flags.Changed(flagMaxNodes) {
		if conf.Graph.MaxNodes, err = flags.GetInt(flagMaxNodes); err != nil {
			return nil, errors.Trace(err)
		}
	}

	if err := conf.Valid(); err != nil {
		return nil, errors.Trace(err)
	}
	return conf, nil
}

// run wires logger, graph and console session together.
func run(ctx context.Context, conf *config.Config, in io.Reader, out, errOut io.Writer) error {
	logger, err := logutil.InitLogger(conf.Log.ToLogConfig(), errOut)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() { _ = logger.Sync() }()

	g := core.NewGraph(conf.GraphOptions()...)
	logger.Info("dynmst started",
		zap.Int("max-edges", g.MaxEdges()), zap.Int("max-nodes", g.MaxNodes()))

	if err := console.NewSession(g, out, logger).Run(ctx, in); err != nil {
		return errors.Trace(err)
	}
	logger.Info("dynmst finished", zap.Int("edges", g.EdgeCount()), zap.Int("nodes", g.NodeCount()))
	return nil
}
