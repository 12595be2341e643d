package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/shamirkit/basedec"
	"github.com/vitalvas/shamirkit/recovery"
	"github.com/vitalvas/shamirkit/render"
	"github.com/vitalvas/shamirkit/xcmd"
	"github.com/vitalvas/shamirkit/xlogger"
)

var errDocumentsFailed = errors.New("some documents failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shamir-recover",
		Short:         "Recover Shamir secrets from share documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRecoverCmd(), newDecodeCmd(), newVersionCmd())

	return root
}

func newRecoverCmd() *cobra.Command {
	var (
		configPath string
		format     string
		selection  string
		workers    int
		verify     bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "recover FILE...",
		Short: "Reconstruct the secret of every share document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Output.Format = format
			}
			if flags.Changed("selection") {
				cfg.Recovery.Selection = selection
			}
			if flags.Changed("workers") {
				cfg.Recovery.Workers = workers
			}
			if flags.Changed("verify") {
				cfg.Recovery.Verify = verify
			}
			if flags.Changed("log-level") {
				cfg.Logger.Level = logLevel
			}

			if err := cfg.validate(); err != nil {
				return err
			}

			return runRecover(cmd.Context(), cfg, args, cmd.OutOrStdout(), logWriter(cmd, cfg.Logger))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file (yaml or json)")
	flags.StringVarP(&format, "format", "f", "text", "output format: text or json")
	flags.StringVar(&selection, "selection", "document", "share selection: document or ascending")
	flags.IntVarP(&workers, "workers", "w", 0, "documents processed at once (0 = GOMAXPROCS)")
	flags.BoolVar(&verify, "verify", false, "check that every share lies on the recovered polynomial")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func logWriter(cmd *cobra.Command, conf xlogger.Config) io.Writer {
	if strings.EqualFold(conf.Output, "stdout") {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}

func runRecover(ctx context.Context, cfg *Config, paths []string, out, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := xlogger.NewWithWriter(cfg.Logger, logOut)

	opts := cfg.recoveryOptions()
	opts.Logger = logger

	recoverer, err := recovery.New(opts)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var results []recovery.Result
	err = xcmd.RunWithSignals(ctx, func(ctx context.Context) error {
		var runErr error
		results, runErr = recoverer.RecoverFiles(ctx, paths)
		return runErr
	})
	if err != nil {
		var sigErr *xcmd.SignalError
		if errors.As(err, &sigErr) {
			logger.Warn("recovery interrupted", "signal", sigErr.Signal.String())
		}
		return err
	}

	if err := render.Write(out, format, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if failed := recovery.Failed(results); failed > 0 {
		return fmt.Errorf("%w: %d of %d", errDocumentsFailed, failed, len(results))
	}

	return nil
}

func newDecodeCmd() *cobra.Command {
	var to int

	cmd := &cobra.Command{
		Use:   "decode BASE DIGITS",
		Short: "Decode a digit string in the given base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := basedec.ParseBase(args[0])
			if err != nil {
				return err
			}

			value, err := basedec.Decode(args[1], base)
			if err != nil {
				return err
			}

			text, err := basedec.Encode(value, to)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().IntVar(&to, "to", 10, "output base")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
