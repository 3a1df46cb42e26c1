package main

import (
	"context"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const programName = "crowdfund"

var globalFlags = struct {
	debug bool
}{}

type ctxKey struct{}

// runtime is what every command gets from the root pre-run.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
}

func fromContext(ctx context.Context) *runtime {
	rt, _ := ctx.Value(ctxKey{}).(*runtime)
	return rt
}

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), "component", programName)
}

// newLogger builds the process logger from cfg. --debug forces the debug
// level and adds source locations.
func newLogger(cfg configs.Logger, env string) *slog.Logger {
	opts := cfg.HandlerOptions(globalFlags.debug)
	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler).With("env", env)
}

// printJSON writes v to stdout for the query commands.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Crowdfunding ledger gateway",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg.Log, cfg.Env)
		slog.SetDefault(logger)
		// Configure max processes with our logger wrapper, toss undo func
		if _, err = maxprocs.Set(maxprocs.Logger(slogPrintf)); err != nil {
			return fmt.Errorf("set GOMAXPROCS: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), ctxKey{}, &runtime{cfg: cfg, logger: logger}))
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(campaignsCommand())
	rootCmd.AddCommand(campaignCommand())
	rootCmd.AddCommand(txCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		f := domain.Classify(err)
		fmt.Fprintf(os.Stderr, "%s: %s\n", f.Kind, f.Message)
		if f.Kind == domain.FailureInternal || f.Kind == domain.FailureMisconfigured {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
		os.Exit(1)
	}
}
