package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"corpustest/internal/cli"
	"corpustest/internal/cli/commands"
	"corpustest/internal/config"
	"corpustest/internal/exitcodes"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "corpustest",
		Short: "Regression-test a compiler against its example corpus",
		Long: `Runs the compiler on every example program of the corpus, one after
another, and classifies each run as passed or failed from the compiler's
output and exit status. Prints a per-example line, a summary with the
success rate, and exits with status 1 if any example failed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Interrupting a run still prints the summary of what was attempted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, commands.ErrReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()
	os.Exit(exitcodes.FromError(err))
}
