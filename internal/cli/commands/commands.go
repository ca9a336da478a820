package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"corpustest/internal/cli"
	"corpustest/internal/config"
	"corpustest/internal/discovery"
	"corpustest/internal/domain"
	"corpustest/internal/storage"
)

// ErrReported marks errors whose diagnostic was already printed by a
// command, so main only has to set the exit status.
var ErrReported = errors.New("reported")

func reported(err error) error {
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands. Components that depend on configured
// values are built when a command executes, after flags were applied.
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	filter := discovery.NewFilter()

	return &Commands{
		Run:      NewRunCommand(cfg, filter, jsonStorage),
		List:     NewListCommand(cfg, filter, discovery.NewParser(), jsonStorage),
		Failures: NewFailuresCommand(jsonStorage),
	}
}

// Register registers all commands with cobra. Running the root command
// without a subcommand behaves like run.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		if err := cfg.Apply(flags.ToConfigFlags()); err != nil {
			return err
		}
		if flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory that relative paths are resolved against (default: current directory)")
	pf.StringVar(&flags.ConfigFile, "config", "", "Path to the YAML config file (default: <project>/"+config.DefaultConfigFile+")")
	pf.StringVarP(&flags.CorpusDir, "corpus", "d", "", "Directory holding the example programs (default: "+config.DefaultCorpusDir+")")
	pf.StringVarP(&flags.NameFilter, "filter", "f", "", "Filter examples by name pattern (supports wildcards, e.g. '03_*' or '*Loop*')")
	pf.BoolVarP(&flags.AllFiles, "all", "a", false, "Include files whose name does not start with a digit")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every compiler invocation to stderr")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.RunE = c.Run.Execute
	bindRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compile every example and report pass/fail",
		Long:  "Locate the compiler, run it on each example of the corpus in order and print a summary. Exits with status 1 if any example fails.",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	bindRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the example corpus",
		Long:  "Scan the corpus directory and list the examples that run would compile, without invoking the compiler",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.Details, "details", false, "Show the program and procedures each example declares")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failing examples interactively",
		Long:  "Display the failing examples of the last saved run (see run --save) in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}

func bindRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	fs := cmd.Flags()
	fs.StringVarP(&flags.Compiler, "compiler", "c", "", "Compiler executable; replaces the default locations and must exist")
	fs.DurationVarP(&flags.Timeout, "timeout", "t", 0, "Per-example timeout (default: "+config.DefaultTimeout.String()+")")
	fs.BoolVarP(&flags.Save, "save", "s", false, "Save the run report as JSON for the failures viewer")
	fs.BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar on stderr")
	fs.StringVar(&flags.HistoryDSN, "history-dsn", "", "MySQL DSN to record the run in (user:pass@tcp(host:3306)/db)")
}

// discover scans the configured corpus and applies the name filter
func discover(cfg *config.Config, filter *discovery.Filter) ([]domain.ExampleFile, error) {
	var predicate discovery.NamePredicate
	if cfg.DigitPrefix {
		predicate = discovery.DigitPrefix
	}
	scanner := discovery.NewScanner(cfg.Extension, predicate)

	examples, err := scanner.Scan(cfg.GetCorpusPath())
	if err != nil {
		return nil, err
	}
	return filter.FilterByName(examples, cfg.Flags.NameFilter), nil
}
