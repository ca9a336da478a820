package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"corpustest/internal/config"
	"corpustest/internal/discovery"
	"corpustest/internal/storage"
	"corpustest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	parser  *discovery.Parser
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	parser *discovery.Parser,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:  cfg,
		filter:  filter,
		parser:  parser,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	examples, err := discover(lc.config, lc.filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(examples) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No examples found")
		return nil
	}

	// Mark examples that failed in the last saved run, if there is one
	report, err := lc.storage.Load()
	if err != nil && !errors.Is(err, storage.ErrNoReport) {
		return err
	}

	formatter := ui.NewFormatter(lc.config, lc.parser, out)
	formatter.PrintExampleList(examples, lc.config.Flags.Details, ui.FailedNames(report))
	return nil
}
