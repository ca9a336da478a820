package commands

import (
	"github.com/spf13/cobra"

	"corpustest/internal/storage"
	"corpustest/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(st storage.Storage) *FailuresCommand {
	return &FailuresCommand{
		storage: st,
		viewer:  ui.NewFailureViewer(st),
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(report)
}
