package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"corpustest/internal/domain"
)

// ReportSaver persists a report after the viewer changes it
type ReportSaver interface {
	Save(report *domain.RunReport) error
}

// FailureViewer displays failing examples of a saved run in an interactive TUI
type FailureViewer struct {
	saver ReportSaver
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(saver ReportSaver) *FailureViewer {
	return &FailureViewer{saver: saver}
}

// View lists the failing examples on the left and the selected example's
// diagnostic on the right. R toggles the resolved mark, which is saved back
// into the report.
func (fv *FailureViewer) View(report *domain.RunReport) error {
	failed := report.FailedEntries()
	if len(failed) == 0 {
		color.Green("✓ No failing examples in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range failed {
		list.AddItem(fv.itemText(report, failed, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failing examples (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(failed), countUnresolved(report, failed)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failed) {
			return
		}
		entry := report.Details[failed[index]]
		statsView.SetText(FormatEntryStats(report, entry))
		detailsView.SetText(FormatEntryDetails(entry))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failed) {
					entry := &report.Details[failed[index]]
					entry.Resolved = !entry.Resolved
					list.SetItemText(index, fv.itemText(report, failed, index), "")
					updateHeader()
					updateDetails()
					if err := fv.saver.Save(report); err != nil {
						statsView.SetText(fmt.Sprintf("[red]could not save: %v[white]", err))
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (fv *FailureViewer) itemText(report *domain.RunReport, failed []int, index int) string {
	entry := report.Details[failed[index]]
	if entry.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, entry.Name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, entry.Name)
}

func countUnresolved(report *domain.RunReport, failed []int) int {
	count := 0
	for _, idx := range failed {
		if !report.Details[idx].Resolved {
			count++
		}
	}
	return count
}

// FormatEntryStats formats the header line for one failing example using
// tview color tags
func FormatEntryStats(report *domain.RunReport, entry domain.RunReportEntry) string {
	return fmt.Sprintf("[cyan]run:[white] %s  [cyan]at:[white] %s\n[cyan]path:[white] [yellow]%s[white]",
		report.Meta.RunID, report.Meta.Timestamp, entry.Path)
}

// FormatEntryDetails formats the diagnostic of one failing example using
// tview color tags
func FormatEntryDetails(entry domain.RunReportEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ Example: %s[white]\n\n", tview.Escape(entry.Name))
	if entry.Line > 0 {
		fmt.Fprintf(&b, "[yellow]Reported line:[white] %d\n", entry.Line)
	}
	fmt.Fprintf(&b, "[yellow]Duration:[white] %.2fs\n\n", entry.Seconds)
	if entry.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", tview.Escape(entry.Message))
	}
	if entry.Resolved {
		b.WriteString("\n[gray](marked resolved)[white]\n")
	}
	return b.String()
}
