package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"trex/internal/domain"
)

// ManifestViewer browses a manifest in an interactive TUI
type ManifestViewer struct {
	root string
}

// NewManifestViewer creates a new ManifestViewer for a manifest scanned from root
func NewManifestViewer(root string) *ManifestViewer {
	return &ManifestViewer{root: root}
}

// View displays the manifest: files on the left, tests of the selected file on the right
func (mv *ManifestViewer) View(m domain.Manifest) error {
	if len(m) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, entry := range m {
		list.AddItem(listItemText(i, entry), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	testsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(testsView, 0, 1, false)

	// List on left (1/3), tests on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(mv.root, m))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(m) {
			statsView.SetText(formatFileStats(m[index]))
			testsView.SetText(formatFileTests(m[index]))
			testsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(testsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	testsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func headerText(root string, m domain.Manifest) string {
	return fmt.Sprintf(" %s: %d file(s), %d test(s) | ↑↓ navigate, → tests, ← back, [yellow]q[white] to exit ",
		tview.Escape(root), len(m), m.TestCount())
}

func listItemText(index int, entry domain.FileTests) string {
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(entry.File))
}

func formatFileStats(entry domain.FileTests) string {
	return fmt.Sprintf("[cyan]file:[white] [yellow]%s[white] (%d test(s))\n",
		tview.Escape(entry.File), len(entry.Tests))
}

// formatFileTests lists the tests of a file, grouping class methods under their class
func formatFileTests(entry domain.FileTests) string {
	var builder strings.Builder
	lastClass := ""

	for _, test := range entry.Tests {
		class, name, nested := strings.Cut(test, "::")
		if !nested {
			lastClass = ""
			fmt.Fprintf(&builder, "[green]•[white] %s\n", tview.Escape(test))
			continue
		}
		if class != lastClass {
			fmt.Fprintf(&builder, "[cyan]%s[white]\n", tview.Escape(class))
			lastClass = class
		}
		fmt.Fprintf(&builder, "  [green]•[white] %s\n", tview.Escape(name))
	}

	return builder.String()
}
