// Package listing provides an optional, read-only tview/tcell browser
// for inspecting a successfully assembled program: its address/bytes/
// disassembly listing and its resolved symbol table. It is never part
// of the two-pass core; the CLI only builds one when "-browse" is
// given (SPEC_FULL.md section 2).
package listing

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/tools"
)

// Browser is the text user interface for inspecting one assembled
// Result. Unlike the teacher's live debugger, every view here is a
// static snapshot: there is no running program to single-step, so
// there is no command input and no breakpoint state.
type Browser struct {
	App    *tview.Application
	Pages  *tview.Pages
	Layout *tview.Flex

	ListingView *tview.TextView
	SymbolsView *tview.TextView
	StatusView  *tview.TextView

	result *assembler.Result
}

// NewBrowser builds a Browser over a finished assembly Result.
func NewBrowser(result *assembler.Result) *Browser {
	b := &Browser{
		App:    tview.NewApplication(),
		result: result,
	}
	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.Refresh()
	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolsView.SetBorder(true).SetTitle(" Symbols ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")
}

func (b *Browser) buildLayout() {
	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.ListingView, 0, 2, true).
		AddItem(b.SymbolsView, 0, 1, false)

	b.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(b.StatusView, 3, 0, false)

	b.Pages = tview.NewPages().
		AddPage("main", b.Layout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			b.App.Stop()
			return nil
		case tcell.KeyTab:
			b.cycleFocus()
			return nil
		}
		if event.Rune() == 'q' {
			b.App.Stop()
			return nil
		}
		return event
	})
}

func (b *Browser) cycleFocus() {
	switch b.App.GetFocus() {
	case b.ListingView:
		b.App.SetFocus(b.SymbolsView)
	default:
		b.App.SetFocus(b.ListingView)
	}
}

// Refresh repopulates every view from the Result. Called once at
// startup; there is nothing here that ever changes afterward, since a
// Browser never re-runs the assembler.
func (b *Browser) Refresh() {
	b.ListingView.SetText(tools.Listing(b.result, nil))
	b.SymbolsView.SetText(tools.XRefReport(tools.CrossReference(b.result)))
	b.StatusView.SetText(fmt.Sprintf(
		"[yellow]TEXT[white] 0x%08x (%d bytes)   [yellow]DATA[white] 0x%08x (%d bytes)   [yellow]Output[white] %d bytes   (Tab: switch pane, q: quit)",
		b.result.TextBase, b.result.TextSize, b.result.DataBase, b.result.DataSize, len(b.result.Output),
	))
}

// Run starts the interactive event loop. It blocks until the user
// quits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.ListingView).Run()
}
