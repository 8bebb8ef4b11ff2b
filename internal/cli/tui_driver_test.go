package cli

import (
	"testing"

	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals: the
// view stack, the flash line and the running round.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init,
// which loads the level map from the in-memory DB.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── helpers ─────────────────────────────────────────────────────────────────

// Answer types text into the round input and submits it.
func (d *TestDriver) Answer(text string) {
	d.T.Helper()
	d.TypeLine(text)
}

// Tick delivers one timer second to the current word, as tea.Tick would.
func (d *TestDriver) Tick() {
	d.T.Helper()
	rv := d.RoundView()
	if rv == nil {
		d.T.Fatal("no round view on top of the stack")
	}
	d.Send(tickMsg{roundID: rv.ctrl.ID(), seq: rv.ctrl.Seq()})
}

// ── inspection ──────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// RoundView returns the running round view, or nil when the top view is
// something else.
func (d *TestDriver) RoundView() *roundView {
	m := d.appModel()
	rv, _ := m.activeView().(*roundView)
	return rv
}

// RoundState returns the state of the running round.
func (d *TestDriver) RoundState() round.State {
	d.T.Helper()
	rv := d.RoundView()
	if rv == nil {
		d.T.Fatal("no round view on top of the stack")
	}
	return rv.ctrl.State()
}

// SummaryView returns the summary view on top of the stack, or nil.
func (d *TestDriver) SummaryView() *summaryView {
	m := d.appModel()
	sv, _ := m.activeView().(*summaryView)
	return sv
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Flash returns the notice under the header without styling.
func (d *TestDriver) Flash() string {
	return stripANSI(d.appModel().flash)
}

// Screen returns the rendered model without styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// OutputActive reports whether transient output covers the active view.
func (d *TestDriver) OutputActive() bool {
	return d.appModel().outputActive
}
