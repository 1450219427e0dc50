package tui

import (
	"strings"
	"testing"

	"github.com/sadopc/discipline/internal/habit"
	"github.com/sadopc/discipline/internal/store"
	"github.com/sadopc/discipline/internal/tracker"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	return NewApp(s), s
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 3 {
		t.Fatalf("expected 3 view names, got %d", len(viewNames))
	}
	expected := []string{"Check-in", "Stats", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewCheckin != 0 || viewStats != 1 || viewSettings != 2 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Check-in model
// ============================================================

func TestCheckinDefaults(t *testing.T) {
	s := newTestStore(t)
	c := newCheckinModel(tracker.New(s))

	if *c.study != "0" || *c.research != "0" || *c.expense != "0" {
		t.Fatal("numeric fields should default to 0")
	}
	if *c.fitness || *c.basketball || *c.sleep || *c.diet {
		t.Fatal("habit flags should default to false")
	}
	// Matches the original form: innocent until proven guilty.
	if !*c.clean {
		t.Fatal("clean flag should default to true")
	}
	if c.formActive {
		t.Fatal("form should not start active")
	}
}

func TestCheckinSubmit(t *testing.T) {
	s := newTestStore(t)
	tr := tracker.New(s)
	c := newCheckinModel(tr)

	*c.study = "2.0"
	*c.research = "1.0"
	*c.fitness = true
	*c.callCount = 1
	*c.sleep = true
	*c.diet = true
	*c.expense = "20"
	*c.clean = true

	c, _ = c.submit()
	if c.resultErr {
		t.Fatalf("unexpected submit error: %s", c.result)
	}
	if !strings.Contains(c.result, "90") {
		t.Fatalf("result should show the score 90: %q", c.result)
	}

	rec, err := tr.TodayRecord(today())
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.DailyScore != 90 {
		t.Fatalf("submit did not persist today's record: %+v", rec)
	}
}

func TestCheckinSubmitBadNumber(t *testing.T) {
	s := newTestStore(t)
	tr := tracker.New(s)
	c := newCheckinModel(tr)

	*c.study = "abc"
	c, _ = c.submit()
	if !c.resultErr {
		t.Fatal("expected an input error result")
	}

	rec, _ := tr.TodayRecord(today())
	if rec != nil {
		t.Fatal("bad input must not write a record")
	}
}

func TestCheckinPrefillFromRecord(t *testing.T) {
	s := newTestStore(t)
	tr := tracker.New(s)
	tr.SubmitRecord(today(), tracker.RawInput{
		StudyHours: "3.5", CallParents: 2, FitnessDone: true, PornAvoided: true,
	})

	c := newCheckinModel(tr)
	rec, _ := tr.TodayRecord(today())
	c.submitted = rec

	c, _ = c.showForm()
	if *c.study != "3.5" || *c.callCount != 2 || !*c.fitness || !*c.clean {
		t.Fatalf("form should prefill from today's record: study=%q calls=%d", *c.study, *c.callCount)
	}
	if !c.formActive {
		t.Fatal("form should be active after showForm")
	}
}

func TestCheckinView(t *testing.T) {
	s := newTestStore(t)
	c := newCheckinModel(tracker.New(s))
	c.setSize(80, 24)

	v := c.view()
	if !strings.Contains(v, "Not checked in yet") {
		t.Fatalf("empty state missing: %q", v)
	}

	c.submitted = &habit.Record{Date: today(), DailyScore: 42}
	v = c.view()
	if !strings.Contains(v, "42") {
		t.Fatal("view should show today's score")
	}
}

// ============================================================
// Stats model
// ============================================================

func TestStatsRefresh(t *testing.T) {
	s := newTestStore(t)
	tr := tracker.New(s)
	tr.SubmitRecord("2024-01-01", tracker.RawInput{StudyHours: "2", SleptEarly: true, AteHealthy: true, PornAvoided: true})

	m := newStatsModel(tr, s)
	m.setSize(80, 24)

	msg := m.refresh()()
	data, ok := msg.(statsDataMsg)
	if !ok {
		t.Fatalf("expected statsDataMsg, got %T", msg)
	}
	if data.err != nil {
		t.Fatal(data.err)
	}
	if data.window != 7 {
		t.Fatalf("expected default window 7, got %d", data.window)
	}

	m, _ = m.update(data)
	if !m.loaded {
		t.Fatal("model should be loaded")
	}
	if len(m.summary.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(m.summary.Records))
	}
}

func TestStatsViewEmpty(t *testing.T) {
	s := newTestStore(t)
	m := newStatsModel(tracker.New(s), s)
	m.setSize(80, 24)

	m, _ = m.update(m.refresh()())
	v := m.view()
	if !strings.Contains(v, "No check-ins yet") {
		t.Fatalf("empty window should render the no-data state, got: %q", v)
	}
}

func TestStatsViewError(t *testing.T) {
	s := newTestStore(t)
	m := newStatsModel(tracker.New(s), s)
	m.setSize(80, 24)

	m, _ = m.update(statsDataMsg{err: errFake{}})
	v := m.view()
	if !strings.Contains(v, "Failed to read") {
		t.Fatal("read failure must render distinctly from empty data")
	}
	if strings.Contains(v, "No check-ins yet") {
		t.Fatal("error state should not look like the empty state")
	}
}

type errFake struct{}

func (errFake) Error() string { return "disk on fire" }

func TestStatsViewBannerAndHistory(t *testing.T) {
	s := newTestStore(t)
	tr := tracker.New(s)
	days := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for _, d := range days {
		tr.SubmitRecord(d, tracker.RawInput{
			StudyHours: "2", FitnessDone: true, BasketballDone: true,
			CallParents: 3, SleptEarly: true, AteHealthy: true,
			ExpenseAmount: "10", PornAvoided: true,
		})
	}

	m := newStatsModel(tr, s)
	m.setSize(80, 24)
	m, _ = m.update(m.refresh()())

	v := m.view()
	// 110 per day, 330 total: bronze band.
	if !strings.Contains(v, "330") {
		t.Fatal("total score missing from view")
	}
	if !strings.Contains(v, "Bronze") {
		t.Fatal("reward band missing from view")
	}
	for _, d := range days {
		if !strings.Contains(v, d) {
			t.Fatalf("history row for %s missing", d)
		}
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsRefreshAndSave(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	m.setSize(80, 24)

	m, _ = m.update(m.refresh()().(settingsDataMsg))
	if m.window != "7" {
		t.Fatalf("expected default window 7, got %q", m.window)
	}

	s.SetSetting("summary_window", "14")
	m, _ = m.update(m.refresh()().(settingsDataMsg))
	if m.window != "14" {
		t.Fatalf("expected 14, got %q", m.window)
	}
}

func TestSettingsView(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	m.setSize(80, 24)
	m, _ = m.update(settingsDataMsg{window: "7"})

	v := m.view()
	if !strings.Contains(v, "summary_window") {
		t.Fatal("settings view should list the window setting")
	}
}

// ============================================================
// App
// ============================================================

func TestNewApp(t *testing.T) {
	a, _ := newTestApp(t)
	if a.activeView != viewCheckin {
		t.Fatal("app should start on the check-in view")
	}
	if a.isFormActive() {
		t.Fatal("no form should be active at startup")
	}
}

func TestAppViewBeforeSize(t *testing.T) {
	a, _ := newTestApp(t)
	if a.View() != "Loading..." {
		t.Fatal("zero-width app should render the loading placeholder")
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0h"},
		{1, "1.0h"},
		{1.5, "1.5h"},
		{3.75, "3.8h"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.in); got != tt.want {
			t.Errorf("formatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(12.5); got != "12.50" {
		t.Fatalf("formatMoney(12.5) = %q", got)
	}
}

func TestToday(t *testing.T) {
	d := today()
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		t.Fatalf("today() should be an ISO date, got %q", d)
	}
}
