// Package tracker exposes the two operations the presentation layer calls:
// submitting a day's check-in and reading the rolling summary. It owns input
// parsing and wires the pure habit logic to the store.
package tracker

import (
	"fmt"
	"strconv"

	"github.com/sadopc/discipline/internal/habit"
	"github.com/sadopc/discipline/internal/store"
)

// DefaultWindow is the summary window in days when none is configured.
const DefaultWindow = 7

// InputError reports a field whose value could not be parsed. The submit
// operation writes nothing when it returns one.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %q is not a number", e.Field, e.Value)
}

// RawInput carries the check-in form values as entered. Numeric fields stay
// strings until SubmitRecord parses them, so a typo surfaces as an InputError
// instead of a zero.
type RawInput struct {
	StudyHours     string
	ResearchHours  string
	FitnessDone    bool
	BasketballDone bool
	CallParents    int
	SleptEarly     bool
	AteHealthy     bool
	ExpenseAmount  string
	PornAvoided    bool
}

// SubmitResult is what the check-in view renders after a successful submit.
type SubmitResult struct {
	Score             int
	ExpenseReasonable bool
}

// Tracker runs submits and summary reads against an injected store.
type Tracker struct {
	store *store.Store
}

func New(s *store.Store) *Tracker {
	return &Tracker{store: s}
}

func parseHours(field, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: value}
	}
	return f, nil
}

// SubmitRecord parses the raw inputs, derives the score and expense verdict,
// and upserts the record for date. A parse failure leaves the store
// untouched.
func (t *Tracker) SubmitRecord(date string, raw RawInput) (SubmitResult, error) {
	study, err := parseHours("study hours", raw.StudyHours)
	if err != nil {
		return SubmitResult{}, err
	}
	research, err := parseHours("research hours", raw.ResearchHours)
	if err != nil {
		return SubmitResult{}, err
	}
	expense, err := parseHours("expense amount", raw.ExpenseAmount)
	if err != nil {
		return SubmitResult{}, err
	}

	rec := habit.NewRecord(date, habit.Input{
		StudyHours:     study,
		ResearchHours:  research,
		FitnessDone:    raw.FitnessDone,
		BasketballDone: raw.BasketballDone,
		CallParents:    raw.CallParents,
		SleptEarly:     raw.SleptEarly,
		AteHealthy:     raw.AteHealthy,
		ExpenseAmount:  expense,
		PornAvoided:    raw.PornAvoided,
	})

	if err := t.store.UpsertRecord(rec); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Score: rec.DailyScore, ExpenseReasonable: rec.ExpenseReasonable}, nil
}

// GetSummary reduces the most recent window days into totals, a reward band
// and the chronological display list. window <= 0 selects DefaultWindow. An
// empty history yields a zero summary, not an error; an error means the read
// itself failed.
func (t *Tracker) GetSummary(window int) (habit.Summary, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	records, err := t.store.RecentRecords(window)
	if err != nil {
		return habit.Summary{}, fmt.Errorf("load summary window: %w", err)
	}
	return habit.Summarize(records), nil
}

// TodayRecord returns the stored record for date, nil when the day has not
// been submitted yet. The check-in view uses it to prefill the form.
func (t *Tracker) TodayRecord(date string) (*habit.Record, error) {
	return t.store.GetRecord(date)
}
