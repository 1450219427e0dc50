// Package habit holds the pure domain logic: the daily record, the score
// formula and the rolling-window summary. Nothing here touches storage or
// the terminal.
package habit

// ExpenseLimit is the daily spend (currency units) at or under which the
// expense habit counts as reasonable.
const ExpenseLimit = 25.0

// Input is one day's raw habit inputs, before any derived fields.
type Input struct {
	StudyHours     float64
	ResearchHours  float64
	FitnessDone    bool
	BasketballDone bool
	CallParents    int // 0..3, bounded by the input form, not enforced here
	SleptEarly     bool
	AteHealthy     bool
	ExpenseAmount  float64
	PornAvoided    bool
}

// Record is one calendar day's inputs plus the fields derived at write time.
// Date is the identity; a resubmission for the same date replaces the whole
// record.
type Record struct {
	Date string // ISO date, e.g. 2024-01-02

	StudyHours     float64
	ResearchHours  float64
	FitnessDone    bool
	BasketballDone bool
	CallParents    int
	SleptEarly     bool
	AteHealthy     bool
	ExpenseAmount  float64
	PornAvoided    bool

	ExpenseReasonable bool
	DailyScore        int
}

// ExpenseReasonable reports whether the day's spend stays within the limit.
// Exactly ExpenseLimit still counts.
func ExpenseReasonable(amount float64) bool {
	return amount <= ExpenseLimit
}

// Score computes the daily score. Hour credit is truncated toward zero per
// tenth of an hour; every flag contributes a fixed bonus or penalty. The
// result is unclamped and may be negative. Inputs are not validated: negative
// hours or expenses are accepted and simply lower the score.
func Score(in Input) int {
	score := int(in.StudyHours*10) + int(in.ResearchHours*10)

	if in.FitnessDone {
		score += 10
	}
	if in.BasketballDone {
		score += 10
	}
	score += 10 * in.CallParents

	if in.SleptEarly {
		score += 10
	} else {
		score -= 10
	}
	if in.AteHealthy {
		score += 10
	} else {
		score -= 10
	}
	if ExpenseReasonable(in.ExpenseAmount) {
		score += 10
	} else {
		score -= 10
	}
	if in.PornAvoided {
		score += 10
	} else {
		score -= 50
	}
	return score
}

// NewRecord builds a full record for date from raw inputs, filling in the
// derived fields.
func NewRecord(date string, in Input) Record {
	return Record{
		Date:              date,
		StudyHours:        in.StudyHours,
		ResearchHours:     in.ResearchHours,
		FitnessDone:       in.FitnessDone,
		BasketballDone:    in.BasketballDone,
		CallParents:       in.CallParents,
		SleptEarly:        in.SleptEarly,
		AteHealthy:        in.AteHealthy,
		ExpenseAmount:     in.ExpenseAmount,
		PornAvoided:       in.PornAvoided,
		ExpenseReasonable: ExpenseReasonable(in.ExpenseAmount),
		DailyScore:        Score(in),
	}
}
