package store

import (
	"database/sql"
	"fmt"

	"github.com/sadopc/discipline/internal/habit"
)

// Booleans live as 0/1 INTEGER columns; the conversion stays at this
// boundary so the habit types keep real bools.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// UpsertRecord inserts the record, or replaces every field of the existing
// row for the same date. One statement, so a reader never sees a partial
// write.
func (s *Store) UpsertRecord(r habit.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO records
		 (date, study_hours, research_hours, fitness_count, basketball_count, call_parents,
		  sleep_early, diet_healthy, expense_amount, expense_reasonable, porn_avoided, daily_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   study_hours=excluded.study_hours, research_hours=excluded.research_hours,
		   fitness_count=excluded.fitness_count, basketball_count=excluded.basketball_count,
		   call_parents=excluded.call_parents, sleep_early=excluded.sleep_early,
		   diet_healthy=excluded.diet_healthy, expense_amount=excluded.expense_amount,
		   expense_reasonable=excluded.expense_reasonable,
		   porn_avoided=excluded.porn_avoided, daily_score=excluded.daily_score`,
		r.Date, r.StudyHours, r.ResearchHours,
		boolToInt(r.FitnessDone), boolToInt(r.BasketballDone), r.CallParents,
		boolToInt(r.SleptEarly), boolToInt(r.AteHealthy),
		r.ExpenseAmount, boolToInt(r.ExpenseReasonable),
		boolToInt(r.PornAvoided), r.DailyScore,
	)
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", r.Date, err)
	}
	return nil
}

const recordColumns = `date, study_hours, research_hours, fitness_count, basketball_count,
	call_parents, sleep_early, diet_healthy, expense_amount, expense_reasonable,
	porn_avoided, daily_score`

func scanRecord(row interface{ Scan(...any) error }) (habit.Record, error) {
	var r habit.Record
	var fitness, basketball, sleep, diet, reasonable, avoided int
	err := row.Scan(
		&r.Date, &r.StudyHours, &r.ResearchHours, &fitness, &basketball,
		&r.CallParents, &sleep, &diet, &r.ExpenseAmount, &reasonable,
		&avoided, &r.DailyScore,
	)
	if err != nil {
		return r, err
	}
	r.FitnessDone = fitness == 1
	r.BasketballDone = basketball == 1
	r.SleptEarly = sleep == 1
	r.AteHealthy = diet == 1
	r.ExpenseReasonable = reasonable == 1
	r.PornAvoided = avoided == 1
	return r, nil
}

// GetRecord returns the record for the given date, or nil if none exists.
func (s *Store) GetRecord(date string) (*habit.Record, error) {
	row := s.db.QueryRow(
		`SELECT `+recordColumns+` FROM records WHERE date = ?`, date,
	)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", date, err)
	}
	return &r, nil
}

// RecentRecords returns up to limit records, most recent date first. An
// empty history yields an empty slice, not an error.
func (s *Store) RecentRecords(limit int) ([]habit.Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM records ORDER BY date DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent records: %w", err)
	}
	defer rows.Close()

	var records []habit.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// AllRecords returns the full history, oldest first. Used by export.
func (s *Store) AllRecords() ([]habit.Record, error) {
	rows, err := s.db.Query(
		`SELECT ` + recordColumns + ` FROM records ORDER BY date`,
	)
	if err != nil {
		return nil, fmt.Errorf("all records: %w", err)
	}
	defer rows.Close()

	var records []habit.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
