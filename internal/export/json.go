package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/discipline/internal/habit"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Records    []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Date              string  `json:"date"`
	StudyHours        float64 `json:"study_hours"`
	ResearchHours     float64 `json:"research_hours"`
	FitnessDone       bool    `json:"fitness_done"`
	BasketballDone    bool    `json:"basketball_done"`
	CallParents       int     `json:"call_parents"`
	SleptEarly        bool    `json:"slept_early"`
	AteHealthy        bool    `json:"ate_healthy"`
	ExpenseAmount     float64 `json:"expense_amount"`
	ExpenseReasonable bool    `json:"expense_reasonable"`
	PornAvoided       bool    `json:"porn_avoided"`
	DailyScore        int     `json:"daily_score"`
}

func ToJSON(records []habit.Record, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, r := range records {
		export.Records = append(export.Records, jsonRecord{
			Date:              r.Date,
			StudyHours:        r.StudyHours,
			ResearchHours:     r.ResearchHours,
			FitnessDone:       r.FitnessDone,
			BasketballDone:    r.BasketballDone,
			CallParents:       r.CallParents,
			SleptEarly:        r.SleptEarly,
			AteHealthy:        r.AteHealthy,
			ExpenseAmount:     r.ExpenseAmount,
			ExpenseReasonable: r.ExpenseReasonable,
			PornAvoided:       r.PornAvoided,
			DailyScore:        r.DailyScore,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
