package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/discipline/internal/habit"
)

func ToCSV(records []habit.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	header := []string{
		"Date", "Study (h)", "Research (h)", "Fitness", "Basketball",
		"Calls", "Slept Early", "Ate Healthy", "Expense", "Expense OK",
		"Content Clean", "Score",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Date,
			strconv.FormatFloat(r.StudyHours, 'f', -1, 64),
			strconv.FormatFloat(r.ResearchHours, 'f', -1, 64),
			yesNo(r.FitnessDone),
			yesNo(r.BasketballDone),
			strconv.Itoa(r.CallParents),
			yesNo(r.SleptEarly),
			yesNo(r.AteHealthy),
			strconv.FormatFloat(r.ExpenseAmount, 'f', 2, 64),
			yesNo(r.ExpenseReasonable),
			yesNo(r.PornAvoided),
			strconv.Itoa(r.DailyScore),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
