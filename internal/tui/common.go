package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/discipline/internal/habit"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCheckin viewState = iota
	viewStats
	viewSettings
)

var viewNames = []string{"Check-in", "Stats", "Settings"}

// --- Messages ---

type statsDataMsg struct {
	summary habit.Summary
	window  int
	err     error
}

type settingsDataMsg struct {
	window string
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// today returns the local calendar date used as the record key.
func today() string {
	return time.Now().Format("2006-01-02")
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
