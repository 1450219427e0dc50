package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/discipline/internal/habit"
	"github.com/sadopc/discipline/internal/store"
	"github.com/sadopc/discipline/internal/tracker"
)

type statsModel struct {
	tracker *tracker.Tracker
	store   *store.Store
	width   int
	height  int

	summary habit.Summary
	window  int
	loaded  bool
	loadErr string

	chart barchart.Model
}

func newStatsModel(t *tracker.Tracker, s *store.Store) statsModel {
	return statsModel{
		tracker: t,
		store:   s,
		chart:   barchart.New(60, 10),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		window := m.store.SummaryWindow()
		summary, err := m.tracker.GetSummary(window)
		return statsDataMsg{summary: summary, window: window, err: err}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.loaded = true
		m.window = msg.window
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.loadErr = ""
		m.summary = msg.summary
		m.buildChart()
		return m, nil
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 30 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, r := range m.summary.Records {
		label := r.Date
		if len(label) == 10 {
			label = label[5:] // MM-DD
		}

		// The chart can't draw below the axis; negative days show as an
		// empty bar in the error color.
		value := float64(r.DailyScore)
		style := lipgloss.NewStyle().Foreground(colorSuccess)
		if r.DailyScore < 0 {
			value = 0
			style = lipgloss.NewStyle().Foreground(colorError)
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{{Name: r.Date, Value: value, Style: style}},
		})
	}
	if len(bars) == 0 {
		return
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4
	title := titleStyle.Render(fmt.Sprintf("Last %d Days", m.window))

	if m.loadErr != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render("  Failed to read your history!"),
			errorStyle.Render("  "+m.loadErr),
			"",
			mutedStyle.Render("  Switch back to this tab to retry."),
		)
		return panelStyle.Width(w).Render(content)
	}

	if len(m.summary.Records) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("  No check-ins yet. Head to tab 1 and log your day!"),
		)
		return panelStyle.Width(w).Render(content)
	}

	banner := m.renderBanner(w)
	totals := m.renderTotals()
	history := m.renderHistory(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", banner, "", totals, "", m.chart.View(), "", history,
		),
	)
}

func (m statsModel) renderBanner(w int) string {
	r := m.summary.Reward

	lines := []string{"This Week's Loot", r.Title}
	switch {
	case r.Tier == habit.TierGrandmaster:
		lines = append(lines, fmt.Sprintf("Unlocked: %s — untouchable!", r.Reward))
	case r.Reward != "":
		lines = append(lines, fmt.Sprintf("Unlocked: %s (%d points to %s)", r.Reward, r.PointsToNext, r.NextReward))
	default:
		lines = append(lines, fmt.Sprintf("No reward yet — %d points to %s, keep pushing!", r.PointsToNext, r.NextReward))
	}

	bw := w - 6
	if bw < 20 {
		bw = 20
	}
	return bannerStyle.Width(bw).Background(tierColors[r.Tier]).Render(strings.Join(lines, "\n"))
}

func (m statsModel) renderTotals() string {
	s := m.summary
	rows := []string{
		fmt.Sprintf("  Total score:    %s", scoreStyle.Render(fmt.Sprintf("%d", s.TotalScore))),
		fmt.Sprintf("  Deep study:     %s", highlightStyle.Render(formatHours(s.TotalStudyHours))),
		fmt.Sprintf("  Research:       %s", highlightStyle.Render(formatHours(s.TotalResearchHours))),
		fmt.Sprintf("  Workout days:   %s", highlightStyle.Render(fmt.Sprintf("%d", s.TotalFitnessDays))),
		fmt.Sprintf("  Total expenses: %s", highlightStyle.Render(formatMoney(s.TotalExpense))),
	}
	return strings.Join(rows, "\n")
}

func (m statsModel) renderHistory(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("History"))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", minInt(w-6, 44))))

	for _, r := range m.summary.Records {
		score := fmt.Sprintf("%5d", r.DailyScore)
		if r.DailyScore < 0 {
			score = errorStyle.Render(score)
		} else {
			score = successStyle.Render(score)
		}
		rows = append(rows, fmt.Sprintf("  %s  score %s  spent %8s", r.Date, score, formatMoney(r.ExpenseAmount)))
	}

	return strings.Join(rows, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
