package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/discipline/internal/habit"
	"github.com/sadopc/discipline/internal/tracker"
)

type checkinModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	submitted *habit.Record // today's stored record, nil before first submit

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	study      *string
	research   *string
	expense    *string
	callCount  *int
	fitness    *bool
	basketball *bool
	sleep      *bool
	diet       *bool
	clean      *bool

	result    string
	resultErr bool
}

func newCheckinModel(t *tracker.Tracker) checkinModel {
	study, research, expense := "0", "0", "0"
	calls := 0
	fitness, basketball, sleep, diet := false, false, false, false
	clean := true
	return checkinModel{
		tracker:    t,
		study:      &study,
		research:   &research,
		expense:    &expense,
		callCount:  &calls,
		fitness:    &fitness,
		basketball: &basketball,
		sleep:      &sleep,
		diet:       &diet,
		clean:      &clean,
	}
}

func (c *checkinModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type checkinDataMsg struct {
	record *habit.Record
}

func (c checkinModel) refresh() tea.Cmd {
	return func() tea.Msg {
		record, _ := c.tracker.TodayRecord(today())
		return checkinDataMsg{record: record}
	}
}

func (c checkinModel) Init() tea.Cmd {
	return c.refresh()
}

func (c checkinModel) update(msg tea.Msg) (checkinModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case checkinDataMsg:
		c.submitted = msg.record
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Checkin), key.Matches(msg, keys.Enter):
			return c.showForm()
		}
	}
	return c, nil
}

func (c checkinModel) showForm() (checkinModel, tea.Cmd) {
	// Prefill from today's record so a resubmit starts from what was saved.
	if r := c.submitted; r != nil {
		*c.study = strconv.FormatFloat(r.StudyHours, 'f', -1, 64)
		*c.research = strconv.FormatFloat(r.ResearchHours, 'f', -1, 64)
		*c.expense = strconv.FormatFloat(r.ExpenseAmount, 'f', -1, 64)
		*c.callCount = r.CallParents
		*c.fitness = r.FitnessDone
		*c.basketball = r.BasketballDone
		*c.sleep = r.SleptEarly
		*c.diet = r.AteHealthy
		*c.clean = r.PornAvoided
	}

	callOptions := make([]huh.Option[int], 4)
	for i := range callOptions {
		callOptions[i] = huh.NewOption(strconv.Itoa(i), i)
	}

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Study hours").Value(c.study),
			huh.NewInput().Title("Research hours").Value(c.research),
			huh.NewSelect[int]().Title("Calls to parents (+10 each)").Options(callOptions...).Value(c.callCount),
			huh.NewInput().Title(fmt.Sprintf("Total expenses (≤%.0f earns +10)", habit.ExpenseLimit)).Value(c.expense),
		).Title("Today"),
		huh.NewGroup(
			huh.NewConfirm().Title("Worked out? (+10)").Value(c.fitness),
			huh.NewConfirm().Title("Played basketball? (+10)").Value(c.basketball),
			huh.NewConfirm().Title("Early to bed, early to rise? (+10/-10)").Value(c.sleep),
			huh.NewConfirm().Title("Ate healthy? (+10/-10)").Value(c.diet),
			huh.NewConfirm().Title("Stayed clean? (slip costs 50)").Value(c.clean),
		).Title("Habits"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c checkinModel) updateForm(msg tea.Msg) (checkinModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		return c.submit()
	}

	return c, cmd
}

func (c checkinModel) submit() (checkinModel, tea.Cmd) {
	res, err := c.tracker.SubmitRecord(today(), tracker.RawInput{
		StudyHours:     *c.study,
		ResearchHours:  *c.research,
		FitnessDone:    *c.fitness,
		BasketballDone: *c.basketball,
		CallParents:    *c.callCount,
		SleptEarly:     *c.sleep,
		AteHealthy:     *c.diet,
		ExpenseAmount:  *c.expense,
		PornAvoided:    *c.clean,
	})
	if err != nil {
		c.result = fmt.Sprintf("Check your numbers: %v", err)
		c.resultErr = true
		return c, nil
	}

	verdict := "within budget, +10"
	if !res.ExpenseReasonable {
		verdict = "over budget, -10"
	}
	c.result = fmt.Sprintf("Checked in! Expenses %s (%s). Today's score: %d", *c.expense, verdict, res.Score)
	c.resultErr = false
	return c, c.refresh()
}

func (c checkinModel) view() string {
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := titleStyle.Render("Daily Check-in — " + today())
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View()),
		)
	}

	title := titleStyle.Render("Daily Check-in — " + today())

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if c.submitted != nil {
		score := scoreStyle.Render(strconv.Itoa(c.submitted.DailyScore))
		rows = append(rows, fmt.Sprintf("  Today's score: %s", score))
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  Study %s  Research %s  Expenses %s",
			formatHours(c.submitted.StudyHours),
			formatHours(c.submitted.ResearchHours),
			formatMoney(c.submitted.ExpenseAmount),
		)))
		rows = append(rows, "")
		rows = append(rows, mutedStyle.Render("  Press n to edit today's check-in"))
	} else {
		rows = append(rows, mutedStyle.Render("  Not checked in yet."))
		rows = append(rows, "")
		rows = append(rows, mutedStyle.Render("  Press n to check in"))
	}

	if c.result != "" {
		rows = append(rows, "")
		if c.resultErr {
			rows = append(rows, errorStyle.Render("  "+c.result))
		} else {
			rows = append(rows, successStyle.Render("  "+c.result))
		}
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
