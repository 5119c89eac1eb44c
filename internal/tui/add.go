package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"worklog/internal/store"
	"worklog/internal/timecalc"
)

// addModel is the new-record form. The duration is never typed in: it is
// derived from the chosen start and end times when the form completes.
type addModel struct {
	store  *store.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	day     *string
	start   *string
	end     *string
	isNight *bool
}

func newAddModel(s *store.Store) addModel {
	day, start, end, isNight := "", "", "", false
	return addModel{
		store:   s,
		day:     &day,
		start:   &start,
		end:     &end,
		isNight: &isNight,
	}
}

func (a *addModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

// open resets the form fields and builds a fresh form. The day defaults
// to today; start and end offer every half hour of the day.
func (a addModel) open() (addModel, tea.Cmd) {
	*a.day = timecalc.Today()
	*a.start = ""
	*a.end = ""
	*a.isNight = false

	times := timecalc.HalfHourTimes()

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Day").Description("D/M/YYYY").Value(a.day),
			huh.NewSelect[string]().Title("Start time").Options(huh.NewOptions(times...)...).Value(a.start),
			huh.NewSelect[string]().Title("End time").Options(huh.NewOptions(times...)...).Value(a.end),
			huh.NewConfirm().Title("Night shift?").Value(a.isNight),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	return a, a.form.Init()
}

func (a addModel) update(msg tea.Msg) (addModel, tea.Cmd) {
	if !a.formActive || a.form == nil {
		return a, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, func() tea.Msg { return addCancelledMsg{} }
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		entry := store.WorkLog{
			Day:      *a.day,
			Start:    *a.start,
			End:      *a.end,
			Duration: timecalc.DurationMinutes(*a.start, *a.end),
			IsNight:  *a.isNight,
		}
		return a, a.submit(entry)
	}

	return a, cmd
}

func (a addModel) submit(entry store.WorkLog) tea.Cmd {
	return func() tea.Msg {
		a.store.Insert(entry)
		a.store.Save()
		return recordAddedMsg{entry: entry}
	}
}

func (a addModel) view() string {
	if !a.formActive || a.form == nil {
		return panelStyle.Width(a.width - 4).Render(mutedStyle.Render("Press 2 to add a new record."))
	}

	title := titleStyle.Render("New record")

	// Live preview of the computed duration, mirroring the read-only
	// duration field of the form.
	duration := timecalc.DurationMinutes(*a.start, *a.end)
	preview := mutedStyle.Render(fmt.Sprintf("Duration: %d min", duration))
	if duration > 0 {
		preview = highlightStyle.Render(fmt.Sprintf("Duration: %s (%d min)", timecalc.FormatMinutes(duration), duration))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", a.form.View(), "", preview)
	return panelStyle.Width(a.width - 4).Render(content)
}
