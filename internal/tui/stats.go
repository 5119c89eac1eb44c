package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worklog/internal/store"
	"worklog/internal/timecalc"
)

// statsModel renders worked time per calendar day as a stacked bar chart,
// night minutes highlighted separately.
type statsModel struct {
	store  *store.Store
	width  int
	height int

	entries []store.WorkLog
	chart   barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (st *statsModel) setSize(w, h int) {
	st.width = w
	st.height = h
}

func (st statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return statsDataMsg{entries: st.store.Snapshot()}
	}
}

func (st statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		st.entries = msg.entries
		st.buildChart()
		return st, nil
	}
	return st, nil
}

// dayBucket aggregates the minutes logged on one calendar day.
type dayBucket struct {
	day   time.Time
	total int
	night int
}

// bucketByDay groups entries by their parsed day, ascending. Entries with
// an unparsable day are left out of the chart.
func bucketByDay(entries []store.WorkLog) []dayBucket {
	byDay := make(map[time.Time]dayBucket)
	for _, e := range entries {
		day, err := timecalc.ParseDay(e.Day)
		if err != nil {
			continue
		}
		b := byDay[day]
		b.day = day
		b.total += e.Duration
		if e.IsNight {
			b.night += e.Duration
		}
		byDay[day] = b
	}

	buckets := make([]dayBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].day.Before(buckets[j].day)
	})
	return buckets
}

func (st *statsModel) buildChart() {
	chartWidth := st.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if st.height > 30 {
		chartHeight = 16
	}

	st.chart = barchart.New(chartWidth, chartHeight)

	dayStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	nightBarStyle := lipgloss.NewStyle().Foreground(colorNight)

	var bars []barchart.BarData
	for _, b := range bucketByDay(st.entries) {
		label := fmt.Sprintf("%d/%d", b.day.Day(), int(b.day.Month()))

		values := []barchart.BarValue{
			{
				Name:  "day",
				Value: float64(b.total-b.night) / 60.0,
				Style: dayStyle,
			},
		}
		if b.night > 0 {
			values = append(values, barchart.BarValue{
				Name:  "night",
				Value: float64(b.night) / 60.0,
				Style: nightBarStyle,
			})
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	st.chart.PushAll(bars)
	st.chart.Draw()
}

func (st statsModel) view() string {
	w := st.width - 4

	title := titleStyle.Render("Hours per day")

	if len(bucketByDay(st.entries)) == 0 {
		content := strings.Join([]string{
			title,
			"",
			mutedStyle.Render("Nothing to chart yet."),
		}, "\n")
		return panelStyle.Width(w).Render(content)
	}

	legend := fmt.Sprintf("  %s day  %s night",
		highlightStyle.Render("●"), nightStyle.Render("●"))

	total := store.TotalMinutes(st.entries)
	night := store.NightMinutes(st.entries)
	totals := mutedStyle.Render(fmt.Sprintf("  Total %s  ·  Night %s",
		timecalc.FormatMinutes(total), timecalc.FormatMinutes(night)))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", st.chart.View(), "", legend, totals,
		),
	)
}
