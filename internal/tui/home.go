package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"worklog/internal/store"
)

// homeModel is the paginated work log table.
type homeModel struct {
	store  *store.Store
	width  int
	height int

	pageSize int
	entries  []store.WorkLog
	page     int
	cursor   int // row within the current page
}

func newHomeModel(s *store.Store, pageSize int) homeModel {
	if pageSize <= 0 {
		pageSize = 20
	}
	return homeModel{store: s, pageSize: pageSize}
}

func (h *homeModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
}

func (h homeModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return homeDataMsg{entries: h.store.Snapshot()}
	}
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDataMsg:
		h.entries = msg.entries
		if h.page >= pageCount(len(h.entries), h.pageSize) {
			h.page = max(0, pageCount(len(h.entries), h.pageSize)-1)
		}
		lo, hi := pageBounds(len(h.entries), h.page, h.pageSize)
		if h.cursor >= hi-lo {
			h.cursor = max(0, hi-lo-1)
		}
		return h, nil

	case tea.KeyMsg:
		lo, hi := pageBounds(len(h.entries), h.page, h.pageSize)
		rows := hi - lo

		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < rows-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Left):
			if h.page > 0 {
				h.page--
				h.cursor = 0
			}
		case key.Matches(msg, keys.Right):
			if h.page < pageCount(len(h.entries), h.pageSize)-1 {
				h.page++
				h.cursor = 0
			}
		case key.Matches(msg, keys.Delete):
			if rows > 0 {
				return h, h.deleteEntry(h.entries[lo+h.cursor])
			}
		case key.Matches(msg, keys.Sort):
			return h, h.sortEntries()
		}
	}
	return h, nil
}

func (h homeModel) deleteEntry(e store.WorkLog) tea.Cmd {
	return func() tea.Msg {
		h.store.Remove(e)
		h.store.Save()
		return homeDataMsg{entries: h.store.Snapshot()}
	}
}

func (h homeModel) sortEntries() tea.Cmd {
	return func() tea.Msg {
		h.store.OrderByDates()
		h.store.Save()
		return homeDataMsg{entries: h.store.Snapshot()}
	}
}

func (h homeModel) view() string {
	w := h.width - 4
	title := titleStyle.Render("Work logs")

	if len(h.entries) == 0 {
		content := strings.Join([]string{
			title,
			"",
			mutedStyle.Render("No records yet. Press 2 to add one."),
		}, "\n")
		return panelStyle.Width(w).Render(content)
	}

	lo, hi := pageBounds(len(h.entries), h.page, h.pageSize)
	pages := pageCount(len(h.entries), h.pageSize)

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-8s %-8s %8s  %s", "Day", "Start", "End", "Minutes", "Night")))

	for i, e := range h.entries[lo:hi] {
		night := ""
		if e.IsNight {
			night = nightStyle.Render("●")
		}
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-12s %-8s %-8s %8d", cursor, e.Day, e.Start, e.End, e.Duration)) + "  " + night
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  page %d/%d (%d records)", h.page+1, pages, len(h.entries))))
	rows = append(rows, mutedStyle.Render("  d: delete  o: order by date  ←/→: page"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
