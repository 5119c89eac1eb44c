package tui

import (
	"fmt"

	"worklog/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewAdd
	viewExport
	viewStats
)

var viewNames = []string{"Home", "Add", "Export", "Stats"}

// --- Messages ---

type homeDataMsg struct {
	entries []store.WorkLog
}

type exportDataMsg struct {
	total int
	night int
}

type statsDataMsg struct {
	entries []store.WorkLog
}

type recordAddedMsg struct {
	entry store.WorkLog
}

type addCancelledMsg struct{}

type importDoneMsg struct {
	count int
}

type exportDoneMsg struct {
	path    string
	cleared bool
}

type statusMsg struct {
	text    string
	isError bool
}

// --- Helpers ---

// formatHours renders a minute count the way the export panel shows it:
// decimal hours plus the raw minutes, e.g. "12.50 (750 min)".
func formatHours(minutes int) string {
	return fmt.Sprintf("%.2f (%d min)", float64(minutes)/60.0, minutes)
}

// pageCount returns how many pages a list of total rows spans. An empty
// list still has one (empty) page.
func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// pageBounds returns the [lo, hi) slice bounds of one page.
func pageBounds(total, page, pageSize int) (int, int) {
	lo := page * pageSize
	if lo > total {
		lo = total
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
