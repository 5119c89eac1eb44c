package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"worklog/internal/config"
	"worklog/internal/export"
	"worklog/internal/store"
)

// exportModel is the export/import panel: CSV out, CSV in, and the
// aggregate totals at the bottom.
type exportModel struct {
	store  *store.Store
	cfg    config.Config
	width  int
	height int

	deleteAfter bool
	total       int
	night       int

	formActive bool
	form       *huh.Form
	importPath *string
}

func newExportModel(s *store.Store, cfg config.Config) exportModel {
	path := ""
	return exportModel{
		store:      s,
		cfg:        cfg,
		importPath: &path,
	}
}

func (e *exportModel) setSize(w, h int) {
	e.width = w
	e.height = h
}

func (e exportModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries := e.store.Snapshot()
		return exportDataMsg{
			total: store.TotalMinutes(entries),
			night: store.NightMinutes(entries),
		}
	}
}

func (e exportModel) update(msg tea.Msg) (exportModel, tea.Cmd) {
	if e.formActive && e.form != nil {
		return e.updateForm(msg)
	}

	switch msg := msg.(type) {
	case exportDataMsg:
		e.total = msg.total
		e.night = msg.night
		return e, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			e.deleteAfter = !e.deleteAfter
			return e, nil
		case key.Matches(msg, keys.Export):
			return e, e.doExport()
		case key.Matches(msg, keys.Import):
			return e.openImportForm()
		}
	}
	return e, nil
}

// openImportForm shows a file picker restricted to CSV files.
func (e exportModel) openImportForm() (exportModel, tea.Cmd) {
	*e.importPath = ""

	picker := huh.NewFilePicker().
		Title("Import CSV").
		Description("Pick the file to import").
		AllowedTypes([]string{".csv"}).
		Value(e.importPath)
	if e.cfg.ExportDir != "" {
		picker = picker.CurrentDirectory(e.cfg.ExportDir)
	}

	e.form = huh.NewForm(huh.NewGroup(picker)).WithShowHelp(true).WithShowErrors(true)
	e.formActive = true
	return e, e.form.Init()
}

func (e exportModel) updateForm(msg tea.Msg) (exportModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.formActive = false
		path := *e.importPath
		e.form = nil
		return e, e.doImport(path)
	}

	return e, cmd
}

func (e exportModel) doExport() tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(e.cfg.ExportDir, export.FileName(time.Now()))
		if err := export.WriteFile(e.store.Snapshot(), path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		cleared := false
		if e.deleteAfter {
			e.store.RemoveAll()
			e.store.Save()
			cleared = true
		}
		return exportDoneMsg{path: path, cleared: cleared}
	}
}

func (e exportModel) doImport(path string) tea.Cmd {
	return func() tea.Msg {
		imported := export.ReadFile(path)
		if len(imported) == 0 {
			return statusMsg{text: "No valid rows found in file", isError: true}
		}

		e.store.InsertAll(imported)
		e.store.OrderByDates()
		e.store.Save()
		return importDoneMsg{count: len(imported)}
	}
}

func (e exportModel) view() string {
	w := e.width - 4

	if e.formActive && e.form != nil {
		title := titleStyle.Render("Import CSV")
		content := strings.Join([]string{title, "", e.form.View()}, "\n")
		return activePanelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Export / Import")

	check := "[ ]"
	if e.deleteAfter {
		check = warningStyle.Render("[x]")
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s Delete data after export", check))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  e: export to CSV  i: import from CSV  space: toggle delete"))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Total hours: %s", highlightStyle.Render(formatHours(e.total))))
	rows = append(rows, fmt.Sprintf("  Night hours: %s", nightStyle.Render(formatHours(e.night))))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
