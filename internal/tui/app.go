package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worklog/internal/config"
	"worklog/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int

	activeView viewState
	showHelp   bool

	home    homeModel
	add     addModel
	export  exportModel
	stats   statsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store, cfg config.Config) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		activeView: viewHome,
		home:       newHomeModel(s, cfg.PageSize),
		add:        newAddModel(s),
		export:     newExportModel(s, cfg),
		stats:      newStatsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.home.refresh()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.add.setSize(a.width, contentHeight)
		a.export.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// A live form owns the keyboard.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewHome
			return a, a.home.refresh()
		case key.Matches(msg, keys.Tab2):
			return a.openAdd()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewExport
			return a, a.export.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewStats
			return a, a.stats.refresh()
		case key.Matches(msg, keys.Tab):
			return a.nextView()
		}

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case recordAddedMsg:
		a.status = "Record added"
		a.statusErr = false
		a.activeView = viewHome
		return a, a.home.refresh()

	case addCancelledMsg:
		a.activeView = viewHome
		return a, a.home.refresh()

	case importDoneMsg:
		a.status = fmt.Sprintf("%d records imported", msg.count)
		a.statusErr = false
		a.activeView = viewHome
		return a, a.home.refresh()

	case exportDoneMsg:
		a.status = "File saved to " + msg.path
		if msg.cleared {
			a.status += ", all records deleted"
		}
		a.statusErr = false
		return a, a.export.refresh()
	}

	return a.updateActiveView(msg)
}

func (a App) openAdd() (tea.Model, tea.Cmd) {
	a.activeView = viewAdd
	var cmd tea.Cmd
	a.add, cmd = a.add.open()
	return a, cmd
}

func (a App) nextView() (tea.Model, tea.Cmd) {
	next := (a.activeView + 1) % 4
	if next == viewAdd {
		return a.openAdd()
	}
	a.activeView = next
	switch next {
	case viewHome:
		return a, a.home.refresh()
	case viewExport:
		return a, a.export.refresh()
	case viewStats:
		return a, a.stats.refresh()
	}
	return a, nil
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewAdd:
		a.add, cmd = a.add.update(msg)
	case viewExport:
		a.export, cmd = a.export.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewAdd:
		return a.add.formActive
	case viewExport:
		return a.export.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewHome:
		content = a.home.view()
	case viewAdd:
		content = a.add.view()
	case viewExport:
		content = a.export.view()
	case viewStats:
		content = a.stats.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("worklog")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := successStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}
