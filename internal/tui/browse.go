package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/confspect/confspect/internal/reader"
	"github.com/confspect/confspect/internal/registry"
)

// screen identifies which view the browser is showing
type screen int

const (
	screenList screen = iota
	screenDetail
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	detailStyle = lipgloss.NewStyle().Padding(1, 2)
)

// appItem is one registry entry in the application list
type appItem struct {
	key         string
	displayName string
	resolved    int
}

func (i appItem) Title() string { return fmt.Sprintf("%s (%s)", i.displayName, i.key) }

func (i appItem) Description() string {
	if i.resolved == 0 {
		return "no configs found"
	}
	return fmt.Sprintf("%d config(s) found", i.resolved)
}

func (i appItem) FilterValue() string { return i.key + " " + i.displayName }

// detailLoadedMsg carries the rendered configs for the selected application
type detailLoadedMsg struct {
	key     string
	content string
}

// browseKeyMap defines key bindings for the browser
type browseKeyMap struct {
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view configs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the top-level browser model
type Model struct {
	reg     *registry.Registry
	list    list.Model
	keys    browseKeyMap
	current screen

	detailKey     string
	detailContent string

	width  int
	height int
}

// NewModel builds the browser over a registry. Resolution happens once here
// for the list counts; the detail view re-resolves on selection so it always
// shows the current filesystem state.
func NewModel(reg *registry.Registry) Model {
	all := reg.ResolveAll()

	var items []list.Item
	for _, k := range reg.Keys() {
		app, _ := reg.Get(k)
		items = append(items, appItem{
			key:         k,
			displayName: app.DisplayName,
			resolved:    len(all[k]),
		})
	}

	keys := newBrowseKeyMap()

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Applications"
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Enter}
	}

	return Model{
		reg:     reg,
		list:    l,
		keys:    keys,
		current: screenList,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case detailLoadedMsg:
		m.detailKey = msg.key
		m.detailContent = msg.content
		m.current = screenDetail
		return m, nil

	case tea.KeyMsg:
		switch m.current {
		case screenList:
			// Let the list handle keys while filtering is active
			if m.list.FilterState() == list.Filtering {
				break
			}
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Enter):
				if item, ok := m.list.SelectedItem().(appItem); ok {
					return m, loadDetail(m.reg, item.key)
				}
			}

		case screenDetail:
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Back):
				m.current = screenList
				return m, nil
			}
		}
	}

	if m.current == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.current == screenDetail {
		var b strings.Builder
		b.WriteString(titleStyle.Render(m.detailKey) + "\n\n")
		b.WriteString(m.detailContent)
		b.WriteString("\n\n" + mutedStyle.Render("esc: back • q: quit"))
		return detailStyle.Render(b.String())
	}
	return m.list.View()
}

// loadDetail resolves and reads an application's configs off the Update loop
func loadDetail(reg *registry.Registry, appKey string) tea.Cmd {
	return func() tea.Msg {
		resolved := reg.ResolveApp(appKey)
		if len(resolved) == 0 {
			return detailLoadedMsg{key: appKey, content: mutedStyle.Render("No configuration files found on this machine.")}
		}

		sections := make([]string, len(resolved))
		for i, loc := range resolved {
			cc := reader.Read(loc)
			sections[i] = fmt.Sprintf("%s\n%s\n\n%s",
				titleStyle.Render(loc.Description),
				mutedStyle.Render(loc.Path),
				reader.FormatForDisplay(cc))
		}
		return detailLoadedMsg{key: appKey, content: strings.Join(sections, "\n\n")}
	}
}

// Run starts the browser and blocks until the user quits.
func Run(reg *registry.Registry) error {
	p := tea.NewProgram(NewModel(reg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
