package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/propkit/javaprops/props"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	key   string
	value string
}

type browseModel struct {
	err      error
	filename string
	entries  []entry
	visible  []entry
	filter   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type loadedMsg struct {
	err     error
	entries []entry
}

func newBrowseModel(filename string) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter keys"
	ti.Prompt = "/ "
	ti.Width = 40

	return &browseModel{
		filename: filename,
		filter:   ti,
		state:    stateBrowse,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *browseModel) loadFile() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer f.Close()

	doc, err := props.Load(f)
	if err != nil {
		return loadedMsg{err: err}
	}

	entries := make([]entry, 0, len(doc))
	for k, v := range doc {
		entries = append(entries, entry{key: k, value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	return loadedMsg{entries: entries}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateFilter {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			switch m.state {
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case stateDetail:
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		m.applyFilter()
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		m.visible = m.entries
	} else {
		m.visible = nil
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.key), needle) {
				m.visible = append(m.visible, e)
			}
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.entries == nil {
		return "Loading properties..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("propview"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(fmt.Sprintf("  (%d keys)", len(m.entries)))
	b.WriteString("\n\n")

	switch m.state {
	case stateDetail:
		e := m.visible[m.selected]
		b.WriteString(keyStyle.Render(e.key))
		b.WriteString("\n\n")
		b.WriteString(valueStyle.Render(e.value))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))

	default:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no matching keys"))
			b.WriteString("\n")
		}
		for i, e := range m.visible {
			line := keyStyle.Render(e.key) + " = " + valueStyle.Render(truncate(e.value, 60))
			if i == m.selected && m.state == stateBrowse {
				b.WriteString(selectedStyle.Render("> " + e.key + " = " + truncate(e.value, 60)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowseModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
