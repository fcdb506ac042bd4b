package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codetray/codetray/internal/models"
)

// Model is the project picker. It ends the program once a project is chosen
// or the user quits.
type Model struct {
	title    string
	projects []models.Project

	cursor int
	offset int
	height int

	chosen   *models.Project
	quitting bool
}

// NewModel creates a picker over projects.
func NewModel(title string, projects []models.Project) Model {
	return Model{
		title:    title,
		projects: projects,
		height:   10,
	}
}

// Chosen returns the selected project, or nil if none was picked.
func (m Model) Chosen() *models.Project {
	return m.chosen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title (2 lines) + help (2 lines)
		m.height = max(1, msg.Height-4)
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			if len(m.projects) == 0 {
				return m, nil
			}
			p := m.projects[m.cursor]
			m.chosen = &p
			return m, tea.Quit
		}
		m.clampOffset()
	}
	return m, nil
}

// clampOffset scrolls so the cursor stays visible.
func (m *Model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.chosen != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.projects) == 0 {
		b.WriteString(emptyStyle.Render("No projects yet. Add one with 'codetray project add'."))
		b.WriteString("\n")
	}

	end := min(len(m.projects), m.offset+m.height)
	for i := m.offset; i < end; i++ {
		p := m.projects[i]
		line := p.Name + " " + pathStyle.Render(p.Path)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine())
	return b.String()
}
