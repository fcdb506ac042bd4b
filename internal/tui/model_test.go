package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codetray/codetray/internal/models"
)

func testProjects() []models.Project {
	return []models.Project{
		models.NewProject("/home/u/app"),
		models.NewProject("/home/u/api"),
		models.NewProject("/home/u/web"),
	}
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestPickerSelect(t *testing.T) {
	m, cmd := send(NewModel("Projects", testProjects()),
		tea.WindowSizeMsg{Width: 80, Height: 24},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.Chosen() == nil {
		t.Fatal("expected a chosen project")
	}
	if m.Chosen().Path != "/home/u/api" {
		t.Errorf("chosen = %q, want /home/u/api", m.Chosen().Path)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m, _ := send(NewModel("Projects", testProjects()),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
	)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestPickerQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := send(NewModel("Projects", testProjects()), tt.msg)
			if m.Chosen() != nil {
				t.Error("expected no chosen project")
			}
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if m.View() != "" {
				t.Error("expected empty view after quit")
			}
		})
	}
}

func TestPickerEmpty(t *testing.T) {
	m, cmd := send(NewModel("Projects", nil), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Chosen() != nil || cmd != nil {
		t.Error("enter on empty list should do nothing")
	}
	if !strings.Contains(m.View(), "No projects yet") {
		t.Errorf("view missing empty hint: %q", m.View())
	}
}

func TestPickerScrolls(t *testing.T) {
	var projects []models.Project
	for _, p := range []string{"a", "b", "c", "d", "e", "f"} {
		projects = append(projects, models.NewProject("/src/"+p))
	}

	m, _ := send(NewModel("Projects", projects),
		tea.WindowSizeMsg{Width: 80, Height: 7}, // 3 visible rows
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}

	view := m.View()
	if strings.Contains(view, "/src/a") {
		t.Error("scrolled-out project still rendered")
	}
	if !strings.Contains(view, "/src/e") {
		t.Error("cursor project not rendered")
	}
}
