// Package tui implements the terminal project picker.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codetray/codetray/internal/models"
)

// Pick shows the picker and returns the chosen project, or nil when the user
// quit without choosing.
func Pick(title string, projects []models.Project) (*models.Project, error) {
	p := tea.NewProgram(NewModel(title, projects), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return m.Chosen(), nil
}
