package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/statusmodal/internal/keymap"
	"github.com/llehouerou/statusmodal/internal/ui/modal"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.Modal.SetSize(msg.Width, msg.Height)
		return m, nil

	case modal.ShowMsg:
		m.Modal.Show(msg.Descriptor)
		// Keep listening for the next notification
		return m, m.surface.Wait()

	case modal.DismissedMsg:
		return m, nil

	case RequestDoneMsg:
		m.pending = false
		result := msg.Result
		m.result = &result
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The modal owns the keyboard while visible
	if m.Modal.Visible() {
		_, cmd := m.Modal.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionReshow:
		if d := m.Modal.Descriptor(); d.Title != "" {
			m.Modal.Show(d)
		}
	case keymap.ActionDismiss:
		// Only bound in the modal context
	}
	return m, nil
}
