// Package modal provides the terminal notification surface.
package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/statusmodal/internal/icons"
	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/status"
	"github.com/llehouerou/statusmodal/internal/ui"
	"github.com/llehouerou/statusmodal/internal/ui/popup"
	"github.com/llehouerou/statusmodal/internal/ui/render"
	"github.com/llehouerou/statusmodal/internal/ui/styles"
)

// Compile-time checks.
var (
	_ popup.Popup      = (*Model)(nil)
	_ notifier.Surface = (*Model)(nil)
	_ notifier.Surface = (*ChannelSurface)(nil)
)

// ShowMsg asks the modal to display a descriptor.
type ShowMsg struct {
	Descriptor status.Descriptor
}

// DismissedMsg is emitted when the user closes the modal.
type DismissedMsg struct {
	Descriptor status.Descriptor
}

// KeyMap defines the modal key bindings.
type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap returns the default modal bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", "q", " "),
			key.WithHelp("enter/esc", "dismiss"),
		),
	}
}

// Model is the single shared notification surface of the terminal UI.
// Only one descriptor is shown at a time; the last Show wins.
type Model struct {
	ui.Base
	descriptor status.Descriptor
	visible    bool
	keys       KeyMap
}

// New creates a hidden modal.
func New() Model {
	return Model{keys: DefaultKeyMap()}
}

// Show replaces the current notification with d and makes the modal visible.
func (m *Model) Show(d status.Descriptor) {
	m.descriptor = d
	m.visible = true
}

// Hide closes the modal. The last descriptor is kept for inspection.
func (m *Model) Hide() {
	m.visible = false
}

// Visible reports whether the modal is displayed.
func (m Model) Visible() bool {
	return m.visible
}

// Descriptor returns the descriptor currently (or last) shown.
func (m Model) Descriptor() status.Descriptor {
	return m.descriptor
}

// Category returns the active category style.
func (m Model) Category() status.Category {
	return m.descriptor.Category
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.Show(msg.Descriptor)
	case tea.KeyMsg:
		if m.visible && key.Matches(msg, m.keys.Dismiss) {
			m.visible = false
			d := m.descriptor
			return m, func() tea.Msg { return DismissedMsg{Descriptor: d} }
		}
	}
	return m, nil
}

// View implements popup.Popup. It renders the title, message and hint
// without the border.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	d := m.dialog()
	return d.Title + "\n\n" + d.Content + "\n\n" + d.Footer
}

// Render returns the bordered modal centered in the current size.
func (m *Model) Render() string {
	if !m.visible {
		return ""
	}
	d := m.dialog()
	return d.Render(m.Width(), m.Height())
}

// Overlay draws the modal on top of base when visible.
func (m *Model) Overlay(base string) string {
	if !m.visible {
		return base
	}
	return popup.Compose(base, m.Render(), m.Width())
}

func (m *Model) dialog() *popup.Dialog {
	t := styles.T()
	width := m.contentWidth()

	message := render.Markup(m.descriptor.Message, t.S().Bold)
	if message != "" {
		message = lipgloss.NewStyle().Width(width).Render(message)
	}

	title := icons.FormatTitle(m.descriptor.Icon, render.Sanitize(m.descriptor.Title))

	d := popup.New()
	d.Title = t.CategoryTitle(title, m.descriptor.Category)
	d.Content = message
	d.Footer = "Press " + m.keys.Dismiss.Help().Key + " to " + m.keys.Dismiss.Help().Desc
	d.Width = width
	d.Style.BorderColor = t.Accent(m.descriptor.Category)
	return d
}

func (m *Model) contentWidth() int {
	width := ui.ModalMaxWidth
	if w := m.Width() - 2*ui.ModalMargin; w > 0 && w < width {
		width = w
	}
	return max(width, min(ui.ModalMinWidth, m.Width()))
}
