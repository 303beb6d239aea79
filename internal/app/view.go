package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/statusmodal/internal/status"
	"github.com/llehouerou/statusmodal/internal/ui/render"
	"github.com/llehouerou/statusmodal/internal/ui/styles"
)

const appTitle = "statusmodal"

// View implements tea.Model.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := []string{
		m.renderHeader(width),
		m.renderStatusLine(width),
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, styles.T().S().Subtle.Render(render.Truncate(m.keys.Help(), width)))
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	return m.Modal.Overlay(strings.Join(lines, "\n"))
}

func (m Model) renderHeader(width int) string {
	t := styles.T()
	title := styles.ApplyGradient(appTitle, t.Success, t.Info)

	var target string
	switch {
	case m.request != nil:
		target = m.request.Method + " " + m.request.URL
	case m.preview != nil:
		target = "preview: " + status.Resolve(m.preview).Title
	}
	if target == "" {
		return fit(title, width)
	}
	return fit(title+t.S().Muted.Render("  "+render.Sanitize(target)), width)
}

func (m Model) renderStatusLine(width int) string {
	s := styles.T().S()

	switch {
	case m.pending:
		return s.Muted.Render(render.Truncate("Sending request…", width))
	case m.result == nil:
		return ""
	}

	r := m.result
	elapsed := r.Elapsed.Round(time.Millisecond).String()
	if r.Status == 0 {
		return fit(s.Error.Render("no response")+s.Muted.Render(" · "+elapsed), width)
	}

	code := status.Classify(r.Status)
	line := styles.T().Category(code.Category).Render(fmt.Sprintf("%d %s", r.Status, code.Title)) +
		s.Muted.Render(fmt.Sprintf(" · %s · %s", humanize.Bytes(uint64(r.Size)), elapsed))
	return fit(line, width)
}

// fit truncates a styled line to width.
func fit(line string, width int) string {
	return ansi.Truncate(line, width, "...")
}
