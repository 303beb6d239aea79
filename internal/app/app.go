// Package app is the root model of the terminal UI: it sends one request (or
// previews one notification) and shows the outcome in the modal.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/statusmodal/internal/httpnotify"
	"github.com/llehouerou/statusmodal/internal/keymap"
	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/status"
	"github.com/llehouerou/statusmodal/internal/ui"
	"github.com/llehouerou/statusmodal/internal/ui/modal"
)

// Request is the request sent on start.
type Request struct {
	Method      string
	URL         string
	Body        []byte
	ContentType string
}

// Options configures the root model.
type Options struct {
	Surface  *modal.ChannelSurface // queue feeding the modal
	Notifier *notifier.Notifier
	Handler  *httpnotify.Handler // required when Request is set
	Request  *Request            // sent on start when set
	Preview  status.Target       // shown on start when Request is nil
}

// Model is the root application model.
type Model struct {
	ui.Base
	Modal    modal.Model
	surface  *modal.ChannelSurface
	notifier *notifier.Notifier
	handler  *httpnotify.Handler
	request  *Request
	preview  status.Target
	keys     *keymap.Resolver
	pending  bool
	result   *Result
}

// New creates the root model. When a request is set it counts as in flight
// from the start.
func New(opts Options) Model {
	m := Model{
		Modal:    modal.New(),
		surface:  opts.Surface,
		notifier: opts.Notifier,
		handler:  opts.Handler,
		request:  opts.Request,
		preview:  opts.Preview,
		keys:     keymap.NewResolver(keymap.ByContext("global")),
	}
	m.pending = m.request != nil
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.request != nil {
		return tea.Batch(m.surface.Wait(), sendRequest(m.handler, m.notifier, *m.request))
	}
	return tea.Batch(m.surface.Wait(), m.startPreview())
}

// Result returns the outcome of the last request, nil while none finished.
func (m Model) Result() *Result {
	return m.result
}

// Pending reports whether a request is in flight.
func (m Model) Pending() bool {
	return m.pending
}

func (m Model) startPreview() tea.Cmd {
	if m.preview == nil {
		return nil
	}
	return notify(m.notifier, m.preview)
}
