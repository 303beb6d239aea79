package modal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/statusmodal/internal/status"
)

// surfaceBuffer is the number of notifications kept while the UI is busy.
const surfaceBuffer = 16

// ChannelSurface shows notifications from any goroutine by queueing them for
// the program, which applies them on its update loop through Wait.
type ChannelSurface struct {
	ch chan status.Descriptor
}

// NewChannelSurface returns an empty surface.
func NewChannelSurface() *ChannelSurface {
	return &ChannelSurface{ch: make(chan status.Descriptor, surfaceBuffer)}
}

// Show implements notifier.Surface. When the queue is full the oldest
// notification is discarded, since only the last one stays visible anyway.
func (s *ChannelSurface) Show(d status.Descriptor) {
	for {
		select {
		case s.ch <- d:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Wait returns a command delivering the next notification as a ShowMsg.
// Issue it again after each ShowMsg to keep listening.
func (s *ChannelSurface) Wait() tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Descriptor: <-s.ch}
	}
}
