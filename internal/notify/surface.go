package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/statusmodal/internal/icons"
	"github.com/llehouerou/statusmodal/internal/status"
	"github.com/llehouerou/statusmodal/internal/ui/render"
)

// freedesktopIcons maps symbolic icon names to freedesktop icon names.
var freedesktopIcons = map[string]string{
	status.IconCheck:     "emblem-ok",
	status.IconInfo:      "dialog-information",
	status.IconRedirect:  "go-next",
	status.IconWarning:   "dialog-warning",
	status.IconError:     "dialog-error",
	status.IconLock:      "changes-prevent",
	status.IconBan:       "action-unavailable",
	status.IconSearch:    "edit-find",
	status.IconClock:     "appointment-missed",
	status.IconHourglass: "appointment-soon",
	status.IconServer:    "network-server",
	status.IconWifiOff:   "network-offline",
}

// Surface shows descriptors as desktop notifications.
// Each notification replaces the previous one, so at most one is on screen.
type Surface struct {
	notifier Notifier
	timeout  int32
	logger   *zap.Logger

	mu     sync.Mutex
	lastID uint32
}

// NewSurface wraps n. timeout is in milliseconds, -1 for the server default.
func NewSurface(n Notifier, timeout int32, logger *zap.Logger) *Surface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Surface{notifier: n, timeout: timeout, logger: logger}
}

// Show implements notifier.Surface. Delivery failures are logged, never returned.
func (s *Surface) Show(d status.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.notifier.Notify(Notification{
		Title:      icons.FormatTitle(d.Icon, d.Title),
		Body:       render.Plain(d.Message),
		Icon:       IconName(d),
		Timeout:    s.timeout,
		ReplacesID: s.lastID,
		Urgency:    UrgencyFor(d.Category),
	})
	if err != nil {
		s.logger.Warn("desktop notification failed", zap.Error(err))
		return
	}
	if id != 0 {
		s.lastID = id
	}
}

// Close removes the current desktop notification, if any.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastID == 0 {
		return nil
	}
	err := s.notifier.Close(s.lastID)
	s.lastID = 0
	return err
}

// UrgencyFor maps a category to a notification urgency.
func UrgencyFor(c status.Category) Urgency {
	switch c {
	case status.Success:
		return UrgencyLow
	case status.Info:
		return UrgencyNormal
	case status.Error:
		return UrgencyCritical
	}
	return UrgencyCritical
}

// IconName returns the freedesktop icon for d, falling back to one per category.
func IconName(d status.Descriptor) string {
	if name, ok := freedesktopIcons[d.Icon]; ok {
		return name
	}
	switch d.Category {
	case status.Success:
		return "emblem-ok"
	case status.Info:
		return "dialog-information"
	case status.Error:
		return "dialog-error"
	}
	return "dialog-error"
}
