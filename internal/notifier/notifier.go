// Package notifier turns status codes and custom descriptors into a single
// visible notification on an injected surface.
package notifier

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/statusmodal/internal/status"
)

// Surface is where notifications become visible.
// Show replaces whatever the surface displayed before, category styling included.
type Surface interface {
	Show(d status.Descriptor)
}

// SurfaceFunc adapts a function to a Surface.
type SurfaceFunc func(d status.Descriptor)

// Show calls f(d).
func (f SurfaceFunc) Show(d status.Descriptor) {
	f(d)
}

// Multi returns a surface that shows every notification on all surfaces, in order.
func Multi(surfaces ...Surface) Surface {
	return SurfaceFunc(func(d status.Descriptor) {
		for _, s := range surfaces {
			s.Show(d)
		}
	})
}

// Notifier renders notifications onto its surface.
type Notifier struct {
	surface Surface
	logger  *zap.Logger
}

// New creates a Notifier drawing on surface. A nil logger disables logging.
func New(surface Surface, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{surface: surface, logger: logger}
}

// Notify shows the notification for t and returns the descriptor that was shown.
func (n *Notifier) Notify(t status.Target) status.Descriptor {
	d := status.Resolve(t)

	fields := []zap.Field{
		zap.String("event_id", uuid.NewString()),
		zap.String("category", d.Category.String()),
		zap.String("title", d.Title),
	}
	if sc, ok := t.(status.StatusCode); ok {
		fields = append(fields, zap.Int("status", sc.Code), zap.Bool("override", sc.Override != ""))
	}
	n.logger.Debug("show notification", fields...)

	n.surface.Show(d)
	return d
}

// NotifyStatus shows the canned notification for code.
// A non-empty override replaces the canned message.
func (n *Notifier) NotifyStatus(code int, override string) status.Descriptor {
	return n.Notify(status.StatusCode{Code: code, Override: override})
}

// NotifyDescriptor shows d verbatim.
func (n *Notifier) NotifyDescriptor(d status.Descriptor) status.Descriptor {
	return n.Notify(status.Custom{Descriptor: d})
}
