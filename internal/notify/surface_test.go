package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/statusmodal/internal/icons"
	"github.com/llehouerou/statusmodal/internal/status"
)

// mockNotifier records notifications for testing.
type mockNotifier struct {
	notifications []Notification
	closed        []uint32
	lastID        uint32
	err           error
}

func (m *mockNotifier) Notify(n Notification) (uint32, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.notifications = append(m.notifications, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.lastID++
	return m.lastID, nil
}

func (m *mockNotifier) Close(id uint32) error {
	m.closed = append(m.closed, id)
	return nil
}

func TestSurfaceShowMapsDescriptor(t *testing.T) {
	defer icons.Init("none")
	icons.Init("none")

	mock := &mockNotifier{}
	s := NewSurface(mock, 5000, nil)

	s.Show(status.Descriptor{
		Title:    "Not Found",
		Message:  "The <b>page</b> could not be found.",
		Category: status.Error,
		Icon:     status.IconSearch,
	})

	require.Len(t, mock.notifications, 1)
	n := mock.notifications[0]
	assert.Equal(t, "[?] Not Found", n.Title)
	assert.Equal(t, "The page could not be found.", n.Body)
	assert.Equal(t, "edit-find", n.Icon)
	assert.Equal(t, int32(5000), n.Timeout)
	assert.Equal(t, UrgencyCritical, n.Urgency)
	assert.Zero(t, n.ReplacesID)
}

func TestSurfaceReplacesPreviousNotification(t *testing.T) {
	mock := &mockNotifier{}
	s := NewSurface(mock, -1, nil)

	s.Show(status.Classify(201))
	s.Show(status.Classify(500))

	require.Len(t, mock.notifications, 2)
	assert.Zero(t, mock.notifications[0].ReplacesID)
	assert.Equal(t, uint32(1), mock.notifications[1].ReplacesID)
	assert.Equal(t, UrgencyCritical, mock.notifications[1].Urgency)
}

func TestSurfaceSwallowsErrors(t *testing.T) {
	mock := &mockNotifier{err: errors.New("bus gone")}
	s := NewSurface(mock, -1, nil)

	s.Show(status.Classify(200))

	assert.NoError(t, s.Close())
	assert.Empty(t, mock.closed)
}

func TestSurfaceClose(t *testing.T) {
	mock := &mockNotifier{}
	s := NewSurface(mock, -1, nil)
	s.Show(status.Classify(200))

	require.NoError(t, s.Close())
	assert.Equal(t, []uint32{1}, mock.closed)

	// Next notification starts fresh
	s.Show(status.Classify(200))
	assert.Zero(t, mock.notifications[1].ReplacesID)
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyLow, UrgencyFor(status.Success))
	assert.Equal(t, UrgencyNormal, UrgencyFor(status.Info))
	assert.Equal(t, UrgencyCritical, UrgencyFor(status.Error))
}

func TestIconName(t *testing.T) {
	assert.Equal(t, "network-offline", IconName(status.Network()))
	assert.Equal(t, "emblem-ok", IconName(status.Descriptor{Icon: "custom", Category: status.Success}))
	assert.Equal(t, "dialog-information", IconName(status.Descriptor{Category: status.Info}))
	assert.Equal(t, "dialog-error", IconName(status.Descriptor{Category: status.Error}))
}

func TestEveryCannedIconHasDesktopName(t *testing.T) {
	for _, code := range status.Codes() {
		d := status.Classify(code)
		_, ok := freedesktopIcons[d.Icon]
		assert.True(t, ok, "icon %q for %d has no freedesktop name", d.Icon, code)
	}
}
