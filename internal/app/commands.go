package app

import (
	"bytes"
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/statusmodal/internal/errmsg"
	"github.com/llehouerou/statusmodal/internal/httpnotify"
	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/status"
)

// sendRequest performs req through h. h shows the notification; the returned
// message only carries the summary for the status line. A request that cannot
// be built never reaches h, so it is notified through n.
func sendRequest(h *httpnotify.Handler, n *notifier.Notifier, req Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result := Result{Method: req.Method, URL: req.URL}

		var body io.Reader
		if req.Body != nil {
			body = bytes.NewReader(req.Body)
		}

		resp, err := h.RequestWith(context.Background(), req.Method, req.URL, body, req.ContentType)
		result.Err = err
		if err != nil && !httpnotify.Handled(err) {
			n.NotifyDescriptor(errmsg.Descriptor(errmsg.OpRequestBuild, err))
		}
		if resp != nil {
			result.Status = resp.StatusCode
			n, _ := io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			result.Size = n
		}
		result.Elapsed = time.Since(start)

		return RequestDoneMsg{Result: result}
	}
}

// notify shows t without any request.
func notify(n *notifier.Notifier, t status.Target) tea.Cmd {
	return func() tea.Msg {
		n.Notify(t)
		return nil
	}
}
