package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/llehouerou/statusmodal/internal/app"
	"github.com/llehouerou/statusmodal/internal/catalog"
	"github.com/llehouerou/statusmodal/internal/config"
	"github.com/llehouerou/statusmodal/internal/errmsg"
	"github.com/llehouerou/statusmodal/internal/httpnotify"
	"github.com/llehouerou/statusmodal/internal/icons"
	"github.com/llehouerou/statusmodal/internal/logger"
	"github.com/llehouerou/statusmodal/internal/notifier"
	"github.com/llehouerou/statusmodal/internal/notify"
	"github.com/llehouerou/statusmodal/internal/status"
	"github.com/llehouerou/statusmodal/internal/ui/modal"
)

const appName = "statusmodal"

// options holds the parsed command line.
type options struct {
	code       int
	message    string
	descriptor string
	method     string
	data       string
	desktop    bool
	quiet      bool
	configPath string
	url        string
}

var errUsage = errors.New("usage")

func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.code, "code", 0, "preview the notification for a status code")
	fs.StringVar(&opts.message, "message", "", "message replacing the canned one (with -code)")
	fs.StringVar(&opts.descriptor, "descriptor", "", "preview a named descriptor from the catalog")
	fs.StringVar(&opts.method, "method", http.MethodGet, "HTTP method")
	fs.StringVar(&opts.data, "data", "", "request body; JSON bodies are sent as application/json")
	fs.BoolVar(&opts.desktop, "desktop", false, "also send a desktop notification")
	fs.BoolVar(&opts.quiet, "quiet", false, "send in the background and only notify failures")
	fs.StringVar(&opts.configPath, "config", "", "config file (default: XDG config, then ./config.toml)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <url>\n       %s -code N [-message S]\n       %s -descriptor NAME\n\n", appName, appName, appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.method = strings.ToUpper(opts.method)
	opts.url = fs.Arg(0)

	previews := 0
	if opts.code != 0 {
		previews++
	}
	if opts.descriptor != "" {
		previews++
	}
	switch {
	case previews > 1:
		fmt.Fprintln(output, "-code and -descriptor are mutually exclusive")
		return opts, errUsage
	case previews == 0 && opts.url == "":
		fs.Usage()
		return opts, errUsage
	case previews == 1 && opts.url != "":
		fmt.Fprintln(output, "a preview does not take a url")
		return opts, errUsage
	}
	return opts, nil
}

// previewTarget returns the notification to preview, nil when a request is sent.
func previewTarget(opts options, cat *catalog.Catalog) (status.Target, error) {
	switch {
	case opts.descriptor != "":
		d, ok := cat.Lookup(opts.descriptor)
		if !ok {
			return nil, errors.New(errmsg.FormatWith(errmsg.OpDescriptorLookup, opts.descriptor, errors.New("not in catalog")))
		}
		return status.Custom{Descriptor: d}, nil
	case opts.code != 0:
		return status.StatusCode{Code: opts.code, Override: opts.message}, nil
	}
	return nil, nil
}

func buildRequest(opts options) *app.Request {
	if opts.url == "" {
		return nil
	}
	req := &app.Request{Method: opts.method, URL: opts.url}
	if opts.data != "" {
		req.Body = []byte(opts.data)
		if trimmed := bytes.TrimSpace(req.Body); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			req.ContentType = "application/json"
		}
	}
	return req
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}
	icons.Init(cfg.Icons)

	lc := cfg.GetLogConfig()
	log, err := logger.New(appName, lc.Level, lc.Encoding, lc.File, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLogOpen, err))
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	var cat *catalog.Catalog
	if cfg.HasCatalog() {
		cat, err = catalog.Load(cfg.Catalog)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.Catalog, err))
			return 1
		}
		log.Debug("catalog loaded", zap.Int("descriptors", cat.Len()))
	}

	preview, err := previewTarget(opts, cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var surfaces []notifier.Surface
	var tui *modal.ChannelSurface
	if cfg.ShowsTUI() {
		tui = modal.NewChannelSurface()
		surfaces = append(surfaces, tui)
	}
	if cfg.ShowsDesktop() || opts.desktop {
		dn, dbusErr := notify.New()
		if dbusErr != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpDesktopConnect, dbusErr))
		} else {
			desktop := notify.NewSurface(dn, -1, log)
			defer func() { _ = desktop.Close() }()
			surfaces = append(surfaces, desktop)
		}
	}

	n := notifier.New(notifier.Multi(surfaces...), log)
	handler := httpnotify.New(n, log, httpnotify.Config{
		Timeout:   cfg.GetHTTPTimeout(),
		UserAgent: cfg.HTTP.UserAgent,
	})

	ctx, cancel := context.WithCancel(context.Background())
	listener := httpnotify.NewListener(handler, log)
	listenerDone := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(listenerDone)
	}()
	stopListener := func() {
		listener.Wait()
		cancel()
		<-listenerDone
	}

	req := buildRequest(opts)
	if opts.quiet && req != nil {
		r := *req
		listener.Go(ctx, func(ctx context.Context) error {
			return backgroundRequest(ctx, handler, r)
		})
		req = nil
	}

	if tui == nil {
		code := runHeadless(n, handler, req, preview)
		stopListener()
		return code
	}

	model := app.New(app.Options{
		Surface:  tui,
		Notifier: n,
		Handler:  handler,
		Request:  req,
		Preview:  preview,
	})
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	stopListener()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpUIStart, err))
		return 1
	}

	if m, ok := final.(app.Model); ok {
		if result := m.Result(); result != nil && result.Failed() {
			return 1
		}
	}
	return 0
}

// runHeadless sends the request or the preview without the terminal UI and
// prints a one-line summary.
func runHeadless(n *notifier.Notifier, h *httpnotify.Handler, req *app.Request, preview status.Target) int {
	if req == nil {
		if preview != nil {
			d := n.Notify(preview)
			fmt.Println(d.Title)
		}
		return 0
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	resp, err := h.RequestWith(context.Background(), req.Method, req.URL, body, req.ContentType)
	if resp == nil {
		op := errmsg.OpRequestSend
		// A request that could not be built never reached the handler
		if !httpnotify.Handled(err) {
			op = errmsg.OpRequestBuild
			n.NotifyDescriptor(errmsg.Descriptor(op, err))
		}
		fmt.Println(errmsg.Format(op, err))
		return 1
	}
	defer resp.Body.Close()

	size, readErr := io.Copy(io.Discard, resp.Body)
	if readErr != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpBodyRead, readErr))
	}
	fmt.Printf("%s %s: %d %s (%s)\n", req.Method, req.URL, resp.StatusCode,
		status.Classify(resp.StatusCode).Title, humanize.Bytes(uint64(size)))
	if err != nil {
		return 1
	}
	return 0
}

// backgroundRequest sends req without notifying and leaves failures to the
// listener. Transport failures carry no response and are only logged.
func backgroundRequest(ctx context.Context, h *httpnotify.Handler, r app.Request) error {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	resp, err := h.Client().Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	return httpnotify.CheckStatus(resp)
}
