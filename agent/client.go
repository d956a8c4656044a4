package agent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultBaseURL = "http://localhost:8000"

// Action names one of the three backend operations.
type Action string

const (
	ActionPause     Action = "pause"
	ActionResume    Action = "resume"
	ActionDashboard Action = "dashboard"
)

func (a Action) verb() string {
	switch a {
	case ActionPause:
		return "pause service"
	case ActionResume:
		return "resume service"
	case ActionDashboard:
		return "open dashboard"
	default:
		return string(a)
	}
}

// Launcher opens a URL with the operating system's default handler.
type Launcher interface {
	Open(url string) error
}

// Client performs the Agent-0 admin calls. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	launcher   Launcher
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client. The default has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLauncher(l Launcher) Option {
	return func(c *Client) { c.launcher = l }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		launcher:   BrowserLauncher{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// DashboardURL is the monitoring page opened by OpenDashboard.
func (c *Client) DashboardURL() string {
	return c.baseURL + "/monitor"
}

// Pause asks the backend to pause. Any HTTP response counts as success.
func (c *Client) Pause(ctx context.Context) (string, error) {
	if err := c.post(ctx, ActionPause, "/admin/pause"); err != nil {
		return "", err
	}
	return "Service paused", nil
}

// Resume asks the backend to resume. Any HTTP response counts as success.
func (c *Client) Resume(ctx context.Context) (string, error) {
	if err := c.post(ctx, ActionResume, "/admin/resume"); err != nil {
		return "", err
	}
	return "Service resumed", nil
}

// OpenDashboard opens the monitoring page in the default browser.
func (c *Client) OpenDashboard(_ context.Context) (string, error) {
	if err := c.launcher.Open(c.DashboardURL()); err != nil {
		return "", &ActionError{Action: ActionDashboard, Kind: LaunchFailure, Err: err}
	}
	return "Dashboard opened", nil
}

// Do runs the named action.
func (c *Client) Do(ctx context.Context, action Action) (string, error) {
	switch action {
	case ActionPause:
		return c.Pause(ctx)
	case ActionResume:
		return c.Resume(ctx)
	case ActionDashboard:
		return c.OpenDashboard(ctx)
	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}

func (c *Client) post(ctx context.Context, action Action, path string) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return &ActionError{Action: action, Kind: TransportFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return &ActionError{Action: action, Kind: TransportFailure, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ActionError{Action: action, Kind: TransportFailure, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// Status codes are not inspected; the backend owns their meaning.
	c.logger.Debug("admin call completed",
		zap.String("action", string(action)),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode))
	return nil
}
