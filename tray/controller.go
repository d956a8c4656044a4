package tray

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/imjamesonzeller/agent0-tray/agent"
)

const (
	IDPause     = "pause"
	IDResume    = "resume"
	IDDashboard = "dashboard"
	IDSeparator = "separator"
	IDQuit      = "quit"

	MainWindow = "main"
)

type MenuItem struct {
	ID    string
	Label string
}

// Separator reports whether the item is a non-interactive divider.
func (m MenuItem) Separator() bool {
	return m.ID == IDSeparator
}

// Items returns the tray menu in display order.
func Items() []MenuItem {
	return []MenuItem{
		{ID: IDPause, Label: "Pause Agent-0"},
		{ID: IDResume, Label: "Resume Agent-0"},
		{ID: IDSeparator},
		{ID: IDDashboard, Label: "Open Dashboard"},
		{ID: IDSeparator},
		{ID: IDQuit, Label: "Quit"},
	}
}

// Actions is the backend surface the tray drives.
type Actions interface {
	Pause(ctx context.Context) (string, error)
	Resume(ctx context.Context) (string, error)
	OpenDashboard(ctx context.Context) (string, error)
}

type WindowServiceInterface interface {
	Show(name string)
}

// Runner schedules a unit of work without waiting for it.
type Runner interface {
	Go(task func())
}

// GoRunner starts one goroutine per task.
type GoRunner struct{}

func (GoRunner) Go(task func()) {
	go task()
}

type Controller struct {
	items   []MenuItem
	actions Actions
	windows WindowServiceInterface
	runner  Runner
	exit    func(code int)
	logger  *zap.Logger
}

type Option func(*Controller)

func WithRunner(r Runner) Option {
	return func(c *Controller) { c.runner = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController wires the tray to its collaborators. exit is called with
// code 0 when the user picks Quit.
func NewController(actions Actions, windows WindowServiceInterface, exit func(code int), opts ...Option) *Controller {
	c := &Controller{
		items:   Items(),
		actions: actions,
		windows: windows,
		runner:  GoRunner{},
		exit:    exit,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Items() []MenuItem {
	return append([]MenuItem(nil), c.items...)
}

// HandleLeftClick brings the main window forward. Without a window
// service or a registered main window nothing happens.
func (c *Controller) HandleLeftClick() {
	if c.windows == nil {
		return
	}
	c.windows.Show(MainWindow)
}

func (c *Controller) HandleMenuSelection(id string) {
	switch id {
	case IDPause:
		c.dispatch(id, c.actions.Pause)
	case IDResume:
		c.dispatch(id, c.actions.Resume)
	case IDDashboard:
		c.dispatch(id, c.actions.OpenDashboard)
	case IDQuit:
		c.exit(0)
	}
}

func (c *Controller) dispatch(id string, action func(context.Context) (string, error)) {
	c.runner.Go(func() {
		msg, err := action(context.Background())
		if err != nil {
			fields := []zap.Field{zap.String("action", id), zap.Error(err)}
			var actionErr *agent.ActionError
			if errors.As(err, &actionErr) {
				fields = append(fields, zap.Stringer("kind", actionErr.Kind))
			}
			c.logger.Error(err.Error(), fields...)
			return
		}
		c.logger.Debug(msg, zap.String("action", id))
	})
}
