package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"

	"github.com/wailsapp/wails/v3/pkg/application"
	"go.uber.org/zap"

	"github.com/imjamesonzeller/agent0-tray/agent"
	"github.com/imjamesonzeller/agent0-tray/config"
	"github.com/imjamesonzeller/agent0-tray/logs"
	"github.com/imjamesonzeller/agent0-tray/tray"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed frontend/public/tray.png
var trayIcon []byte

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "agent0-tray:", err)
		os.Exit(1)
	}

	logger, err := logs.Setup(logs.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, "agent0-tray:", err)
		os.Exit(1)
	}

	client := agent.NewClient(cfg.BaseURL,
		agent.WithLauncher(agent.BrowserLauncher{}),
		agent.WithLogger(logger.Named("agent")))

	// Initialize services
	windowService := NewWindowService()
	agentService := NewAgentService(client, logger.Named("frontend"))
	hotkeyService := NewHotkeyService(windowService, cfg.Hotkey, logger.Named("hotkey"))

	app := application.New(application.Options{
		Name:        "agent0-tray",
		Description: "System tray controls for Agent-0",
		Services: []application.Service{
			application.NewService(windowService),
			application.NewService(agentService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})
	// Hide app from dock and CMD+Tab
	hideAppFromDock()

	go func() {
		runtime.LockOSThread() // required by macOS for hotkey
		hotkeyService.StartHotkeyListener()
	}()

	// Hidden until the tray icon is clicked.
	mainWindow := app.NewWebviewWindowWithOptions(application.WebviewWindowOptions{
		Name:          tray.MainWindow,
		Title:         "Agent-0",
		Width:         420,
		Height:        260,
		DisableResize: true,
		Hidden:        true,
		Mac: application.MacWindow{
			InvisibleTitleBarHeight: 50,
			Backdrop:                application.MacBackdropTranslucent,
			TitleBar: application.MacTitleBar{
				AppearsTransparent: true,
				HideTitle:          true,
				FullSizeContent:    true,
			},
		},
		BackgroundColour: application.NewRGBA(27, 38, 54, 255),
		URL:              "/",
	})
	windowService.RegisterWindow(tray.MainWindow, mainWindow)

	controller := tray.NewController(client, windowService, func(code int) {
		logger.Info("Quit selected from tray")
		_ = logger.Sync()
		os.Exit(code)
	}, tray.WithLogger(logger.Named("tray")))
	tray.Setup(app, controller, trayIcon)

	logger.Info("Agent-0 tray started", zap.String("backend", client.BaseURL()))

	if err := app.Run(); err != nil {
		logger.Fatal("application exited with error", zap.Error(err))
	}
}
