package tray

import (
	"github.com/wailsapp/wails/v3/pkg/application"
)

// Setup builds the system tray icon and menu and routes their events to c.
func Setup(app *application.App, c *Controller, trayIcon []byte) *application.SystemTray {
	tray := app.NewSystemTray()

	tray.SetMenu(buildMenu(c))
	tray.SetIcon(trayIcon)
	tray.OnClick(c.HandleLeftClick)

	return tray
}

// buildMenu adds one entry per controller item, in order.
func buildMenu(c *Controller) *application.Menu {
	menu := application.NewMenu()

	for _, item := range c.Items() {
		if item.Separator() {
			menu.AddSeparator()
			continue
		}
		menu.Add(item.Label).OnClick(selectHandler(c, item.ID))
	}

	return menu
}

func selectHandler(c *Controller, id string) func(*application.Context) {
	return func(_ *application.Context) {
		c.HandleMenuSelection(id)
	}
}
