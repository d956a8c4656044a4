package agent

import "github.com/pkg/browser"

// BrowserLauncher opens URLs through the platform default handler
// (open on macOS, xdg-open on Linux, url.dll on Windows).
type BrowserLauncher struct{}

func (BrowserLauncher) Open(url string) error {
	return browser.OpenURL(url)
}
