package main

import (
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
)

type window interface {
	Show()
	Hide()
	Focus()
	IsVisible() bool
}

type webviewWindow struct {
	w *application.WebviewWindow
}

func (ww webviewWindow) Show()           { ww.w.Show() }
func (ww webviewWindow) Hide()           { ww.w.Hide() }
func (ww webviewWindow) Focus()          { ww.w.Focus() }
func (ww webviewWindow) IsVisible() bool { return ww.w.IsVisible() }

type WindowService struct {
	mu      sync.Mutex
	windows map[string]window
}

func NewWindowService() *WindowService {
	return &WindowService{
		windows: make(map[string]window),
	}
}

// RegisterWindow Register a window by ID
func (s *WindowService) RegisterWindow(id string, win *application.WebviewWindow) {
	s.register(id, webviewWindow{w: win})
}

func (s *WindowService) register(id string, win window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[id] = win
}

func (s *WindowService) lookup(id string) (window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	win, ok := s.windows[id]
	return win, ok
}

// Show makes the window visible and gives it focus. Unknown ids are ignored.
func (s *WindowService) Show(id string) {
	win, ok := s.lookup(id)
	if !ok {
		return
	}
	win.Show()
	win.Focus()
	focusAppWindow()
}

// ToggleVisibility Toggle visibility of a window by ID
func (s *WindowService) ToggleVisibility(id string) {
	win, ok := s.lookup(id)
	if !ok {
		return
	}

	if win.IsVisible() {
		win.Hide()
		return
	}
	win.Show()
	win.Focus()
	focusAppWindow()
}
