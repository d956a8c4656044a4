package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.design/x/hotkey"

	"github.com/imjamesonzeller/agent0-tray/tray"
)

var modMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
}

var keyMap = map[string]hotkey.Key{
	"space": hotkey.KeySpace,

	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
}

type hotkeyConfig struct {
	Modifiers []hotkey.Modifier
	Key       hotkey.Key
}

func parseHotkeyString(input string) (hotkeyConfig, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(input)), "+")
	var mods []hotkey.Modifier
	var key hotkey.Key
	keyFound := false

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if mod, ok := modMap[part]; ok {
			mods = append(mods, mod)
		} else if k, ok := keyMap[part]; ok {
			if keyFound {
				return hotkeyConfig{}, fmt.Errorf("more than one key in hotkey string %q", input)
			}
			key = k
			keyFound = true
		} else {
			return hotkeyConfig{}, fmt.Errorf("unknown hotkey part: %q", part)
		}
	}

	if !keyFound {
		return hotkeyConfig{}, fmt.Errorf("no valid key in hotkey string %q", input)
	}

	return hotkeyConfig{Modifiers: mods, Key: key}, nil
}

// HotkeyService toggles the main window from a global shortcut.
type HotkeyService struct {
	windowService *WindowService
	binding       string
	logger        *zap.Logger
}

func NewHotkeyService(windowService *WindowService, binding string, logger *zap.Logger) *HotkeyService {
	return &HotkeyService{
		windowService: windowService,
		binding:       binding,
		logger:        logger,
	}
}

// StartHotkeyListener registers the shortcut and blocks forever handling it.
// It returns early when no shortcut is configured or registration fails.
func (s *HotkeyService) StartHotkeyListener() {
	if s.binding == "" {
		return
	}

	cfg, err := parseHotkeyString(s.binding)
	if err != nil {
		s.logger.Error("Invalid hotkey, skipping", zap.String("hotkey", s.binding), zap.Error(err))
		return
	}

	hk := hotkey.New(cfg.Modifiers, cfg.Key)
	if err := hk.Register(); err != nil {
		s.logger.Error("Failed to register hotkey", zap.String("hotkey", s.binding), zap.Error(err))
		return
	}
	s.logger.Info("Hotkey registered", zap.String("hotkey", s.binding))

	for range hk.Keydown() {
		s.windowService.ToggleVisibility(tray.MainWindow)
	}
}
