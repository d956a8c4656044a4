package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	visible bool
	focused int
	events  []string
}

func (f *fakeWindow) Show() {
	f.visible = true
	f.events = append(f.events, "show")
}

func (f *fakeWindow) Hide() {
	f.visible = false
	f.events = append(f.events, "hide")
}

func (f *fakeWindow) Focus() {
	f.focused++
	f.events = append(f.events, "focus")
}

func (f *fakeWindow) IsVisible() bool { return f.visible }

func TestShowMakesWindowVisibleAndFocused(t *testing.T) {
	svc := NewWindowService()
	win := &fakeWindow{}
	svc.register("main", win)

	svc.Show("main")

	assert.True(t, win.visible)
	assert.Equal(t, []string{"show", "focus"}, win.events)
}

func TestShowUnknownWindowIsIgnored(t *testing.T) {
	svc := NewWindowService()
	win := &fakeWindow{}
	svc.register("settings", win)

	assert.NotPanics(t, func() { svc.Show("main") })
	assert.Empty(t, win.events)
}

func TestToggleVisibility(t *testing.T) {
	svc := NewWindowService()
	win := &fakeWindow{}
	svc.register("main", win)

	svc.ToggleVisibility("main")
	assert.True(t, win.visible)
	assert.Equal(t, 1, win.focused)

	svc.ToggleVisibility("main")
	assert.False(t, win.visible)
	assert.Equal(t, 1, win.focused)

	assert.NotPanics(t, func() { svc.ToggleVisibility("missing") })
}
