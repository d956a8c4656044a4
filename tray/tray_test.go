package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v3/pkg/application"
)

func TestBuildMenuMatchesItems(t *testing.T) {
	h := newHarness(t, &fakeActions{})

	menu := buildMenu(h.ctrl)
	items := Items()

	wantLabels := []string{"Pause Agent-0", "Resume Agent-0", "", "Open Dashboard", "", "Quit"}
	wantSeparator := []bool{false, false, true, false, true, false}
	require.Len(t, items, len(wantLabels))

	for i, item := range items {
		entry := menu.ItemAt(i)
		require.NotNil(t, entry, "menu entry %d", i)
		assert.Equal(t, wantSeparator[i], entry.IsSeparator(), "separator at %d", i)
		if item.Separator() {
			continue
		}
		assert.Equal(t, wantLabels[i], entry.Label(), "label at %d", i)
		assert.Equal(t, item.Label, entry.Label(), "label at %d", i)
	}
}

func TestSelectHandlerDispatchesItsOwnID(t *testing.T) {
	for _, item := range Items() {
		if item.Separator() {
			continue
		}
		item := item
		t.Run(item.ID, func(t *testing.T) {
			h := newHarness(t, &fakeActions{})

			selectHandler(h.ctrl, item.ID)(&application.Context{})
			h.runner.wg.Wait()

			if item.ID == IDQuit {
				assert.Equal(t, []int{0}, h.exits.codes)
				assert.Empty(t, h.actions.Calls())
				return
			}
			assert.Equal(t, []string{item.ID}, h.actions.Calls())
			assert.Empty(t, h.exits.codes)
		})
	}
}
