package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
)

func TestParseHotkeyString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    hotkeyConfig
		wantErr bool
	}{
		{
			name:  "ctrl shift letter",
			input: "ctrl+shift+a",
			want:  hotkeyConfig{Modifiers: []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, Key: hotkey.KeyA},
		},
		{
			name:  "mixed case and spaces",
			input: "  Ctrl + Space ",
			want:  hotkeyConfig{Modifiers: []hotkey.Modifier{hotkey.ModCtrl}, Key: hotkey.KeySpace},
		},
		{
			name:  "bare digit",
			input: "0",
			want:  hotkeyConfig{Key: hotkey.Key0},
		},
		{name: "unknown modifier", input: "hyper+a", wantErr: true},
		{name: "no key", input: "ctrl+shift", wantErr: true},
		{name: "two keys", input: "ctrl+a+b", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseHotkeyString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
