package slider

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spectra/internal/ui/action"
	"github.com/llehouerou/spectra/internal/ui/testutil"
)

func changed(t *testing.T, cmd tea.Cmd) Changed {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "slider", msg.Source)
	c, ok := msg.Action.(Changed)
	require.True(t, ok)
	return c
}

func focused(lo, hi, step, value float64) *Model {
	m := New("seek", lo, hi, step)
	m.SetValue(value)
	m.SetFocused(true)
	return &m
}

func TestUpdate_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want float64
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, 45},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, 55},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, 45},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, 0},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 100},
		{"shift+right", tea.KeyMsg{Type: tea.KeyShiftRight}, 100},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := focused(0, 180, 5, 50)
			c := changed(t, m.Update(tt.key))
			assert.Equal(t, "seek", c.ID)
			assert.Equal(t, tt.want, c.Value)
			assert.Equal(t, tt.want, m.Value())
		})
	}
}

func TestUpdate_ClampsAtBounds(t *testing.T) {
	m := focused(0, 1, 0.05, 0.98)

	c := changed(t, m.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, 1.0, c.Value)

	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyRight}), "no change at max")
}

func TestUpdate_Ignored(t *testing.T) {
	unfocused := New("volume", 0, 1, 0.05)
	assert.Nil(t, unfocused.Update(tea.KeyMsg{Type: tea.KeyRight}))

	empty := focused(0, 0, 5, 0)
	assert.False(t, empty.Enabled())
	assert.Nil(t, empty.Update(tea.KeyMsg{Type: tea.KeyRight}), "empty range")

	m := focused(0, 10, 1, 5)
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}))
	assert.Nil(t, m.Update(tea.WindowSizeMsg{}))
}

func TestSetRange_Reclamps(t *testing.T) {
	m := New("seek", 0, 200, 5)
	m.SetValue(150)
	m.SetRange(0, 100)
	assert.Equal(t, 100.0, m.Value())
	assert.InDelta(t, 1.0, m.Ratio(), 1e-9)

	m.SetRange(0, 0)
	assert.Zero(t, m.Value())
	assert.Zero(t, m.Ratio())
}

func TestTrack(t *testing.T) {
	plain := testutil.StripANSI(Track(0.5, 10, "", false))
	assert.Equal(t, "━━━━━─────", plain)

	knob := testutil.StripANSI(Track(1, 10, "#e11d48", true))
	assert.Equal(t, strings.Repeat("━", 9)+"●", knob)

	start := testutil.StripANSI(Track(0, 4, "", true))
	assert.Equal(t, "●───", start)

	assert.Empty(t, Track(0.5, 0, "", false))
}

func TestView(t *testing.T) {
	m := New("volume", 0, 1, 0.05)
	m.SetSize(20, 1)
	m.SetValue(0.25)
	assert.Equal(t, 20, testutil.MeasureWidth(m.View()))
}
