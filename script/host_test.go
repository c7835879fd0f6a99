// SPDX-License-Identifier: MIT

package script_test

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/edbs/dice"
	"github.com/katalvlaran/edbs/script"
	"github.com/stretchr/testify/require"
)

// TestRunInteger verifies a plain integer result is returned.
func TestRunInteger(t *testing.T) {
	h := script.NewHost(dice.NewSeededRoller(1))
	got, err := h.Run(context.Background(), "const", "return 6 * 7")
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

// TestRunRoll checks roll(die) is wired to the injected roller.
func TestRunRoll(t *testing.T) {
	f := dice.Fixed{4, 2}
	h := script.NewHost(&f)
	got, err := h.Run(context.Background(), "roll", "return roll(6) * 10 + roll(6)")
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

// TestRunRollRange runs many seeded rolls through Lua and checks the bounds.
func TestRunRollRange(t *testing.T) {
	h := script.NewHost(dice.NewSeededRoller(99))
	src := `
local lo, hi = 100, 0
for i = 1, 500 do
  local v = roll(8)
  if v < lo then lo = v end
  if v > hi then hi = v end
end
return lo * 10 + hi`
	got, err := h.Run(context.Background(), "range", src)
	require.NoError(t, err)
	require.Equal(t, 18, got)
}

// TestRunErrors table-tests the failure kinds.
func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"Syntax", "return (", script.ErrExecution},
		{"Runtime", "error('boom')", script.ErrExecution},
		{"InvalidDie", "return roll(0)", script.ErrExecution},
		{"RollNotNumber", "return roll('x')", script.ErrExecution},
		{"NoResult", "local a = 1", script.ErrResultType},
		{"TwoResults", "return 1, 2", script.ErrResultType},
		{"String", "return 'ten'", script.ErrResultType},
		{"Fraction", "return 1.5", script.ErrResultType},
		{"Huge", "return 2^40", script.ErrResultType},
	}
	h := script.NewHost(dice.NewSeededRoller(3))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Run(context.Background(), tc.name, tc.src)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRunCancelled ensures a cancelled context stops a runaway script.
func TestRunCancelled(t *testing.T) {
	h := script.NewHost(dice.NewSeededRoller(3))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := h.Run(ctx, "loop", "while true do end")
	require.ErrorIs(t, err, script.ErrExecution)

	done, stop := context.WithCancel(context.Background())
	stop()
	_, err = h.Run(done, "const", "return 1")
	require.ErrorIs(t, err, script.ErrExecution)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRunFile loads a script from disk and logs the result.
func TestRunFile(t *testing.T) {
	var buf bytes.Buffer
	f := dice.Fixed{5, 3}
	h := script.NewHost(&f, script.WithLogger(log.New(&buf, "", 0)))

	got, err := h.RunFile(context.Background(), filepath.Join("testdata", "archer.lua"))
	require.NoError(t, err)
	require.Equal(t, 8, got)
	require.Contains(t, buf.String(), "roll d6 = 5")
	require.Contains(t, buf.String(), "result 8")
}

// TestLoadFileMissing surfaces unreadable files as ErrLoad.
func TestLoadFileMissing(t *testing.T) {
	_, err := script.LoadFile(filepath.Join(t.TempDir(), "nope.lua"))
	require.ErrorIs(t, err, script.ErrLoad)

	h := script.NewHost(dice.NewSeededRoller(1))
	_, err = h.RunFile(context.Background(), filepath.Join(t.TempDir(), "nope.lua"))
	require.ErrorIs(t, err, script.ErrLoad)
}
