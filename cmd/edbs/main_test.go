// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edbs/script"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

// TestRunDefaultScenario prints the built-in board and the script result.
func TestRunDefaultScenario(t *testing.T) {
	dir := t.TempDir()
	lua := writeFile(t, dir, "fixed.lua", "return 7")

	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"-script", lua, "-seed", "5"}, &out, log.New(&logs, "", 0))
	require.NoError(t, err)

	want := "0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 1 0 \n\nresult 7\n"
	require.Equal(t, want, out.String())
}

// TestRunScenarioFile loads a scenario whose script rolls a d1.
func TestRunScenarioFile(t *testing.T) {
	dir := t.TempDir()
	lua := writeFile(t, dir, "d1.lua", "return roll(1) + roll(1)")
	cfg := writeFile(t, dir, "scn.yaml", "width: 2\nheight: 1\nseed: 3\nscript: "+lua+"\nplacements:\n  - {x: 1, y: 0, entity: 4}\n  - {x: 2, y: 0, entity: 5}\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"-config", cfg, "-v"}, &out, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Equal(t, "0 4 \n\nresult 2\n", out.String())
	require.Contains(t, logs.String(), "skipping Set at (2,0)")
	require.Contains(t, logs.String(), "roll d1 = 1")
}

// TestRunMissingScript is fatal at the command level.
func TestRunMissingScript(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"-script", filepath.Join(t.TempDir(), "none.lua")}, &out, log.New(&logs, "", 0))
	require.ErrorIs(t, err, script.ErrLoad)
}

// TestRunBadFlag rejects unknown flags.
func TestRunBadFlag(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-nope"}, &out, log.New(&out, "", 0))
	require.Error(t, err)
}
