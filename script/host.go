// SPDX-License-Identifier: MIT

// Package script runs game-logic scripts written in Lua. The host exposes a
// single callback, roll(die), backed by an injected dice.Roller, and expects
// each script to return exactly one integer.
//
// The host never touches grid state; it is composed with the board only at
// the program entry point.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/edbs/dice"
)

var (
	// ErrLoad is returned when a script file cannot be read.
	ErrLoad = errors.New("script: cannot load script")
	// ErrExecution is returned when a script fails to compile, raises an
	// error, or is cancelled through its context.
	ErrExecution = errors.New("script: execution failed")
	// ErrResultType is returned when a script does not return exactly one integer.
	ErrResultType = errors.New("script: result is not a single integer")
)

// RollFunc is the name of the global dice callback visible to scripts.
const RollFunc = "roll"

// Option configures a Host.
type Option func(*Host)

// WithLogger makes the host report rolls and results to l.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// Host executes scripts against an injected Roller.
// A Host is not safe for concurrent use because the Roller is shared.
type Host struct {
	roller dice.Roller
	logger *log.Logger
}

// NewHost returns a Host whose roll callback draws from r.
func NewHost(r dice.Roller, opts ...Option) *Host {
	h := &Host{roller: r, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// LoadFile reads a script's source text from path.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}

	return string(data), nil
}

// RunFile loads the script at path and runs it.
func (h *Host) RunFile(ctx context.Context, path string) (int, error) {
	src, err := LoadFile(path)
	if err != nil {
		return 0, err
	}

	return h.Run(ctx, path, src)
}

// Run executes source in a fresh Lua state and returns its integer result.
// name is used in error messages and tracebacks.
// Stage 1 (Prepare): new state bound to ctx, register roll.
// Stage 2 (Execute): compile and call the chunk.
// Stage 3 (Finalize): require exactly one integral number on the stack.
func (h *Host) Run(ctx context.Context, name, source string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecution, name, err)
	}
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)
	L.SetGlobal(RollFunc, L.NewFunction(h.roll))

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecution, name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecution, name, err)
	}

	n := L.GetTop()
	if n != 1 {
		return 0, fmt.Errorf("%w: %s returned %d values", ErrResultType, name, n)
	}
	result, err := toInt(L.Get(-1))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrResultType, name, err)
	}
	L.Pop(n)
	h.logger.Printf("script %s: result %d", name, result)

	return result, nil
}

// roll implements roll(die) for scripts. An invalid die raises a Lua error.
func (h *Host) roll(L *lua.LState) int {
	die := L.CheckInt(1)
	v, err := h.roller.Roll(die)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	h.logger.Printf("roll d%d = %d", die, v)
	L.Push(lua.LNumber(v))

	return 1
}

// toInt accepts Lua numbers that are integral and fit an int32.
func toInt(v lua.LValue) (int, error) {
	num, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("got %s", v.Type())
	}
	f := float64(num)
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("got non-integer %v", f)
	}

	return int(f), nil
}
