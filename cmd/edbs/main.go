// SPDX-License-Identifier: MIT

// Command edbs builds a board from a scenario, prints it, and runs the
// scenario's Lua script with a seeded dice roller.
//
// Usage:
//
//	edbs [-config game/scenario.yaml] [-script path.lua] [-seed n]
//
// Without -config the built-in 5×6 scenario is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/edbs/config"
	"github.com/katalvlaran/edbs/dice"
	"github.com/katalvlaran/edbs/script"
	"github.com/katalvlaran/edbs/world"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("edbs: ")
	if err := run(context.Background(), os.Args[1:], os.Stdout, log.Default()); err != nil {
		log.Fatalf("%v", err)
	}
}

// run parses args, builds the world and runs the script, writing the board
// and "result N" to out.
func run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("edbs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "scenario YAML file (default: built-in 5x6 scenario)")
	scriptPath := fs.String("script", "", "Lua script to run (overrides the scenario)")
	seed := fs.Uint64("seed", 0, "dice seed (overrides the scenario; 0 uses the clock)")
	verbose := fs.Bool("v", false, "log dice rolls")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scn := config.Default()
	if *cfgPath != "" {
		var err error
		if scn, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *scriptPath != "" {
		scn.Script = *scriptPath
	}
	if *seed != 0 {
		scn.Seed = *seed
	}
	if scn.Seed == 0 {
		scn.Seed = uint64(time.Now().UnixNano())
	}

	w, err := world.FromScenario(scn, world.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, w)

	opts := []script.Option{}
	if *verbose {
		opts = append(opts, script.WithLogger(logger))
	}
	host := script.NewHost(dice.NewSeededRoller(scn.Seed), opts...)
	result, err := host.RunFile(ctx, scn.Script)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "result %d\n", result)

	return nil
}
