// Command mos6502run is the minimal host for the emulator core: it
// loads a raw ROM image, wires up the bus and CPU, and runs the clock
// pacer until the chip halts or the process is interrupted. Debug
// display, a richer CLI surface and save states are someone else's
// problem; this just proves the core runs.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/tarnovan/mos6502/bus"
	"github.com/tarnovan/mos6502/clock"
	"github.com/tarnovan/mos6502/cpu"
	"github.com/tarnovan/mos6502/disasm"
)

func main() {
	app := &cli.App{
		Name:  "mos6502run",
		Usage: "run a raw 6502 ROM image against the emulator core",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to a raw ROM image (<=32KiB), mapped at $8000",
			},
			&cli.Float64Flag{
				Name:  "freq",
				Value: clock.DefaultFrequency,
				Usage: "target clock frequency in Hz",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log each instruction just before it is fetched",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	romPath := cctx.String("rom")
	if romPath == "" {
		return cli.Exit("missing required --rom flag", 1)
	}

	image, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading ROM: %v", err), 1)
	}

	board := bus.New()
	if err := board.LoadROM(image); err != nil {
		return cli.Exit(fmt.Sprintf("loading ROM: %v", err), 1)
	}

	chip := cpu.New(board)
	chip.Reset()

	verbose := cctx.Bool("verbose")
	pacer := clock.Pacer{Frequency: cctx.Float64("freq")}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = pacer.Run(ctx, func() error {
		if verbose && chip.Done() {
			ins := disasm.One(board, chip.PC)
			log.Printf("$%04X  %s", ins.Addr, ins.Text)
		}
		if stepErr := chip.Step(); stepErr != nil {
			return stepErr
		}
		if violation := board.LastViolation(); violation != nil {
			return violation
		}
		return nil
	})
	if err != nil && err != context.Canceled {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
