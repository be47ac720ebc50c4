package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"uk.ac.bris.cs/golengine/ebitenview"
	"uk.ac.bris.cs/golengine/gol"
	"uk.ac.bris.cs/golengine/sdl"
	"uk.ac.bris.cs/golengine/timing"
)

const (
	exitIO     = 1
	exitConfig = 2
)

type options struct {
	load, save string
	params     gol.Params
	measure    bool
	debug      bool
	vis        bool
	viewer     string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("golengine", flag.ContinueOnError)
	fs.StringVar(&opts.load, "load", "", "Board file to load (required).")
	fs.StringVar(&opts.save, "save", "", "Board file to write the final generation to (required).")
	fs.IntVar(&opts.params.Turns, "generations", 0, "Number of generations to compute (required, > 0).")
	mode := fs.String("mode", string(gol.ModeSequential), "Execution strategy: sequential or parallel.")
	fs.IntVar(&opts.params.Threads, "threads", runtime.NumCPU(), "Worker goroutines in parallel mode.")
	fs.BoolVar(&opts.measure, "measure", false, "Print setup, computation and finalization times.")
	fs.BoolVar(&opts.debug, "debug", false, "Print the arguments and the board before and after the run.")
	fs.BoolVar(&opts.vis, "vis", false, "Show the board in a window while it evolves.")
	fs.StringVar(&opts.viewer, "viewer", "sdl", "Window backend used with -vis: sdl or ebiten.")
	if err := fs.Parse(args); err != nil {
		return opts, &gol.ConfigError{Field: "arguments", Value: args, Reason: err.Error()}
	}

	if opts.load == "" {
		return opts, &gol.ConfigError{Field: "load", Value: `""`, Reason: "a board file is required"}
	}
	if opts.save == "" {
		return opts, &gol.ConfigError{Field: "save", Value: `""`, Reason: "an output file is required"}
	}
	m, err := gol.ParseMode(*mode)
	if err != nil {
		return opts, err
	}
	opts.params.Mode = m
	if opts.viewer != "sdl" && opts.viewer != "ebiten" {
		return opts, &gol.ConfigError{Field: "viewer", Value: opts.viewer, Reason: "expected sdl or ebiten"}
	}
	return opts, opts.params.Validate()
}

func printOptions(opts options) {
	fmt.Println("Validated Parameters:")
	fmt.Printf("  Input File: %s\n", opts.load)
	fmt.Printf("  Output File: %s\n", opts.save)
	fmt.Printf("  Generations: %d\n", opts.params.Turns)
	if opts.params.Mode == gol.ModeParallel {
		fmt.Printf("  Mode: Parallel\n  Threads: %d\n", opts.params.Threads)
	} else {
		fmt.Println("  Mode: Sequential")
	}
	fmt.Println("-----------------------")
}

// run owns the whole lifecycle: load, compute, save. The timer only wraps
// calls into the gol package.
func run(opts options) error {
	var timer *timing.Timer
	if opts.measure {
		timer = timing.New()
	}

	timer.Start(timing.Setup)
	board, err := gol.LoadBoard(opts.load)
	if err != nil {
		return err
	}
	opts.params.ImageWidth, opts.params.ImageHeight = board.Width, board.Height
	timer.Stop(timing.Setup)

	if opts.debug {
		fmt.Print(board)
		fmt.Println()
	}

	timer.Start(timing.Computation)
	if opts.vis {
		err = runVisualised(opts, board)
	} else {
		err = gol.Run(opts.params, board, nil)
	}
	if err != nil {
		return err
	}
	timer.Stop(timing.Computation)

	if opts.debug {
		fmt.Print(board)
		fmt.Println()
	}

	timer.Start(timing.Finalization)
	if err := gol.SaveBoard(opts.save, board); err != nil {
		return err
	}
	timer.Stop(timing.Finalization)

	return timer.Report(os.Stdout)
}

// runVisualised keeps the viewer on the main goroutine, which windowing
// libraries require, and runs the simulation alongside it.
func runVisualised(opts options, board *gol.Board) error {
	events := make(chan gol.Event, 1000)
	result := make(chan error, 1)
	go func() {
		result <- gol.Run(opts.params, board, events)
	}()

	switch opts.viewer {
	case "ebiten":
		if err := ebitenview.Run(opts.params, events); err != nil {
			log.Printf("viewer: %v", err)
		}
	default:
		sdl.Run(opts.params, events)
	}
	return <-result
}

func main() {
	runtime.LockOSThread()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	if opts.debug {
		printOptions(opts)
	}

	if err := run(opts); err != nil {
		var cfgErr *gol.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitConfig)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitIO)
	}
}
