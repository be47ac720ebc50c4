package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"testing"

	"uk.ac.bris.cs/golengine/gol"
	"uk.ac.bris.cs/golengine/sdl"
)

var paramRequests chan gol.Params
var testsComplete chan bool
var sdlEvents chan gol.Event
var sdlAlive chan int

func runSdl(p gol.Params, vis bool) {
	var w *sdl.Window = nil
	if vis {
		w = sdl.NewWindow(int32(p.ImageWidth), int32(p.ImageHeight))
	}

	board := make([][]byte, p.ImageHeight)
	for i := 0; i < p.ImageHeight; i++ {
		board[i] = make([]byte, p.ImageWidth)
	}

sdlLoop:
	for {
		if w != nil {
			w.PollEvent()
		}

		select {
		case event, ok := <-sdlEvents:
			if !ok {
				if w != nil {
					w.Destroy()
				}
				break sdlLoop
			}

			switch e := event.(type) {
			case gol.CellFlipped:
				board[e.Cell.Y][e.Cell.X] ^= 1
				if w != nil {
					w.FlipPixel(e.Cell.X, e.Cell.Y)
				}

			case gol.TurnComplete:
				if w != nil {
					w.RenderFrame()
				}
				count := 0
				for y := 0; y < p.ImageHeight; y++ {
					for x := 0; x < p.ImageWidth; x++ {
						count += int(board[y][x])
					}
				}
				sdlAlive <- count

			case gol.FinalTurnComplete:
				if w != nil {
					w.Destroy()
				}
				break sdlLoop
			}
		default:
		}
	}
}

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	vis := flag.Bool("vis", false,
		"Opens an SDL window during the tests. Needs a display.")
	flag.Parse()

	paramRequests = make(chan gol.Params)
	testsComplete = make(chan bool)

	sdlEvents = make(chan gol.Event)
	sdlAlive = make(chan int)
	result := make(chan int)

	go func() {
		res := m.Run()
		testsComplete <- true
		result <- res
	}()

	running := true
	for running {
		select {
		case p := <-paramRequests:
			runSdl(p, *vis)
		case <-testsComplete:
			running = false
		}
	}

	os.Exit(<-result)
}

func sdlFail(t *testing.T, message string) {
	t.Log(message)
	sdlEvents <- gol.FinalTurnComplete{}
	t.FailNow()
}

func randomBoard(t *testing.T, width, height int, seed int64) *gol.Board {
	t.Helper()
	b, err := gol.NewBoard(width, height)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.SetCell(x, y, rng.Intn(4) == 0)
		}
	}
	return b
}

// expectedAlive runs the sequential engine and records the live cell count
// after every generation; index 0 is the initial board.
func expectedAlive(b *gol.Board, turns int) []int {
	alive := []int{b.AliveCount()}
	gol.Sequential{}.Advance(b.Clone(), turns, func(_ int, next *gol.Board) {
		alive = append(alive, next.AliveCount())
	})
	return alive
}

// TestSdl follows the event stream of a 64x64 board for 100 turns on 8
// worker goroutines and checks the live cells a viewer would draw.
func TestSdl(t *testing.T) {
	p := gol.Params{ImageWidth: 64, ImageHeight: 64, Turns: 100, Threads: 8, Mode: gol.ModeParallel}
	board := randomBoard(t, p.ImageWidth, p.ImageHeight, 42)
	alive := expectedAlive(board, p.Turns)
	paramRequests <- p

	testName := fmt.Sprintf("%dx%dx%d-%d", p.ImageWidth, p.ImageHeight, p.Turns, p.Threads)
	t.Run(testName, func(t *testing.T) {
		turnNum := 0
		events := make(chan gol.Event)
		go gol.Run(p, board, events)
		// Keep the simulation unblocked if the test stops early.
		defer func() {
			for range events {
			}
		}()
		final := false
		for event := range events {
			switch e := event.(type) {
			case gol.CellFlipped:
				sdlEvents <- e
			case gol.TurnComplete:
				turnNum++

				if turnNum != e.CompletedTurns {
					sdlFail(t, fmt.Sprintf("Incorrect turn number for TurnComplete. Was %d, should be %d.", e.CompletedTurns, turnNum))
				}

				if e.CompletedTurns > p.Turns {
					sdlFail(t, fmt.Sprintf("Too many TurnComplete events sent. Last TurnComplete was for turn %d. Simulation should only run for %d turns.", e.CompletedTurns, p.Turns))
				}

				sdlEvents <- e
				aliveCount := <-sdlAlive
				if alive[turnNum] != aliveCount {
					sdlFail(t, fmt.Sprintf("Incorrect number of alive cells displayed on turn %d. Was %d, should be %d.", turnNum, aliveCount, alive[turnNum]))
				}
			case gol.FinalTurnComplete:
				if e.CompletedTurns != p.Turns {
					sdlFail(t, fmt.Sprintf("Incorrect final turn number. Was %d, should be %d.", e.CompletedTurns, p.Turns))
				}

				if turnNum < p.Turns {
					sdlFail(t, fmt.Sprintf("More TurnComplete events expected before FinalTurnComplete. Last TurnComplete was for turn %d.", turnNum))
				}

				if len(e.Alive) != alive[p.Turns] {
					sdlFail(t, fmt.Sprintf("FinalTurnComplete reported %d alive cells, should be %d.", len(e.Alive), alive[p.Turns]))
				}

				final = true
				sdlEvents <- e
			}
		}

		if !final {
			sdlEvents <- gol.FinalTurnComplete{}
			t.Fatal("Simulation finished without sending a FinalTurnComplete event.")
		}
	})
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"minimal", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "10"}, false},
		{"parallel", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "1", "--mode", "parallel", "--threads", "4"}, false},
		{"omp alias", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "1", "--mode", "omp"}, false},
		{"missing load", []string{"--save", "out.gol", "--generations", "10"}, true},
		{"missing save", []string{"--load", "in.gol", "--generations", "10"}, true},
		{"zero generations", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "0"}, true},
		{"zero threads", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "5", "--mode", "parallel", "--threads", "0"}, true},
		{"zero threads ignored when sequential", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "5", "--threads", "0"}, false},
		{"unknown mode", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "5", "--mode", "gpu"}, true},
		{"unknown viewer", []string{"--load", "in.gol", "--save", "out.gol", "--generations", "5", "--viewer", "tk"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOptions(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestRunWritesFinalBoard(t *testing.T) {
	dir := t.TempDir()
	in, out := dir+"/in.gol", dir+"/out.gol"
	board := randomBoard(t, 20, 12, 7)
	if err := gol.SaveBoard(in, board); err != nil {
		t.Fatal(err)
	}

	opts, err := parseOptions([]string{"--load", in, "--save", out, "--generations", "25", "--mode", "parallel", "--threads", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts); err != nil {
		t.Fatal(err)
	}

	got, err := gol.LoadBoard(out)
	if err != nil {
		t.Fatal(err)
	}
	want := board.Clone()
	gol.Sequential{}.Advance(want, 25, nil)
	if !got.Equal(want) {
		t.Errorf("saved board differs from sequential result:\ngot\n%swant\n%s", got, want)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseOptions([]string{"--load", dir + "/nope.gol", "--save", dir + "/out.gol", "--generations", "1"})
	if err != nil {
		t.Fatal(err)
	}
	err = run(opts)
	var ioErr *gol.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *gol.IOError, got %v", err)
	}
	if _, statErr := os.Stat(dir + "/out.gol"); !os.IsNotExist(statErr) {
		t.Error("no output should be written when loading fails")
	}
}
