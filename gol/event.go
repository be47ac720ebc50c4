package gol

import (
	"fmt"

	"uk.ac.bris.cs/golengine/util"
)

// Event represents any Game of Life event that needs to be communicated to the user.
type Event interface {
	// Stringer allows each event to be printed by the viewers.
	fmt.Stringer
	// GetCompletedTurns should return the number of fully completed turns.
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Executing State = iota
	Quitting
)

// StateChange is an Event notifying the user about a change of state of execution.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// AliveCellsCount is sent every 2 seconds while events are being produced.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// CellFlipped is sent for every cell whose state changed in a turn, before
// that turn's TurnComplete.
type CellFlipped struct {
	CompletedTurns int
	Cell           util.Cell
}

// TurnComplete is sent once a whole generation has been computed and swapped in.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete carries the live cells of the final board.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (s State) String() string {
	switch s {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

func (event StateChange) String() string {
	return event.NewState.String()
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellFlipped) String() string {
	return ""
}

func (event CellFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return ""
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn, %v cells alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
