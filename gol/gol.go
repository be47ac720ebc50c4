package gol

// Params provides the details of how to run the Game of Life.
type Params struct {
	Turns       int
	Threads     int
	Mode        Mode
	ImageWidth  int
	ImageHeight int
}

// Validate reports the first configuration problem in p. Image dimensions are
// taken from the loaded board and are not checked here.
func (p Params) Validate() error {
	if p.Turns <= 0 {
		return &ConfigError{Field: "generations", Value: p.Turns, Reason: "must be positive"}
	}
	switch p.Mode {
	case ModeSequential, "":
	case ModeParallel:
		if p.Threads <= 0 {
			return &ConfigError{Field: "threads", Value: p.Threads, Reason: "must be positive in parallel mode"}
		}
	default:
		return &ConfigError{Field: "mode", Value: string(p.Mode), Reason: "expected sequential or parallel"}
	}
	return nil
}
