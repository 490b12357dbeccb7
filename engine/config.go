package engine

import "github.com/pkg/errors"

// ErrInvalidConfig is wrapped by every construction error
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the scalars fixed for the lifetime of an engine
type Config struct {
	Rows            int   // initial rows
	Cols            int   // initial columns
	RowMax          int   // rows stop growing at this count
	ColMax          int   // columns stop growing at this count
	HistoryCapacity int   // generations remembered for recurrence; 0 disables detection
	Seed            int64 // seeds the initial population when no generator is supplied
}

// ConsoleConfig returns the defaults used by the console driver
func ConsoleConfig() Config {
	return Config{
		Rows:            4,
		Cols:            4,
		RowMax:          100,
		ColMax:          100,
		HistoryCapacity: 20,
	}
}

// WindowConfig returns the defaults used by the timed watch driver
func WindowConfig() Config {
	return Config{
		Rows:            5,
		Cols:            5,
		RowMax:          50,
		ColMax:          50,
		HistoryCapacity: 20,
	}
}

// Validate rejects configurations that cannot produce a well-formed grid
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	case c.RowMax < c.Rows || c.ColMax < c.Cols:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] maxima %dx%d are below dimensions %dx%d",
			c.RowMax, c.ColMax, c.Rows, c.Cols)
	case c.HistoryCapacity < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] history capacity must not be negative, got %d", c.HistoryCapacity)
	}
	return nil
}
