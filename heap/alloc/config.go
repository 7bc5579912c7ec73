package alloc

import "io"

// Config carries the allocator's environment hooks.
type Config struct {
	// Output receives fatal diagnostics. Defaults to os.Stderr.
	Output io.Writer

	// Fatal terminates the process after a fatal diagnostic has been
	// written. Defaults to exiting with status 1. Tests install a
	// panicking handler to observe aborts without dying.
	Fatal func()
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{}
