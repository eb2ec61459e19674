package fixedpool

import "log/slog"

type Config struct {
	// Logger used to report failures when releasing pool resources.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// OnHeap places the backing buffer on the Go heap instead of reserving
	// it with mmap. Heap placement keeps the pool usable on platforms
	// without anonymous mappings and is convenient in tests, at the cost
	// of the buffer being scanned by the GC.
	OnHeap bool
}

func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}
