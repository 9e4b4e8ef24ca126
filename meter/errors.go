package meter

import "errors"

var (
	// ErrNilQueue is returned when a pipeline is built without a queue.
	ErrNilQueue = errors.New("meter: queue is required")
	// ErrNilAnalyzer is returned when a pipeline is built without an analyzer.
	ErrNilAnalyzer = errors.New("meter: analyzer is required")
	// ErrAlreadyRunning is returned by Run when the loop is already active.
	ErrAlreadyRunning = errors.New("meter: pipeline already running")
)
