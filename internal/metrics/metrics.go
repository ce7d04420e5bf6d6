package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls       int
	notFound    int
	conflicts   int
	invalid     int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory counters about player operations
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordPlayerOperation counts one collection operation with its outcome label.
func (r *Recorder) RecordPlayerOperation(operation, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	switch outcome {
	case OutcomeNotFound:
		stats.notFound++
	case OutcomeConflict:
		stats.conflicts++
	case OutcomeInvalid:
		stats.invalid++
	case OutcomeError:
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlayerOperation(operation, outcome, duration)
	}
}

// Snapshot is a copy of the counters for one operation.
type Snapshot struct {
	Calls       int
	NotFound    int
	Conflicts   int
	Invalid     int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		NotFound:    stats.notFound,
		Conflicts:   stats.conflicts,
		Invalid:     stats.invalid,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// OperationCalls returns the total calls recorded for an operation.
func (r *Recorder) OperationCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// TrackCollectionSize exports the value returned by size as a gauge on every
// collection. It is a no-op without OpenTelemetry instruments.
func (r *Recorder) TrackCollectionSize(size func() int) error {
	if r == nil || r.otel == nil || size == nil {
		return nil
	}
	return r.otel.observeCollectionSize(size)
}
