package metrics

import (
	"sync"
	"time"
)

type rejectionKey struct {
	operation string
	kind      string
}

// Recorder captures lightweight, in-memory counters about scoreboard
// activity and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu           sync.Mutex
	started      int
	finished     int
	scoreUpdates int
	rejections   map[rejectionKey]int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		rejections: make(map[rejectionKey]int),
		otel:       otel,
	}
}

// RecordMatchStarted counts a started match.
func (r *Recorder) RecordMatchStarted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.started++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordMatchStarted()
	}
}

// RecordMatchFinished counts a finished match.
func (r *Recorder) RecordMatchFinished() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.finished++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordMatchFinished()
	}
}

// RecordScoreUpdate counts an applied score update.
func (r *Recorder) RecordScoreUpdate() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.scoreUpdates++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordScoreUpdate()
	}
}

// RecordRejection counts an operation refused with the given error kind.
func (r *Recorder) RecordRejection(operation, kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rejections[rejectionKey{operation: operation, kind: kind}]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRejection(operation, kind)
	}
}

// Rejections returns how many times operation was refused with kind.
func (r *Recorder) Rejections(operation, kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejections[rejectionKey{operation: operation, kind: kind}]
}

// Snapshot is a copy of the recorder's scoreboard counters.
type Snapshot struct {
	Started      int
	Finished     int
	ScoreUpdates int
}

// Active is the number of started matches not yet finished.
func (s Snapshot) Active() int {
	return s.Started - s.Finished
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Started:      r.started,
		Finished:     r.finished,
		ScoreUpdates: r.scoreUpdates,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
