// Package monitoring carries diagnostic events out of the ingestion
// pipeline. The pipeline never writes to a fixed global channel; callers
// supply an Observer and decide what to do with the events.
package monitoring

import "log"

// EventKind classifies a pipeline diagnostic.
type EventKind string

const (
	EventRowDropped         EventKind = "row_dropped"
	EventHeaderSkipped      EventKind = "header_skipped"
	EventQuaternionRepaired EventKind = "quaternion_repaired"
	EventFallbackTriggered  EventKind = "fallback_triggered"
)

// Event is one structured diagnostic emitted by the pipeline.
type Event struct {
	Kind    EventKind
	Frame   int    // frame (row) index the event refers to, -1 if not frame-scoped
	Joint   string // joint label, empty if not joint-scoped
	Message string
}

// Observer receives pipeline diagnostics.
type Observer interface {
	Observe(e Event)
}

// LogObserver writes events to the standard logger. Logf defaults to
// log.Printf and may be replaced, e.g. to mute diagnostics in tests.
type LogObserver struct {
	Logf func(format string, v ...interface{})
}

// NewLogObserver returns an observer backed by log.Printf.
func NewLogObserver() *LogObserver {
	return &LogObserver{Logf: log.Printf}
}

// Observe logs the event.
func (o *LogObserver) Observe(e Event) {
	logf := o.Logf
	if logf == nil {
		logf = log.Printf
	}
	if e.Frame >= 0 {
		logf("[%s] frame=%d joint=%s %s", e.Kind, e.Frame, e.Joint, e.Message)
		return
	}
	logf("[%s] %s", e.Kind, e.Message)
}

// NopObserver discards all events.
type NopObserver struct{}

// Observe discards the event.
func (NopObserver) Observe(Event) {}

// Recorder collects events in memory for inspection in tests.
type Recorder struct {
	Events []Event
}

// Observe appends the event.
func (r *Recorder) Observe(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
