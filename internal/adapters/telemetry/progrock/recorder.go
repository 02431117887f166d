// Package progrock provides the Progrock implementation of the target
// progress reporter.
package progrock

import (
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder implements ports.Reporter by recording one progrock vertex per
// target.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertices map[string]*progrock.VertexRecorder
}

// New creates a Recorder backed by a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder emitting updates to the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[string]*progrock.VertexRecorder),
	}
}

// TargetStarted opens a vertex for the target.
func (r *Recorder) TargetStarted(name string) {
	v := r.rec.Vertex(digest.FromString(name), name)
	r.mu.Lock()
	r.vertices[name] = v
	r.mu.Unlock()
}

// TargetSkipped records the target as a cache hit.
func (r *Recorder) TargetSkipped(name string) {
	v := r.rec.Vertex(digest.FromString(name), name)
	v.Cached()
	v.Done(nil)
}

// TargetCompleted closes the target's vertex, recording err when non-nil.
func (r *Recorder) TargetCompleted(name string, err error) {
	r.mu.Lock()
	v := r.vertices[name]
	delete(r.vertices, name)
	r.mu.Unlock()
	if v != nil {
		v.Done(err)
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
