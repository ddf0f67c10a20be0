// Package progrock renders task execution progress through the progrock UI
// library.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Tracer implements the ports.Tracer interface using the progrock library.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewTracer(tape)
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	rec := progrock.NewRecorder(w)
	return &Tracer{
		w:   w,
		rec: rec,
	}
}

// Start opens a vertex for the named unit of work.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan renders the planned task names in a dedicated vertex.
func (t *Tracer) EmitPlan(_ context.Context, taskNames []string) {
	d := digest.FromString("plan")
	v := t.rec.Vertex(d, "plan")
	for _, name := range taskNames {
		_, _ = fmt.Fprintln(v.Stdout(), name)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	// If the writer implements Close, call it.
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu   sync.Mutex
	err  error
	done bool
}

// Write streams output to the vertex.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// SetAttribute renders the key-value pair on the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError keeps the first recorded error so End can fail the vertex.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// End completes the vertex. Subsequent calls are no-ops.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	s.vertex.Done(s.err)
}
