// Package mocks provides an in-memory otel.Otel for tests. Spans are not exported;
// the Recorder keeps scope names and traced errors so tests can assert on them.
package mocks

import (
	"context"
	"sync"

	"hotel/infras/otel"
)

type Recorder struct {
	mu     sync.Mutex
	scopes []string
	errors []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a recorder for callers that only need the interface.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.scopes = append(r.scopes, name)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (*Recorder) Shutdown(context.Context) error {
	return nil
}

// Scopes returns the names of every scope opened so far, in order.
func (r *Recorder) Scopes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.scopes...)
}

// Errors returns every error traced on any scope.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}

type scope struct {
	recorder *Recorder
}

func (*scope) End()                         {}
func (*scope) AddEvent(string)              {}
func (*scope) SetAttribute(string, any)     {}
func (*scope) SetAttributes(map[string]any) {}

func (s *scope) TraceError(err error) {
	if err != nil {
		s.recorder.record(err)
	}
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}
