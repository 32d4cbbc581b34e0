// Package sdregistry tracks live spans and owns the per-span cache of
// pre-rendered fields.  A span's fields are formatted exactly once,
// when the span is entered; the resulting JSON fragment is read-only
// for the rest of the span's lifetime, so concurrent readers need no
// locking.
package sdregistry

import (
	"context"
	"sync"

	"github.com/sdlog/sdlog/sdbase"
	"github.com/sdlog/sdlog/sdtrace"

	"github.com/pkg/errors"
)

// FormatHook renders a span's own fields into a JSON object fragment.
// The returned bytes must be a complete, syntactically valid JSON
// object.  The hook is supplied by the serialization layer so that
// cached fragments and event output always agree on encoding.
type FormatHook func(fields []sdbase.Field) ([]byte, error)

type Registry struct {
	lock  sync.Mutex
	hook  FormatHook
	spans map[[8]byte]*Span
}

// Span is a named, nestable unit of execution.  The cached field
// fragment is written once by Enter and never mutated afterwards.
type Span struct {
	id       sdtrace.HexBytes8
	name     string
	parent   *Span
	fragment []byte
}

func New(hook FormatHook) *Registry {
	return &Registry{
		hook:  hook,
		spans: make(map[[8]byte]*Span),
	}
}

// Enter creates a span, renders its fields through the format hook,
// and registers it.  parent may be nil for a root span.  If the
// registry was built without a hook the span is registered with no
// cached fragment; serialization layers treat that as a contract
// violation when they later need the fragment.
func (registry *Registry) Enter(parent *Span, name string, fields ...sdbase.Field) (*Span, error) {
	span := &Span{
		id:     sdtrace.NewRandomHexBytes8(),
		name:   name,
		parent: parent,
	}
	if registry.hook != nil {
		fragment, err := registry.hook(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "format fields for span %s", name)
		}
		span.fragment = fragment
	}
	registry.lock.Lock()
	defer registry.lock.Unlock()
	registry.spans[span.id.Array()] = span
	return span, nil
}

// Exit evicts a span.  The span's cached fragment dies with it.
func (registry *Registry) Exit(span *Span) {
	if span == nil {
		return
	}
	registry.lock.Lock()
	defer registry.lock.Unlock()
	delete(registry.spans, span.id.Array())
}

// Lookup returns the live span with the given identity, or nil.
func (registry *Registry) Lookup(id sdtrace.HexBytes8) *Span {
	registry.lock.Lock()
	defer registry.lock.Unlock()
	return registry.spans[id.Array()]
}

func (span *Span) ID() sdtrace.HexBytes8 { return span.id }
func (span *Span) Name() string          { return span.name }
func (span *Span) Parent() *Span         { return span.parent }

// Fragment returns the span's pre-rendered field fragment.  ok is
// false when the span was registered without the format hook having
// run.
func (span *Span) Fragment() (fragment []byte, ok bool) {
	if span.fragment == nil {
		return nil, false
	}
	return span.fragment, true
}

type contextKey struct{}

var activeSpanKey = contextKey{}

// ContextWithSpan marks span as the current span in the returned
// context.
func ContextWithSpan(ctx context.Context, span *Span) context.Context {
	return context.WithValue(ctx, activeSpanKey, span)
}

// Current returns the current span carried by ctx, or nil.
func Current(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(activeSpanKey).(*Span)
	return span
}
