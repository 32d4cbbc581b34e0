package sdjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sdlog/sdlog/sdbase"
	"github.com/sdlog/sdlog/sdbytes"
	"github.com/sdlog/sdlog/sdregistry"
	"github.com/sdlog/sdlog/sdutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func New(w sdbytes.BytesWriter, opts ...Option) *Layer {
	layer := &Layer{
		writer:        w,
		id:            uuid.New(),
		timeFormatter: defaultTimeFormatter,
		errorFunc: func(err error) {
			fmt.Fprintln(os.Stderr, err)
		},
	}
	for _, f := range opts {
		f(layer)
	}
	return layer
}

func (layer *Layer) ID() string     { return "sdjson-" + layer.id.String() }
func (layer *Layer) Buffered() bool { return layer.writer.Buffered() }
func (layer *Layer) Close()         { layer.writer.Close() }

// SpanHook returns the one-time formatting hook that a registry uses
// to pre-render a span's fields when the span is entered.  The hook
// uses the same visitor as event emission so that cached fragments
// are always valid object fragments.
func (layer *Layer) SpanHook() sdregistry.FormatHook {
	return func(fields []sdbase.Field) ([]byte, error) {
		b := layer.builder()
		defer b.reclaim()
		b.AppendByte('{') // }
		visitor := &visitor{builder: b}
		if err := sdbase.VisitFields(visitor, fields); err != nil {
			return nil, classify(SerializationError, err)
		}
		if err := visitor.Finish(); err != nil {
			return nil, err
		}
		// {
		b.AppendByte('}')
		fragment := make([]byte, len(b.B))
		copy(fragment, b.B)
		return fragment, nil
	}
}

// Log serializes one event and hands it to the sink.  Failures drop
// the event and are reported through the error reporter; neither an
// error nor a panic ever reaches the caller.
func (layer *Layer) Log(ctx context.Context, event sdbase.Event) {
	defer func() {
		if r := recover(); r != nil {
			layer.errorFunc(errors.Errorf("panic while emitting log event: %v", r))
		}
	}()
	if err := layer.emit(ctx, event); err != nil {
		layer.errorFunc(err)
	}
}

func (layer *Layer) emit(ctx context.Context, event sdbase.Event) error {
	b := layer.builder()
	defer b.reclaim()
	b.AppendByte('{') // }

	b.AddSafeKey("time")
	b.addTime(event.Time)

	b.AddSafeKey("severity")
	b.AddSafeString(event.Level.Severity())

	b.AddSafeKey("logger")
	b.AddString(event.Logger)

	if layer.service != "" {
		b.AddSafeKey("serviceContext")
		b.AppendByte('{')
		b.AddSafeKey("service")
		b.AddString(layer.service)
		if layer.serviceVersion != nil {
			b.AddSafeKey("version")
			b.AddString(layer.serviceVersion.String())
		}
		b.AppendByte('}')
	}

	b.AddSafeKey(sourceLocationKey)
	b.AppendByte('{')
	b.AddSafeKey("file")
	if event.File != nil {
		b.AddString(*event.File)
	} else {
		b.AddNull()
	}
	b.AddSafeKey("line")
	if event.Line != nil {
		b.AddUint64(uint64(*event.Line))
	} else {
		b.AddNull()
	}
	b.AppendByte('}')

	if layer.logSpans {
		if span := sdregistry.Current(ctx); span != nil {
			if err := b.addSpan(span); err != nil {
				return err
			}
		}
	}

	visitor := &visitor{builder: b}
	if err := sdbase.VisitFields(visitor, event.Fields); err != nil {
		return classify(SerializationError, err)
	}
	if err := visitor.Finish(); err != nil {
		return err
	}

	// {
	b.AppendByte('}')
	b.AppendByte('\n')
	if err := layer.writer.Line(b.B); err != nil {
		return classify(IoError, errors.Wrap(err, "write log line"))
	}
	return nil
}

// addTime never fails the event: if the formatter errors, the
// document gets an empty time value and the error becomes a
// diagnostic.
func (b *builder) addTime(t time.Time) {
	before := len(b.B)
	formatted, err := b.layer.timeFormatter(b.B, t)
	if err != nil {
		b.B = b.B[:before]
		b.AddSafeString("")
		b.layer.errorFunc(classify(TimeError, err))
		return
	}
	b.B = formatted
}

// addSpan merges the span's cached field fragment into the document
// under the "span" key, with the span's name injected.  A missing
// fragment means the span-entry hook never ran; that contract
// violation fails the event rather than degrading.
func (b *builder) addSpan(span *sdregistry.Span) error {
	fragment, ok := span.Fragment()
	if !ok {
		return classify(SerializationError,
			errors.Errorf("no cached fields for span %s: the span entry hook never ran", span.Name()))
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(fragment, &fields); err != nil {
		return classify(SerializationError,
			errors.Wrapf(err, "malformed cached fields for span %s", span.Name()))
	}
	fields["name"] = span.Name()
	b.AddSafeKey("span")
	if err := b.addAny(fields); err != nil {
		return classify(SerializationError,
			errors.Wrapf(err, "encode span entry for span %s", span.Name()))
	}
	return nil
}

func (b *builder) addAny(v interface{}) error {
	before := len(b.B)
	if err := b.encoder.Encode(v); err != nil {
		b.B = b.B[:before]
		return err
	}
	// remove \n added by json.Encoder.Encode.  So helpful!
	if b.B[len(b.B)-1] == '\n' {
		b.B = b.B[:len(b.B)-1]
	}
	return nil
}

func (layer *Layer) builder() *builder {
	bRaw := layer.builderPool.Get()
	var b *builder
	if bRaw != nil {
		b = bRaw.(*builder)
		b.Reset()
	} else {
		b = &builder{
			layer: layer,
			JBuilder: sdutil.JBuilder{
				B:        make([]byte, 0, minBuffer),
				FastKeys: layer.fastKeys,
			},
		}
		b.encoder = json.NewEncoder(&b.JBuilder)
		b.encoder.SetEscapeHTML(false)
	}
	return b
}

func (b *builder) reclaim() {
	if len(b.B) > maxBufferToKeep {
		return
	}
	b.layer.builderPool.Put(b)
}
