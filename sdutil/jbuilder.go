package sdutil

import (
	"io"
	"math"
	"strconv"
	"time"
)

// JBuilder accumulates a JSON document as a flat byte slice.  It is
// append-only: callers are responsible for the overall document
// structure, JBuilder only guarantees that each individual add is
// well-formed and that commas are placed where needed.
type JBuilder struct {
	B        []byte
	FastKeys bool
}

var _ io.Writer = &JBuilder{}

// Comma adds a comma if a comma is needed based
// on what's already in the JBuilder: if the previous
// character is '{', '[', or ':' then it does not add a
// comma.  Otherwise it does.
func (b *JBuilder) Comma() {
	if len(b.B) == 0 {
		return
	}
	switch b.B[len(b.B)-1] {
	case '[', '{', ':':
		return
	}
	b.B = append(b.B, ',')
}

func (b *JBuilder) AppendByte(v byte) {
	b.B = append(b.B, v)
}

// AppendBytes adds the bytes without wrapping or checking
func (b *JBuilder) AppendBytes(v []byte) {
	b.B = append(b.B, v...)
}

// AppendString adds the bytes without wrapping or checking
func (b *JBuilder) AppendString(v string) {
	b.B = append(b.B, v...)
}

// Write allows JBuilder to be an io.Writer
func (b *JBuilder) Write(v []byte) (int, error) {
	b.B = append(b.B, v...)
	return len(v), nil
}

func (b *JBuilder) Reset() {
	b.B = b.B[:0]
}

// AddSafeString adds a JSON-encoded string that is known to not need escaping
func (b *JBuilder) AddSafeString(v string) {
	b.B = append(b.B, '"')
	b.AppendString(v)
	b.B = append(b.B, '"')
}

// AddString adds a JSON-encoded string
func (b *JBuilder) AddString(v string) {
	b.B = append(b.B, '"')
	b.AddStringBody(v)
	b.B = append(b.B, '"')
}

// AddStringBody adds the escaped body of a JSON string without the
// surrounding quotes.
func (b *JBuilder) AddStringBody(v string) {
	b.string(v)
}

// AddBytesBody adds the escaped body of a JSON string without the
// surrounding quotes.
func (b *JBuilder) AddBytesBody(v []byte) {
	b.bytes(v)
}

func (b *JBuilder) AddUint64(i uint64) {
	b.B = strconv.AppendUint(b.B, i, 10)
}

// AddFloat64 emits a JSON number.  NaN and the infinities have no
// JSON number representation so they fall back to quoted strings
// rather than corrupting the document.
func (b *JBuilder) AddFloat64(f float64) {
	switch {
	case math.IsNaN(f):
		b.B = append(b.B, `"NaN"`...)
	case math.IsInf(f, 1):
		b.B = append(b.B, `"+Inf"`...)
	case math.IsInf(f, -1):
		b.B = append(b.B, `"-Inf"`...)
	default:
		b.B = strconv.AppendFloat(b.B, f, 'f', -1, 64)
	}
}

func (b *JBuilder) AddInt64(i int64) {
	b.B = strconv.AppendInt(b.B, i, 10)
}

func (b *JBuilder) AddBool(v bool) {
	b.B = strconv.AppendBool(b.B, v)
}

func (b *JBuilder) AddNull() {
	b.B = append(b.B, 'n', 'u', 'l', 'l')
}

// AddTime adds a quoted RFC3339 timestamp in UTC.
func (b *JBuilder) AddTime(t time.Time) {
	b.B = append(b.B, '"')
	b.B = t.UTC().AppendFormat(b.B, time.RFC3339)
	b.B = append(b.B, '"')
}

// AddKey calls Comma() and then adds "k":
// It skips checking if the key needs escape if FastKeys
// is true.
func (b *JBuilder) AddKey(v string) {
	if b.FastKeys {
		b.AddUncheckedKey(v)
	} else {
		b.Comma()
		b.AddString(v)
		b.B = append(b.B, ':')
	}
}

// AddSafeKey adds a key that is known to not need escaping.
func (b *JBuilder) AddSafeKey(v string) {
	b.AddUncheckedKey(v)
}

func (b *JBuilder) AddUncheckedKey(v string) {
	b.Comma()
	b.B = append(b.B, '"')
	b.B = append(b.B, v...)
	b.B = append(b.B, '"', ':')
}

func BuildKey(v string) []byte {
	b := &JBuilder{}
	b.B = append(b.B, ',')
	b.AddString(v)
	b.B = append(b.B, ':')
	return b.B
}
