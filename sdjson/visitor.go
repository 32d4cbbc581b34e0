package sdjson

import (
	"fmt"

	"github.com/sdlog/sdlog/sdbase"
)

// visitor writes typed field callbacks into an open JSON object.
// Single-use: no callback may be invoked after Finish.
type visitor struct {
	*builder
}

var _ sdbase.Visitor = &visitor{}

func (v *visitor) Int64(k string, val int64) {
	v.AddKey(k)
	v.AddInt64(val)
}

func (v *visitor) Uint64(k string, val uint64) {
	v.AddKey(k)
	v.AddUint64(val)
}

func (v *visitor) Float64(k string, val float64) {
	v.AddKey(k)
	v.AddFloat64(val)
}

func (v *visitor) Bool(k string, val bool) {
	v.AddKey(k)
	v.AddBool(val)
}

func (v *visitor) String(k string, val string) {
	v.AddKey(k)
	v.AddString(val)
}

// Any covers values with no dedicated callback.  They are recorded
// from their display representation: not semantically typed, but no
// field is ever dropped.
func (v *visitor) Any(k string, val interface{}) {
	v.AddKey(k)
	v.AddString(fmt.Sprintf("%v", val))
}

// Error records the error's message under k.  When the error wraps
// others, a sibling "<k>.sources" array preserves each cause's
// message, outermost first.
func (v *visitor) Error(k string, err error) {
	v.AddKey(k)
	v.AddString(err.Error())
	sources := errorSources(err)
	if len(sources) == 0 {
		return
	}
	v.AddKey(k + ".sources")
	v.AppendByte('[')
	for _, source := range sources {
		v.Comma()
		v.AddString(source)
	}
	v.AppendByte(']')
}

func (v *visitor) Finish() error {
	return nil
}

func errorSources(err error) []string {
	var sources []string
	for {
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
		if err == nil {
			break
		}
		sources = append(sources, err.Error())
	}
	return sources
}
