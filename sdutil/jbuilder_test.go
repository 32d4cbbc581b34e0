package sdutil_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/sdlog/sdlog/sdutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommaPlacement(t *testing.T) {
	var b sdutil.JBuilder
	b.AppendByte('{')
	b.AddKey("a")
	b.AddInt64(1)
	b.AddKey("b")
	b.AddInt64(2)
	b.AppendByte('}')
	assert.Equal(t, `{"a":1,"b":2}`, string(b.B))
}

func TestCommaInsideArray(t *testing.T) {
	var b sdutil.JBuilder
	b.AppendByte('[')
	for _, s := range []string{"x", "y", "z"} {
		b.Comma()
		b.AddString(s)
	}
	b.AppendByte(']')
	assert.Equal(t, `["x","y","z"]`, string(b.B))
}

func TestStringEscaping(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain", "hello"},
		{"quote", `say "hi"`},
		{"backslash", `a\b`},
		{"newline", "line1\nline2"},
		{"tab", "a\tb"},
		{"nul", "a\x00b"},
		{"control", "a\x01b"},
		{"angle", "<script>"},
		{"unicode", "héllo wörld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b sdutil.JBuilder
			b.AddString(tc.in)
			require.Truef(t, json.Valid(b.B), "valid JSON: %q", string(b.B))
			var decoded string
			require.NoError(t, json.Unmarshal(b.B, &decoded))
			assert.Equal(t, tc.in, decoded, "round trip")
		})
	}
}

func TestFloatsAreAlwaysValidJSON(t *testing.T) {
	for _, f := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.NaN(), math.Inf(1), math.Inf(-1)} {
		var b sdutil.JBuilder
		b.AddFloat64(f)
		assert.Truef(t, json.Valid(b.B), "valid JSON for %v: %q", f, string(b.B))
	}
}

func TestAddTimeIsRFC3339UTC(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)
	var b sdutil.JBuilder
	b.AddTime(time.Date(2026, 8, 28, 5, 30, 0, 0, loc))
	var decoded string
	require.NoError(t, json.Unmarshal(b.B, &decoded))
	assert.Equal(t, "2026-08-28T09:30:00Z", decoded)
}

func TestAddKeyEscapes(t *testing.T) {
	var b sdutil.JBuilder
	b.AppendByte('{')
	b.AddKey("we\"ird")
	b.AddBool(true)
	b.AppendByte('}')
	assert.True(t, json.Valid(b.B), "escaped key keeps the object valid")
}

func TestUncheckedKeySkipsEscaping(t *testing.T) {
	b := sdutil.JBuilder{FastKeys: true}
	b.AppendByte('{')
	b.AddKey("plain")
	b.AddNull()
	b.AppendByte('}')
	assert.Equal(t, `{"plain":null}`, string(b.B))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, `,"dur":`, string(sdutil.BuildKey("dur")))
}
