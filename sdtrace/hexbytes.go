// Package sdtrace provides the identity type used to key spans.
package sdtrace

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
)

// HexBytes8 is an 8-byte identifier that keeps a hex-encoded copy of
// itself so that String() does not allocate.
type HexBytes8 struct {
	b [8]byte
	h [8 * 2]byte
}

var zeroHex = bytes.Repeat([]byte{'0'}, 8*2)

func NewHexBytes8() HexBytes8 {
	var x HexBytes8
	copy(x.h[:], zeroHex)
	return x
}

func NewHexBytes8FromSlice(b []byte) HexBytes8 {
	var x HexBytes8
	setBytes(x.b[:], b)
	hex.Encode(x.h[:], x.b[:])
	return x
}

// NewRandomHexBytes8 returns a new random non-zero identifier.
func NewRandomHexBytes8() HexBytes8 {
	var x HexBytes8
	for {
		_, _ = rand.Read(x.b[:])
		if !bytes.Equal(x.b[:], make([]byte, 8)) {
			break
		}
	}
	hex.Encode(x.h[:], x.b[:])
	return x
}

func (x HexBytes8) IsZero() bool {
	return x.b == [8]byte{}
}

func (x HexBytes8) String() string {
	return string(x.h[:])
}

func (x HexBytes8) Bytes() []byte {
	return x.b[:]
}

func (x HexBytes8) Array() [8]byte {
	return x.b
}

func setBytes(dest []byte, b []byte) {
	if len(b) >= len(dest) {
		copy(dest, b[:len(dest)])
	} else {
		for i := range dest {
			dest[i] = 0
		}
		copy(dest[len(dest)-len(b):], b)
	}
}
