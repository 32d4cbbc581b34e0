package sdbytes

import (
	"io"
)

var _ BytesWriter = IOWriter{}

type IOWriter struct {
	io.Writer
}

func WriteToIOWriter(w io.Writer) BytesWriter {
	return IOWriter{
		Writer: w,
	}
}

func (iow IOWriter) Buffered() bool { return false }

func (iow IOWriter) Line(b []byte) error {
	_, err := iow.Write(b)
	return err
}

func (iow IOWriter) Close() {
	if wc, ok := iow.Writer.(io.WriteCloser); ok {
		_ = wc.Close()
	}
}
