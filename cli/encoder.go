package cli

import (
	"bytes"
	"io"
	"math"
	"strconv"
)

type encoder struct {
	w   *bytes.Buffer
	buf [64]byte
}

func newEncoder() *encoder {
	// reuse the buffer in multiple calls of marshal
	return &encoder{w: new(bytes.Buffer)}
}

func (e *encoder) marshal(vs []float64, w io.Writer) error {
	e.encodeArray(vs)
	e.w.WriteByte('\n')
	_, err := w.Write(e.w.Bytes())
	e.w.Reset()
	return err
}

func (e *encoder) encodeArray(vs []float64) {
	printColored(e.w, arrayColor, "[")
	for i, v := range vs {
		if i > 0 {
			printColored(e.w, arrayColor, ",")
		}
		e.encodeFloat64(v)
	}
	printColored(e.w, arrayColor, "]")
}

// ref: floatEncoder in encoding/json
func (e *encoder) encodeFloat64(f float64) {
	if math.IsNaN(f) {
		e.w.WriteString("null")
		return
	}
	if f >= math.MaxFloat64 {
		f = math.MaxFloat64
	} else if f <= -math.MaxFloat64 {
		f = -math.MaxFloat64
	}
	fmt := byte('f')
	if x := math.Abs(f); x != 0 && x < 1e-6 || x >= 1e21 {
		fmt = 'e'
	}
	buf := strconv.AppendFloat(e.buf[:0], f, fmt, -1, 64)
	if fmt == 'e' {
		// clean up e-09 to e-9
		if n := len(buf); n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	printColored(e.w, numberColor, string(buf))
}
