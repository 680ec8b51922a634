package numconv

import "strconv"

// literalSpelling is the fixed, process-wide string table backing
// PushLiteral. It stands in for the "string-to-interned-value" collaborator
// the original engine delegated to its host interpreter.
var literalSpelling = [...]string{
	LiteralZero:        "0",
	LiteralNaN:         "NaN",
	LiteralInfinity:    "Infinity",
	LiteralNegInfinity: "-Infinity",
}

// StringBuilderSink is the default Sink implementation: it accumulates the
// pushed result in a byte slice and exposes it via String/Bytes. It is the
// Sink used by StringifyString and AppendStringify, and is a reasonable
// starting point for any host that doesn't need custom buffer ownership.
type StringBuilderSink struct {
	buf []byte
}

// PushLiteral implements Sink.
func (s *StringBuilderSink) PushLiteral(kind LiteralKind) {
	s.buf = append(s.buf, literalSpelling[kind]...)
}

// PushFormattedUint implements Sink.
func (s *StringBuilderSink) PushFormattedUint(neg bool, v uint32) {
	if neg {
		s.buf = append(s.buf, '-')
	}
	s.buf = strconv.AppendUint(s.buf, uint64(v), 10)
}

// PushDigits implements Sink.
func (s *StringBuilderSink) PushDigits(neg bool, digits []byte) {
	if neg {
		s.buf = append(s.buf, '-')
	}
	s.buf = append(s.buf, digits...)
}

// String returns the accumulated result.
func (s *StringBuilderSink) String() string {
	return string(s.buf)
}

// Bytes returns the accumulated result's backing bytes. The caller must
// not retain a reference across a second use of the same sink.
func (s *StringBuilderSink) Bytes() []byte {
	return s.buf
}

// Reset clears the sink so it can be reused for another conversion without
// a new allocation.
func (s *StringBuilderSink) Reset() {
	s.buf = s.buf[:0]
}

// StringifyString converts x to a string in one call, for callers that
// don't need a custom Sink.
func StringifyString(x float64, radix int) string {
	var s StringBuilderSink
	Stringify(&s, x, radix, -1)
	return s.String()
}

// appendSink adapts a caller-owned []byte into a Sink for AppendStringify,
// mirroring this codebase's preference for append-style APIs over
// allocating a fresh buffer on every call in hot serialization paths (see
// e.g. Params.Serialize's *bytes.Buffer reuse).
type appendSink struct {
	dst []byte
}

func (a *appendSink) PushLiteral(kind LiteralKind) {
	a.dst = append(a.dst, literalSpelling[kind]...)
}

func (a *appendSink) PushFormattedUint(neg bool, v uint32) {
	if neg {
		a.dst = append(a.dst, '-')
	}
	a.dst = strconv.AppendUint(a.dst, uint64(v), 10)
}

func (a *appendSink) PushDigits(neg bool, digits []byte) {
	if neg {
		a.dst = append(a.dst, '-')
	}
	a.dst = append(a.dst, digits...)
}

// AppendStringify appends the string form of x to dst and returns the
// extended buffer, as FormatFloat/AppendFloat split the work in this
// codebase's other numeric-to-text conversions.
func AppendStringify(dst []byte, x float64, radix int) []byte {
	a := appendSink{dst: dst}
	Stringify(&a, x, radix, -1)
	return a.dst
}
