// Package wire encodes a batch run's conversion records to a compact
// binary log, in the same buffer-reuse, little-endian style this
// codebase uses for its other wire formats (see Params.Serialize/Update):
// a caller-owned *bytes.Buffer is reset and filled field by field with
// encoding/binary, and a write failure -- which only happens on OOM --
// panics rather than threading an error through every append.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Record is one converted value as cmd/numconv's batch command wants to
// persist it: the original bit pattern (so a record can be replayed
// through Stringify without re-parsing decimal text), the radix it was
// rendered at, and the rendered string itself.
type Record struct {
	Bits  uint64
	Radix uint8
	Text  string
}

// Encode appends the wire form of records to buf, resetting buf first.
func Encode(buf *bytes.Buffer, records []Record) {
	buf.Reset()

	_ = binary.Write(buf, binary.LittleEndian, uint64(len(records)))
	for _, rec := range records {
		_ = binary.Write(buf, binary.LittleEndian, rec.Bits)
		_ = binary.Write(buf, binary.LittleEndian, rec.Radix)
		_ = binary.Write(buf, binary.LittleEndian, uint32(len(rec.Text)))

		n, err := buf.WriteString(rec.Text)
		if err != nil || n != len(rec.Text) {
			panic("wire: buffer write failed") // OOM
		}
	}
}

// Decode reads back the records Encode wrote to r.
func Decode(r io.Reader) ([]Record, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("wire: read record count: %w", err)
	}

	records := make([]Record, 0, count)
	for i := uint64(0); i < count; i++ {
		var rec Record
		if err := binary.Read(r, binary.LittleEndian, &rec.Bits); err != nil {
			return nil, fmt.Errorf("wire: record %d: read bits: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &rec.Radix); err != nil {
			return nil, fmt.Errorf("wire: record %d: read radix: %w", i, err)
		}
		var textLen uint32
		if err := binary.Read(r, binary.LittleEndian, &textLen); err != nil {
			return nil, fmt.Errorf("wire: record %d: read text length: %w", i, err)
		}
		text := make([]byte, textLen)
		if _, err := io.ReadFull(r, text); err != nil {
			return nil, fmt.Errorf("wire: record %d: read text: %w", i, err)
		}
		rec.Text = string(text)
		records = append(records, rec)
	}
	return records, nil
}
