package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []Record{
		{Bits: 0x3FB999999999999A, Radix: 10, Text: "0.1"},
		{Bits: 0, Radix: 16, Text: "0"},
		{Bits: 0xC045000000000000, Radix: 2, Text: "-101010"},
	}

	var buf bytes.Buffer
	Encode(&buf, records)

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	Encode(&buf, nil)

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncodeResetsBuffer(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("stale data")

	Encode(&buf, []Record{{Bits: 1, Radix: 10, Text: "1"}})

	got, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Text)
}

func TestDecodeTruncatedInputIsError(t *testing.T) {
	var buf bytes.Buffer
	Encode(&buf, []Record{{Bits: 1, Radix: 10, Text: "1"}})

	truncated := buf.Bytes()[:buf.Len()-1]
	_, err := Decode(bytes.NewReader(truncated))
	assert.Error(t, err)
}
