package twsframe

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadFrameRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	body := []byte("9\x008\x001\x00")
	require.NoError(t, w.WriteFrame(body))

	r := NewReader(&buf)
	got, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestReadFrameConsumesExactBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	body := []byte("hello\x00")
	require.NoError(t, w.WriteFrame(body))
	extra := []byte("trailing")
	buf.Write(extra)

	// The Reader buffers its source; a one-byte-at-a-time source shows
	// whether ReadFrame itself pulls more than the frame from it.
	r := NewReader(iotest.OneByteReader(&buf))
	got, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, body, got)

	rest := make([]byte, len(extra))
	n, err := io.ReadFull(&buf, rest)
	require.NoError(t, err)
	assert.Equal(t, extra, rest[:n])
}

func TestEmptyFrameIsLegal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteFrame(nil))

	r := NewReader(&buf)
	got, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCleanCloseWithEmptyBufferIsEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadFrame()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMidFrameCloseIsError(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 10})
	buf.Write([]byte("short"))

	r := NewReader(&buf)
	_, err := r.ReadFrame()
	assert.ErrorIs(t, err, ErrMidFrameClose)
}

func TestReassemblesSplitReads(t *testing.T) {
	var full bytes.Buffer
	w := NewWriter(&full)
	body := []byte("a\x00bb\x00ccc\x00")
	require.NoError(t, w.WriteFrame(body))

	pr, pw := io.Pipe()
	go func() {
		data := full.Bytes()
		for i := 0; i < len(data); i += 2 {
			end := i + 2
			if end > len(data) {
				end = len(data)
			}
			pw.Write(data[i:end])
		}
		pw.Close()
	}()

	r := NewReader(pr)
	got, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestHandshakeHelloWritesUnframedLiteralThenFrame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHandshakeHello("100..163 +PACEAPI"))

	got := buf.Bytes()
	require.True(t, bytes.HasPrefix(got, HandshakePrefix))

	rest := got[len(HandshakePrefix):]
	r := NewReader(bytes.NewReader(rest))
	body, err := r.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, "100..163 +PACEAPI\x00", string(body))
}

func TestReadHandshakeReply(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteFrame([]byte("163\x0020240101 00:00:00 UTC\x00")))

	r := NewReader(&buf)
	version, connTime, err := r.ReadHandshakeReply()
	require.NoError(t, err)
	assert.Equal(t, "163", version)
	assert.Equal(t, "20240101 00:00:00 UTC", connTime)
}
