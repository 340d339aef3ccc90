// Package twsframe implements the length-prefixed frame codec: every
// post-handshake message in either direction is a 4-byte big-endian
// length prefix followed by that many bytes of NUL-delimited body.
package twsframe

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HandshakePrefix is the literal, unframed bytes the client writes first,
// before any length-prefixed message exists on the wire.
var HandshakePrefix = []byte("API\x00")

// ErrMidFrameClose reports a peer closing the connection with a partial
// frame already buffered -- a transport error, not end-of-stream.
var ErrMidFrameClose = errors.New("twsframe: connection closed mid-frame")

const lengthPrefixSize = 4

// Reader pulls complete frame bodies out of a buffered byte stream. It
// owns no other state: the demultiplexer holds exactly one Reader for
// the life of a connection, per the single-owner invariant.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadFrame blocks until a complete frame body is available, returns it,
// or returns io.EOF for a clean close with no partial frame buffered.
// A close mid-frame returns ErrMidFrameClose.
func (f *Reader) ReadFrame() ([]byte, error) {
	var lenBuf [lengthPrefixSize]byte
	if _, err := io.ReadFull(f.br, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrMidFrameClose
		}
		return nil, fmt.Errorf("twsframe: read length prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(lenBuf[:])
	body := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(f.br, body); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrMidFrameClose
			}
			return nil, fmt.Errorf("twsframe: read body: %w", err)
		}
	}
	return body, nil
}

// ReadHandshakeReply reads the server's two-token handshake reply:
// server version and connection time, NUL-separated, inside a normal
// length-prefixed frame (the only unframed bytes are the client's
// initial "API\0" literal, written by Writer.WriteHandshakeHello).
func (f *Reader) ReadHandshakeReply() (serverVersion string, connectionTime string, err error) {
	body, err := f.ReadFrame()
	if err != nil {
		return "", "", err
	}
	tokens := splitNUL(body)
	if len(tokens) < 1 {
		return "", "", fmt.Errorf("twsframe: empty handshake reply")
	}
	serverVersion = tokens[0]
	if len(tokens) > 1 {
		connectionTime = tokens[1]
	}
	return serverVersion, connectionTime, nil
}

func splitNUL(body []byte) []string {
	var out []string
	start := 0
	for i, b := range body {
		if b == 0 {
			out = append(out, string(body[start:i]))
			start = i + 1
		}
	}
	if start < len(body) {
		out = append(out, string(body[start:]))
	}
	return out
}

// Writer serializes frame bodies to an underlying writer with a 4-byte
// big-endian length prefix. Writer is not safe for concurrent use: the
// demultiplexer holds it and serializes all writes through a mutex.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteHandshakeHello writes the unframed "API\0" literal followed by a
// normal framed body declaring the supported client-protocol version
// range, e.g. "100..163 +PACEAPI".
func (f *Writer) WriteHandshakeHello(versionRange string) error {
	if _, err := f.bw.Write(HandshakePrefix); err != nil {
		return fmt.Errorf("twsframe: write handshake literal: %w", err)
	}
	return f.WriteFrame([]byte(versionRange + "\x00"))
}

// WriteFrame prepends the 4-byte length prefix and flushes. It takes no
// lock: concurrent calls on the same Writer can interleave unless the
// caller serializes them.
func (f *Writer) WriteFrame(body []byte) error {
	var lenBuf [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	if _, err := f.bw.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("twsframe: write length prefix: %w", err)
	}
	if _, err := f.bw.Write(body); err != nil {
		return fmt.Errorf("twsframe: write body: %w", err)
	}
	return f.bw.Flush()
}
