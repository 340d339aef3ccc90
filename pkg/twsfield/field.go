// Package twsfield implements the wire-level field codec: encoding typed
// values into NUL-terminated ASCII tokens and decoding tokens back into
// typed values, including the sentinel conventions the server uses for
// "unset" numeric and integer fields.
package twsfield

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// SentinelDouble is the IEEE-754 double max the server sends in place
	// of an unset floating point field.
	SentinelDouble = "1.7976931348623157E308"

	// SentinelInt is the 32-bit signed max the server sends in place of an
	// unset integer field.
	SentinelInt = "2147483647"
)

// DecodeError reports a token that could not be interpreted as its
// declared type.
type DecodeError struct {
	Field string
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode field %q from %q: %v", e.Field, e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownVariantError reports an enum token with no matching spelling.
type UnknownVariantError struct {
	Field string
	Raw   string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant for field %q: %q", e.Field, e.Raw)
}

// ErrExhausted is returned by Reader when a required field has no more
// tokens to consume. Per the spec, trailing tokens may legitimately be
// absent (server added them in a later version the client doesn't know
// about yet) but a required leading field missing is a parse error.
type ErrExhausted struct {
	Field string
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("field %q: no more tokens in frame body", e.Field)
}

// Writer accumulates NUL-terminated tokens for an outbound frame body.
// Writer never does I/O; it only builds the byte slice an encoder hands
// to the frame codec.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated body. The caller owns the returned slice.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) PutRaw(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}

func (w *Writer) PutString(s string) {
	w.PutRaw(s)
}

func (w *Writer) PutOptionalString(s *string) {
	if s == nil {
		w.PutRaw("")
		return
	}
	w.PutRaw(*s)
}

func (w *Writer) PutInt(v int) {
	w.PutRaw(strconv.Itoa(v))
}

func (w *Writer) PutOptionalInt(v *int) {
	if v == nil {
		w.PutRaw("")
		return
	}
	w.PutInt(*v)
}

func (w *Writer) PutInt64(v int64) {
	w.PutRaw(strconv.FormatInt(v, 10))
}

func (w *Writer) PutOptionalInt64(v *int64) {
	if v == nil {
		w.PutRaw("")
		return
	}
	w.PutInt64(*v)
}

func (w *Writer) PutFloat(v float64) {
	w.PutRaw(strconv.FormatFloat(v, 'g', -1, 64))
}

func (w *Writer) PutOptionalFloat(v *float64) {
	if v == nil {
		w.PutRaw("")
		return
	}
	w.PutFloat(*v)
}

func (w *Writer) PutDecimal(d decimal.Decimal) {
	w.PutRaw(d.String())
}

func (w *Writer) PutOptionalDecimal(d *decimal.Decimal) {
	if d == nil {
		w.PutRaw("")
		return
	}
	w.PutDecimal(*d)
}

func (w *Writer) PutBool(b bool) {
	if b {
		w.PutRaw("1")
	} else {
		w.PutRaw("0")
	}
}

func (w *Writer) PutOptionalBool(b *bool) {
	if b == nil {
		w.PutRaw("")
		return
	}
	w.PutBool(*b)
}

// Reader walks the NUL-delimited tokens of an inbound frame body.
// Reader is positional and order-sensitive: callers must consume fields
// in the order the parser's message kind declares them.
type Reader struct {
	tokens []string
	pos    int
}

// NewReader splits body on NUL. The trailing empty token produced by a
// body ending in NUL is dropped so Remaining() reflects only real fields.
func NewReader(body []byte) *Reader {
	s := string(body)
	tokens := strings.Split(s, "\x00")
	if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return &Reader{tokens: tokens}
}

// Remaining reports how many tokens are left unconsumed. Parsers use this
// to detect legitimate trailing tokens added by a newer server version.
func (r *Reader) Remaining() int {
	return len(r.tokens) - r.pos
}

func (r *Reader) next(field string) (string, error) {
	if r.pos >= len(r.tokens) {
		return "", &ErrExhausted{Field: field}
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, nil
}

// Peek returns the next token without consuming it, or ("", false) if
// exhausted, so a caller can branch on a field before deciding how to
// consume it.
func (r *Reader) Peek() (string, bool) {
	if r.pos >= len(r.tokens) {
		return "", false
	}
	return r.tokens[r.pos], true
}

func (r *Reader) String(field string) (string, error) {
	return r.next(field)
}

func (r *Reader) OptionalString(field string) (*string, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, nil
	}
	return &tok, nil
}

func (r *Reader) Int(field string) (int, error) {
	tok, err := r.next(field)
	if err != nil {
		return 0, err
	}
	if tok == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return v, nil
}

func (r *Reader) OptionalInt(field string) (*int, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" || tok == SentinelInt {
		return nil, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return nil, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return &v, nil
}

func (r *Reader) Int64(field string) (int64, error) {
	tok, err := r.next(field)
	if err != nil {
		return 0, err
	}
	if tok == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return v, nil
}

func (r *Reader) OptionalInt64(field string) (*int64, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" || tok == SentinelInt {
		return nil, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return &v, nil
}

func (r *Reader) Float(field string) (float64, error) {
	tok, err := r.next(field)
	if err != nil {
		return 0, err
	}
	if tok == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return v, nil
}

func (r *Reader) OptionalFloat(field string) (*float64, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" || tok == SentinelDouble {
		return nil, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return &v, nil
}

// Decimal decodes a required fixed-precision decimal field. Both plain
// and scientific notation round-trip through decimal.NewFromString.
func (r *Reader) Decimal(field string) (decimal.Decimal, error) {
	tok, err := r.next(field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if tok == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Decimal{}, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return d, nil
}

func (r *Reader) OptionalDecimal(field string) (*decimal.Decimal, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" || tok == SentinelDouble {
		return nil, nil
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return nil, &DecodeError{Field: field, Token: tok, Err: err}
	}
	return &d, nil
}

func (r *Reader) Bool(field string) (bool, error) {
	tok, err := r.next(field)
	if err != nil {
		return false, err
	}
	switch tok {
	case "", "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, &DecodeError{Field: field, Token: tok, Err: fmt.Errorf("not a boolean")}
	}
}

func (r *Reader) OptionalBool(field string) (*bool, error) {
	tok, err := r.next(field)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, nil
	}
	var v bool
	switch tok {
	case "0":
		v = false
	case "1":
		v = true
	default:
		return nil, &DecodeError{Field: field, Token: tok, Err: fmt.Errorf("not a boolean")}
	}
	return &v, nil
}
