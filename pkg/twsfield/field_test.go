package twsfield

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutString("AMD")
	w.PutInt(42)
	w.PutInt64(9223372036854775807)
	w.PutFloat(3.25)
	w.PutDecimal(decimal.RequireFromString("1.23456789"))
	w.PutBool(true)
	w.PutBool(false)
	w.PutOptionalString(nil)
	s := "present"
	w.PutOptionalString(&s)

	r := NewReader(w.Bytes())

	str, err := r.String("symbol")
	require.NoError(t, err)
	assert.Equal(t, "AMD", str)

	i, err := r.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	i64, err := r.Int64("big")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), i64)

	f, err := r.Float("price")
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	d, err := r.Decimal("qty")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.23456789").Equal(d))

	b, err := r.Bool("flag1")
	require.NoError(t, err)
	assert.True(t, b)

	b2, err := r.Bool("flag2")
	require.NoError(t, err)
	assert.False(t, b2)

	opt1, err := r.OptionalString("opt1")
	require.NoError(t, err)
	assert.Nil(t, opt1)

	opt2, err := r.OptionalString("opt2")
	require.NoError(t, err)
	require.NotNil(t, opt2)
	assert.Equal(t, "present", *opt2)

	assert.Equal(t, 0, r.Remaining())
}

func TestEmptyTokenDecodesAsNone(t *testing.T) {
	r := NewReader([]byte("\x00"))

	s, err := r.OptionalString("s")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSentinelDoubleDecodesAsNone(t *testing.T) {
	r := NewReader([]byte(SentinelDouble + "\x00"))
	f, err := r.OptionalFloat("f")
	require.NoError(t, err)
	assert.Nil(t, f)

	r2 := NewReader([]byte(SentinelDouble + "\x00"))
	d, err := r2.OptionalDecimal("d")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSentinelIntDecodesAsNone(t *testing.T) {
	r := NewReader([]byte(SentinelInt + "\x00"))
	i, err := r.OptionalInt("i")
	require.NoError(t, err)
	assert.Nil(t, i)

	r2 := NewReader([]byte(SentinelInt + "\x00"))
	i64, err := r2.OptionalInt64("i64")
	require.NoError(t, err)
	assert.Nil(t, i64)
}

func TestScientificNotationDecimalRoundTrips(t *testing.T) {
	r := NewReader([]byte("1.5E3\x00"))
	d, err := r.Decimal("qty")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(1500).Equal(d))
}

func TestExhaustedReaderIsAnError(t *testing.T) {
	r := NewReader([]byte(""))
	_, err := r.String("missing")
	require.Error(t, err)
	var exhausted *ErrExhausted
	assert.ErrorAs(t, err, &exhausted)
}

func TestTrailingTokensAreIgnorable(t *testing.T) {
	r := NewReader([]byte("1\x002\x003\x00"))
	v, err := r.Int("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, r.Remaining())
}

func TestBadBooleanIsDecodeError(t *testing.T) {
	r := NewReader([]byte("maybe\x00"))
	_, err := r.Bool("flag")
	require.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}
