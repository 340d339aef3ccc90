package inbound

import (
	"testing"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(tokens ...string) []byte {
	var b []byte
	for _, t := range tokens {
		b = append(b, []byte(t)...)
		b = append(b, 0)
	}
	return b
}

func TestParseTickPriceDecodesOptionalSize(t *testing.T) {
	body := frame("1000", "4", "187.25", "")
	evt, err := Parse(twscat.TickPrice, body)
	require.NoError(t, err)
	tp, ok := evt.(twsmodel.TickPriceEvent)
	require.True(t, ok)
	assert.Equal(t, twsmodel.RequestId(1000), tp.ReqID)
	assert.Equal(t, 4, tp.TickType)
	assert.Equal(t, 187.25, tp.Price)
	assert.Nil(t, tp.Size)
}

func TestParseNextValidIDDecodesOrderID(t *testing.T) {
	body := frame("100")
	evt, err := Parse(twscat.NextValidID, body)
	require.NoError(t, err)
	nv, ok := evt.(twsmodel.NextValidIDEvent)
	require.True(t, ok)
	assert.Equal(t, twsmodel.OrderId(100), nv.OrderID)
}

func TestParseErrorMessageUnscopedForNegativeReqID(t *testing.T) {
	body := frame("-1", "2104", "Market data farm connection is OK")
	evt, err := Parse(twscat.ErrorMessage, body)
	require.NoError(t, err)
	se, ok := evt.(twsmodel.ServerErrorEvent)
	require.True(t, ok)
	assert.Nil(t, se.OriginReqID)
	assert.Equal(t, 2104, se.Code)
	reqID, scoped := se.RequestID()
	assert.False(t, scoped)
	assert.Equal(t, twsmodel.RequestId(0), reqID)
}

func TestParseErrorMessageKeepsOriginReqIDForPositiveReqID(t *testing.T) {
	body := frame("7", "321", "order rejected")
	evt, err := Parse(twscat.ErrorMessage, body)
	require.NoError(t, err)
	se, ok := evt.(twsmodel.ServerErrorEvent)
	require.True(t, ok)
	require.NotNil(t, se.OriginReqID)
	assert.Equal(t, twsmodel.RequestId(7), *se.OriginReqID)
}

func TestParseAcctValueRoundTrip(t *testing.T) {
	body := frame("NetLiquidation", "123456.78", "USD", "DU123456")
	evt, err := Parse(twscat.AcctValue, body)
	require.NoError(t, err)
	av, ok := evt.(twsmodel.AcctValueEvent)
	require.True(t, ok)
	assert.Equal(t, "NetLiquidation", av.Key)
	assert.Equal(t, "DU123456", av.AccountName)
}

func TestParseHistoricalDataReadsExactBarCount(t *testing.T) {
	body := frame(
		"55", "20230101-00:00:00", "20230102-00:00:00", "2",
		"20230101-09:30:00", "100", "101", "99", "100.5", "1000", "100.2", "5",
		"20230101-09:31:00", "100.5", "102", "100", "101", "1200", "100.8", "6",
	)
	evt, err := Parse(twscat.HistoricalData, body)
	require.NoError(t, err)
	hd, ok := evt.(twsmodel.HistoricalDataEvent)
	require.True(t, ok)
	assert.Len(t, hd.Data.Bars, 2)
	assert.Equal(t, 100.5, hd.Data.Bars[0].Close)
}

func TestParseHistoricalTicksRespectsDoneFlag(t *testing.T) {
	body := frame("9", "1", "20230101-09:30:00", "100.1", "5", "1")
	evt, err := Parse(twscat.HistoricalTicks, body)
	require.NoError(t, err)
	ht, ok := evt.(twsmodel.HistoricalTicksEvent)
	require.True(t, ok)
	assert.True(t, ht.Done)
	assert.Len(t, ht.Ticks, 1)
}

func TestParseOpenOrderHandlesAbsentConditionalBlocks(t *testing.T) {
	body := frame(
		"1", // orderId
		// contract
		"0", "AMD", "STK", "", "0", "0", "", "SMART", "", "USD", "", "",
		// order
		"BUY", "100", "MKT", "", "", "DAY", "", "", "", "0", "", "1", "0",
		// combo legs count
		"0",
		// delta neutral present
		"0",
		// hedge type
		"",
		// algo strategy
		"",
		// scale init level size (absent -> empty marker pair)
		"", "",
		// conditions count
		"0",
		// soft dollar tier
		"", "", "",
		// status block
		"Submitted", "0", "100", "0", "0", "0", "0", "0", "", "0",
	)
	evt, err := Parse(twscat.OpenOrder, body)
	require.NoError(t, err)
	oo, ok := evt.(twsmodel.OpenOrderEvent)
	require.True(t, ok)
	assert.Equal(t, "AMD", oo.Contract.Symbol)
	assert.Equal(t, twscat.ActionBuy, oo.Order.Action)
	assert.Nil(t, oo.Order.ScaleInitLevelSize)
	assert.Empty(t, oo.Order.Conditions)
}

func TestParseUnknownTagReturnsErrUnknownTag(t *testing.T) {
	_, err := Parse(twscat.Incoming(9999), frame())
	require.Error(t, err)
	var unk *ErrUnknownTag
	assert.ErrorAs(t, err, &unk)
}
