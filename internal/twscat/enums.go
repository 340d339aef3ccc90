package twscat

import "github.com/larkhollow/twsgo/pkg/twsfield"

type SecType int

const (
	SecTypeUnknown SecType = iota
	SecTypeStock
	SecTypeOption
	SecTypeFuture
	SecTypeFutureOption
	SecTypeIndex
	SecTypeCash
	SecTypeCombo
	SecTypeWarrant
	SecTypeBond
	SecTypeCommodity
	SecTypeNews
	SecTypeFund
)

var secTypeSpelling = twsfield.NewSpelling("secType",
	pair(SecTypeStock, "STK"),
	pair(SecTypeOption, "OPT"),
	pair(SecTypeFuture, "FUT"),
	pair(SecTypeFutureOption, "FOP"),
	pair(SecTypeIndex, "IND"),
	pair(SecTypeCash, "CASH"),
	pair(SecTypeCombo, "BAG"),
	pair(SecTypeWarrant, "WAR"),
	pair(SecTypeBond, "BOND"),
	pair(SecTypeCommodity, "CMDTY"),
	pair(SecTypeNews, "NEWS"),
	pair(SecTypeFund, "FUND"),
)

func (s SecType) Wire() string              { return secTypeSpelling.Encode(s) }
func ParseSecType(raw string) (SecType, error) { return secTypeSpelling.Decode(raw) }

type OptionRight int

const (
	OptionRightUndefined OptionRight = iota
	OptionRightPut
	OptionRightCall
)

var optionRightSpelling = twsfield.NewSpelling("right",
	pair(OptionRightPut, "PUT"),
	pair(OptionRightCall, "CALL"),
	pair(OptionRightUndefined, "0"),
)

func (o OptionRight) Wire() string                { return optionRightSpelling.Encode(o) }
func ParseOptionRight(raw string) (OptionRight, error) {
	if raw == "?" {
		return OptionRightUndefined, nil
	}
	return optionRightSpelling.Decode(raw)
}

type Action int

const (
	ActionBuy Action = iota
	ActionSell
	ActionShortSell
	ActionSellLong
)

var actionSpelling = twsfield.NewSpelling("action",
	pair(ActionBuy, "BUY"),
	pair(ActionSell, "SELL"),
	pair(ActionShortSell, "SSELL"),
	pair(ActionSellLong, "SLONG"),
)

func (a Action) Wire() string               { return actionSpelling.Encode(a) }
func ParseAction(raw string) (Action, error) { return actionSpelling.Decode(raw) }

type OrderType int

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeStop
	OrderTypeStopLimit
	OrderTypeTrail
	OrderTypeTrailLimit
	OrderTypeMidprice
	OrderTypePegBench
)

var orderTypeSpelling = twsfield.NewSpelling("orderType",
	pair(OrderTypeMarket, "MKT"),
	pair(OrderTypeLimit, "LMT"),
	pair(OrderTypeStop, "STP"),
	pair(OrderTypeStopLimit, "STP LMT"),
	pair(OrderTypeTrail, "TRAIL"),
	pair(OrderTypeTrailLimit, "TRAIL LIMIT"),
	pair(OrderTypeMidprice, "MIDPRICE"),
	pair(OrderTypePegBench, "PEG BENCH"),
)

func (o OrderType) Wire() string                 { return orderTypeSpelling.Encode(o) }
func ParseOrderType(raw string) (OrderType, error) { return orderTypeSpelling.Decode(raw) }

type TimeInForce int

const (
	TIFDay TimeInForce = iota
	TIFGTC
	TIFIOC
	TIFGTD
	TIFOPG
	TIFFOK
	TIFDTC
)

var tifSpelling = twsfield.NewSpelling("tif",
	pair(TIFDay, "DAY"),
	pair(TIFGTC, "GTC"),
	pair(TIFIOC, "IOC"),
	pair(TIFGTD, "GTD"),
	pair(TIFOPG, "OPG"),
	pair(TIFFOK, "FOK"),
	pair(TIFDTC, "DTC"),
)

func (t TimeInForce) Wire() string                  { return tifSpelling.Encode(t) }
func ParseTimeInForce(raw string) (TimeInForce, error) { return tifSpelling.Decode(raw) }

type HistoricalDataType int

const (
	WhatToShowTrades HistoricalDataType = iota
	WhatToShowMidpoint
	WhatToShowBid
	WhatToShowAsk
	WhatToShowBidAsk
	WhatToShowAdjustedLast
	WhatToShowSchedule
)

var whatToShowSpelling = twsfield.NewSpelling("whatToShow",
	pair(WhatToShowTrades, "TRADES"),
	pair(WhatToShowMidpoint, "MIDPOINT"),
	pair(WhatToShowBid, "BID"),
	pair(WhatToShowAsk, "ASK"),
	pair(WhatToShowBidAsk, "BID_ASK"),
	pair(WhatToShowAdjustedLast, "ADJUSTED_LAST"),
	pair(WhatToShowSchedule, "SCHEDULE"),
)

func (w HistoricalDataType) Wire() string { return whatToShowSpelling.Encode(w) }
func ParseHistoricalDataType(raw string) (HistoricalDataType, error) {
	return whatToShowSpelling.Decode(raw)
}

// DurationUnit and Duration encode the "<n> S|D|W|M|Y" outbound form.
type DurationUnit int

const (
	DurationSeconds DurationUnit = iota
	DurationDays
	DurationWeeks
	DurationMonths
	DurationYears
)

var durationUnitSpelling = twsfield.NewSpelling("durationUnit",
	pair(DurationSeconds, "S"),
	pair(DurationDays, "D"),
	pair(DurationWeeks, "W"),
	pair(DurationMonths, "M"),
	pair(DurationYears, "Y"),
)

func (d DurationUnit) Wire() string { return durationUnitSpelling.Encode(d) }

// BarSize is a pre-validated wire-spelled string ("1 secs", "1 min", "1
// day", ...). Unlike the other enums this is not a closed Go type: the
// server's own bar-size list has grown over time and the original
// implementation treats it the same way -- a validated string, not an
// enum -- so a newly added bar size needs no client-side enum change.
type BarSize string

const (
	BarSize1Sec   BarSize = "1 secs"
	BarSize5Sec   BarSize = "5 secs"
	BarSize15Sec  BarSize = "15 secs"
	BarSize30Sec  BarSize = "30 secs"
	BarSize1Min   BarSize = "1 min"
	BarSize5Min   BarSize = "5 mins"
	BarSize15Min  BarSize = "15 mins"
	BarSize30Min  BarSize = "30 mins"
	BarSize1Hour  BarSize = "1 hour"
	BarSize1Day   BarSize = "1 day"
	BarSize1Week  BarSize = "1 week"
	BarSize1Month BarSize = "1 month"
)

// AccountSummaryTags carries the comma-joined tag group the
// ReqAccountSummary encoder expects, supplemented from
// api/src/account_summary_tags.rs in the original implementation.
var AccountSummaryTags = []string{
	"AccountType",
	"NetLiquidation",
	"TotalCashValue",
	"SettledCash",
	"AccruedCash",
	"BuyingPower",
	"EquityWithLoanValue",
	"PreviousEquityWithLoanValue",
	"GrossPositionValue",
	"RegTEquity",
	"RegTMargin",
	"SMA",
	"InitMarginReq",
	"MaintMarginReq",
	"AvailableFunds",
	"ExcessLiquidity",
	"Cushion",
	"FullInitMarginReq",
	"FullMaintMarginReq",
	"FullAvailableFunds",
	"FullExcessLiquidity",
	"LookAheadNextChange",
	"LookAheadInitMarginReq",
	"LookAheadMaintMarginReq",
	"LookAheadAvailableFunds",
	"LookAheadExcessLiquidity",
	"HighestSeverity",
	"DayTradesRemaining",
	"Leverage",
}

func pair[T any](v T, wire string) struct {
	Value T
	Wire  string
} {
	return struct {
		Value T
		Wire  string
	}{Value: v, Wire: wire}
}
