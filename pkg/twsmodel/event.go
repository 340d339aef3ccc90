package twsmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a parsed inbound message. It is a closed, tagged union: every
// concrete type below implements Event via the unexported marker method,
// so a type switch over Event is exhaustive against this package's
// variant set (adding a new variant is a deliberate, compiling change,
// not an accidental silent miss).
type Event interface {
	isEvent()
	// RequestID reports the scoping request id, or (0, false) if the
	// event is unscoped (account data, open orders, commission reports,
	// order status, current time, errors -- per §4.6). Execution data
	// and realtime bars carry the request id they answer and are scoped.
	RequestID() (RequestId, bool)
}

// Scoped and Unscoped are embedded into every concrete Event to supply
// RequestID(). Both are exported so inbound parsers in other packages
// can construct events with keyed composite literals.
type Scoped struct{ ReqID RequestId }

func (s Scoped) RequestID() (RequestId, bool) { return s.ReqID, true }

type Unscoped struct{}

func (Unscoped) RequestID() (RequestId, bool) { return 0, false }

type TickPriceEvent struct {
	Scoped
	TickType int
	Price    float64
	Size     *decimal.Decimal
}

func (TickPriceEvent) isEvent() {}

type TickSizeEvent struct {
	Scoped
	TickType int
	Size     decimal.Decimal
}

func (TickSizeEvent) isEvent() {}

type OrderStatusEvent struct {
	Unscoped
	OrderID OrderId
	Status  OrderStatusValue
}

func (OrderStatusEvent) isEvent() {}

// ServerErrorEvent is Incoming tag 4. OriginReqID is nil when the
// server's reqId is negative (per §4.5's "req_id < 0 means no request
// scope"). The event itself is always unscoped, so it is routed to the
// message subscription only, never to a per-request waiter.
type ServerErrorEvent struct {
	Unscoped
	OriginReqID *RequestId
	Code        int
	Message     *string
}

func (ServerErrorEvent) isEvent() {}

type OpenOrderEvent struct {
	Unscoped
	OrderID  OrderId
	Contract Contract
	Order    Order
}

func (OpenOrderEvent) isEvent() {}

type CompletedOrderEvent struct {
	Unscoped
	Contract Contract
	Order    Order
}

func (CompletedOrderEvent) isEvent() {}

type CompletedOrdersEndEvent struct{ Unscoped }

func (CompletedOrdersEndEvent) isEvent() {}

type AcctValueEvent struct {
	Unscoped
	Key       string
	Value     string
	Currency  string
	AccountName string
}

func (AcctValueEvent) isEvent() {}

type PortfolioValueEvent struct {
	Unscoped
	Contract         Contract
	Position         decimal.Decimal
	MarketPrice      float64
	MarketValue      float64
	AverageCost      float64
	UnrealizedPNL    float64
	RealizedPNL      float64
	AccountName      string
}

func (PortfolioValueEvent) isEvent() {}

type AcctUpdateTimeEvent struct {
	Unscoped
	Timestamp time.Time
}

func (AcctUpdateTimeEvent) isEvent() {}

type AcctDownloadEndEvent struct {
	Unscoped
	AccountName string
}

func (AcctDownloadEndEvent) isEvent() {}

type NextValidIDEvent struct {
	Unscoped
	OrderID OrderId
}

func (NextValidIDEvent) isEvent() {}

type ContractDataEvent struct {
	Scoped
	Details ContractDetails
}

func (ContractDataEvent) isEvent() {}

type ContractDataEndEvent struct{ Scoped }

func (ContractDataEndEvent) isEvent() {}

type Execution struct {
	ExecID       string
	Time         time.Time
	AcctNumber   string
	Exchange     string
	Side         string
	Shares       decimal.Decimal
	Price        float64
	PermID       int64
	ClientID     ClientId
	OrderID      OrderId
	Liquidation  int
	CumQty       decimal.Decimal
	AvgPrice     float64
	OrderRef     string
	EVRule       string
	EVMultiplier float64
	ModelCode    string
	LastLiquidity int
}

type ExecutionDataEvent struct {
	Scoped
	Contract  Contract
	Execution Execution
}

func (ExecutionDataEvent) isEvent() {}

type ExecutionDataEndEvent struct{ Scoped }

func (ExecutionDataEndEvent) isEvent() {}

type CommissionReportEvent struct {
	Unscoped
	ExecID            string
	Commission        float64
	Currency          string
	RealizedPNL       *float64
	Yield             *float64
	YieldRedemptionDate *int
}

func (CommissionReportEvent) isEvent() {}

type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume decimal.Decimal
	WAP    decimal.Decimal
	Count  int
}

type BarSeries struct {
	Bars []Bar
}

type HistoricalDataEvent struct {
	Scoped
	Start time.Time
	End   time.Time
	Data  BarSeries
}

func (HistoricalDataEvent) isEvent() {}

type HistoricalDataUpdateEvent struct {
	Scoped
	Bar Bar
}

func (HistoricalDataUpdateEvent) isEvent() {}

type HistoricalScheduleSession struct {
	Start time.Time
	End   time.Time
	RefDate string
}

type HistoricalScheduleEvent struct {
	Scoped
	Start     time.Time
	End       time.Time
	TimeZone  string
	Sessions  []HistoricalScheduleSession
}

func (HistoricalScheduleEvent) isEvent() {}

type HistoricalTick struct {
	Time  time.Time
	Price float64
	Size  decimal.Decimal
}

type HistoricalTickBidAsk struct {
	Time     time.Time
	BidPrice float64
	AskPrice float64
	BidSize  decimal.Decimal
	AskSize  decimal.Decimal
}

type HistoricalTickLast struct {
	Time      time.Time
	Price     float64
	Size      decimal.Decimal
	Exchange  string
	SpecialConditions string
}

type HistoricalTicksEvent struct {
	Scoped
	Ticks []HistoricalTick
	Done  bool
}

func (HistoricalTicksEvent) isEvent() {}

type HistoricalTicksBidAskEvent struct {
	Scoped
	Ticks []HistoricalTickBidAsk
	Done  bool
}

func (HistoricalTicksBidAskEvent) isEvent() {}

type HistoricalTicksLastEvent struct {
	Scoped
	Ticks []HistoricalTickLast
	Done  bool
}

func (HistoricalTicksLastEvent) isEvent() {}

type HeadTimestampEvent struct {
	Scoped
	Timestamp time.Time
}

func (HeadTimestampEvent) isEvent() {}

type CurrentTimeEvent struct {
	Unscoped
	Time time.Time
}

func (CurrentTimeEvent) isEvent() {}

type RealTimeBarEvent struct {
	Scoped
	Bar Bar
}

func (RealTimeBarEvent) isEvent() {}

type AccountSummaryEvent struct {
	Scoped
	Account  string
	Tag      string
	Value    string
	Currency string
}

func (AccountSummaryEvent) isEvent() {}

type AccountSummaryEndEvent struct{ Scoped }

func (AccountSummaryEndEvent) isEvent() {}

type OpenOrderEndEvent struct{ Unscoped }

func (OpenOrderEndEvent) isEvent() {}

// TickByTick sub-kinds, keyed by the kind field the message carries.
type TickByTickKind int

const (
	TickByTickLast TickByTickKind = iota
	TickByTickAllLast
	TickByTickBidAsk
	TickByTickMidPoint
)

type TickByTickEvent struct {
	Scoped
	Kind      TickByTickKind
	Time      time.Time
	Price     float64
	Size      decimal.Decimal
	BidPrice  float64
	AskPrice  float64
	BidSize   decimal.Decimal
	AskSize   decimal.Decimal
	MidPoint  float64
	Exchange  string
	SpecialConditions string
}

func (TickByTickEvent) isEvent() {}

type MarketDepthEvent struct {
	Scoped
	Position  int
	Operation int
	Side      int
	Price     float64
	Size      decimal.Decimal
}

func (MarketDepthEvent) isEvent() {}

type MarketDepthL2Event struct {
	Scoped
	Position     int
	MarketMaker  string
	Operation    int
	Side         int
	Price        float64
	Size         decimal.Decimal
	IsSmartDepth bool
}

func (MarketDepthL2Event) isEvent() {}

// ServerMessageEvent carries administrative/server-generated text that
// isn't a protocol error, if the catalog ever needs to distinguish one
// from ServerErrorEvent; kept distinct so a future admin-message kind
// doesn't have to be shoehorned into the error type.
type ServerMessageEvent struct {
	Unscoped
	Message string
}

func (ServerMessageEvent) isEvent() {}
