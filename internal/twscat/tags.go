// Package twscat holds the static message catalog: the closed
// inbound/outbound tag enumerations and the server-version gates that
// govern field presence. It is pure data plus lookup helpers; it never
// touches the network and never depends on the codec packages above it.
package twscat

// Incoming is the tag selecting an inbound message kind. It is always
// the first token of a post-handshake inbound frame body.
type Incoming int

const (
	TickPrice             Incoming = 1
	TickSize              Incoming = 2
	OrderStatus           Incoming = 3
	ErrorMessage          Incoming = 4
	OpenOrder             Incoming = 5
	AcctValue             Incoming = 6
	PortfolioValue        Incoming = 7
	AcctUpdateTime        Incoming = 8
	NextValidID           Incoming = 9
	ContractData          Incoming = 10
	ExecutionData         Incoming = 11
	MarketDepth           Incoming = 12
	MarketDepthL2         Incoming = 13
	HistoricalData        Incoming = 17
	CurrentTime           Incoming = 49
	RealTimeBars          Incoming = 50
	ContractDataEnd       Incoming = 52
	OpenOrderEnd          Incoming = 53
	AcctDownloadEnd       Incoming = 54
	ExecutionDataEnd      Incoming = 55
	CommissionReport      Incoming = 59
	AccountSummary        Incoming = 63
	AccountSummaryEnd     Incoming = 64
	HeadTimestamp         Incoming = 88
	HistoricalDataUpdate  Incoming = 90
	HistoricalTicks       Incoming = 96
	HistoricalTicksBidAsk Incoming = 97
	HistoricalTicksLast   Incoming = 98
	TickByTick            Incoming = 99
	CompletedOrder        Incoming = 101
	CompletedOrdersEnd    Incoming = 102
	HistoricalSchedule    Incoming = 106
)

// incomingNames is used only for logging/diagnostics; it is not
// exhaustive over [1..107] -- tags absent from this table still decode,
// and their String() is "Unknown".
var incomingNames = map[Incoming]string{
	TickPrice:             "TickPrice",
	TickSize:              "TickSize",
	OrderStatus:           "OrderStatus",
	ErrorMessage:          "Error",
	OpenOrder:             "OpenOrder",
	AcctValue:             "AcctValue",
	PortfolioValue:        "PortfolioValue",
	AcctUpdateTime:        "AcctUpdateTime",
	NextValidID:           "NextValidId",
	ContractData:          "ContractData",
	ExecutionData:         "ExecutionData",
	MarketDepth:           "MarketDepth",
	MarketDepthL2:         "MarketDepthL2",
	HistoricalData:        "HistoricalData",
	CurrentTime:           "CurrentTime",
	RealTimeBars:          "RealTimeBars",
	ContractDataEnd:       "ContractDataEnd",
	OpenOrderEnd:          "OpenOrderEnd",
	AcctDownloadEnd:       "AcctDownloadEnd",
	ExecutionDataEnd:      "ExecutionDataEnd",
	CommissionReport:      "CommissionReport",
	AccountSummary:        "AccountSummary",
	AccountSummaryEnd:     "AccountSummaryEnd",
	HeadTimestamp:         "HeadTimestamp",
	HistoricalDataUpdate:  "HistoricalDataUpdate",
	HistoricalTicks:       "HistoricalTicks",
	HistoricalTicksBidAsk: "HistoricalTicksBidAsk",
	HistoricalTicksLast:   "HistoricalTicksLast",
	TickByTick:            "TickByTick",
	CompletedOrder:        "CompletedOrder",
	CompletedOrdersEnd:    "CompletedOrdersEnd",
	HistoricalSchedule:    "HistoricalSchedule",
}

// Known reports whether tag has a registered parser. Unknown tags decode
// as NotImplemented: not an error, discarded by the demultiplexer.
func (t Incoming) Known() bool {
	_, ok := incomingNames[t]
	return ok
}

func (t Incoming) String() string {
	if name, ok := incomingNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Outgoing is the tag selecting an outbound command kind. It is always
// the first token of an outbound frame body.
type Outgoing int

const (
	ReqMktData            Outgoing = 1
	CancelMktData         Outgoing = 2
	PlaceOrder            Outgoing = 3
	ReqOpenOrders         Outgoing = 5
	ReqAcctData           Outgoing = 6
	ReqExecutions         Outgoing = 7
	ReqIDs                Outgoing = 8
	ReqContractData       Outgoing = 9
	ReqMktDepth           Outgoing = 10
	CancelMktDepth        Outgoing = 11
	SetServerLoglevel     Outgoing = 14
	ReqAutoOpenOrders     Outgoing = 15
	ReqAllOpenOrders      Outgoing = 16
	ReqHistoricalData     Outgoing = 20
	CancelHistoricalData  Outgoing = 25
	ReqCurrentTime        Outgoing = 49
	ReqRealTimeBars       Outgoing = 50
	CancelRealTimeBars    Outgoing = 51
	ReqAccountSummary     Outgoing = 62
	CancelAccountSummary  Outgoing = 63
	ReqMktDepthExchanges  Outgoing = 82
	StartAPI              Outgoing = 71
	ReqHeadTimestamp      Outgoing = 87
	CancelHeadTimestamp   Outgoing = 90
	ReqHistoricalTicks    Outgoing = 96
	ReqTickByTickData     Outgoing = 97
	CancelTickByTickData  Outgoing = 98
	ReqCompletedOrders    Outgoing = 99
)

var outgoingNames = map[Outgoing]string{
	ReqMktData:           "ReqMktData",
	CancelMktData:        "CancelMktData",
	PlaceOrder:           "PlaceOrder",
	ReqOpenOrders:        "ReqOpenOrders",
	ReqAcctData:          "ReqAcctData",
	ReqExecutions:        "ReqExecutions",
	ReqIDs:               "ReqIds",
	ReqContractData:      "ReqContractData",
	ReqMktDepth:          "ReqMktDepth",
	CancelMktDepth:       "CancelMktDepth",
	ReqMktDepthExchanges: "ReqMktDepthExchanges",
	SetServerLoglevel:    "SetServerLoglevel",
	ReqAllOpenOrders:     "ReqAllOpenOrders",
	ReqAutoOpenOrders:    "ReqAutoOpenOrders",
	ReqHistoricalData:    "ReqHistoricalData",
	CancelHistoricalData: "CancelHistoricalData",
	ReqCurrentTime:       "ReqCurrentTime",
	ReqRealTimeBars:      "ReqRealTimeBars",
	CancelRealTimeBars:   "CancelRealTimeBars",
	ReqAccountSummary:    "ReqAccountSummary",
	CancelAccountSummary: "CancelAccountSummary",
	ReqCompletedOrders:   "ReqCompletedOrders",
	StartAPI:             "StartApi",
	ReqHeadTimestamp:     "ReqHeadTimestamp",
	CancelHeadTimestamp:  "CancelHeadTimestamp",
	ReqHistoricalTicks:   "ReqHistoricalTicks",
	ReqTickByTickData:    "ReqTickByTickData",
	CancelTickByTickData: "CancelTickByTickData",
}

func (t Outgoing) String() string {
	if name, ok := outgoingNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ClientProtocolVersionRange is the inclusive [min, max] band the client
// advertises at handshake.
const (
	ClientProtocolMin = 100
	ClientProtocolMax = 163
)
