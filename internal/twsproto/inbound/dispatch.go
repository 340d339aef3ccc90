// Package inbound parses frame bodies into twsmodel.Event values. Each
// parser consumes the fields for exactly one Incoming tag, positionally
// and in order; a newer server's extra trailing fields are tolerated
// via Reader.Remaining, not an error.
package inbound

import (
	"fmt"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsfield"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// ParseFunc parses one message body into an Event.
type ParseFunc func(r *twsfield.Reader) (twsmodel.Event, error)

var parsers = map[twscat.Incoming]ParseFunc{
	twscat.TickPrice:             ParseTickPrice,
	twscat.TickSize:               ParseTickSize,
	twscat.OrderStatus:            ParseOrderStatus,
	twscat.ErrorMessage:           ParseErrorMessage,
	twscat.OpenOrder:              ParseOpenOrder,
	twscat.AcctValue:              ParseAcctValue,
	twscat.PortfolioValue:         ParsePortfolioValue,
	twscat.AcctUpdateTime:         ParseAcctUpdateTime,
	twscat.NextValidID:            ParseNextValidID,
	twscat.ContractData:           ParseContractData,
	twscat.ExecutionData:         ParseExecutionData,
	twscat.MarketDepth:            ParseMarketDepth,
	twscat.MarketDepthL2:          ParseMarketDepthL2,
	twscat.HistoricalData:         ParseHistoricalData,
	twscat.CurrentTime:            ParseCurrentTime,
	twscat.RealTimeBars:           ParseRealTimeBars,
	twscat.ContractDataEnd:        ParseContractDataEnd,
	twscat.OpenOrderEnd:           ParseOpenOrderEnd,
	twscat.AcctDownloadEnd:        ParseAcctDownloadEnd,
	twscat.ExecutionDataEnd:       ParseExecutionDataEnd,
	twscat.CommissionReport:       ParseCommissionReport,
	twscat.AccountSummary:         ParseAccountSummary,
	twscat.AccountSummaryEnd:      ParseAccountSummaryEnd,
	twscat.HeadTimestamp:          ParseHeadTimestamp,
	twscat.HistoricalDataUpdate:   ParseHistoricalDataUpdate,
	twscat.HistoricalTicks:        ParseHistoricalTicks,
	twscat.HistoricalTicksBidAsk:  ParseHistoricalTicksBidAsk,
	twscat.HistoricalTicksLast:    ParseHistoricalTicksLast,
	twscat.TickByTick:             ParseTickByTick,
	twscat.CompletedOrder:         ParseCompletedOrder,
	twscat.CompletedOrdersEnd:     ParseCompletedOrdersEnd,
	twscat.HistoricalSchedule:     ParseHistoricalSchedule,
}

// ErrUnknownTag reports a frame whose leading tag has no registered
// parser. The demultiplexer logs and drops such frames rather than
// treating them as fatal, per the unknown-message-kind handling rule.
type ErrUnknownTag struct {
	Tag twscat.Incoming
}

func (e *ErrUnknownTag) Error() string {
	return fmt.Sprintf("no parser registered for incoming tag %s", e.Tag)
}

// Parse looks up and invokes the parser registered for tag, handing it
// a fresh Reader over body.
func Parse(tag twscat.Incoming, body []byte) (twsmodel.Event, error) {
	fn, ok := parsers[tag]
	if !ok {
		return nil, &ErrUnknownTag{Tag: tag}
	}
	return fn(twsfield.NewReader(body))
}
