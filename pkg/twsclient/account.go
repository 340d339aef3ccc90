package twsclient

import (
	"time"

	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// SubscribeAccountUpdates starts (or stops, when subscribe is false)
// the legacy account/portfolio update stream. Replies are unscoped
// broadcasts: AcctValueEvent, PortfolioValueEvent, AcctUpdateTimeEvent,
// terminated per download by AcctDownloadEndEvent.
func (c *Client) SubscribeAccountUpdates(subscribe bool, acctCode string) error {
	return c.writeFrame(outbound.EncodeReqAcctData(c.serverVersion(), subscribe, acctCode))
}

// GetAccountSummary requests a one-shot account summary snapshot for
// the given tags and collects AccountSummaryEvent values until the
// matching AccountSummaryEndEvent. Cancels the subscription server-side
// before returning, since account summary is otherwise a standing
// stream.
func (c *Client) GetAccountSummary(group string, tags []string) ([]twsmodel.AccountSummaryEvent, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)

	body := outbound.EncodeReqAccountSummary(c.serverVersion(), reqID, group, tags)
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return nil, err
	}

	var rows []twsmodel.AccountSummaryEvent
	err := c.collectUntilEnd(reqID, sink,
		func(evt twsmodel.Event) bool {
			_, ok := evt.(twsmodel.AccountSummaryEndEvent)
			return ok
		},
		func(evt twsmodel.Event) {
			if row, ok := evt.(twsmodel.AccountSummaryEvent); ok {
				rows = append(rows, row)
			}
		},
	)
	_ = c.writeFrame(outbound.EncodeCancelAccountSummary(c.serverVersion(), reqID))
	return rows, err
}

// GetExecutions requests execution reports matching f and collects them
// until the matching ExecutionDataEndEvent.
func (c *Client) GetExecutions(f outbound.ExecutionFilter) ([]twsmodel.ExecutionDataEvent, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)

	body := outbound.EncodeReqExecutions(c.serverVersion(), reqID, f)
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return nil, err
	}

	var execs []twsmodel.ExecutionDataEvent
	err := c.collectUntilEnd(reqID, sink,
		func(evt twsmodel.Event) bool {
			_, ok := evt.(twsmodel.ExecutionDataEndEvent)
			return ok
		},
		func(evt twsmodel.Event) {
			if e, ok := evt.(twsmodel.ExecutionDataEvent); ok {
				execs = append(execs, e)
			}
		},
	)
	return execs, err
}

// WaitForNextCommissionReport blocks on the broadcast channel for the
// next CommissionReportEvent, useful immediately after PlaceOrder when
// the caller only cares about the fill's commission, not the full
// execution stream.
func (c *Client) WaitForNextCommissionReport(timeout time.Duration) (twsmodel.CommissionReportEvent, error) {
	id, ch := c.demux.Subscribe()
	defer c.demux.Unsubscribe(id)

	deadline := time.After(timeout)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return twsmodel.CommissionReportEvent{}, ErrClosed
			}
			if cr, ok := evt.(twsmodel.CommissionReportEvent); ok {
				return cr, nil
			}
		case <-deadline:
			return twsmodel.CommissionReportEvent{}, ErrTimeout
		}
	}
}
