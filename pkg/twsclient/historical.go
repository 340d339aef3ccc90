package twsclient

import (
	"time"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// GetHistoricalData fires a one-shot historical bars request and
// returns the single HistoricalDataEvent the server replies with. When
// whatToShow is SCHEDULE the server instead replies with a
// HistoricalScheduleEvent, returned here as the second value.
func (c *Client) GetHistoricalData(contract twsmodel.Contract, endDateTime time.Time, duration outbound.Duration, barSize twscat.BarSize, whatToShow twscat.HistoricalDataType, useRTH bool) (*twsmodel.HistoricalDataEvent, *twsmodel.HistoricalScheduleEvent, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	defer c.demux.UnregisterRequestWaiter(reqID)

	body := outbound.EncodeReqHistoricalData(c.serverVersion(), outbound.ReqHistoricalDataParams{
		ReqID:       reqID,
		Contract:    contract,
		EndDateTime: endDateTime,
		BarSize:     barSize,
		Duration:    duration,
		UseRTH:      useRTH,
		WhatToShow:  whatToShow,
		FormatDate:  outbound.FormatDateString,
	})
	if err := c.writeFrame(body); err != nil {
		return nil, nil, err
	}

	select {
	case evt, ok := <-sink:
		if !ok {
			return nil, nil, ErrClosed
		}
		switch e := evt.(type) {
		case twsmodel.HistoricalDataEvent:
			return &e, nil, nil
		case twsmodel.HistoricalScheduleEvent:
			return nil, &e, nil
		default:
			return nil, nil, nil
		}
	case <-time.After(c.cfg.RequestTimeout):
		return nil, nil, ErrTimeout
	}
}

// SubscribeHistoricalDataUpdates starts the keep-up-to-date streaming
// variant: the server replies with one HistoricalDataEvent then
// HistoricalDataUpdateEvent values as new bars close.
func (c *Client) SubscribeHistoricalDataUpdates(contract twsmodel.Contract, barSize twscat.BarSize, whatToShow twscat.HistoricalDataType, useRTH bool) (twsmodel.RequestId, <-chan twsmodel.Event, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	body := outbound.EncodeReqHistoricalData(c.serverVersion(), outbound.ReqHistoricalDataParams{
		ReqID:        reqID,
		Contract:     contract,
		BarSize:      barSize,
		Duration:     outbound.Duration{N: 1, Unit: twscat.DurationDays},
		UseRTH:       useRTH,
		WhatToShow:   whatToShow,
		FormatDate:   outbound.FormatDateString,
		KeepUpToDate: true,
	})
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return 0, nil, err
	}
	c.recordSubscribe(reqID)
	return reqID, sink, nil
}

func (c *Client) CancelHistoricalData(reqID twsmodel.RequestId) error {
	c.pace(reqID)
	c.demux.UnregisterRequestWaiter(reqID)
	return c.writeFrame(outbound.EncodeCancelHistoricalData(c.serverVersion(), reqID))
}

// GetHeadTimestamp fires a one-shot request for the earliest available
// bar time for a contract.
func (c *Client) GetHeadTimestamp(contract twsmodel.Contract, whatToShow twscat.HistoricalDataType, useRTH bool) (time.Time, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	defer c.demux.UnregisterRequestWaiter(reqID)

	body := outbound.EncodeReqHeadTimestamp(c.serverVersion(), outbound.ReqHeadTimestampParams{
		ReqID:      reqID,
		Contract:   contract,
		WhatToShow: whatToShow,
		UseRTH:     useRTH,
		FormatDate: outbound.FormatDateString,
	})
	if err := c.writeFrame(body); err != nil {
		return time.Time{}, err
	}

	select {
	case evt, ok := <-sink:
		if !ok {
			return time.Time{}, ErrClosed
		}
		ht, ok := evt.(twsmodel.HeadTimestampEvent)
		if !ok {
			return time.Time{}, nil
		}
		return ht.Timestamp, nil
	case <-time.After(c.cfg.RequestTimeout):
		return time.Time{}, ErrTimeout
	}
}

// GetHistoricalTicks fires a one-shot request and collects ticks across
// possibly multiple reply frames until the server's done flag is set.
// The concrete tick type (HistoricalTick, HistoricalTickBidAsk,
// HistoricalTickLast) depends on p.WhatToShow.
func (c *Client) GetHistoricalTicks(p outbound.ReqHistoricalTicksParams) ([]twsmodel.Event, error) {
	reqID := c.nextRequestID()
	p.ReqID = reqID
	sink := c.demux.RegisterRequestWaiter(reqID)

	body := outbound.EncodeReqHistoricalTicks(c.serverVersion(), p)
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return nil, err
	}

	var events []twsmodel.Event
	err := c.collectUntilEnd(reqID, sink, func(evt twsmodel.Event) bool {
		switch e := evt.(type) {
		case twsmodel.HistoricalTicksEvent:
			return e.Done
		case twsmodel.HistoricalTicksBidAskEvent:
			return e.Done
		case twsmodel.HistoricalTicksLastEvent:
			return e.Done
		}
		return false
	}, func(evt twsmodel.Event) {
		events = append(events, evt)
	})
	return events, err
}
