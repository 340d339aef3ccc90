package twsclient

import (
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// SubscribeMarketData starts a streaming tick subscription and returns
// its request id plus the raw event channel (TickPriceEvent and
// TickSizeEvent, scoped to the returned id). The channel is closed when
// CancelMarketData unregisters it or the connection closes.
func (c *Client) SubscribeMarketData(contract twsmodel.Contract, genericTicks string, snapshot bool) (twsmodel.RequestId, <-chan twsmodel.Event, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	body := outbound.EncodeReqMktData(c.serverVersion(), outbound.ReqMktDataParams{
		ReqID:           reqID,
		Contract:        contract,
		GenericTickList: genericTicks,
		Snapshot:        snapshot,
	})
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return 0, nil, err
	}
	c.recordSubscribe(reqID)
	return reqID, sink, nil
}

// CancelMarketData enforces the pacing window before sending the cancel
// command and tearing down the waiter registered for reqID.
func (c *Client) CancelMarketData(reqID twsmodel.RequestId) error {
	c.pace(reqID)
	c.demux.UnregisterRequestWaiter(reqID)
	return c.writeFrame(outbound.EncodeCancelMktData(c.serverVersion(), reqID))
}

// SubscribeRealTimeBars starts 5-second real-time bar streaming.
func (c *Client) SubscribeRealTimeBars(contract twsmodel.Contract, whatToShow twscat.HistoricalDataType, useRTH bool) (twsmodel.RequestId, <-chan twsmodel.Event, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	body := outbound.EncodeReqRealTimeBars(c.serverVersion(), outbound.ReqRealTimeBarsParams{
		ReqID:      reqID,
		Contract:   contract,
		BarSize:    5,
		WhatToShow: whatToShow,
		UseRTH:     useRTH,
	})
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return 0, nil, err
	}
	c.recordSubscribe(reqID)
	return reqID, sink, nil
}

func (c *Client) CancelRealTimeBars(reqID twsmodel.RequestId) error {
	c.pace(reqID)
	c.demux.UnregisterRequestWaiter(reqID)
	return c.writeFrame(outbound.EncodeCancelRealTimeBars(c.serverVersion(), reqID))
}

// SubscribeTickByTick starts tick-by-tick streaming of the given kind.
func (c *Client) SubscribeTickByTick(contract twsmodel.Contract, kind outbound.TickByTickKind, numberOfTicks int, ignoreSize bool) (twsmodel.RequestId, <-chan twsmodel.Event, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	body := outbound.EncodeReqTickByTickData(c.serverVersion(), outbound.ReqTickByTickDataParams{
		ReqID:         reqID,
		Contract:      contract,
		Kind:          kind,
		NumberOfTicks: numberOfTicks,
		IgnoreSize:    ignoreSize,
	})
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return 0, nil, err
	}
	c.recordSubscribe(reqID)
	return reqID, sink, nil
}

func (c *Client) CancelTickByTick(reqID twsmodel.RequestId) error {
	c.pace(reqID)
	c.demux.UnregisterRequestWaiter(reqID)
	return c.writeFrame(outbound.EncodeCancelTickByTickData(c.serverVersion(), reqID))
}

// SubscribeMarketDepth starts a market-depth (level II) subscription.
func (c *Client) SubscribeMarketDepth(contract twsmodel.Contract, numRows int, isSmartDepth bool) (twsmodel.RequestId, <-chan twsmodel.Event, error) {
	reqID := c.nextRequestID()
	sink := c.demux.RegisterRequestWaiter(reqID)
	body := outbound.EncodeReqMktDepth(c.serverVersion(), outbound.ReqMktDepthParams{
		ReqID:        reqID,
		Contract:     contract,
		NumRows:      numRows,
		IsSmartDepth: isSmartDepth,
	})
	if err := c.writeFrame(body); err != nil {
		c.demux.UnregisterRequestWaiter(reqID)
		return 0, nil, err
	}
	c.recordSubscribe(reqID)
	return reqID, sink, nil
}

func (c *Client) CancelMarketDepth(reqID twsmodel.RequestId, isSmartDepth bool) error {
	c.pace(reqID)
	c.demux.UnregisterRequestWaiter(reqID)
	return c.writeFrame(outbound.EncodeCancelMktDepth(c.serverVersion(), reqID, isSmartDepth))
}

// RequestMarketDepthExchanges asks for the list of exchanges supporting
// deep market data. The catalog has no parser for the reply, so the
// demultiplexer drops it and no event for it reaches subscribers.
func (c *Client) RequestMarketDepthExchanges() error {
	return c.writeFrame(outbound.EncodeReqMktDepthExchanges(c.serverVersion()))
}
