package twsclient

import (
	"time"

	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// GetNextValidOrderID requests the next usable order id. The wire
// protocol doesn't correlate this reply to a request id -- it's an
// unscoped broadcast -- so concurrent callers each get their own
// one-shot waiter drained by the same server reply, per the
// demultiplexer's order-id quirk handling.
func (c *Client) GetNextValidOrderID() (twsmodel.OrderId, error) {
	waiter := c.demux.RegisterOrderIDWaiter()
	if err := c.writeFrame(outbound.EncodeReqIDs(c.serverVersion())); err != nil {
		return 0, err
	}
	select {
	case id, ok := <-waiter:
		if !ok {
			return 0, ErrClosed
		}
		return id, nil
	case <-time.After(c.cfg.RequestTimeout):
		return 0, ErrTimeout
	}
}

// PlaceOrder sends a place-order command. It is fire-and-forget: order
// status and execution updates arrive as broadcast events
// (OrderStatusEvent, ExecutionDataEvent), not routed back through a
// per-request waiter, since this call allocates no request id for them
// to be scoped to.
func (c *Client) PlaceOrder(orderID twsmodel.OrderId, contract twsmodel.Contract, order twsmodel.Order) error {
	return c.writeFrame(outbound.EncodePlaceOrder(c.serverVersion(), orderID, contract, order))
}

// RequestOpenOrders asks the server to resend every open order this
// client placed. Replies arrive as broadcast OpenOrderEvent values
// terminated by OpenOrderEndEvent; subscribe to the broadcast channel
// before calling this to avoid missing any.
func (c *Client) RequestOpenOrders() error {
	return c.writeFrame(outbound.EncodeReqOpenOrders(c.serverVersion()))
}

// RequestAllOpenOrders asks for every open order across all clients of
// this TWS/gateway session, not just this client id's own orders.
func (c *Client) RequestAllOpenOrders() error {
	return c.writeFrame(outbound.EncodeReqAllOpenOrders(c.serverVersion()))
}

// RequestAutoOpenOrders controls whether orders placed from the TWS/
// gateway UI itself are also bound to this API client's order stream.
func (c *Client) RequestAutoOpenOrders(autoBind bool) error {
	return c.writeFrame(outbound.EncodeReqAutoOpenOrders(c.serverVersion(), autoBind))
}

// GetCompletedOrders collects every CompletedOrderEvent until the
// matching CompletedOrdersEndEvent. Completed orders are unscoped, so
// this registers a broadcast subscription rather than a per-request
// waiter and filters it locally.
func (c *Client) GetCompletedOrders(apiOnly bool) ([]twsmodel.CompletedOrderEvent, error) {
	id, ch := c.demux.Subscribe()
	defer c.demux.Unsubscribe(id)

	if err := c.writeFrame(outbound.EncodeReqCompletedOrders(c.serverVersion(), apiOnly)); err != nil {
		return nil, err
	}

	var orders []twsmodel.CompletedOrderEvent
	timeout := time.After(c.cfg.RequestTimeout)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return orders, ErrClosed
			}
			switch e := evt.(type) {
			case twsmodel.CompletedOrderEvent:
				orders = append(orders, e)
			case twsmodel.CompletedOrdersEndEvent:
				return orders, nil
			}
		case <-timeout:
			return orders, ErrTimeout
		}
	}
}
