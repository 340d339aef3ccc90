package twsdemux

import (
	"sync"

	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// pendingTable tracks per-request-id sinks and the order-id waiter
// queue. It is a separate type from Demux so the routing logic in
// demux.go can be tested without a live connection.
type pendingTable struct {
	mu      sync.Mutex
	sinks   map[twsmodel.RequestId]chan twsmodel.Event
	orderID []chan twsmodel.OrderId
}

func newPendingTable() *pendingTable {
	return &pendingTable{
		sinks: make(map[twsmodel.RequestId]chan twsmodel.Event),
	}
}

// register installs sink as the recipient for every event scoped to
// reqID until unregister is called. Buffered so a slow consumer never
// stalls the read loop; the facade is responsible for draining it.
func (p *pendingTable) register(reqID twsmodel.RequestId) chan twsmodel.Event {
	ch := make(chan twsmodel.Event, 16)
	p.mu.Lock()
	p.sinks[reqID] = ch
	p.mu.Unlock()
	return ch
}

func (p *pendingTable) unregister(reqID twsmodel.RequestId) {
	p.mu.Lock()
	if ch, ok := p.sinks[reqID]; ok {
		delete(p.sinks, reqID)
		close(ch)
	}
	p.mu.Unlock()
}

// route delivers evt to its registered sink, if any. Returns false when
// no waiter is registered for the event's request id. The caller
// broadcasts evt unconditionally regardless of this result: a scoped
// event goes to its pending sink AND to the matching broadcast
// subscription, never either/or.
func (p *pendingTable) route(reqID twsmodel.RequestId, evt twsmodel.Event) bool {
	p.mu.Lock()
	ch, ok := p.sinks[reqID]
	p.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case ch <- evt:
	default:
		// Sink is full; the facade isn't draining fast enough. Drop
		// rather than block the single reader goroutine.
	}
	return true
}

// registerOrderIDWaiter enqueues a one-shot waiter for the next
// NextValidId broadcast. The wire protocol doesn't correlate ReqIds
// replies to a request id, so a server reply is delivered to every
// outstanding waiter, not just the oldest -- a documented quirk of the
// original API, not an implementation choice.
func (p *pendingTable) registerOrderIDWaiter() chan twsmodel.OrderId {
	ch := make(chan twsmodel.OrderId, 1)
	p.mu.Lock()
	p.orderID = append(p.orderID, ch)
	p.mu.Unlock()
	return ch
}

func (p *pendingTable) drainOrderIDWaiters(id twsmodel.OrderId) {
	p.mu.Lock()
	waiters := p.orderID
	p.orderID = nil
	p.mu.Unlock()
	for _, ch := range waiters {
		ch <- id
		close(ch)
	}
}

func (p *pendingTable) closeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for reqID, ch := range p.sinks {
		close(ch)
		delete(p.sinks, reqID)
	}
	for _, ch := range p.orderID {
		close(ch)
	}
	p.orderID = nil
}
