package twsdemux

import (
	"sync"

	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// broadcastBus fans every event out to each active subscriber, scoped
// and unscoped alike: a scoped event still reaches its registered
// pending-request sink, but every subscriber sees it too. Subscribers
// that don't keep up miss events rather than stall the reader, matching
// the pending table's drop-on-full policy.
type broadcastBus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan twsmodel.Event
}

func newBroadcastBus() *broadcastBus {
	return &broadcastBus{subs: make(map[int]chan twsmodel.Event)}
}

func (b *broadcastBus) subscribe() (int, chan twsmodel.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan twsmodel.Event, 64)
	b.subs[id] = ch
	return id, ch
}

func (b *broadcastBus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *broadcastBus) publish(evt twsmodel.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (b *broadcastBus) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
