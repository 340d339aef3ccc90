package twsdemux

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/internal/twsproto/inbound"
	"github.com/larkhollow/twsgo/pkg/twsframe"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/sirupsen/logrus"
)

// Demux owns the single frame reader for a connection. Exactly one
// goroutine (started by Run) ever calls ReadFrame; everything else --
// registering waiters, subscribing to broadcasts, writing outbound
// frames -- is safe to call concurrently from the facade.
type Demux struct {
	fr *twsframe.Reader
	fw *twsframe.Writer
	wg sync.Mutex // serializes WriteFrame against concurrent facade callers

	log *logrus.Entry

	stateMu sync.Mutex
	state   State

	serverVersion twscat.ServerVersion

	pending   *pendingTable
	broadcast *broadcastBus

	closeOnce sync.Once
	done      chan struct{}
}

func New(conn io.ReadWriter, log *logrus.Entry) *Demux {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Demux{
		fr:        twsframe.NewReader(conn),
		fw:        twsframe.NewWriter(conn),
		log:       log,
		state:     Init,
		pending:   newPendingTable(),
		broadcast: newBroadcastBus(),
		done:      make(chan struct{}),
	}
}

func (d *Demux) State() State {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.state
}

func (d *Demux) setState(s State) {
	d.stateMu.Lock()
	d.state = s
	d.stateMu.Unlock()
}

func (d *Demux) ServerVersion() twscat.ServerVersion {
	return d.serverVersion
}

// Handshake writes the unframed "API\0" literal plus the client's
// supported protocol range, then reads back the server's chosen
// version and connection time. It must be called exactly once, before
// Run.
func (d *Demux) Handshake(versionRange string) (connectionTime string, err error) {
	d.setState(Handshaking)
	if err := d.fw.WriteHandshakeHello(versionRange); err != nil {
		d.setState(Stopped)
		return "", fmt.Errorf("twsdemux: handshake write: %w", err)
	}
	serverVersionRaw, connectionTime, err := d.fr.ReadHandshakeReply()
	if err != nil {
		d.setState(Stopped)
		return "", fmt.Errorf("twsdemux: handshake read: %w", err)
	}
	sv, err := strconv.Atoi(serverVersionRaw)
	if err != nil {
		d.setState(Stopped)
		return "", fmt.Errorf("twsdemux: handshake: bad server version %q: %w", serverVersionRaw, err)
	}
	d.serverVersion = twscat.ServerVersion(sv)
	d.setState(Starting)
	return connectionTime, nil
}

// WriteFrame sends an already-encoded outbound message body. Safe for
// concurrent use; frames are never interleaved.
func (d *Demux) WriteFrame(body []byte) error {
	d.wg.Lock()
	defer d.wg.Unlock()
	return d.fw.WriteFrame(body)
}

// Run starts the single reader loop and blocks until the connection
// fails, or until it has dispatched the first frame read after Close is
// called. Callers invoke it in its own goroutine after sending the
// start-api handshake command.
func (d *Demux) Run() {
	d.setState(Running)
	defer d.setState(Stopped)
	defer d.pending.closeAll()
	defer d.broadcast.closeAll()

	for {
		body, err := d.fr.ReadFrame()
		if err != nil {
			if err != io.EOF {
				d.log.WithError(err).Warn("twsdemux: transport error, stopping")
			} else {
				d.log.Debug("twsdemux: connection closed")
			}
			return
		}

		tag, rest, err := splitTag(body)
		if err != nil {
			d.log.WithError(err).Warn("twsdemux: malformed frame, dropping")
			continue
		}

		evt, err := inbound.Parse(tag, rest)
		if err != nil {
			if _, ok := err.(*inbound.ErrUnknownTag); ok {
				d.log.WithField("tag", tag).Debug("twsdemux: no parser for tag, dropping")
			} else {
				d.log.WithError(err).WithField("tag", tag).Warn("twsdemux: parse error, dropping frame")
			}
			continue
		}

		d.dispatch(evt)

		select {
		case <-d.done:
			return
		default:
		}
	}
}

func (d *Demux) dispatch(evt twsmodel.Event) {
	if nv, ok := evt.(twsmodel.NextValidIDEvent); ok {
		d.pending.drainOrderIDWaiters(nv.OrderID)
	}

	if reqID, scoped := evt.RequestID(); scoped {
		d.pending.route(reqID, evt)
	}
	d.broadcast.publish(evt)
}

// RegisterRequestWaiter installs a sink for every subsequent event
// scoped to reqID. Callers must call UnregisterRequestWaiter when done
// (typically after a terminal event for that request's message kind).
func (d *Demux) RegisterRequestWaiter(reqID twsmodel.RequestId) <-chan twsmodel.Event {
	return d.pending.register(reqID)
}

func (d *Demux) UnregisterRequestWaiter(reqID twsmodel.RequestId) {
	d.pending.unregister(reqID)
}

// RegisterOrderIDWaiter enqueues a one-shot waiter for the next
// NextValidId broadcast.
func (d *Demux) RegisterOrderIDWaiter() <-chan twsmodel.OrderId {
	return d.pending.registerOrderIDWaiter()
}

// Subscribe registers a broadcast listener for every event, scoped or
// not. The returned id is passed to Unsubscribe to stop receiving.
func (d *Demux) Subscribe() (int, <-chan twsmodel.Event) {
	id, ch := d.broadcast.subscribe()
	return id, ch
}

func (d *Demux) Unsubscribe(id int) {
	d.broadcast.unsubscribe(id)
}

// Close marks the demultiplexer closed. It does not interrupt a read in
// progress: the reader loop checks for Close only after dispatching a
// frame. Registered waiters and subscribers are released when Run
// returns, whether because of Close or because the connection failed.
// Safe to call more than once.
func (d *Demux) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}

func splitTag(body []byte) (twscat.Incoming, []byte, error) {
	idx := bytes.IndexByte(body, 0)
	if idx < 0 {
		return 0, nil, fmt.Errorf("twsdemux: frame has no tag token")
	}
	n, err := strconv.Atoi(string(body[:idx]))
	if err != nil {
		return 0, nil, fmt.Errorf("twsdemux: bad tag token %q: %w", body[:idx], err)
	}
	return twscat.Incoming(n), body[idx+1:], nil
}
