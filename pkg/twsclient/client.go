// Package twsclient is the public facade: it owns the connection,
// allocates request ids, enforces the subscribe/cancel pacing window,
// and translates the demultiplexer's raw event streams into typed
// request/response and subscription methods.
package twsclient

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/internal/twsdemux"
	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTimeout is returned by a Get* method that didn't see its
	// terminal event within Config.RequestTimeout.
	ErrTimeout = errors.New("twsclient: request timed out")
	// ErrClosed is returned by any method called after Disconnect.
	ErrClosed = errors.New("twsclient: client is closed")
)

// Client is a connected TWS/gateway session. All exported methods are
// safe for concurrent use.
type Client struct {
	cfg   Config
	conn  net.Conn
	demux *twsdemux.Demux
	log   *logrus.Entry

	// instanceID is a process-unique id stamped on every log line this
	// client emits, so log aggregation can tell apart two Connects to
	// the same address across process restarts.
	instanceID uuid.UUID

	reqIDCounter int64

	subscribeMu sync.Mutex
	subscribeAt map[twsmodel.RequestId]time.Time

	closeOnce sync.Once
	closed    atomic.Bool
}

// Connect dials cfg.Address, performs the version-range handshake,
// sends start-api, and starts the demultiplexer's read loop. The
// returned Client is in the Running state once Connect returns.
func Connect(cfg Config) (*Client, error) {
	conn, err := net.DialTimeout("tcp", cfg.Address, cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("twsclient: dial %s: %w", cfg.Address, err)
	}

	instanceID := uuid.New()
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{
		"component":  "twsclient",
		"address":    cfg.Address,
		"clientId":   cfg.ClientID,
		"instanceId": instanceID,
	})

	d := twsdemux.New(conn, log)
	versionRange := fmt.Sprintf("%d..%d +PACEAPI", twscat.ClientProtocolMin, twscat.ClientProtocolMax)
	connectionTime, err := d.Handshake(versionRange)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("twsclient: handshake: %w", err)
	}
	log.WithFields(logrus.Fields{
		"serverVersion":  d.ServerVersion(),
		"connectionTime": connectionTime,
	}).Info("twsclient: handshake complete")

	startAPI := outbound.EncodeStartAPI(d.ServerVersion(), cfg.ClientID, "")
	if err := d.WriteFrame(startAPI); err != nil {
		conn.Close()
		return nil, fmt.Errorf("twsclient: start-api: %w", err)
	}

	go d.Run()

	return &Client{
		cfg:         cfg,
		conn:        conn,
		demux:       d,
		log:         log,
		instanceID:  instanceID,
		subscribeAt: make(map[twsmodel.RequestId]time.Time),
	}, nil
}

// InstanceID returns the process-unique id stamped on this connection's
// log lines, for correlating this session's activity in aggregated logs.
func (c *Client) InstanceID() uuid.UUID {
	return c.instanceID
}

// Disconnect closes the underlying connection and stops the read loop.
// Idempotent.
func (c *Client) Disconnect() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.demux.Close()
		err = c.conn.Close()
	})
	return err
}

func (c *Client) nextRequestID() twsmodel.RequestId {
	return twsmodel.RequestId(atomic.AddInt64(&c.reqIDCounter, 1))
}

func (c *Client) serverVersion() twscat.ServerVersion {
	return c.demux.ServerVersion()
}

// recordSubscribe stamps reqID's subscribe time for the pacing check a
// later CancelX call makes against it.
func (c *Client) recordSubscribe(reqID twsmodel.RequestId) {
	c.subscribeMu.Lock()
	c.subscribeAt[reqID] = time.Now()
	c.subscribeMu.Unlock()
}

// pace blocks until at least cfg.PacingWindow has elapsed since reqID
// was subscribed, then forgets it. If reqID was never recorded as
// subscribed, the cancel proceeds immediately but is logged at WARN:
// the server silently drops a cancel with no matching subscription,
// but that's a server-side quirk worth surfacing, not a client error.
func (c *Client) pace(reqID twsmodel.RequestId) {
	c.subscribeMu.Lock()
	t, ok := c.subscribeAt[reqID]
	delete(c.subscribeAt, reqID)
	c.subscribeMu.Unlock()

	if !ok {
		c.log.WithField("reqId", reqID).Warn("twsclient: cancel with no recorded subscribe; server will drop it silently")
		return
	}
	if elapsed := time.Since(t); elapsed < c.cfg.PacingWindow {
		time.Sleep(c.cfg.PacingWindow - elapsed)
	}
}

func (c *Client) writeFrame(body []byte) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return c.demux.WriteFrame(body)
}

// collectUntilEnd drains sink into accumulate until isEnd reports true
// or the request times out, then unregisters the waiter.
func (c *Client) collectUntilEnd(
	reqID twsmodel.RequestId,
	sink <-chan twsmodel.Event,
	isEnd func(twsmodel.Event) bool,
	accumulate func(twsmodel.Event),
) error {
	defer c.demux.UnregisterRequestWaiter(reqID)
	timeout := time.After(c.cfg.RequestTimeout)
	for {
		select {
		case evt, ok := <-sink:
			if !ok {
				return ErrClosed
			}
			accumulate(evt)
			if isEnd(evt) {
				return nil
			}
		case <-timeout:
			return ErrTimeout
		}
	}
}
