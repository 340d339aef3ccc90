package twsclient

import (
	"time"

	"github.com/larkhollow/twsgo/internal/twsproto/outbound"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
)

// GetCurrentTime fires a one-shot request for the server's clock. Like
// NextValidId, the reply is unscoped, so this registers against the
// broadcast channel rather than a per-request waiter.
func (c *Client) GetCurrentTime() (time.Time, error) {
	id, ch := c.demux.Subscribe()
	defer c.demux.Unsubscribe(id)

	if err := c.writeFrame(outbound.EncodeReqCurrentTime(c.serverVersion())); err != nil {
		return time.Time{}, err
	}

	timeout := time.After(c.cfg.RequestTimeout)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return time.Time{}, ErrClosed
			}
			if ct, ok := evt.(twsmodel.CurrentTimeEvent); ok {
				return ct.Time, nil
			}
		case <-timeout:
			return time.Time{}, ErrTimeout
		}
	}
}

// SetServerLogLevel adjusts the verbosity of the server's own TWS/
// gateway logging, independent of this client's logrus output.
func (c *Client) SetServerLogLevel(level int) error {
	return c.writeFrame(outbound.EncodeSetServerLoglevel(c.serverVersion(), level))
}

// SubscribeErrors returns a broadcast channel of ServerErrorEvent and
// ServerMessageEvent values. Every connection should keep one of these
// drained: server-wide warnings (farm connection status, pacing
// notices) arrive on it even when no request is pending.
func (c *Client) SubscribeErrors() (int, <-chan twsmodel.Event) {
	id, all := c.demux.Subscribe()
	out := make(chan twsmodel.Event, 64)
	go func() {
		defer close(out)
		for evt := range all {
			switch evt.(type) {
			case twsmodel.ServerErrorEvent, twsmodel.ServerMessageEvent:
				select {
				case out <- evt:
				default:
				}
			}
		}
	}()
	return id, out
}

func (c *Client) UnsubscribeErrors(id int) {
	c.demux.Unsubscribe(id)
}
