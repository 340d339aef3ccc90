package twsclient

import (
	"time"

	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/sirupsen/logrus"
)

// Config holds everything Connect needs to establish and pace a
// session. Zero-value fields are filled in by DefaultConfig's callers;
// Connect itself does not apply defaults. A zero DialTimeout dials with
// no timeout. A zero RequestTimeout is not treated as "no timeout": the
// Get* methods then return ErrTimeout unless a reply is already waiting.
type Config struct {
	Address      string
	ClientID     twsmodel.ClientId
	DialTimeout  time.Duration
	RequestTimeout time.Duration

	// PacingWindow is the minimum duration the facade waits between a
	// subscribe and a cancel for the same market-data/realtime-bars
	// request id, a rate-limit the server enforces informally and the
	// client meets by delaying rather than by erroring.
	PacingWindow time.Duration

	Logger *logrus.Logger
}

// DefaultConfig returns sane defaults for address/clientID: a 10s dial
// timeout, 30s request timeout, and the 500ms pacing window the
// original implementation's rate limiter documents.
func DefaultConfig(address string, clientID twsmodel.ClientId) Config {
	return Config{
		Address:        address,
		ClientID:       clientID,
		DialTimeout:    10 * time.Second,
		RequestTimeout: 30 * time.Second,
		PacingWindow:   500 * time.Millisecond,
		Logger:         logrus.StandardLogger(),
	}
}
