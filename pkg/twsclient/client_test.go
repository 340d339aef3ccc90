package twsclient

import (
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/internal/twsdemux"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// writeFrame writes a raw length-prefixed frame directly to conn,
// simulating a server reply.
func writeFrame(t *testing.T, conn net.Conn, body string) {
	t.Helper()
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	_, err := conn.Write(lenBuf[:])
	require.NoError(t, err)
	_, err = conn.Write([]byte(body))
	require.NoError(t, err)
}

// pipedClient builds a Client wired to an in-memory net.Pipe, skipping
// Connect's dial and handshake so tests can drive the server side
// directly. The demux's Run loop is already started.
func pipedClient(t *testing.T, cfg Config) (*Client, net.Conn) {
	t.Helper()
	local, remote := net.Pipe()
	log := logrus.NewEntry(logrus.StandardLogger())
	d := twsdemux.New(local, log)
	go d.Run()
	c := &Client{
		cfg:         cfg,
		conn:        local,
		demux:       d,
		log:         log,
		subscribeAt: make(map[twsmodel.RequestId]time.Time),
	}
	return c, remote
}

func testConfig() Config {
	return Config{
		RequestTimeout: time.Second,
		PacingWindow:   20 * time.Millisecond,
	}
}

func fixtureContractDataBody(reqID int) string {
	tokens := []string{
		itoa(reqID),
		"12345", "AAPL", "STK", "", "0", "0", "", "SMART", "",
		"USD", "AAPL", "",
		"NASDAQ", "0.01", "ACTIVETIM", "SMART", "0", "0", "Apple Inc",
		"SMART", "", "Technology", "Computers", "Computers",
		"America/New_York", "", "", "", "0",
		"0",
		"0", "", "", "", "", "",
		"0", "0", "0",
	}
	body := "10\x00"
	for _, tok := range tokens {
		body += tok + "\x00"
	}
	return body
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

func TestGetNextValidOrderIDUnblocksOnBroadcastReply(t *testing.T) {
	c, remote := pipedClient(t, testConfig())
	defer remote.Close()

	done := make(chan struct{})
	var gotID twsmodel.OrderId
	var gotErr error
	go func() {
		gotID, gotErr = c.GetNextValidOrderID()
		close(done)
	}()

	// Read the request first, as a server would: net.Pipe is unbuffered,
	// so the client's write completes only once this side reads it.
	buf := make([]byte, 64)
	_, _ = remote.Read(buf)
	writeFrame(t, remote, "9\x00101\x00")

	select {
	case <-done:
		require.NoError(t, gotErr)
		require.Equal(t, twsmodel.OrderId(101), gotID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for GetNextValidOrderID")
	}
}

func TestGetNextValidOrderIDTimesOutWithoutReply(t *testing.T) {
	cfg := testConfig()
	cfg.RequestTimeout = 30 * time.Millisecond
	c, remote := pipedClient(t, cfg)
	defer remote.Close()

	// Accept the request so the client's write completes; never reply.
	go func() {
		buf := make([]byte, 64)
		_, _ = remote.Read(buf)
	}()

	_, err := c.GetNextValidOrderID()
	require.ErrorIs(t, err, ErrTimeout)
}

func TestGetContractDetailsCollectsUntilEnd(t *testing.T) {
	c, remote := pipedClient(t, testConfig())
	defer remote.Close()

	done := make(chan struct{})
	var details []twsmodel.ContractDetails
	var gotErr error
	go func() {
		details, gotErr = c.GetContractDetails(twsmodel.Contract{Symbol: "AAPL"})
		close(done)
	}()

	// Read the request first so the client's write completes.
	buf := make([]byte, 64)
	_, _ = remote.Read(buf)

	// reqID is whatever nextRequestID allocated first: 1.
	writeFrame(t, remote, fixtureContractDataBody(1))
	writeFrame(t, remote, "52\x001\x00")

	select {
	case <-done:
		require.NoError(t, gotErr)
		require.Len(t, details, 1)
		require.Equal(t, "AAPL", details[0].Contract.Symbol)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for GetContractDetails")
	}
}

func TestCancelMarketDataEnforcesPacingWindow(t *testing.T) {
	cfg := testConfig()
	cfg.PacingWindow = 100 * time.Millisecond
	c, remote := pipedClient(t, cfg)
	defer remote.Close()

	c.recordSubscribe(twsmodel.RequestId(5))

	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, c.CancelMarketData(twsmodel.RequestId(5)))
	}()

	// Drain the cancel frame the server side needs to see written.
	buf := make([]byte, 64)
	remote.SetReadDeadline(time.Now().Add(time.Second))
	_, _ = remote.Read(buf)

	<-done
	require.GreaterOrEqual(t, time.Since(start), cfg.PacingWindow)
}

func TestCancelMarketDataWithoutRecordedSubscribeProceedsImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.PacingWindow = 200 * time.Millisecond
	c, remote := pipedClient(t, cfg)
	defer remote.Close()

	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, c.CancelMarketData(twsmodel.RequestId(99)))
	}()

	buf := make([]byte, 64)
	remote.SetReadDeadline(time.Now().Add(time.Second))
	_, _ = remote.Read(buf)

	<-done
	require.Less(t, time.Since(start), cfg.PacingWindow)
}

func TestGetCurrentTimeReadsUnscopedBroadcast(t *testing.T) {
	c, remote := pipedClient(t, testConfig())
	defer remote.Close()

	done := make(chan struct{})
	var got time.Time
	var gotErr error
	go func() {
		got, gotErr = c.GetCurrentTime()
		close(done)
	}()

	// Read the request first so the client's write completes.
	buf := make([]byte, 64)
	_, _ = remote.Read(buf)
	writeFrame(t, remote, "49\x001700000000\x00")

	select {
	case <-done:
		require.NoError(t, gotErr)
		require.Equal(t, int64(1700000000), got.Unix())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for GetCurrentTime")
	}
}

func TestDisconnectIsIdempotentAndUnblocksWaiters(t *testing.T) {
	c, remote := pipedClient(t, testConfig())
	defer remote.Close()

	done := make(chan struct{})
	var gotErr error
	go func() {
		_, gotErr = c.GetNextValidOrderID()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, c.Disconnect())
	require.NoError(t, c.Disconnect())

	select {
	case <-done:
		require.Error(t, gotErr)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for GetNextValidOrderID to unblock after Disconnect")
	}

	require.Equal(t, ErrClosed, c.writeFrame([]byte("noop")))
}

func TestConnectPerformsHandshakeAndStartAPI(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	serverDone := make(chan struct{})
	var gotHello []byte
	var gotVersionRangeBody []byte
	var gotStartAPIBody []byte
	go func() {
		defer close(serverDone)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		gotHello = make([]byte, 4)
		_, _ = conn.Read(gotHello) // "API\x00" literal
		lenBuf := make([]byte, 4)
		_, _ = conn.Read(lenBuf)
		n := binary.BigEndian.Uint32(lenBuf)
		gotVersionRangeBody = make([]byte, n)
		_, _ = conn.Read(gotVersionRangeBody)

		writeFrame(t, conn, "163\x0020260801 00:00:00\x00")

		lenBuf2 := make([]byte, 4)
		if _, err := conn.Read(lenBuf2); err != nil {
			return
		}
		n2 := binary.BigEndian.Uint32(lenBuf2)
		gotStartAPIBody = make([]byte, n2)
		_, _ = conn.Read(gotStartAPIBody)
	}()

	cfg := DefaultConfig(ln.Addr().String(), twsmodel.ClientId(7))
	cfg.DialTimeout = time.Second
	c, err := Connect(cfg)
	require.NoError(t, err)
	defer c.Disconnect()

	require.Equal(t, twscat.ServerVersion(163), c.serverVersion())
	require.NotEqual(t, uuid.Nil, c.InstanceID())

	select {
	case <-serverDone:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for server goroutine")
	}
	require.Equal(t, "API\x00", string(gotHello))
	require.Equal(t, "100..163 +PACEAPI\x00", string(gotVersionRangeBody))
	require.Contains(t, string(gotStartAPIBody), "71\x00")
}
