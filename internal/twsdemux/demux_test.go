package twsdemux

import (
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/larkhollow/twsgo/internal/twscat"
	"github.com/larkhollow/twsgo/pkg/twsmodel"
	"github.com/stretchr/testify/require"
)

func writeFrame(t *testing.T, conn net.Conn, body string) {
	t.Helper()
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(body)))
	_, err := conn.Write(lenBuf[:])
	require.NoError(t, err)
	_, err = conn.Write([]byte(body))
	require.NoError(t, err)
}

func TestRouteDeliversScopedEventToWaiter(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	d := New(client, nil)
	sink := d.RegisterRequestWaiter(twsmodel.RequestId(42))
	_, broadcast := d.Subscribe()
	go d.Run()

	writeFrame(t, server, "52\x0042\x00")

	select {
	case evt := <-sink:
		ev, ok := evt.(twsmodel.ContractDataEndEvent)
		require.True(t, ok)
		reqID, scoped := ev.RequestID()
		require.True(t, scoped)
		require.Equal(t, twsmodel.RequestId(42), reqID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for routed event")
	}

	// Scoped events are delivered to the pending sink AND fanned out to
	// every broadcast subscription -- both, not either.
	select {
	case evt := <-broadcast:
		_, ok := evt.(twsmodel.ContractDataEndEvent)
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for scoped event on broadcast subscription")
	}
}

func TestNextValidIDDrainsAllWaiters(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	d := New(client, nil)
	w1 := d.RegisterOrderIDWaiter()
	w2 := d.RegisterOrderIDWaiter()
	go d.Run()

	writeFrame(t, server, "9\x00777\x00")

	for _, w := range []<-chan twsmodel.OrderId{w1, w2} {
		select {
		case id := <-w:
			require.Equal(t, twsmodel.OrderId(777), id)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for order id")
		}
	}
}

func TestUnscopedEventGoesToBroadcast(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	d := New(client, nil)
	_, ch := d.Subscribe()
	go d.Run()

	writeFrame(t, server, "4\x00-1\x002104\x00Market data farm connection is OK\x00")

	select {
	case evt := <-ch:
		_, ok := evt.(twsmodel.ServerErrorEvent)
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast event")
	}
}

func TestSplitTagRejectsMissingNUL(t *testing.T) {
	_, _, err := splitTag([]byte("no-nul-here"))
	require.Error(t, err)
}

func TestSplitTagParsesLeadingTag(t *testing.T) {
	tag, rest, err := splitTag([]byte("52\x0042\x00"))
	require.NoError(t, err)
	require.Equal(t, twscat.ContractDataEnd, tag)
	require.Equal(t, []byte("42\x00"), rest)
}
