package transport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishFansOut(t *testing.T) {
	hub := NewHub(nil)
	a, unsubA := hub.Subscribe()
	b, unsubB := hub.Subscribe()
	defer unsubA()
	defer unsubB()
	require.Equal(t, 2, hub.Subscribers())

	data := []byte("<li>one</li>")
	hub.Publish("list:active", data)
	data[0] = 'X'

	for _, ch := range []<-chan Event{a, b} {
		ev := <-ch
		require.Equal(t, "list:active", ev.Name)
		require.Equal(t, "<li>one</li>", string(ev.Data))
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(nil)
	ch, unsubscribe := hub.Subscribe()

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	require.False(t, ok)
	require.Zero(t, hub.Subscribers())

	require.NotPanics(t, func() { hub.Publish("list:active", nil) })
}

func TestHub_PublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	hub := NewHub(nil)
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	for i := 0; i < defaultSubscriberBuffer+5; i++ {
		hub.Publish("list:active", []byte("x"))
	}
	require.Len(t, ch, defaultSubscriberBuffer)
}

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEvent(&buf, Event{Name: "list:active", Data: []byte("<li>a</li>\r\n<li>b</li>")}))
	require.Equal(t, "event: list:active\ndata: <li>a</li>\ndata: <li>b</li>\n\n", buf.String())

	buf.Reset()
	require.NoError(t, writeEvent(&buf, Event{Name: "list:finished"}))
	require.Equal(t, "event: list:finished\ndata: \n\n", buf.String())
}
