package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-relay-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversInOrder(t *testing.T) {
	n := NewNotifier()
	defer n.Close()

	n.Notify(models.Notice{Kind: models.NoticeContent, Text: "hi"})
	n.SetStatus(models.Status{Text: "Connected", OK: true})

	first := n.listen()()
	second := n.listen()()

	require.IsType(t, noticeMsg{}, first)
	assert.Equal(t, "hi", first.(noticeMsg).notice.Text)
	require.IsType(t, statusMsg{}, second)
	assert.True(t, second.(statusMsg).status.OK)
}

func TestNotifier_CloseUnblocksFullBuffer(t *testing.T) {
	n := NewNotifier()
	for i := 0; i < notifierBuffer; i++ {
		n.Notify(models.Notice{Text: "fill"})
	}

	done := make(chan struct{})
	go func() {
		n.Notify(models.Notice{Text: "blocked"})
		close(done)
	}()

	n.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify did not return after Close")
	}
}

func TestNotifier_ListenAfterClose(t *testing.T) {
	n := NewNotifier()
	n.Close()
	n.Close() // повторный Close не паникует

	assert.Nil(t, n.listen()())
}
