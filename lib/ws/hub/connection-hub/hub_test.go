package connectionhub

import (
	dbmodels "hotel-ops-backend/models/db"
	wsmodels "hotel-ops-backend/models/ws"
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type fakePushStore struct{}

func (fakePushStore) Save(rec dbmodels.PushData) error { return nil }

func (fakePushStore) List(userID string) ([]dbmodels.PushData, error) { return nil, nil }

func (fakePushStore) Delete(ids []string) error { return nil }

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   fakePushStore{},
	}
}

func TestHubSendAfterDelete(t *testing.T) {
	hub := newTestHub()
	hub.AddClient("u-1", &websocket.Conn{})
	require.True(t, hub.IsConnected("u-1"))

	hub.DeleteClient("u-1")
	require.False(t, hub.IsConnected("u-1"))

	// must be a silent no-op, not a panic or a block
	for k := 0; k < 64; k++ {
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-1", Msg: "late"})
	}
}

func TestHubSendDeleteInterleaving(t *testing.T) {
	hub := newTestHub()
	hub.AddClient("u-1", &websocket.Conn{})

	var wg sync.WaitGroup
	for s := 0; s < 4; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 1000; k++ {
				hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u-1", Msg: "ping"})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		hub.DeleteClient("u-1")
	}()
	wg.Wait()

	require.False(t, hub.IsConnected("u-1"))
}

func TestHubDeleteUnknownClient(t *testing.T) {
	hub := newTestHub()
	hub.DeleteClient("nobody")
	hub.SendMessage(wsmodels.ServerMessage{ToUserID: "nobody"})
}
