package v1_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kurochkinivan/cover_client/internal/queue"
	"github.com/stretchr/testify/require"
)

func dialFeed(t *testing.T, env *testEnv) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(env.api.URL, "http") + "/api/v1/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readView(t *testing.T, conn *websocket.Conn) queue.View {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var view queue.View
	require.NoError(t, conn.ReadJSON(&view))

	return view
}
