package v1

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const feedWriteTimeout = 5 * time.Second

// FeedHandler pushes the queue view to websocket clients after every change.
type FeedHandler struct {
	ctx      context.Context
	log      *slog.Logger
	queue    Queue
	upgrader websocket.Upgrader
}

func NewFeedHandler(ctx context.Context, log *slog.Logger, q Queue) *FeedHandler {
	return &FeedHandler{
		ctx:   ctx,
		log:   log,
		queue: q,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (f *FeedHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("err", err.Error()))
		return
	}
	defer conn.Close()

	changes, unsubscribe := f.queue.Subscribe()
	defer unsubscribe()

	// Client messages are ignored, reading only detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		if err := f.push(conn); err != nil {
			f.log.DebugContext(r.Context(), "websocket client gone", slog.String("err", err.Error()))
			return
		}

		select {
		case <-changes:
		case <-closed:
			return
		case <-f.ctx.Done():
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(feedWriteTimeout),
			)
			return
		}
	}
}

func (f *FeedHandler) push(conn *websocket.Conn) error {
	if err := conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout)); err != nil {
		return err
	}

	return conn.WriteJSON(f.queue.View())
}
