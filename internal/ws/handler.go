package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Try3D/joy-pad/internal/hub"
	"github.com/Try3D/joy-pad/internal/protocol"
	"github.com/Try3D/joy-pad/internal/room"
	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler upgrades /rooms/{code}/ws. Hosts and controllers arrive on
// the same socket; the first identifying frame (host_connect or join)
// decides the role, so nothing is required here beyond registering the
// connection with its room.
func Handler(h *hub.Hub, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if code == "" {
			http.Error(w, "missing room code", http.StatusBadRequest)
			return
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.EnsureRoom{Code: code, Reply: reply}
		rm := <-reply

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// The controller page is served from another origin in dev.
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan protocol.ServerMessage, 16)
		connID := uuid.NewString()

		rm.Inbox() <- room.Connect{ConnID: connID, Outbox: out}
		defer func() { rm.Inbox() <- room.Disconnect{ConnID: connID} }()

		// Writer goroutine: drains the outbox until the room closes it
		// (kick, slow-client drop, shutdown), then tears the socket
		// down so the read loop below unblocks.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					log.Debugw("marshal failed", "conn", connID, "err", err)
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
			conn.Close(websocket.StatusNormalClosure, "closed by room")
		}()

		// Reader loop: frames go to the room untouched; parsing and
		// error replies happen inside the room so each inbound message
		// is one atomic step.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Disconnect in the defer reports closure either way.
				return
			}
			rm.Inbox() <- room.FromClient{ConnID: connID, Data: data}
		}
	}
}
