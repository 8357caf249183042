package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/gigboard/internal/realtime"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxClientMessage = 4 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RoomEvent is one frame on the room stream.
type RoomEvent struct {
	Type     string        `json:"type"` // "history" or "message"
	Messages []MessageView `json:"messages,omitempty"`
	Message  *MessageView  `json:"message,omitempty"`
}

// StreamRoom godoc
// @Summary Live chat stream of a proposal
// @Description Sends the stored history first, then each new message. Messages may repeat across the two; dedupe by id.
// @Tags messages
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param token query string false "JWT, for browsers that cannot set headers"
// @Router /ws/rooms/{id} [get]
func (h *MessageHandler) StreamRoom(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "proposal")
	if !ok {
		return
	}

	// Access is checked before the upgrade so refusals are plain HTTP errors.
	sub, history, err := h.svc.Subscribe(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	defer sub.Cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[chat] websocket upgrade failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	if err := writeEvent(conn, RoomEvent{Type: "history", Messages: newMessageViews(history)}); err != nil {
		return
	}

	done := make(chan struct{})
	go readUntilClosed(conn, done)

	pumpRoom(conn, sub, done)
}

// readUntilClosed drains client frames so pongs and close frames are handled.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxClientMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[chat] websocket error: %v", err)
			}
			return
		}
	}
}

func pumpRoom(conn *websocket.Conn, sub *realtime.Subscription, done <-chan struct{}) {
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case m, ok := <-sub.C:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			view := newMessageView(m)
			if err := writeEvent(conn, RoomEvent{Type: "message", Message: &view}); err != nil {
				return
			}

		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, ev RoomEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
