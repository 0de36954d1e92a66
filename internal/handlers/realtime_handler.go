package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"resto-backend/internal/metrics"
	"resto-backend/internal/middleware"
	"resto-backend/internal/realtime"
	"resto-backend/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced at the HTTP layer before the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RealtimeHandler bridges the in-process change hub onto websockets. Each
// client picks the tables it wants via ?tables=orders,staff and receives
// events as JSON frames. Authenticated staff connections also run a session
// guard that closes the socket when their staff row is revoked.
type RealtimeHandler struct {
	Hub     *realtime.Hub
	Watcher *session.Watcher
}

func NewRealtimeHandler(hub *realtime.Hub, watcher *session.Watcher) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub, Watcher: watcher}
}

func (h *RealtimeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Realtime] Upgrade failed: %v", err)
		return
	}

	var tables []string
	if raw := r.URL.Query().Get("tables"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tables = append(tables, t)
			}
		}
	}

	sub := h.Hub.Subscribe(tables...)
	metrics.RealtimeSubscribers.Inc()
	defer metrics.RealtimeSubscribers.Dec()

	ctx := r.Context()
	revoked := make(chan string, 1)

	// Staff sessions get revoked live when their staff row is deleted,
	// unlinked or deactivated
	if staff, ok := middleware.GetStaffFromContext(ctx); ok {
		userID, _ := middleware.GetUserIDFromContext(ctx)
		guard := session.NewGuard(staff, userID)
		go h.Watcher.Run(ctx, guard, func(reason string) {
			select {
			case revoked <- reason:
			default:
			}
		})
	}

	// Reader: only pongs and close frames are expected from clients
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer sub.Close()
	defer conn.Close()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case reason := <-revoked:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session_revoked: "+reason))
			return
		case ev, ok := <-sub.C:
			if !ok {
				// Dropped for falling behind; the client reconnects
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscription dropped"))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
