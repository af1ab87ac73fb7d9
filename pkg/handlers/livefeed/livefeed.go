package livefeed

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mika/debt-ledger/pkg/api"
	"github.com/mika/debt-ledger/pkg/mapping"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections by default for local development.
		return true
	},
}

// FeedHandler streams an owner's full debt snapshot over a WebSocket on
// every ledger change. Each frame replaces the previous one; clients never
// receive diffs.
type FeedHandler struct {
	Watcher storage.DebtWatcher
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(watcher storage.DebtWatcher) *FeedHandler {
	return &FeedHandler{Watcher: watcher}
}

// ServeHTTP upgrades the connection and forwards snapshots until the client
// disconnects.
func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade debt feed connection", "error", err)
		return
	}
	defer conn.Close()

	// Gorilla connections allow one concurrent writer.
	var writeMu sync.Mutex
	cancel, err := h.Watcher.Subscribe(r.Context(), ownerID, func(debts []models.Debt) {
		apiDebts := make([]*api.Debt, len(debts))
		for i := range debts {
			apiDebts[i] = mapping.ToApiDebt(&debts[i])
		}

		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(apiDebts); err != nil {
			slog.Error("failed to write debt snapshot to feed", "ownerId", ownerID, "error", err)
		}
	})
	if err != nil {
		slog.Error("failed to subscribe debt feed", "ownerId", ownerID, "error", err)
		return
	}
	defer cancel()

	// Block until the client goes away; inbound messages are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
