package session

import (
	"context"
	"log"
	"time"

	"resto-backend/internal/cache"
	"resto-backend/internal/realtime"
)

// Watcher runs one guard against the live change stream. When the guard
// revokes, the user's tokens are denylisted in Redis (so plain HTTP
// requests die too, not just the websocket) and onRevoked fires once.
type Watcher struct {
	hub      *realtime.Hub
	tokenTTL time.Duration
}

func NewWatcher(hub *realtime.Hub, tokenTTL time.Duration) *Watcher {
	return &Watcher{hub: hub, tokenTTL: tokenTTL}
}

// Run blocks until the session revokes or ctx is cancelled, returning the
// final guard state. If the subscription is dropped for falling behind,
// Run resubscribes with the same filter; events missed in between are not
// backfilled.
func (w *Watcher) Run(ctx context.Context, g Guard, onRevoked func(reason string)) Guard {
	for g.State == StateActive {
		sub := w.hub.Subscribe(realtime.TableStaff)
		g = w.consume(ctx, g, sub)
		sub.Close()

		if ctx.Err() != nil {
			return g
		}
		if g.State == StateActive {
			log.Printf("[SessionGuard] Resubscribing staff=%s after dropped stream", g.StaffID)
		}
	}

	cache.RevokeUserSessions(context.Background(), g.UserID, g.Reason, w.tokenTTL)
	log.Printf("[SessionGuard] Session revoked staff=%s reason=%s", g.StaffID, g.Reason)
	if onRevoked != nil {
		onRevoked(g.Reason)
	}
	return g
}

func (w *Watcher) consume(ctx context.Context, g Guard, sub *realtime.Subscription) Guard {
	for {
		select {
		case <-ctx.Done():
			return g
		case ev, ok := <-sub.C:
			if !ok {
				// Dropped by the hub; caller resubscribes
				return g
			}
			g = Reduce(g, ev)
			if g.State == StateRevoked {
				return g
			}
		}
	}
}
