package websocket

import (
	"context"
	"log"
	"time"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// FlightLister is the slice of the airline client the watcher needs.
type FlightLister interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
}

// Notifier receives detected fleet changes. *Hub implements it.
type Notifier interface {
	BroadcastStatusChange(f models.Flight)
	BroadcastFlightAdded(f models.Flight)
	BroadcastFlightRemoved(flightID string)
}

// Watcher polls the upstream flight list and pushes status transitions to
// the hub so admin screens see Delayed/Cancelled flips without refreshing.
type Watcher struct {
	api      FlightLister
	notify   Notifier
	interval time.Duration
	known    map[string]models.FlightStatus
}

// NewWatcher creates a watcher polling at the given interval.
func NewWatcher(api FlightLister, notify Notifier, interval time.Duration) *Watcher {
	return &Watcher{
		api:      api,
		notify:   notify,
		interval: interval,
		known:    make(map[string]models.FlightStatus),
	}
}

// Run polls until the context is cancelled. The first poll seeds the known
// set silently so connecting clients are not flooded with the whole fleet.
func (w *Watcher) Run(ctx context.Context) {
	flights, err := w.api.ListFlights(ctx)
	if err != nil {
		log.Printf("Watcher: initial flight list failed: %v", err)
	} else {
		for _, f := range flights {
			w.known[f.ID] = f.Status
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll fetches the current flight list once and broadcasts any changes
// against the last known snapshot.
func (w *Watcher) Poll(ctx context.Context) {
	flights, err := w.api.ListFlights(ctx)
	if err != nil {
		log.Printf("Watcher: flight list failed: %v", err)
		return
	}

	seen := make(map[string]models.FlightStatus, len(flights))
	for _, f := range flights {
		prev, ok := w.known[f.ID]
		switch {
		case !ok:
			w.notify.BroadcastFlightAdded(f)
		case prev != f.Status:
			w.notify.BroadcastStatusChange(f)
		}
		seen[f.ID] = f.Status
	}

	for id := range w.known {
		if _, ok := seen[id]; !ok {
			w.notify.BroadcastFlightRemoved(id)
		}
	}

	w.known = seen
}
