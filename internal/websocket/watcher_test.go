package websocket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

type stubLister struct {
	flights []models.Flight
	err     error
}

func (s *stubLister) ListFlights(ctx context.Context) ([]models.Flight, error) {
	return s.flights, s.err
}

type recordingNotifier struct {
	changed []models.Flight
	added   []models.Flight
	removed []string
}

func (r *recordingNotifier) BroadcastStatusChange(f models.Flight) { r.changed = append(r.changed, f) }
func (r *recordingNotifier) BroadcastFlightAdded(f models.Flight)  { r.added = append(r.added, f) }
func (r *recordingNotifier) BroadcastFlightRemoved(id string)      { r.removed = append(r.removed, id) }

func (r *recordingNotifier) reset() {
	r.changed, r.added, r.removed = nil, nil, nil
}

func TestWatcher_PollDetectsTransitions(t *testing.T) {
	lister := &stubLister{flights: []models.Flight{
		{ID: "F1", Status: models.FlightScheduled, Bookable: true},
		{ID: "F2", Status: models.FlightScheduled, Bookable: true},
	}}
	notifier := &recordingNotifier{}
	w := NewWatcher(lister, notifier, time.Second)

	// First poll against an empty snapshot reports everything as new.
	w.Poll(context.Background())
	require.Len(t, notifier.added, 2)
	assert.Empty(t, notifier.changed)
	notifier.reset()

	// An unchanged fleet is quiet.
	w.Poll(context.Background())
	assert.Empty(t, notifier.added)
	assert.Empty(t, notifier.changed)
	assert.Empty(t, notifier.removed)

	// F1 gets delayed, F2 disappears, F3 shows up.
	lister.flights = []models.Flight{
		{ID: "F1", Status: models.FlightDelayed, Bookable: true},
		{ID: "F3", Status: models.FlightScheduled, Bookable: true},
	}
	w.Poll(context.Background())

	require.Len(t, notifier.changed, 1)
	assert.Equal(t, "F1", notifier.changed[0].ID)
	assert.Equal(t, models.FlightDelayed, notifier.changed[0].Status)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, "F3", notifier.added[0].ID)

	assert.Equal(t, []string{"F2"}, notifier.removed)
}

func TestWatcher_PollKeepsSnapshotOnError(t *testing.T) {
	lister := &stubLister{flights: []models.Flight{
		{ID: "F1", Status: models.FlightScheduled, Bookable: true},
	}}
	notifier := &recordingNotifier{}
	w := NewWatcher(lister, notifier, time.Second)

	w.Poll(context.Background())
	notifier.reset()

	lister.err = errors.New("upstream down")
	w.Poll(context.Background())
	assert.Empty(t, notifier.removed)

	// Once the upstream recovers, no spurious re-adds happen.
	lister.err = nil
	w.Poll(context.Background())
	assert.Empty(t, notifier.added)
}
