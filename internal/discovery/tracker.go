package discovery

import (
	"context"
	"slices"

	"github.com/osse101/bloom/internal/logger"
)

// Persister saves the aggregate state after a mutation
type Persister interface {
	Persist(ctx context.Context) error
}

// Tracker records which species the player has identified and which of
// those have not been announced yet. Identification is permanent.
type Tracker struct {
	identified map[string]struct{}
	order      []string
	pending    []string
	persister  Persister
}

// NewTracker restores a tracker from saved identified and pending ids
func NewTracker(identified, pending []string, persister Persister) *Tracker {
	t := &Tracker{
		identified: make(map[string]struct{}, len(identified)),
		persister:  persister,
	}
	for _, id := range identified {
		if _, ok := t.identified[id]; ok {
			continue
		}
		t.identified[id] = struct{}{}
		t.order = append(t.order, id)
	}
	for _, id := range pending {
		if _, ok := t.identified[id]; ok && !slices.Contains(t.pending, id) {
			t.pending = append(t.pending, id)
		}
	}
	return t
}

// IsIdentified reports whether the species has been identified
func (t *Tracker) IsIdentified(id string) bool {
	_, ok := t.identified[id]
	return ok
}

// MarkIdentified identifies a species and queues its announcement.
// Calling it again for the same id does nothing.
func (t *Tracker) MarkIdentified(ctx context.Context, id string) error {
	if t.IsIdentified(id) {
		return nil
	}

	t.identified[id] = struct{}{}
	t.order = append(t.order, id)
	t.pending = append(t.pending, id)

	logger.FromContext(ctx).Info("Species identified", "species_id", id)

	return t.persister.Persist(ctx)
}

// DrainPending returns and clears queued announcements. With a filter only
// the matching ids are returned and removed; the rest stay queued in order.
func (t *Tracker) DrainPending(ctx context.Context, filter ...string) ([]string, error) {
	if len(t.pending) == 0 {
		return nil, nil
	}

	var drained []string
	if len(filter) == 0 {
		drained = t.pending
		t.pending = nil
	} else {
		kept := make([]string, 0, len(t.pending))
		for _, id := range t.pending {
			if slices.Contains(filter, id) {
				drained = append(drained, id)
			} else {
				kept = append(kept, id)
			}
		}
		if len(drained) == 0 {
			return nil, nil
		}
		t.pending = kept
	}

	if err := t.persister.Persist(ctx); err != nil {
		return drained, err
	}
	return drained, nil
}

// Identified returns identified ids in discovery order
func (t *Tracker) Identified() []string {
	return slices.Clone(t.order)
}

// Pending returns the ids still waiting to be announced
func (t *Tracker) Pending() []string {
	return slices.Clone(t.pending)
}
