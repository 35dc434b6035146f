// Package memory is an in-process shipment registry and outbox. It keeps
// committed state in maps guarded by a RWMutex and implements the same
// unit of work contract as the PostgreSQL adapter: writes are staged per
// unit of work and applied atomically on Commit, GetForUpdate holds a
// per-shipment lock until Commit or Rollback, and Update checks the stored
// version.
//
// It backs STORAGE=memory and the end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit when Begin was not called.
var ErrNoTransaction = errors.New("memory: no active transaction")

// Store holds committed shipments and outbox messages.
type Store struct {
	mu        sync.RWMutex
	shipments map[shipment.ID]shipment.State
	messages  []*outbox.Message
	claimed   map[string]struct{}

	lastID       atomic.Int64
	lastRecordID atomic.Int64

	locksMu sync.Mutex
	locks   map[shipment.ID]*entityLock
}

// entityLock is a one-slot semaphore. refs counts the holder and waiters;
// the entry is dropped when it reaches zero.
type entityLock struct {
	ch   chan struct{}
	refs int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		shipments: make(map[shipment.ID]shipment.State),
		claimed:   make(map[string]struct{}),
		locks:     make(map[shipment.ID]*entityLock),
	}
}

// Create starts a new unit of work over the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// Get returns the committed shipment. It never waits for entity locks.
func (s *Store) Get(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	state, ok := s.shipments[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return restore(state)
}

// List returns committed shipments matching filter, newest id first.
func (s *Store) List(ctx context.Context, filter shipment.Filter) ([]*shipment.Shipment, error) {
	return s.list(ctx, filter, nil)
}

func (s *Store) list(
	ctx context.Context,
	filter shipment.Filter,
	overlay map[shipment.ID]staged,
) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	states := make(map[shipment.ID]shipment.State, len(s.shipments)+len(overlay))
	for id, state := range s.shipments {
		states[id] = state
	}
	s.mu.RUnlock()
	for id, change := range overlay {
		states[id] = change.state
	}

	out := make([]*shipment.Shipment, 0)
	for _, state := range states {
		sh, err := restore(state)
		if err != nil {
			return nil, err
		}
		if filter.Matches(sh) {
			out = append(out, sh)
		}
	}

	slices.SortFunc(out, func(a, b *shipment.Shipment) int {
		return cmp.Compare(b.ID(), a.ID())
	})
	return out, nil
}

func (s *Store) nextID() shipment.ID {
	return shipment.ID(s.lastID.Add(1))
}

func (s *Store) nextRecordIDs(n int) []int64 {
	if n == 0 {
		return nil
	}
	last := s.lastRecordID.Add(int64(n))
	ids := make([]int64, 0, n)
	for id := last - int64(n) + 1; id <= last; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) committed(id shipment.ID) (shipment.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.shipments[id]
	return state, ok
}

// apply writes a unit of work's changes atomically after re-checking
// every version it was based on.
func (s *Store) apply(
	changes map[shipment.ID]staged,
	messages []*outbox.Message,
	published map[string]time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, change := range changes {
		current, exists := s.shipments[id]
		switch {
		case change.isNew && exists:
			return errs.NewVersionIsInvalidError("shipment")
		case !change.isNew && !exists:
			return errs.NewObjectNotFoundError("shipment", id)
		case !change.isNew && current.Version != change.baseVersion:
			return errs.NewVersionIsInvalidError("shipment")
		}
	}

	for id, change := range changes {
		s.shipments[id] = change.state
	}
	s.messages = append(s.messages, messages...)

	if len(published) == 0 {
		return nil
	}
	for i, m := range s.messages {
		at, ok := published[m.ID().String()]
		if !ok || m.IsPublished() {
			continue
		}
		stamped, err := outbox.RestoreMessage(m.ID(), m.ShipmentID(), m.EventType(), m.Payload(), m.OccurredAt(), &at)
		if err != nil {
			return err
		}
		s.messages[i] = stamped
	}
	return nil
}

// claimPending reserves up to limit unpublished messages nobody else holds,
// oldest first. Without a transaction nothing is reserved.
func (s *Store) claimPending(limit int, reserve bool) []*outbox.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []*outbox.Message
	for _, m := range s.messages {
		if m.IsPublished() {
			continue
		}
		if _, taken := s.claimed[m.ID().String()]; taken {
			continue
		}
		pending = append(pending, m)
	}

	slices.SortStableFunc(pending, func(a, b *outbox.Message) int {
		return a.OccurredAt().Compare(b.OccurredAt())
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}

	if reserve {
		for _, m := range pending {
			s.claimed[m.ID().String()] = struct{}{}
		}
	}
	return pending
}

func (s *Store) release(claims []string) {
	if len(claims) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range claims {
		delete(s.claimed, id)
	}
}

// lock takes the per-shipment lock, giving up when ctx is done.
func (s *Store) lock(ctx context.Context, id shipment.ID) error {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &entityLock{ch: make(chan struct{}, 1)}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		s.locksMu.Lock()
		s.drop(id, l)
		s.locksMu.Unlock()
		return ctx.Err()
	}
}

func (s *Store) unlock(id shipment.ID) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l := s.locks[id]
	<-l.ch
	s.drop(id, l)
}

// drop must be called with locksMu held.
func (s *Store) drop(id shipment.ID, l *entityLock) {
	l.refs--
	if l.refs == 0 {
		delete(s.locks, id)
	}
}

// restore rebuilds an aggregate that shares no memory with the stored state.
func restore(state shipment.State) (*shipment.Shipment, error) {
	state.History = slices.Clip(slices.Clone(state.History))
	return shipment.RestoreShipment(state)
}
