package memory

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/pkg/errs"
)

type outboxRepository struct {
	uow *UnitOfWork
}

func (r *outboxRepository) Add(ctx context.Context, messages ...*outbox.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	if !r.uow.active {
		return r.uow.store.apply(nil, messages, nil)
	}
	r.uow.messages = append(r.uow.messages, messages...)
	return nil
}

// ListPending reserves the returned messages until the transaction ends so
// concurrent relays skip them.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	pending := r.uow.store.claimPending(limit, r.uow.active)
	if r.uow.active {
		for _, m := range pending {
			r.uow.claims = append(r.uow.claims, m.ID().String())
		}
	}
	return pending, nil
}

func (r *outboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	published := make(map[string]time.Time, len(ids))
	for _, id := range ids {
		published[id.String()] = at.UTC()
	}

	if !r.uow.active {
		return r.uow.store.apply(nil, nil, published)
	}
	for id, t := range published {
		r.uow.published[id] = t
	}
	return nil
}
