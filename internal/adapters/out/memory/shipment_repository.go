package memory

import (
	"context"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

type shipmentRepository struct {
	uow *UnitOfWork
}

func (r *shipmentRepository) NextID(ctx context.Context) (shipment.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.uow.store.nextID(), nil
}

func (r *shipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.current(aggregate.ID()); exists {
		return errs.NewVersionIsInvalidError("shipment")
	}

	ids := r.uow.store.nextRecordIDs(len(aggregate.History().Unsaved()))
	if err := aggregate.MarkPersisted(aggregate.Version(), ids); err != nil {
		return err
	}

	return r.uow.write(aggregate.ID(), staged{state: aggregate.State(), isNew: true})
}

func (r *shipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, ok := r.uow.current(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID())
	}
	if stored.Version != aggregate.Version() {
		return errs.NewVersionIsInvalidError("shipment")
	}

	ids := r.uow.store.nextRecordIDs(len(aggregate.History().Unsaved()))
	if err := aggregate.MarkPersisted(stored.Version+1, ids); err != nil {
		return err
	}

	return r.uow.write(aggregate.ID(), staged{state: aggregate.State(), baseVersion: stored.Version})
}

func (r *shipmentRepository) Get(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	state, ok := r.uow.current(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return restore(state)
}

// GetForUpdate takes the shipment's lock for the rest of the transaction.
// Outside a transaction it behaves like Get.
func (r *shipmentRepository) GetForUpdate(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if r.uow.active {
		if _, held := r.uow.held[id]; !held {
			if err := r.uow.store.lock(ctx, id); err != nil {
				return nil, err
			}
			r.uow.held[id] = struct{}{}
		}
	}

	return r.Get(ctx, id)
}

func (r *shipmentRepository) List(ctx context.Context, filter shipment.Filter) ([]*shipment.Shipment, error) {
	if !r.uow.active {
		return r.uow.store.list(ctx, filter, nil)
	}
	return r.uow.store.list(ctx, filter, r.uow.changes)
}
