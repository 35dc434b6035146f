package shipmentrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

const uniqueViolation = "23505"

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
// Bound to a transaction by the unit of work; bound to the pool it serves
// lock-free reads.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// NextID draws the next value of the shipments id sequence.
func (r *GormShipmentRepository) NextID(ctx context.Context) (shipment.ID, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('shipments', 'id'))").
		Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("next shipment id: %w", err)
	}
	return shipment.ID(id), nil
}

// Add inserts the shipment row and its unsaved ledger records.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewVersionIsInvalidErrorWithCause("shipment", err)
		}
		return err
	}

	ids, err := r.appendRecords(ctx, aggregate)
	if err != nil {
		return err
	}

	return aggregate.MarkPersisted(aggregate.Version(), ids)
}

// Update writes status, payment and updatedAt if the stored version still
// equals the loaded one, bumps the version and appends unsaved records.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next := aggregate.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND version = ?", int64(aggregate.ID()), aggregate.Version()).
		Updates(map[string]any{
			"current_status": aggregate.Status().String(),
			"payment_status": aggregate.IsPaid(),
			"updated_at":     aggregate.UpdatedAt(),
			"version":        next,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
			Where("id = ?", int64(aggregate.ID())).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("shipment")
	}

	ids, err := r.appendRecords(ctx, aggregate)
	if err != nil {
		return err
	}

	return aggregate.MarkPersisted(next, ids)
}

// Get loads a shipment and its ledger without locking.
func (r *GormShipmentRepository) Get(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	return r.get(ctx, id, r.db.WithContext(ctx))
}

// GetForUpdate loads a shipment with SELECT ... FOR UPDATE. The lock lasts
// until the surrounding transaction ends.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	return r.get(ctx, id, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

// List returns the shipments matching the filter, newest id first.
func (r *GormShipmentRepository) List(ctx context.Context, filter shipment.Filter) ([]*shipment.Shipment, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&ShipmentDTO{})
	if filter.Status != nil {
		query = query.Where("current_status = ?", filter.Status.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if term := filter.SearchTerm(); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		query = query.Where(
			"(lpad(id::text, greatest(6, length(id::text)), '0') LIKE ? OR lower(recipient_name) LIKE ?)",
			pattern, pattern,
		)
	}

	var dtos []ShipmentDTO
	if err := query.Preload("TrackingHistory", orderRecords).Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore shipment %d: %w", dto.ID, err)
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

func (r *GormShipmentRepository) get(ctx context.Context, id shipment.ID, query *gorm.DB) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := query.First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	if err = r.db.WithContext(ctx).Scopes(orderRecords).
		Where("shipment_id = ?", dto.ID).
		Find(&dto.TrackingHistory).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) appendRecords(ctx context.Context, aggregate *shipment.Shipment) ([]int64, error) {
	unsaved := aggregate.History().Unsaved()
	if len(unsaved) == 0 {
		return nil, nil
	}

	dtos := recordsFromDomain(aggregate.ID(), unsaved)
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	return ids, nil
}

func orderRecords(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
