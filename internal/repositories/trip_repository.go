package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
)

type TripFilter struct {
	Status string
	Query  string
	Page   int
	Limit  int
}

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	FindByIdAndOwner(ctx context.Context, id, ownerId uuid.UUID) (*dbm.Trip, error)
	FindPublicById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error)
	ListByOwner(ctx context.Context, ownerId uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error)
	ListPublic(ctx context.Context, page, limit int) ([]dbm.Trip, int64, error)
	Update(ctx context.Context, trip *dbm.Trip) error
	// Delete soft-deletes the trip with its stops and scheduled activities. It reports false when
	// no trip with that id belongs to the owner.
	Delete(ctx context.Context, id, ownerId uuid.UUID) (bool, error)
	UpdateBudget(ctx context.Context, id, ownerId uuid.UUID, budget float64) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// stopIds keeps preloaded stops light for list views, which only need the count.
func stopIds(db *gorm.DB) *gorm.DB {
	return db.Select("id", "trip_id", "order_index").Order("order_index ASC")
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

func (r *tripRepository) FindByIdAndOwner(ctx context.Context, id, ownerId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Stops", stopIds).
		Where("id = ? AND account_id = ?", id, ownerId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindPublicById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Stops", stopIds).
		Where("id = ? AND is_public = ?", id, true).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerId uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("account_id = ?", ownerId)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + escapeLike(s) + "%"
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := q.Preload("Stops", stopIds).
		Order("start_date ASC, created_at ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *tripRepository) ListPublic(ctx context.Context, page, limit int) ([]dbm.Trip, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("is_public = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := q.Preload("Stops", stopIds).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, id, ownerId uuid.UUID) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND account_id = ?", id, ownerId).Delete(&dbm.Trip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		stops := tx.Model(&dbm.TripStop{}).Select("id").Where("trip_id = ?", id)
		if err := tx.Where("trip_stop_id IN (?)", stops).Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		return tx.Where("trip_id = ?", id).Delete(&dbm.TripStop{}).Error
	})
	return found, err
}

func (r *tripRepository) UpdateBudget(ctx context.Context, id, ownerId uuid.UUID, budget float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ? AND account_id = ?", id, ownerId).
		Update("budget", budget)
	return res.RowsAffected > 0, res.Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
