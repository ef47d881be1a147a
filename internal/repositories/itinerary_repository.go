package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripplanner/internal/models/db_models"
)

// ItineraryRepository persists trip stops and the activities scheduled inside them.
type ItineraryRepository interface {
	// Transaction runs fn against a repository bound to a single database transaction.
	Transaction(ctx context.Context, fn func(repo ItineraryRepository) error) error
	// LockTrip loads the owner's trip with SELECT ... FOR UPDATE. Inside a Transaction this
	// serializes every itinerary mutation of the same trip.
	LockTrip(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error)
	FindTripWithItinerary(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error)

	// FindCity and FindActivity read the catalog on the repository's own connection, so a
	// caller inside Transaction never waits on a second pooled connection.
	FindCity(ctx context.Context, id uuid.UUID) (*dbm.City, error)
	FindActivity(ctx context.Context, id uuid.UUID) (*dbm.Activity, error)

	ListStops(ctx context.Context, tripId uuid.UUID) ([]dbm.TripStop, error)
	FindStop(ctx context.Context, tripId, stopId uuid.UUID) (*dbm.TripStop, error)
	NextStopOrder(ctx context.Context, tripId uuid.UUID) (int, error)
	CreateStop(ctx context.Context, stop *dbm.TripStop) error
	UpdateStop(ctx context.Context, stop *dbm.TripStop) error
	UpdateStopOrder(ctx context.Context, stopId uuid.UUID, orderIndex int) error
	DeleteStop(ctx context.Context, stopId uuid.UUID) error

	FindTripActivity(ctx context.Context, stopId, id uuid.UUID) (*dbm.TripActivity, error)
	CreateTripActivity(ctx context.Context, activity *dbm.TripActivity) error
	UpdateTripActivity(ctx context.Context, activity *dbm.TripActivity) error
	DeleteTripActivity(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Transaction(ctx context.Context, fn func(repo ItineraryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&itineraryRepository{db: tx})
	})
}

func (r *itineraryRepository) LockTrip(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND account_id = ?", tripId, ownerId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *itineraryRepository) FindTripWithItinerary(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripId, ownerId).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, arrival_date ASC")
		}).
		Preload("Stops.City").
		Preload("Stops.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Stops.Activities.Activity").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *itineraryRepository) FindCity(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	return (&cityRepository{db: r.db}).FindById(ctx, id)
}

func (r *itineraryRepository) FindActivity(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	return (&activityRepository{db: r.db}).FindById(ctx, id)
}

func (r *itineraryRepository) ListStops(ctx context.Context, tripId uuid.UUID) ([]dbm.TripStop, error) {
	var stops []dbm.TripStop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Preload("City").
		Order("order_index ASC").
		Find(&stops).Error
	return stops, err
}

func (r *itineraryRepository) FindStop(ctx context.Context, tripId, stopId uuid.UUID) (*dbm.TripStop, error) {
	var stop dbm.TripStop
	err := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", stopId, tripId).
		Preload("City").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Activities.Activity").
		First(&stop).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stop, nil
}

func (r *itineraryRepository) NextStopOrder(ctx context.Context, tripId uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&dbm.TripStop{}).
		Select("COALESCE(MAX(order_index), 0)").
		Where("trip_id = ?", tripId).
		Scan(&max).Error
	return max + 1, err
}

func (r *itineraryRepository) CreateStop(ctx context.Context, stop *dbm.TripStop) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(stop).Error
}

func (r *itineraryRepository) UpdateStop(ctx context.Context, stop *dbm.TripStop) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(stop).Error
}

func (r *itineraryRepository) UpdateStopOrder(ctx context.Context, stopId uuid.UUID, orderIndex int) error {
	return r.db.WithContext(ctx).
		Model(&dbm.TripStop{}).
		Where("id = ?", stopId).
		Update("order_index", orderIndex).Error
}

func (r *itineraryRepository) DeleteStop(ctx context.Context, stopId uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("trip_stop_id = ?", stopId).Delete(&dbm.TripActivity{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", stopId).Delete(&dbm.TripStop{}).Error
}

func (r *itineraryRepository) FindTripActivity(ctx context.Context, stopId, id uuid.UUID) (*dbm.TripActivity, error) {
	var activity dbm.TripActivity
	err := r.db.WithContext(ctx).
		Where("id = ? AND trip_stop_id = ?", id, stopId).
		Preload("Activity").
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *itineraryRepository) CreateTripActivity(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *itineraryRepository) UpdateTripActivity(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(activity).Error
}

func (r *itineraryRepository) DeleteTripActivity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dbm.TripActivity{}).Error
}
