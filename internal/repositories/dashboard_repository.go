package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

type DashboardRepository interface {
	// Trips of the owner starting within [from, to], soonest first.
	UpcomingTrips(ctx context.Context, ownerId uuid.UUID, from, to time.Time, limit int) ([]dbm.Trip, error)
	// Trips of the owner that ended within [from, to], latest first.
	RecentTrips(ctx context.Context, ownerId uuid.UUID, from, to time.Time, limit int) ([]dbm.Trip, error)
	PopularCities(ctx context.Context, limit int) ([]dbm.City, error)
	BudgetTotals(ctx context.Context, ownerId uuid.UUID) (BudgetTotalsRow, error)
	CountVisitedCities(ctx context.Context, ownerId uuid.UUID) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BudgetTotalsRow struct {
	TotalBudget float64 `gorm:"column:total_budget"`
	TripCount   int64   `gorm:"column:trip_count"`
}

// ---------- Trips ----------
func (r *dashboardRepository) UpcomingTrips(ctx context.Context, ownerId uuid.UUID, from, to time.Time, limit int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", ownerId).
		Where("start_date BETWEEN ? AND ?", from, to).
		Where("status <> ?", dbm.TripStatusCancelled).
		Order("start_date ASC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

func (r *dashboardRepository) RecentTrips(ctx context.Context, ownerId uuid.UUID, from, to time.Time, limit int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", ownerId).
		Where("end_date BETWEEN ? AND ?", from, to).
		Order("end_date DESC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

// ---------- Popular cities ----------
func (r *dashboardRepository) PopularCities(ctx context.Context, limit int) ([]dbm.City, error) {
	var cities []dbm.City
	err := r.db.WithContext(ctx).
		Order("popularity_score DESC, name ASC").
		Limit(limit).
		Find(&cities).Error
	return cities, err
}

// ---------- Budget stats ----------
func (r *dashboardRepository) BudgetTotals(ctx context.Context, ownerId uuid.UUID) (BudgetTotalsRow, error) {
	var row BudgetTotalsRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("COALESCE(SUM(budget), 0) AS total_budget, COUNT(*) AS trip_count").
		Where("account_id = ?", ownerId).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) CountVisitedCities(ctx context.Context, ownerId uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("trip_stops s").
		Select("COUNT(DISTINCT s.city_id)").
		Joins("JOIN trips t ON t.id = s.trip_id AND t.deleted_at IS NULL").
		Where("t.account_id = ?", ownerId).
		Where("s.deleted_at IS NULL").
		Scan(&n).Error
	return n, err
}
