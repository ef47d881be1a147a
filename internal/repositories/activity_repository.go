package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
)

type ActivityFilter struct {
	Query       string
	CityID      *uuid.UUID
	Type        string
	MinCost     *float64
	MaxCost     *float64
	MinRating   *float64
	MaxDuration *int
	SortBy      string
	Order       string
	Page        int
	Limit       int
}

type TypeCountRow struct {
	Type  string `gorm:"column:type"`
	Count int64  `gorm:"column:count"`
}

type ActivityRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Activity, error)
	Search(ctx context.Context, filter ActivityFilter) ([]dbm.Activity, int64, error)
	Popular(ctx context.Context, limit int) ([]dbm.Activity, error)
	TypeCounts(ctx context.Context) ([]TypeCountRow, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

var activitySortColumns = map[string]string{
	"rating":     "activities.rating",
	"cost":       "activities.cost",
	"name":       "activities.name",
	"duration":   "activities.duration_minutes",
	"popularity": "activities.review_count",
}

func (r *activityRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).
		Preload("City").
		First(&activity, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) Search(ctx context.Context, filter ActivityFilter) ([]dbm.Activity, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Activity{})
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + escapeLike(s) + "%"
		q = q.Where("(activities.name ILIKE ? OR activities.description ILIKE ?)", like, like)
	}
	if filter.CityID != nil {
		q = q.Where("activities.city_id = ?", *filter.CityID)
	}
	if filter.Type != "" {
		q = q.Where("activities.type = ?", filter.Type)
	}
	if filter.MinCost != nil {
		q = q.Where("COALESCE(activities.cost, 0) >= ?", *filter.MinCost)
	}
	if filter.MaxCost != nil {
		q = q.Where("COALESCE(activities.cost, 0) <= ?", *filter.MaxCost)
	}
	if filter.MinRating != nil {
		q = q.Where("activities.rating >= ?", *filter.MinRating)
	}
	if filter.MaxDuration != nil {
		q = q.Where("activities.duration_minutes <= ?", *filter.MaxDuration)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []dbm.Activity
	err := q.Preload("City").
		Order(orderBy(activitySortColumns, filter.SortBy, "activities.rating", filter.Order)).
		Order("activities.name ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func (r *activityRepository) Popular(ctx context.Context, limit int) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Preload("City").
		Order("rating DESC, review_count DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) TypeCounts(ctx context.Context) ([]TypeCountRow, error) {
	var rows []TypeCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Activity{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Find(&rows).Error
	return rows, err
}
