package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
)

type CityFilter struct {
	Query   string
	Country string
	Region  string
	MinCost *float64
	MaxCost *float64
	SortBy  string
	Order   string
	Page    int
	Limit   int
}

type CountryRow struct {
	Country   string `gorm:"column:country"`
	CityCount int64  `gorm:"column:city_count"`
}

type CityRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error)
	FindByIdWithActivities(ctx context.Context, id uuid.UUID) (*dbm.City, error)
	Search(ctx context.Context, filter CityFilter) ([]dbm.City, int64, error)
	Popular(ctx context.Context, limit int) ([]dbm.City, error)
	Countries(ctx context.Context) ([]CountryRow, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

var citySortColumns = map[string]string{
	"popularity": "popularity_score",
	"name":       "name",
	"cost_index": "cost_index",
}

func (r *cityRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByIdWithActivities(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("rating DESC, review_count DESC")
		}).
		First(&city, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Search(ctx context.Context, filter CityFilter) ([]dbm.City, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.City{})
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + escapeLike(s) + "%"
		q = q.Where("(name ILIKE ? OR country ILIKE ? OR description ILIKE ?)", like, like, like)
	}
	if filter.Country != "" {
		q = q.Where("country ILIKE ?", escapeLike(filter.Country))
	}
	if filter.Region != "" {
		q = q.Where("region ILIKE ?", escapeLike(filter.Region))
	}
	if filter.MinCost != nil {
		q = q.Where("cost_index >= ?", *filter.MinCost)
	}
	if filter.MaxCost != nil {
		q = q.Where("cost_index <= ?", *filter.MaxCost)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cities []dbm.City
	err := q.Order(orderBy(citySortColumns, filter.SortBy, "popularity_score", filter.Order)).
		Order("name ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}

func (r *cityRepository) Popular(ctx context.Context, limit int) ([]dbm.City, error) {
	var cities []dbm.City
	err := r.db.WithContext(ctx).
		Order("popularity_score DESC, name ASC").
		Limit(limit).
		Find(&cities).Error
	return cities, err
}

func (r *cityRepository) Countries(ctx context.Context) ([]CountryRow, error) {
	var rows []CountryRow
	err := r.db.WithContext(ctx).
		Model(&dbm.City{}).
		Select("country, COUNT(*) AS city_count").
		Group("country").
		Order("country ASC").
		Find(&rows).Error
	return rows, err
}

// orderBy builds an ORDER BY term from a whitelisted sort key; unknown keys use the fallback column.
func orderBy(columns map[string]string, sortBy, fallback, order string) string {
	col, ok := columns[sortBy]
	if !ok {
		col = fallback
	}
	if strings.EqualFold(order, "asc") {
		return col + " ASC"
	}
	return col + " DESC"
}
