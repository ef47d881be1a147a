package services

import (
	"context"

	"github.com/google/uuid"
	dbm "tripplanner/internal/models/db_models"
	req "tripplanner/internal/models/request_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// ExploreService serves the read-only city and activity catalog.
type ExploreService interface {
	SearchCities(ctx context.Context, query req.CitySearchQuery) (*resp.Paginated[resp.CityResponse], error)
	PopularCities(ctx context.Context, limit int) ([]resp.CityResponse, error)
	GetCity(ctx context.Context, id uuid.UUID) (*resp.CityResponse, error)
	SearchActivities(ctx context.Context, query req.ActivitySearchQuery) (*resp.Paginated[resp.ActivityResponse], error)
	PopularActivities(ctx context.Context, limit int) ([]resp.ActivityResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*resp.ActivityResponse, error)
	ActivityTypes(ctx context.Context) ([]ActivityTypeCount, error)
	Countries(ctx context.Context) ([]resp.CountryCount, error)
}

type ActivityTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type exploreService struct {
	cityRepo     repositories.CityRepository
	activityRepo repositories.ActivityRepository
}

func NewExploreService(cityRepo repositories.CityRepository, activityRepo repositories.ActivityRepository) ExploreService {
	return &exploreService{cityRepo: cityRepo, activityRepo: activityRepo}
}

func (s *exploreService) SearchCities(ctx context.Context, query req.CitySearchQuery) (*resp.Paginated[resp.CityResponse], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cities, total, err := s.cityRepo.Search(ctx, repositories.CityFilter{
		Query:   query.Q,
		Country: query.Country,
		Region:  query.Region,
		MinCost: query.MinCost,
		MaxCost: query.MaxCost,
		SortBy:  query.SortBy,
		Order:   query.Order,
		Page:    query.Page,
		Limit:   query.Limit,
	})
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}

	items := make([]resp.CityResponse, 0, len(cities))
	for i := range cities {
		items = append(items, toCityResponse(&cities[i]))
	}
	page := resp.NewPaginated(items, query.Page, query.Limit, total)
	return &page, nil
}

func (s *exploreService) PopularCities(ctx context.Context, limit int) ([]resp.CityResponse, error) {
	cities, err := s.cityRepo.Popular(ctx, limit)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	out := make([]resp.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, toCityResponse(&cities[i]))
	}
	return out, nil
}

func (s *exploreService) GetCity(ctx context.Context, id uuid.UUID) (*resp.CityResponse, error) {
	city, err := s.cityRepo.FindByIdWithActivities(ctx, id)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	out := toCityResponse(city)
	return &out, nil
}

func (s *exploreService) SearchActivities(ctx context.Context, query req.ActivitySearchQuery) (*resp.Paginated[resp.ActivityResponse], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := repositories.ActivityFilter{
		Query:       query.Q,
		Type:        query.Type,
		MinCost:     query.MinCost,
		MaxCost:     query.MaxCost,
		MinRating:   query.MinRating,
		MaxDuration: query.MaxDuration,
		SortBy:      query.SortBy,
		Order:       query.Order,
		Page:        query.Page,
		Limit:       query.Limit,
	}
	if query.CityID != "" {
		cityID, err := uuid.Parse(query.CityID)
		if err != nil {
			return nil, utils.NewValidationError("cityId", "must be a valid UUID")
		}
		filter.CityID = &cityID
	}

	activities, total, err := s.activityRepo.Search(ctx, filter)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}

	items := make([]resp.ActivityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, toActivityResponse(&activities[i]))
	}
	page := resp.NewPaginated(items, query.Page, query.Limit, total)
	return &page, nil
}

func (s *exploreService) PopularActivities(ctx context.Context, limit int) ([]resp.ActivityResponse, error) {
	activities, err := s.activityRepo.Popular(ctx, limit)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	out := make([]resp.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out, nil
}

func (s *exploreService) GetActivity(ctx context.Context, id uuid.UUID) (*resp.ActivityResponse, error) {
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	out := toActivityResponse(activity)
	return &out, nil
}

// ActivityTypes lists every known type, including those with no catalog entries yet.
func (s *exploreService) ActivityTypes(ctx context.Context) ([]ActivityTypeCount, error) {
	rows, err := s.activityRepo.TypeCounts(ctx)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}

	out := make([]ActivityTypeCount, 0, len(dbm.ActivityTypes))
	for _, t := range dbm.ActivityTypes {
		out = append(out, ActivityTypeCount{Type: string(t), Count: counts[string(t)]})
	}
	return out, nil
}

func (s *exploreService) Countries(ctx context.Context) ([]resp.CountryCount, error) {
	rows, err := s.cityRepo.Countries(ctx)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	out := make([]resp.CountryCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.CountryCount{Country: r.Country, CityCount: r.CityCount})
	}
	return out, nil
}
