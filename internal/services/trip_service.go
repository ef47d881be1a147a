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

type TripService interface {
	CreateTrip(ctx context.Context, ownerId uuid.UUID, in req.TripInput) (*resp.TripResponse, error)
	GetTrip(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.TripResponse, error)
	GetPublicTrip(ctx context.Context, tripId uuid.UUID) (*resp.TripResponse, error)
	ListTrips(ctx context.Context, ownerId uuid.UUID, query req.ListTripsQuery) (*resp.Paginated[resp.TripResponse], error)
	ListPublicTrips(ctx context.Context, page, limit int) (*resp.Paginated[resp.TripResponse], error)
	UpdateTrip(ctx context.Context, ownerId, tripId uuid.UUID, in req.TripInput) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, ownerId, tripId uuid.UUID) error
}

type tripService struct {
	repo  repositories.TripRepository
	cache CacheInvalidator
}

func NewTripService(repo repositories.TripRepository, cache CacheInvalidator) TripService {
	return &tripService{repo: repo, cache: cache}
}

func validateTripDates(trip *dbm.Trip) error {
	if !trip.EndDate.After(trip.StartDate) {
		return utils.NewValidationError("endDate", "must be after startDate")
	}
	return nil
}

// applyTripInput copies the set fields of in onto trip.
func applyTripInput(trip *dbm.Trip, in req.TripInput) {
	if in.Name != nil {
		trip.Name = *in.Name
	}
	if in.Description != nil {
		trip.Description = *in.Description
	}
	if in.StartDate != nil {
		trip.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		trip.EndDate = *in.EndDate
	}
	if in.Budget != nil {
		b := *in.Budget
		trip.Budget = &b
	}
	if in.Currency != nil {
		trip.Currency = *in.Currency
	}
	if in.Status != nil {
		trip.Status = dbm.TripStatus(*in.Status)
	}
	if in.IsPublic != nil {
		trip.IsPublic = *in.IsPublic
	}
	if in.Tags != nil {
		trip.Tags = in.Tags
	}
}

func (s *tripService) CreateTrip(ctx context.Context, ownerId uuid.UUID, in req.TripInput) (*resp.TripResponse, error) {
	trip := &dbm.Trip{
		AccountID: ownerId,
		Currency:  "USD",
		Status:    dbm.TripStatusPlanning,
		Tags:      []string{},
	}
	applyTripInput(trip, in)
	if err := validateTripDates(trip); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	s.cache.Invalidate(ctx, ownerId)

	out := toTripResponse(trip)
	return &out, nil
}

func (s *tripService) GetTrip(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.TripResponse, error) {
	trip, err := s.repo.FindByIdAndOwner(ctx, tripId, ownerId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	out := toTripResponse(trip)
	return &out, nil
}

func (s *tripService) GetPublicTrip(ctx context.Context, tripId uuid.UUID) (*resp.TripResponse, error) {
	trip, err := s.repo.FindPublicById(ctx, tripId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	out := toTripResponse(trip)
	return &out, nil
}

func (s *tripService) ListTrips(ctx context.Context, ownerId uuid.UUID, query req.ListTripsQuery) (*resp.Paginated[resp.TripResponse], error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.Limit < 1 || query.Limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.repo.ListByOwner(ctx, ownerId, repositories.TripFilter{
		Status: query.Status,
		Query:  query.Q,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}

	items := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, toTripResponse(&trips[i]))
	}
	page := resp.NewPaginated(items, query.Page, query.Limit, total)
	return &page, nil
}

func (s *tripService) ListPublicTrips(ctx context.Context, page, limit int) (*resp.Paginated[resp.TripResponse], error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.repo.ListPublic(ctx, page, limit)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}

	items := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, toTripResponse(&trips[i]))
	}
	out := resp.NewPaginated(items, page, limit, total)
	return &out, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, ownerId, tripId uuid.UUID, in req.TripInput) (*resp.TripResponse, error) {
	trip, err := s.repo.FindByIdAndOwner(ctx, tripId, ownerId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	applyTripInput(trip, in)
	if err := validateTripDates(trip); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	s.cache.Invalidate(ctx, ownerId)

	out := toTripResponse(trip)
	return &out, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, ownerId, tripId uuid.UUID) error {
	found, err := s.repo.Delete(ctx, tripId, ownerId)
	if err != nil {
		return utils.WrapDatabaseError(err)
	}
	if !found {
		return utils.ErrTripNotFound
	}
	s.cache.Invalidate(ctx, ownerId)
	return nil
}
