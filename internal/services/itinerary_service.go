package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	dbm "tripplanner/internal/models/db_models"
	req "tripplanner/internal/models/request_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// ItineraryService manages the stops of a trip and the activities scheduled inside each stop.
// Every mutation runs in one transaction holding the trip row lock, so the overlap checks
// and the writes they guard cannot interleave with another request on the same trip.
type ItineraryService interface {
	GetItinerary(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.ItineraryResponse, error)
	AddStop(ctx context.Context, ownerId, tripId uuid.UUID, in req.StopInput) (*resp.StopResponse, error)
	UpdateStop(ctx context.Context, ownerId, tripId, stopId uuid.UUID, in req.StopInput) (*resp.StopResponse, error)
	RemoveStop(ctx context.Context, ownerId, tripId, stopId uuid.UUID) error
	AddActivity(ctx context.Context, ownerId, tripId, stopId uuid.UUID, in req.TripActivityInput) (*resp.TripActivityResponse, error)
	UpdateActivity(ctx context.Context, ownerId, tripId, stopId, tripActivityId uuid.UUID, in req.TripActivityInput) (*resp.TripActivityResponse, error)
	RemoveActivity(ctx context.Context, ownerId, tripId, stopId, tripActivityId uuid.UUID) error
	// ReorderStops numbers the trip's stops 1..N in the given order. Dates are not checked
	// against the new order.
	ReorderStops(ctx context.Context, ownerId, tripId uuid.UUID, stopIds []uuid.UUID) ([]resp.StopOrder, error)
}

type itineraryService struct {
	repo  repositories.ItineraryRepository
	cache CacheInvalidator
}

func NewItineraryService(repo repositories.ItineraryRepository, cache CacheInvalidator) ItineraryService {
	return &itineraryService{repo: repo, cache: cache}
}

func lockOwnedTrip(ctx context.Context, repo repositories.ItineraryRepository, tripId, ownerId uuid.UUID) error {
	trip, err := repo.LockTrip(ctx, tripId, ownerId)
	if err != nil {
		return utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	return nil
}

func findOwnedStop(ctx context.Context, repo repositories.ItineraryRepository, tripId, stopId uuid.UUID) (*dbm.TripStop, error) {
	stop, err := repo.FindStop(ctx, tripId, stopId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}
	return stop, nil
}

func findCatalogCity(ctx context.Context, repo repositories.ItineraryRepository, id uuid.UUID) (*dbm.City, error) {
	city, err := repo.FindCity(ctx, id)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	return city, nil
}

func findCatalogActivity(ctx context.Context, repo repositories.ItineraryRepository, id uuid.UUID) (*dbm.Activity, error) {
	activity, err := repo.FindActivity(ctx, id)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *itineraryService) GetItinerary(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.ItineraryResponse, error) {
	trip, err := s.repo.FindTripWithItinerary(ctx, tripId, ownerId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	out := &resp.ItineraryResponse{
		TripID:    trip.ID,
		TripName:  trip.Name,
		StartDate: utils.FormatDate(trip.StartDate),
		EndDate:   utils.FormatDate(trip.EndDate),
		StopCount: len(trip.Stops),
		Days:      groupByDate(trip.Stops),
	}

	route, err := routeGeoJSON(trip.Stops)
	if err != nil {
		logrus.WithError(err).WithField("trip_id", tripId).Warn("could not build itinerary route")
	}
	out.Route = route
	return out, nil
}

func (s *itineraryService) AddStop(ctx context.Context, ownerId, tripId uuid.UUID, in req.StopInput) (*resp.StopResponse, error) {
	if err := validateStopDates(in.ArrivalDate, in.DepartureDate); err != nil {
		return nil, err
	}

	var stop *dbm.TripStop
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		city, err := findCatalogCity(ctx, repo, in.CityID)
		if err != nil {
			return err
		}

		stops, err := repo.ListStops(ctx, tripId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}
		candidate := interval{start: in.ArrivalDate, end: in.DepartureDate}
		if existing := findStopConflict(stops, candidate, uuid.Nil); existing != nil {
			return stopConflictError(existing)
		}

		order, err := repo.NextStopOrder(ctx, tripId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}

		stop = &dbm.TripStop{
			TripID:        tripId,
			CityID:        city.ID,
			OrderIndex:    order,
			ArrivalDate:   in.ArrivalDate,
			DepartureDate: in.DepartureDate,
			EstimatedCost: in.EstimatedCost,
			Notes:         derefString(in.Notes),
			Status:        dbm.StopStatusPlanned,
		}
		if in.Status != "" {
			stop.Status = dbm.StopStatus(in.Status)
		}
		if err := repo.CreateStop(ctx, stop); err != nil {
			return utils.WrapDatabaseError(err)
		}
		stop.City = *city
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}

	s.cache.Invalidate(ctx, ownerId)
	out := toStopResponse(stop)
	return &out, nil
}

func (s *itineraryService) UpdateStop(ctx context.Context, ownerId, tripId, stopId uuid.UUID, in req.StopInput) (*resp.StopResponse, error) {
	if err := validateStopDates(in.ArrivalDate, in.DepartureDate); err != nil {
		return nil, err
	}

	var stop *dbm.TripStop
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		var err error
		if stop, err = findOwnedStop(ctx, repo, tripId, stopId); err != nil {
			return err
		}
		if in.CityID != stop.CityID {
			city, err := findCatalogCity(ctx, repo, in.CityID)
			if err != nil {
				return err
			}
			stop.CityID = city.ID
			stop.City = *city
		}

		stops, err := repo.ListStops(ctx, tripId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}
		candidate := interval{start: in.ArrivalDate, end: in.DepartureDate}
		if existing := findStopConflict(stops, candidate, stop.ID); existing != nil {
			return stopConflictError(existing)
		}

		stop.ArrivalDate = in.ArrivalDate
		stop.DepartureDate = in.DepartureDate
		if in.EstimatedCost != nil {
			stop.EstimatedCost = in.EstimatedCost
		}
		if in.Notes != nil {
			stop.Notes = *in.Notes
		}
		if in.Status != "" {
			stop.Status = dbm.StopStatus(in.Status)
		}
		if err := repo.UpdateStop(ctx, stop); err != nil {
			return utils.WrapDatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}

	s.cache.Invalidate(ctx, ownerId)
	out := toStopResponse(stop)
	return &out, nil
}

func (s *itineraryService) RemoveStop(ctx context.Context, ownerId, tripId, stopId uuid.UUID) error {
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		stop, err := findOwnedStop(ctx, repo, tripId, stopId)
		if err != nil {
			return err
		}
		if err := repo.DeleteStop(ctx, stop.ID); err != nil {
			return utils.WrapDatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return serviceError(err)
	}
	s.cache.Invalidate(ctx, ownerId)
	return nil
}

func (s *itineraryService) AddActivity(ctx context.Context, ownerId, tripId, stopId uuid.UUID, in req.TripActivityInput) (*resp.TripActivityResponse, error) {
	if err := validateActivityTimes(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	var scheduled *dbm.TripActivity
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		stop, err := findOwnedStop(ctx, repo, tripId, stopId)
		if err != nil {
			return err
		}
		activity, err := findCatalogActivity(ctx, repo, in.ActivityID)
		if err != nil {
			return err
		}

		candidate := interval{start: in.StartTime, end: in.EndTime}
		if existing := findActivityConflict(stop.Activities, candidate, uuid.Nil); existing != nil {
			return activityConflictError(existing)
		}

		scheduled = &dbm.TripActivity{
			TripStopID: stop.ID,
			ActivityID: activity.ID,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Cost:       activity.Cost,
			Notes:      derefString(in.Notes),
			Status:     dbm.TripActivityPlanned,
		}
		if in.Status != "" {
			scheduled.Status = dbm.TripActivityStatus(in.Status)
		}
		if err := repo.CreateTripActivity(ctx, scheduled); err != nil {
			return utils.WrapDatabaseError(err)
		}
		scheduled.Activity = *activity
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}

	s.cache.Invalidate(ctx, ownerId)
	out := toTripActivityResponse(scheduled)
	return &out, nil
}

func (s *itineraryService) UpdateActivity(ctx context.Context, ownerId, tripId, stopId, tripActivityId uuid.UUID, in req.TripActivityInput) (*resp.TripActivityResponse, error) {
	if err := validateActivityTimes(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	var scheduled *dbm.TripActivity
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		stop, err := findOwnedStop(ctx, repo, tripId, stopId)
		if err != nil {
			return err
		}
		scheduled, err = repo.FindTripActivity(ctx, stop.ID, tripActivityId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}
		if scheduled == nil {
			return utils.ErrTripActivityNotFound
		}

		candidate := interval{start: in.StartTime, end: in.EndTime}
		if existing := findActivityConflict(stop.Activities, candidate, scheduled.ID); existing != nil {
			return activityConflictError(existing)
		}

		scheduled.StartTime = in.StartTime
		scheduled.EndTime = in.EndTime
		if in.Notes != nil {
			scheduled.Notes = *in.Notes
		}
		if in.Status != "" {
			scheduled.Status = dbm.TripActivityStatus(in.Status)
		}
		if err := repo.UpdateTripActivity(ctx, scheduled); err != nil {
			return utils.WrapDatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}

	s.cache.Invalidate(ctx, ownerId)
	out := toTripActivityResponse(scheduled)
	return &out, nil
}

func (s *itineraryService) RemoveActivity(ctx context.Context, ownerId, tripId, stopId, tripActivityId uuid.UUID) error {
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		stop, err := findOwnedStop(ctx, repo, tripId, stopId)
		if err != nil {
			return err
		}
		scheduled, err := repo.FindTripActivity(ctx, stop.ID, tripActivityId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}
		if scheduled == nil {
			return utils.ErrTripActivityNotFound
		}
		if err := repo.DeleteTripActivity(ctx, scheduled.ID); err != nil {
			return utils.WrapDatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return serviceError(err)
	}
	s.cache.Invalidate(ctx, ownerId)
	return nil
}

func (s *itineraryService) ReorderStops(ctx context.Context, ownerId, tripId uuid.UUID, stopIds []uuid.UUID) ([]resp.StopOrder, error) {
	if len(stopIds) == 0 {
		return nil, utils.NewValidationError("stopIds", "is required")
	}

	start := time.Now()
	var out []resp.StopOrder
	err := s.repo.Transaction(ctx, func(repo repositories.ItineraryRepository) error {
		if err := lockOwnedTrip(ctx, repo, tripId, ownerId); err != nil {
			return err
		}
		stops, err := repo.ListStops(ctx, tripId)
		if err != nil {
			return utils.WrapDatabaseError(err)
		}

		known := make(map[uuid.UUID]bool, len(stops))
		for _, st := range stops {
			known[st.ID] = true
		}
		seen := make(map[uuid.UUID]bool, len(stopIds))
		for _, id := range stopIds {
			if !known[id] {
				return utils.ErrStopNotFound
			}
			if seen[id] {
				return utils.NewValidationError("stopIds", "must not contain duplicates")
			}
			seen[id] = true
		}
		if len(stopIds) != len(stops) {
			return utils.NewValidationError("stopIds", "must list every stop of the trip exactly once")
		}

		out = make([]resp.StopOrder, 0, len(stopIds))
		for i, id := range stopIds {
			if err := repo.UpdateStopOrder(ctx, id, i+1); err != nil {
				return utils.WrapDatabaseError(err)
			}
			out = append(out, resp.StopOrder{StopID: id, OrderIndex: i + 1})
		}
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}

	logrus.WithFields(logrus.Fields{
		"trip_id": tripId,
		"stops":   len(out),
		"took":    time.Since(start).String(),
	}).Debug("stops reordered")
	return out, nil
}
