package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "tripplanner/internal/models/db_models"
	req "tripplanner/internal/models/request_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

type itineraryFixture struct {
	store *memStore
	cache *spyInvalidator
	svc   ItineraryService
	owner uuid.UUID
	trip  *dbm.Trip
	paris *dbm.City
	rome  *dbm.City
}

func newItineraryFixture(t *testing.T) *itineraryFixture {
	t.Helper()
	store := newMemStore()
	cache := &spyInvalidator{}
	owner := uuid.New()
	f := &itineraryFixture{
		store: store,
		cache: cache,
		owner: owner,
		trip:  store.addTrip(owner, "2024-06-01", "2024-06-10", floatPtr(1000)),
		paris: store.addCity("Paris", 48.8566, 2.3522),
		rome:  store.addCity("Rome", 41.9028, 12.4964),
	}
	f.svc = NewItineraryService(&fakeItineraryRepo{s: store}, cache)
	return f
}

func (f *itineraryFixture) stopInput(city *dbm.City, arrival, departure string, cost *float64) req.StopInput {
	return req.StopInput{
		CityID:        city.ID,
		ArrivalDate:   mustDate(arrival),
		DepartureDate: mustDate(departure),
		EstimatedCost: cost,
	}
}

func (f *itineraryFixture) addStop(t *testing.T, city *dbm.City, arrival, departure string, cost *float64) *resp.StopResponse {
	t.Helper()
	stop, err := f.svc.AddStop(context.Background(), f.owner, f.trip.ID, f.stopInput(city, arrival, departure, cost))
	require.NoError(t, err)
	return stop
}

func TestAddStopScenario(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()

	a := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", floatPtr(200))
	assert.Equal(t, "Paris", a.City.Name)
	assert.Equal(t, 1, a.OrderIndex)
	assert.Equal(t, 2, a.Nights)
	assert.NotNil(t, a.Activities)
	assert.Empty(t, a.Activities)

	_, err := f.svc.AddStop(ctx, f.owner, f.trip.ID, f.stopInput(f.rome, "2024-06-03", "2024-06-05", floatPtr(150)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict))

	b := f.addStop(t, f.rome, "2024-06-04", "2024-06-06", floatPtr(150))
	assert.Equal(t, 2, b.OrderIndex)

	budget := NewBudgetService(&fakeItineraryRepo{s: f.store}, &fakeTripRepo{s: f.store}, f.cache)
	breakdown, err := budget.GetBudgetBreakdown(ctx, f.owner, f.trip.ID)
	require.NoError(t, err)
	assert.InDelta(t, 350, breakdown.TotalEstimatedCost, 1e-9)
	assert.InDelta(t, 650, breakdown.RemainingBudget, 1e-9)
}

func TestAddStopRejectsDepartureBeforeArrival(t *testing.T) {
	f := newItineraryFixture(t)

	_, err := f.svc.AddStop(context.Background(), f.owner, f.trip.ID, f.stopInput(f.paris, "2024-06-05", "2024-06-04", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrValidation))
	assert.Empty(t, f.store.stops)
}

func TestAddStopSingleDayTouchingIsConflict(t *testing.T) {
	f := newItineraryFixture(t)
	f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)

	_, err := f.svc.AddStop(context.Background(), f.owner, f.trip.ID, f.stopInput(f.rome, "2024-06-01", "2024-06-01", nil))
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict))
}

func TestAddStopNotFound(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddStop(ctx, uuid.New(), f.trip.ID, f.stopInput(f.paris, "2024-06-01", "2024-06-02", nil))
	assert.True(t, errors.Is(err, utils.ErrTripNotFound), "another user's trip must look missing")

	_, err = f.svc.AddStop(ctx, f.owner, f.trip.ID, req.StopInput{
		CityID:        uuid.New(),
		ArrivalDate:   mustDate("2024-06-01"),
		DepartureDate: mustDate("2024-06-02"),
	})
	assert.True(t, errors.Is(err, utils.ErrCityNotFound))
	assert.Empty(t, f.store.stops)
}

func TestAddStopDatabaseFailureIsOpaque(t *testing.T) {
	f := newItineraryFixture(t)
	f.store.failOn["CreateStop"] = errors.New("connection reset")

	_, err := f.svc.AddStop(context.Background(), f.owner, f.trip.ID, f.stopInput(f.paris, "2024-06-01", "2024-06-02", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrDatabaseError))
	assert.Zero(t, f.cache.count())
}

func TestUpdateStopExcludesItself(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", floatPtr(200))
	b := f.addStop(t, f.rome, "2024-06-06", "2024-06-08", nil)

	updated, err := f.svc.UpdateStop(ctx, f.owner, f.trip.ID, a.ID, f.stopInput(f.paris, "2024-06-02", "2024-06-04", nil))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", updated.ArrivalDate)
	assert.Equal(t, "2024-06-04", updated.DepartureDate)
	require.NotNil(t, updated.EstimatedCost)
	assert.InDelta(t, 200, *updated.EstimatedCost, 1e-9, "omitted cost keeps the stored value")

	_, err = f.svc.UpdateStop(ctx, f.owner, f.trip.ID, a.ID, f.stopInput(f.paris, "2024-06-02", "2024-06-06", nil))
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict))

	stored := f.store.stops[a.ID]
	assert.Equal(t, mustDate("2024-06-04"), stored.DepartureDate, "rejected update leaves the stop unchanged")

	_, err = f.svc.UpdateStop(ctx, f.owner, f.trip.ID, b.ID, f.stopInput(f.paris, "2024-06-05", "2024-06-09", nil))
	require.NoError(t, err)
	assert.Equal(t, f.paris.ID, f.store.stops[b.ID].CityID)
}

func TestUpdateStopUnknownStop(t *testing.T) {
	f := newItineraryFixture(t)

	_, err := f.svc.UpdateStop(context.Background(), f.owner, f.trip.ID, uuid.New(), f.stopInput(f.paris, "2024-06-01", "2024-06-02", nil))
	assert.True(t, errors.Is(err, utils.ErrStopNotFound))
}

func TestRemoveStopDropsActivities(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	stop := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)
	louvre := f.store.addActivity(f.paris.ID, "Louvre", dbm.ActivityTypeCulture, floatPtr(20))

	_, err := f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: louvre.ID,
		StartTime:  mustTime("2024-06-01T10:00:00Z"),
		EndTime:    mustTime("2024-06-01T12:00:00Z"),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveStop(ctx, f.owner, f.trip.ID, stop.ID))
	assert.Empty(t, f.store.stops)
	assert.Empty(t, f.store.tripActivities)

	err = f.svc.RemoveStop(ctx, f.owner, f.trip.ID, stop.ID)
	assert.True(t, errors.Is(err, utils.ErrStopNotFound))
}

func TestActivityScheduling(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	stop := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)
	louvre := f.store.addActivity(f.paris.ID, "Louvre", dbm.ActivityTypeCulture, floatPtr(20))
	dinner := f.store.addActivity(f.paris.ID, "Dinner", dbm.ActivityTypeFood, floatPtr(60))

	first, err := f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: louvre.ID,
		StartTime:  mustTime("2024-06-01T10:00:00Z"),
		EndTime:    mustTime("2024-06-01T12:00:00Z"),
		Notes:      strPtr("book ahead"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Louvre", first.Activity.Name)
	assert.Equal(t, "book ahead", first.Notes)
	assert.Equal(t, string(dbm.TripActivityPlanned), first.Status)
	require.NotNil(t, first.Cost)
	assert.InDelta(t, 20, *first.Cost, 1e-9)

	_, err = f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: dinner.ID,
		StartTime:  mustTime("2024-06-01T12:00:00Z"),
		EndTime:    mustTime("2024-06-01T14:00:00Z"),
	})
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict), "same-instant boundary collides")

	second, err := f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: dinner.ID,
		StartTime:  mustTime("2024-06-01T19:00:00Z"),
		EndTime:    mustTime("2024-06-01T21:00:00Z"),
	})
	require.NoError(t, err)

	moved, err := f.svc.UpdateActivity(ctx, f.owner, f.trip.ID, stop.ID, first.ID, req.TripActivityInput{
		StartTime: mustTime("2024-06-01T09:00:00Z"),
		EndTime:   mustTime("2024-06-01T11:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T09:00:00Z", moved.StartTime)
	assert.Equal(t, "book ahead", moved.Notes, "omitted notes keep the stored value")

	_, err = f.svc.UpdateActivity(ctx, f.owner, f.trip.ID, stop.ID, first.ID, req.TripActivityInput{
		StartTime: mustTime("2024-06-01T18:00:00Z"),
		EndTime:   mustTime("2024-06-01T19:30:00Z"),
	})
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict))

	require.NoError(t, f.svc.RemoveActivity(ctx, f.owner, f.trip.ID, stop.ID, second.ID))
	err = f.svc.RemoveActivity(ctx, f.owner, f.trip.ID, stop.ID, second.ID)
	assert.True(t, errors.Is(err, utils.ErrTripActivityNotFound))
}

func TestActivitiesInDifferentStopsDoNotConflict(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	paris := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)
	rome := f.addStop(t, f.rome, "2024-06-04", "2024-06-06", nil)
	walk := f.store.addActivity(f.paris.ID, "Walk", dbm.ActivityTypeSightseeing, nil)

	in := req.TripActivityInput{
		ActivityID: walk.ID,
		StartTime:  mustTime("2024-06-02T10:00:00Z"),
		EndTime:    mustTime("2024-06-02T11:00:00Z"),
	}
	_, err := f.svc.AddActivity(ctx, f.owner, f.trip.ID, paris.ID, in)
	require.NoError(t, err)
	_, err = f.svc.AddActivity(ctx, f.owner, f.trip.ID, rome.ID, in)
	require.NoError(t, err)
}

func TestAddActivityValidation(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	stop := f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)

	_, err := f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: uuid.New(),
		StartTime:  mustTime("2024-06-01T12:00:00Z"),
		EndTime:    mustTime("2024-06-01T11:00:00Z"),
	})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	_, err = f.svc.AddActivity(ctx, f.owner, f.trip.ID, stop.ID, req.TripActivityInput{
		ActivityID: uuid.New(),
		StartTime:  mustTime("2024-06-01T10:00:00Z"),
		EndTime:    mustTime("2024-06-01T11:00:00Z"),
	})
	assert.True(t, errors.Is(err, utils.ErrActivityNotFound))

	_, err = f.svc.AddActivity(ctx, f.owner, f.trip.ID, uuid.New(), req.TripActivityInput{
		ActivityID: uuid.New(),
		StartTime:  mustTime("2024-06-01T10:00:00Z"),
		EndTime:    mustTime("2024-06-01T11:00:00Z"),
	})
	assert.True(t, errors.Is(err, utils.ErrStopNotFound))
}

func TestReorderStops(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	a := f.addStop(t, f.paris, "2024-06-01", "2024-06-02", nil)
	b := f.addStop(t, f.rome, "2024-06-04", "2024-06-05", nil)
	c := f.addStop(t, f.paris, "2024-06-07", "2024-06-08", nil)

	order, err := f.svc.ReorderStops(ctx, f.owner, f.trip.ID, []uuid.UUID{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Equal(t, 1, f.store.stops[c.ID].OrderIndex)
	assert.Equal(t, 2, f.store.stops[a.ID].OrderIndex)
	assert.Equal(t, 3, f.store.stops[b.ID].OrderIndex)

	_, err = f.svc.ReorderStops(ctx, f.owner, f.trip.ID, []uuid.UUID{a.ID, uuid.New(), b.ID})
	assert.True(t, errors.Is(err, utils.ErrStopNotFound))

	_, err = f.svc.ReorderStops(ctx, f.owner, f.trip.ID, []uuid.UUID{a.ID, b.ID})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	_, err = f.svc.ReorderStops(ctx, f.owner, f.trip.ID, []uuid.UUID{a.ID, a.ID, b.ID})
	assert.True(t, errors.Is(err, utils.ErrValidation))

	assert.Equal(t, 1, f.store.stops[c.ID].OrderIndex, "rejected reorder keeps the previous order")
}

func TestGetItinerary(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()
	f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)
	f.addStop(t, f.rome, "2024-06-04", "2024-06-04", nil)

	itinerary, err := f.svc.GetItinerary(ctx, f.owner, f.trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, itinerary.StopCount)
	require.Len(t, itinerary.Days, 3)
	assert.Equal(t, "2024-06-01", itinerary.Days[0].Date)
	assert.Equal(t, "2024-06-03", itinerary.Days[1].Date)
	assert.Equal(t, resp.EntryDeparture, itinerary.Days[1].Entries[0].Type)
	assert.Equal(t, "2024-06-04", itinerary.Days[2].Date)
	assert.Len(t, itinerary.Days[2].Entries, 1, "same-day stop yields only an arrival")
	assert.Contains(t, string(itinerary.Route), `"LineString"`)

	_, err = f.svc.GetItinerary(ctx, uuid.New(), f.trip.ID)
	assert.True(t, errors.Is(err, utils.ErrTripNotFound))
}

func TestConcurrentAddStopAcceptsOnlyOne(t *testing.T) {
	f := newItineraryFixture(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.AddStop(ctx, f.owner, f.trip.ID, f.stopInput(f.paris, "2024-06-02", "2024-06-04", nil))
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.True(t, errors.Is(err, utils.ErrScheduleConflict))
	}
	assert.Equal(t, 1, accepted)
	assert.Len(t, f.store.stops, 1)
}

func TestMutationsInvalidateDashboard(t *testing.T) {
	f := newItineraryFixture(t)
	f.addStop(t, f.paris, "2024-06-01", "2024-06-03", nil)

	require.Equal(t, 1, f.cache.count())
	assert.Equal(t, f.owner, f.cache.calls[0])
}
