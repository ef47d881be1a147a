package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
)

// memStore backs the in-memory repository fakes. failOn makes the named method return an error.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	trips          map[uuid.UUID]*dbm.Trip
	stops          map[uuid.UUID]*dbm.TripStop
	tripActivities map[uuid.UUID]*dbm.TripActivity
	cities         map[uuid.UUID]*dbm.City
	activities     map[uuid.UUID]*dbm.Activity

	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		trips:          map[uuid.UUID]*dbm.Trip{},
		stops:          map[uuid.UUID]*dbm.TripStop{},
		tripActivities: map[uuid.UUID]*dbm.TripActivity{},
		cities:         map[uuid.UUID]*dbm.City{},
		activities:     map[uuid.UUID]*dbm.Activity{},
		failOn:         map[string]error{},
	}
}

func (s *memStore) fail(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failOn[method]
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// ---------- seeding ----------

func (s *memStore) addCity(name string, lat, lon float64) *dbm.City {
	c := &dbm.City{Name: name, Country: "Testland", Latitude: lat, Longitude: lon}
	c.ID = uuid.New()
	s.cities[c.ID] = c
	return c
}

func (s *memStore) addActivity(cityID uuid.UUID, name string, typ dbm.ActivityType, cost *float64) *dbm.Activity {
	a := &dbm.Activity{CityID: cityID, Name: name, Type: typ, Cost: cost, Currency: "USD"}
	a.ID = uuid.New()
	s.activities[a.ID] = a
	return a
}

func (s *memStore) addTrip(owner uuid.UUID, start, end string, budget *float64) *dbm.Trip {
	t := &dbm.Trip{
		AccountID: owner,
		Name:      "Trip",
		StartDate: mustDate(start),
		EndDate:   mustDate(end),
		Budget:    budget,
		Currency:  "USD",
		Status:    dbm.TripStatusPlanning,
	}
	t.ID = uuid.New()
	s.trips[t.ID] = t
	return t
}

// ---------- hydration ----------

func (s *memStore) hydrateActivity(ta *dbm.TripActivity) dbm.TripActivity {
	c := *ta
	if a, ok := s.activities[ta.ActivityID]; ok {
		c.Activity = *a
	}
	return c
}

func (s *memStore) hydrateStop(st *dbm.TripStop, withActivities bool) dbm.TripStop {
	c := *st
	c.City = dbm.City{}
	if city, ok := s.cities[st.CityID]; ok {
		c.City = *city
	}
	c.Activities = nil
	if withActivities {
		c.Activities = []dbm.TripActivity{}
		for _, ta := range s.tripActivities {
			if ta.TripStopID == st.ID {
				c.Activities = append(c.Activities, s.hydrateActivity(ta))
			}
		}
		sort.Slice(c.Activities, func(i, j int) bool {
			return c.Activities[i].StartTime.Before(c.Activities[j].StartTime)
		})
	}
	return c
}

func (s *memStore) stopsOf(tripId uuid.UUID, withActivities bool) []dbm.TripStop {
	var out []dbm.TripStop
	for _, st := range s.stops {
		if st.TripID == tripId {
			out = append(out, s.hydrateStop(st, withActivities))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ArrivalDate.Before(out[j].ArrivalDate)
	})
	return out
}

// ---------- itinerary repository ----------

type fakeItineraryRepo struct{ s *memStore }

var _ repositories.ItineraryRepository = (*fakeItineraryRepo)(nil)

func (r *fakeItineraryRepo) Transaction(ctx context.Context, fn func(repo repositories.ItineraryRepository) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(r)
}

func (r *fakeItineraryRepo) LockTrip(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error) {
	if err := r.s.fail("LockTrip"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[tripId]
	if !ok || t.AccountID != ownerId {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *fakeItineraryRepo) FindTripWithItinerary(ctx context.Context, tripId, ownerId uuid.UUID) (*dbm.Trip, error) {
	if err := r.s.fail("FindTripWithItinerary"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[tripId]
	if !ok || t.AccountID != ownerId {
		return nil, nil
	}
	c := *t
	c.Stops = r.s.stopsOf(tripId, true)
	return &c, nil
}

func (r *fakeItineraryRepo) FindCity(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	return (&fakeCityRepo{s: r.s}).FindById(ctx, id)
}

func (r *fakeItineraryRepo) FindActivity(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	return (&fakeActivityRepo{s: r.s}).FindById(ctx, id)
}

func (r *fakeItineraryRepo) ListStops(ctx context.Context, tripId uuid.UUID) ([]dbm.TripStop, error) {
	if err := r.s.fail("ListStops"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.stopsOf(tripId, false), nil
}

func (r *fakeItineraryRepo) FindStop(ctx context.Context, tripId, stopId uuid.UUID) (*dbm.TripStop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stops[stopId]
	if !ok || st.TripID != tripId {
		return nil, nil
	}
	c := r.s.hydrateStop(st, true)
	return &c, nil
}

func (r *fakeItineraryRepo) NextStopOrder(ctx context.Context, tripId uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := 0
	for _, st := range r.s.stops {
		if st.TripID == tripId && st.OrderIndex > max {
			max = st.OrderIndex
		}
	}
	return max + 1, nil
}

func (r *fakeItineraryRepo) CreateStop(ctx context.Context, stop *dbm.TripStop) error {
	if err := r.s.fail("CreateStop"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&stop.ID)
	c := *stop
	c.City, c.Activities = dbm.City{}, nil
	r.s.stops[c.ID] = &c
	return nil
}

func (r *fakeItineraryRepo) UpdateStop(ctx context.Context, stop *dbm.TripStop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *stop
	c.City, c.Activities = dbm.City{}, nil
	r.s.stops[c.ID] = &c
	return nil
}

func (r *fakeItineraryRepo) UpdateStopOrder(ctx context.Context, stopId uuid.UUID, orderIndex int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st, ok := r.s.stops[stopId]; ok {
		st.OrderIndex = orderIndex
	}
	return nil
}

func (r *fakeItineraryRepo) DeleteStop(ctx context.Context, stopId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, ta := range r.s.tripActivities {
		if ta.TripStopID == stopId {
			delete(r.s.tripActivities, id)
		}
	}
	delete(r.s.stops, stopId)
	return nil
}

func (r *fakeItineraryRepo) FindTripActivity(ctx context.Context, stopId, id uuid.UUID) (*dbm.TripActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ta, ok := r.s.tripActivities[id]
	if !ok || ta.TripStopID != stopId {
		return nil, nil
	}
	c := r.s.hydrateActivity(ta)
	return &c, nil
}

func (r *fakeItineraryRepo) CreateTripActivity(ctx context.Context, activity *dbm.TripActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&activity.ID)
	c := *activity
	c.Activity = dbm.Activity{}
	r.s.tripActivities[c.ID] = &c
	return nil
}

func (r *fakeItineraryRepo) UpdateTripActivity(ctx context.Context, activity *dbm.TripActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *activity
	c.Activity = dbm.Activity{}
	r.s.tripActivities[c.ID] = &c
	return nil
}

func (r *fakeItineraryRepo) DeleteTripActivity(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tripActivities, id)
	return nil
}

// ---------- catalog repositories ----------

type fakeCityRepo struct{ s *memStore }

var _ repositories.CityRepository = (*fakeCityRepo)(nil)

func (r *fakeCityRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.cities[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (r *fakeCityRepo) FindByIdWithActivities(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.cities[id]
	if !ok {
		return nil, nil
	}
	out := *c
	for _, a := range r.s.activities {
		if a.CityID == id {
			out.Activities = append(out.Activities, *a)
		}
	}
	return &out, nil
}

func (r *fakeCityRepo) Search(ctx context.Context, filter repositories.CityFilter) ([]dbm.City, int64, error) {
	if err := r.s.fail("CitySearch"); err != nil {
		return nil, 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.City
	for _, c := range r.s.cities {
		if filter.Query != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeCityRepo) Popular(ctx context.Context, limit int) ([]dbm.City, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.City
	for _, c := range r.s.cities {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PopularityScore > out[j].PopularityScore })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCityRepo) Countries(ctx context.Context) ([]repositories.CountryRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]int64{}
	for _, c := range r.s.cities {
		counts[c.Country]++
	}
	var out []repositories.CountryRow
	for country, n := range counts {
		out = append(out, repositories.CountryRow{Country: country, CityCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}

type fakeActivityRepo struct{ s *memStore }

var _ repositories.ActivityRepository = (*fakeActivityRepo)(nil)

func (r *fakeActivityRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.activities[id]
	if !ok {
		return nil, nil
	}
	out := *a
	if c, ok := r.s.cities[a.CityID]; ok {
		out.City = *c
	}
	return &out, nil
}

func (r *fakeActivityRepo) Search(ctx context.Context, filter repositories.ActivityFilter) ([]dbm.Activity, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.Activity
	for _, a := range r.s.activities {
		if filter.CityID != nil && a.CityID != *filter.CityID {
			continue
		}
		if filter.Type != "" && string(a.Type) != filter.Type {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeActivityRepo) Popular(ctx context.Context, limit int) ([]dbm.Activity, error) {
	out, _, err := r.Search(ctx, repositories.ActivityFilter{})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

func (r *fakeActivityRepo) TypeCounts(ctx context.Context) ([]repositories.TypeCountRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range r.s.activities {
		counts[string(a.Type)]++
	}
	var out []repositories.TypeCountRow
	for t, n := range counts {
		out = append(out, repositories.TypeCountRow{Type: t, Count: n})
	}
	return out, nil
}

// ---------- trip repository ----------

type fakeTripRepo struct{ s *memStore }

var _ repositories.TripRepository = (*fakeTripRepo)(nil)

func (r *fakeTripRepo) withStops(t *dbm.Trip) *dbm.Trip {
	c := *t
	c.Stops = r.s.stopsOf(t.ID, false)
	return &c
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *dbm.Trip) error {
	if err := r.s.fail("TripCreate"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ensureID(&trip.ID)
	c := *trip
	r.s.trips[c.ID] = &c
	return nil
}

func (r *fakeTripRepo) FindByIdAndOwner(ctx context.Context, id, ownerId uuid.UUID) (*dbm.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[id]
	if !ok || t.AccountID != ownerId {
		return nil, nil
	}
	return r.withStops(t), nil
}

func (r *fakeTripRepo) FindPublicById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[id]
	if !ok || !t.IsPublic {
		return nil, nil
	}
	return r.withStops(t), nil
}

func (r *fakeTripRepo) list(match func(*dbm.Trip) bool, page, limit int) ([]dbm.Trip, int64) {
	var all []dbm.Trip
	for _, t := range r.s.trips {
		if match(t) {
			all = append(all, *r.withStops(t))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartDate.Before(all[j].StartDate) })
	total := int64(len(all))
	from := (page - 1) * limit
	if from > len(all) {
		from = len(all)
	}
	to := from + limit
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], total
}

func (r *fakeTripRepo) ListByOwner(ctx context.Context, ownerId uuid.UUID, filter repositories.TripFilter) ([]dbm.Trip, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trips, total := r.list(func(t *dbm.Trip) bool {
		if t.AccountID != ownerId {
			return false
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			return false
		}
		return filter.Query == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Query))
	}, filter.Page, filter.Limit)
	return trips, total, nil
}

func (r *fakeTripRepo) ListPublic(ctx context.Context, page, limit int) ([]dbm.Trip, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	trips, total := r.list(func(t *dbm.Trip) bool { return t.IsPublic }, page, limit)
	return trips, total, nil
}

func (r *fakeTripRepo) Update(ctx context.Context, trip *dbm.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *trip
	c.Stops = nil
	r.s.trips[c.ID] = &c
	return nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id, ownerId uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[id]
	if !ok || t.AccountID != ownerId {
		return false, nil
	}
	delete(r.s.trips, id)
	for sid, st := range r.s.stops {
		if st.TripID == id {
			delete(r.s.stops, sid)
		}
	}
	return true, nil
}

func (r *fakeTripRepo) UpdateBudget(ctx context.Context, id, ownerId uuid.UUID, budget float64) (bool, error) {
	if err := r.s.fail("UpdateBudget"); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.trips[id]
	if !ok || t.AccountID != ownerId {
		return false, nil
	}
	t.Budget = &budget
	return true, nil
}

// ---------- cache spy ----------

type spyInvalidator struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (s *spyInvalidator) Invalidate(ctx context.Context, ownerId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, ownerId)
}

func (s *spyInvalidator) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
