package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

func TestIntervalOverlaps(t *testing.T) {
	span := func(a, b string) interval { return interval{start: mustDate(a), end: mustDate(b)} }

	tests := []struct {
		name string
		a, b interval
		want bool
	}{
		{"disjoint before", span("2024-06-01", "2024-06-02"), span("2024-06-04", "2024-06-05"), false},
		{"disjoint after", span("2024-06-06", "2024-06-07"), span("2024-06-04", "2024-06-05"), false},
		{"touching end to start", span("2024-06-01", "2024-06-03"), span("2024-06-03", "2024-06-05"), true},
		{"touching start to end", span("2024-06-05", "2024-06-07"), span("2024-06-03", "2024-06-05"), true},
		{"partial", span("2024-06-01", "2024-06-04"), span("2024-06-03", "2024-06-06"), true},
		{"contains", span("2024-06-01", "2024-06-10"), span("2024-06-03", "2024-06-04"), true},
		{"contained", span("2024-06-03", "2024-06-04"), span("2024-06-01", "2024-06-10"), true},
		{"identical", span("2024-06-03", "2024-06-04"), span("2024-06-03", "2024-06-04"), true},
		{"single day inside", span("2024-06-03", "2024-06-03"), span("2024-06-01", "2024-06-05"), true},
		{"next day", span("2024-06-01", "2024-06-03"), span("2024-06-04", "2024-06-04"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalOverlapsSameInstant(t *testing.T) {
	morning := interval{start: mustTime("2024-06-01T09:00:00Z"), end: mustTime("2024-06-01T11:00:00Z")}
	noon := interval{start: mustTime("2024-06-01T11:00:00Z"), end: mustTime("2024-06-01T12:00:00Z")}
	later := interval{start: mustTime("2024-06-01T11:00:01Z"), end: mustTime("2024-06-01T12:00:00Z")}

	assert.True(t, morning.overlaps(noon))
	assert.False(t, morning.overlaps(later))
}

func TestFindStopConflictSkipsExcluded(t *testing.T) {
	a := dbm.TripStop{ArrivalDate: mustDate("2024-06-01"), DepartureDate: mustDate("2024-06-03")}
	a.ID = uuid.New()
	b := dbm.TripStop{ArrivalDate: mustDate("2024-06-05"), DepartureDate: mustDate("2024-06-06")}
	b.ID = uuid.New()
	stops := []dbm.TripStop{a, b}

	candidate := interval{start: mustDate("2024-06-02"), end: mustDate("2024-06-03")}
	got := findStopConflict(stops, candidate, uuid.Nil)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	assert.Nil(t, findStopConflict(stops, candidate, a.ID))
}

func TestFindActivityConflict(t *testing.T) {
	existing := dbm.TripActivity{StartTime: mustTime("2024-06-01T10:00:00Z"), EndTime: mustTime("2024-06-01T12:00:00Z")}
	existing.ID = uuid.New()
	list := []dbm.TripActivity{existing}

	got := findActivityConflict(list, interval{start: mustTime("2024-06-01T12:00:00Z"), end: mustTime("2024-06-01T13:00:00Z")}, uuid.Nil)
	require.NotNil(t, got)
	assert.Nil(t, findActivityConflict(list, interval{start: mustTime("2024-06-01T12:30:00Z"), end: mustTime("2024-06-01T13:00:00Z")}, uuid.Nil))
}

func TestStopConflictErrorNamesCity(t *testing.T) {
	s := &dbm.TripStop{ArrivalDate: mustDate("2024-06-01"), DepartureDate: mustDate("2024-06-03"), City: dbm.City{Name: "Lisbon"}}
	s.ID = uuid.New()

	err := stopConflictError(s)
	assert.True(t, errors.Is(err, utils.ErrScheduleConflict))
	assert.Contains(t, err.Error(), "Lisbon")
	assert.Contains(t, err.Error(), "2024-06-01")

	var cerr *utils.ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, s.ID, cerr.ConflictingID)
}
