package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/pkg/utils"
)

// interval is a closed range [start, end].
type interval struct {
	start time.Time
	end   time.Time
}

// overlaps treats touching endpoints as a collision.
func (a interval) overlaps(b interval) bool {
	return !a.start.After(b.end) && !b.start.After(a.end)
}

// findStopConflict returns the first stop other than exclude whose dates intersect candidate.
func findStopConflict(stops []dbm.TripStop, candidate interval, exclude uuid.UUID) *dbm.TripStop {
	for i := range stops {
		s := &stops[i]
		if s.ID == exclude {
			continue
		}
		if candidate.overlaps(interval{start: s.ArrivalDate, end: s.DepartureDate}) {
			return s
		}
	}
	return nil
}

// findActivityConflict returns the first activity other than exclude whose times intersect candidate.
func findActivityConflict(activities []dbm.TripActivity, candidate interval, exclude uuid.UUID) *dbm.TripActivity {
	for i := range activities {
		a := &activities[i]
		if a.ID == exclude {
			continue
		}
		if candidate.overlaps(interval{start: a.StartTime, end: a.EndTime}) {
			return a
		}
	}
	return nil
}

func stopConflictError(existing *dbm.TripStop) error {
	where := "an existing stop"
	if existing.City.Name != "" {
		where = "the stop in " + existing.City.Name
	}
	return &utils.ConflictError{
		Message: fmt.Sprintf("Stop dates overlap with %s (%s to %s)",
			where, utils.FormatDate(existing.ArrivalDate), utils.FormatDate(existing.DepartureDate)),
		ConflictingID: existing.ID,
	}
}

func activityConflictError(existing *dbm.TripActivity) error {
	return &utils.ConflictError{
		Message: fmt.Sprintf("Activity time overlaps with another activity at this stop (%s to %s)",
			utils.FormatRFC3339(existing.StartTime), utils.FormatRFC3339(existing.EndTime)),
		ConflictingID: existing.ID,
	}
}

func validateStopDates(arrival, departure time.Time) error {
	if departure.Before(arrival) {
		return utils.NewValidationError("departureDate", "must not be before arrivalDate")
	}
	return nil
}

func validateActivityTimes(start, end time.Time) error {
	if end.Before(start) {
		return utils.NewValidationError("endTime", "must not be before startTime")
	}
	return nil
}
