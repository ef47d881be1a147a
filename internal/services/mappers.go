package services

import (
	"encoding/json"
	"errors"
	"time"

	dbm "tripplanner/internal/models/db_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// serviceError passes domain errors through and hides everything else behind ErrDatabaseError.
func serviceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrNotFound),
		errors.Is(err, utils.ErrValidation),
		errors.Is(err, utils.ErrScheduleConflict),
		errors.Is(err, utils.ErrDatabaseError):
		return err
	default:
		return utils.WrapDatabaseError(err)
	}
}

func daysBetween(from, to time.Time) int {
	return int(utils.StartOfDay(to).Sub(utils.StartOfDay(from)).Hours() / 24)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toAccountResponse(a *dbm.Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: utils.FormatRFC3339(a.CreatedAt),
	}
}

func toTripResponse(t *dbm.Trip) resp.TripResponse {
	tags := []string(t.Tags)
	if tags == nil {
		tags = []string{}
	}
	return resp.TripResponse{
		ID:           t.ID,
		OwnerID:      t.AccountID,
		Name:         t.Name,
		Description:  t.Description,
		StartDate:    utils.FormatDate(t.StartDate),
		EndDate:      utils.FormatDate(t.EndDate),
		DurationDays: daysBetween(t.StartDate, t.EndDate) + 1,
		Budget:       t.Budget,
		Currency:     t.Currency,
		Status:       string(t.Status),
		IsPublic:     t.IsPublic,
		Tags:         tags,
		StopCount:    len(t.Stops),
		CreatedAt:    utils.FormatRFC3339(t.CreatedAt),
		UpdatedAt:    utils.FormatRFC3339(t.UpdatedAt),
	}
}

func toTripSummary(t dbm.Trip) resp.TripSummary {
	return resp.TripSummary{
		ID:        t.ID,
		Name:      t.Name,
		StartDate: utils.FormatDate(t.StartDate),
		EndDate:   utils.FormatDate(t.EndDate),
		Status:    string(t.Status),
		Budget:    t.Budget,
		Currency:  t.Currency,
	}
}

func toCitySummary(c dbm.City) resp.CitySummary {
	return resp.CitySummary{
		ID:        c.ID,
		Name:      c.Name,
		Country:   c.Country,
		Region:    c.Region,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		ImageURL:  c.ImageURL,
	}
}

func toActivitySummary(a dbm.Activity) resp.ActivitySummary {
	return resp.ActivitySummary{
		ID:              a.ID,
		Name:            a.Name,
		Type:            string(a.Type),
		DurationMinutes: a.DurationMinutes,
		Cost:            a.Cost,
		Currency:        a.Currency,
		CostType:        string(a.CostType),
		Rating:          a.Rating,
	}
}

func toTripActivityResponse(ta *dbm.TripActivity) resp.TripActivityResponse {
	return resp.TripActivityResponse{
		ID:        ta.ID,
		StopID:    ta.TripStopID,
		Activity:  toActivitySummary(ta.Activity),
		StartTime: utils.FormatRFC3339(ta.StartTime),
		EndTime:   utils.FormatRFC3339(ta.EndTime),
		Cost:      ta.Cost,
		Notes:     ta.Notes,
		Status:    string(ta.Status),
	}
}

func toStopResponse(s *dbm.TripStop) resp.StopResponse {
	activities := make([]resp.TripActivityResponse, 0, len(s.Activities))
	for i := range s.Activities {
		activities = append(activities, toTripActivityResponse(&s.Activities[i]))
	}
	return resp.StopResponse{
		ID:            s.ID,
		TripID:        s.TripID,
		City:          toCitySummary(s.City),
		OrderIndex:    s.OrderIndex,
		ArrivalDate:   utils.FormatDate(s.ArrivalDate),
		DepartureDate: utils.FormatDate(s.DepartureDate),
		Nights:        daysBetween(s.ArrivalDate, s.DepartureDate),
		EstimatedCost: s.EstimatedCost,
		Notes:         s.Notes,
		Status:        string(s.Status),
		Activities:    activities,
	}
}

func toActivityResponse(a *dbm.Activity) resp.ActivityResponse {
	return resp.ActivityResponse{
		ID:              a.ID,
		CityID:          a.CityID,
		CityName:        a.City.Name,
		Name:            a.Name,
		Description:     a.Description,
		Type:            string(a.Type),
		DurationMinutes: a.DurationMinutes,
		Cost:            a.Cost,
		Currency:        a.Currency,
		CostType:        string(a.CostType),
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
		Difficulty:      a.Difficulty,
		Rating:          a.Rating,
		ReviewCount:     a.ReviewCount,
	}
}

func toCityResponse(c *dbm.City) resp.CityResponse {
	out := resp.CityResponse{
		ID:              c.ID,
		Name:            c.Name,
		Country:         c.Country,
		Region:          c.Region,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		CostIndex:       c.CostIndex,
		PopularityScore: c.PopularityScore,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		Timezone:        c.Timezone,
	}
	if len(c.Metadata) > 0 {
		out.Metadata = json.RawMessage(c.Metadata)
	}
	for i := range c.Activities {
		a := c.Activities[i]
		a.City = dbm.City{}
		out.Activities = append(out.Activities, toActivityResponse(&a))
	}
	return out
}
