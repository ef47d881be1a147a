package request_models

import (
	"time"

	"github.com/google/uuid"
	"tripplanner/pkg/utils"
)

type StopRequest struct {
	CityID        string   `json:"cityId" binding:"required,uuid"`
	ArrivalDate   string   `json:"arrivalDate" binding:"required"`
	DepartureDate string   `json:"departureDate" binding:"required"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"omitempty,gte=0"`
	Notes         *string  `json:"notes" binding:"omitempty,max=2000"`
	Status        string   `json:"status" binding:"omitempty,oneof=planned confirmed completed cancelled"`
}

type StopInput struct {
	CityID        uuid.UUID
	ArrivalDate   time.Time
	DepartureDate time.Time
	EstimatedCost *float64
	Notes         *string
	Status        string
}

func (r StopRequest) ToInput() (StopInput, error) {
	verr := &utils.ValidationError{}
	in := StopInput{
		EstimatedCost: r.EstimatedCost,
		Notes:         r.Notes,
		Status:        r.Status,
	}

	cityID, err := uuid.Parse(r.CityID)
	if err != nil {
		verr.Add("cityId", "must be a valid UUID")
	}
	in.CityID = cityID

	if t := parseDateField(verr, "arrivalDate", r.ArrivalDate); t != nil {
		in.ArrivalDate = *t
	}
	if t := parseDateField(verr, "departureDate", r.DepartureDate); t != nil {
		in.DepartureDate = *t
	}
	return in, verr.OrNil()
}

type AddTripActivityRequest struct {
	ActivityID string  `json:"activityId" binding:"required,uuid"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	Notes      *string `json:"notes" binding:"omitempty,max=2000"`
	Status     string  `json:"status" binding:"omitempty,oneof=planned booked completed cancelled"`
}

type UpdateTripActivityRequest struct {
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
	Status    string  `json:"status" binding:"omitempty,oneof=planned booked completed cancelled"`
}

// TripActivityInput is a parsed activity schedule. ActivityID is uuid.Nil on updates.
type TripActivityInput struct {
	ActivityID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Notes      *string
	Status     string
}

func (r AddTripActivityRequest) ToInput() (TripActivityInput, error) {
	verr := &utils.ValidationError{}
	activityID, err := uuid.Parse(r.ActivityID)
	if err != nil {
		verr.Add("activityId", "must be a valid UUID")
	}
	in := TripActivityInput{
		ActivityID: activityID,
		StartTime:  parseDateTimeField(verr, "startTime", r.StartTime),
		EndTime:    parseDateTimeField(verr, "endTime", r.EndTime),
		Notes:      r.Notes,
		Status:     r.Status,
	}
	return in, verr.OrNil()
}

func (r UpdateTripActivityRequest) ToInput() (TripActivityInput, error) {
	verr := &utils.ValidationError{}
	in := TripActivityInput{
		StartTime: parseDateTimeField(verr, "startTime", r.StartTime),
		EndTime:   parseDateTimeField(verr, "endTime", r.EndTime),
		Notes:     r.Notes,
		Status:    r.Status,
	}
	return in, verr.OrNil()
}

type ReorderStopsRequest struct {
	StopIDs []string `json:"stopIds" binding:"required,min=1,dive,uuid"`
}

func (r ReorderStopsRequest) ToInput() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.StopIDs))
	seen := make(map[uuid.UUID]bool, len(r.StopIDs))
	for _, raw := range r.StopIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.NewValidationError("stopIds", "must contain valid UUIDs")
		}
		if seen[id] {
			return nil, utils.NewValidationError("stopIds", "must not contain duplicates")
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
