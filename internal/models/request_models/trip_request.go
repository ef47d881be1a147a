package request_models

import (
	"strings"
	"time"

	"tripplanner/pkg/utils"
)

type CreateTripRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Currency    string   `json:"currency" binding:"omitempty,len=3"`
	Status      string   `json:"status" binding:"omitempty,oneof=planning planned ongoing completed cancelled"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=40"`
}

// UpdateTripRequest is a partial update: nil fields keep their stored value.
type UpdateTripRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Currency    *string  `json:"currency" binding:"omitempty,len=3"`
	Status      *string  `json:"status" binding:"omitempty,oneof=planning planned ongoing completed cancelled"`
	IsPublic    *bool    `json:"isPublic"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=40"`
}

type PageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

type ListTripsQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=planning planned ongoing completed cancelled"`
	Q      string `form:"q" binding:"max=200"`
}

// TripInput is a create/update request with its dates parsed.
type TripInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Currency    *string
	Status      *string
	IsPublic    *bool
	Tags        []string
}

func (r CreateTripRequest) ToInput() (TripInput, error) {
	verr := &utils.ValidationError{}
	in := TripInput{
		Name:        &r.Name,
		Description: &r.Description,
		Budget:      r.Budget,
		IsPublic:    &r.IsPublic,
		Tags:        normalizeTags(r.Tags),
	}
	if r.Currency != "" {
		c := strings.ToUpper(r.Currency)
		in.Currency = &c
	}
	if r.Status != "" {
		in.Status = &r.Status
	}
	in.StartDate = parseDateField(verr, "startDate", r.StartDate)
	in.EndDate = parseDateField(verr, "endDate", r.EndDate)
	return in, verr.OrNil()
}

func (r UpdateTripRequest) ToInput() (TripInput, error) {
	verr := &utils.ValidationError{}
	in := TripInput{
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget,
		Status:      r.Status,
		IsPublic:    r.IsPublic,
		Tags:        normalizeTags(r.Tags),
	}
	if r.Currency != nil {
		c := strings.ToUpper(*r.Currency)
		in.Currency = &c
	}
	if r.StartDate != nil {
		in.StartDate = parseDateField(verr, "startDate", *r.StartDate)
	}
	if r.EndDate != nil {
		in.EndDate = parseDateField(verr, "endDate", *r.EndDate)
	}
	return in, verr.OrNil()
}

func parseDateField(verr *utils.ValidationError, field, value string) *time.Time {
	t, err := utils.ParseDate(value)
	if err != nil {
		verr.Add(field, err.Error())
		return nil
	}
	return &t
}

func parseDateTimeField(verr *utils.ValidationError, field, value string) time.Time {
	t, err := utils.ParseDateTime(value)
	if err != nil {
		verr.Add(field, err.Error())
	}
	return t
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
