package request_models

import "tripplanner/pkg/utils"

type CitySearchQuery struct {
	Q       string   `form:"q" binding:"max=100"`
	Country string   `form:"country" binding:"max=100"`
	Region  string   `form:"region" binding:"max=100"`
	MinCost *float64 `form:"minCost" binding:"omitempty,gte=0"`
	MaxCost *float64 `form:"maxCost" binding:"omitempty,gte=0"`
	SortBy  string   `form:"sortBy,default=popularity" binding:"oneof=popularity name cost_index"`
	Order   string   `form:"order,default=desc" binding:"oneof=asc desc"`
	Page    int      `form:"page,default=1" binding:"min=1"`
	Limit   int      `form:"limit,default=20" binding:"min=1,max=100"`
}

func (q CitySearchQuery) Validate() error {
	if q.MinCost != nil && q.MaxCost != nil && *q.MinCost > *q.MaxCost {
		return utils.NewValidationError("minCost", "must not exceed maxCost")
	}
	return nil
}

type ActivitySearchQuery struct {
	Q           string   `form:"q" binding:"max=100"`
	CityID      string   `form:"cityId" binding:"omitempty,uuid"`
	Type        string   `form:"type" binding:"omitempty,oneof=sightseeing food adventure culture shopping entertainment relaxation transport other"`
	MinCost     *float64 `form:"minCost" binding:"omitempty,gte=0"`
	MaxCost     *float64 `form:"maxCost" binding:"omitempty,gte=0"`
	MinRating   *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
	MaxDuration *int     `form:"maxDuration" binding:"omitempty,gte=0"`
	SortBy      string   `form:"sortBy,default=rating" binding:"oneof=rating cost name duration popularity"`
	Order       string   `form:"order,default=desc" binding:"oneof=asc desc"`
	Page        int      `form:"page,default=1" binding:"min=1"`
	Limit       int      `form:"limit,default=20" binding:"min=1,max=100"`
}

func (q ActivitySearchQuery) Validate() error {
	if q.MinCost != nil && q.MaxCost != nil && *q.MinCost > *q.MaxCost {
		return utils.NewValidationError("minCost", "must not exceed maxCost")
	}
	return nil
}

type LimitQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}
