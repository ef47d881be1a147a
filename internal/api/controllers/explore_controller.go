package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreService
}

func NewExploreController(exploreService services.ExploreService) *ExploreController {
	return &ExploreController{exploreService: exploreService}
}

// SearchCities godoc
// @Summary Search cities
// @Tags Explore
// @Produce json
// @Param q query string false "Name, country or description match"
// @Param country query string false "Country"
// @Param region query string false "Region"
// @Param minCost query number false "Minimum cost index"
// @Param maxCost query number false "Maximum cost index"
// @Param sortBy query string false "popularity | name | cost_index" default(popularity)
// @Param order query string false "asc | desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/explore/cities [get]
func (e *ExploreController) SearchCities(c *gin.Context) {
	var query request_models.CitySearchQuery
	if !bindQuery(c, &query) {
		return
	}

	cities, err := e.exploreService.SearchCities(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// PopularCities godoc
// @Summary Most popular cities
// @Tags Explore
// @Produce json
// @Param limit query int false "How many" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /api/explore/cities/popular [get]
func (e *ExploreController) PopularCities(c *gin.Context) {
	var query request_models.LimitQuery
	if !bindQuery(c, &query) {
		return
	}

	cities, err := e.exploreService.PopularCities(c.Request.Context(), query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Popular cities fetched successfully")
}

// GetCity godoc
// @Summary City detail with its activities
// @Tags Explore
// @Produce json
// @Param cityId path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/explore/cities/{cityId} [get]
func (e *ExploreController) GetCity(c *gin.Context) {
	cityId, ok := pathUUID(c, "cityId")
	if !ok {
		return
	}

	city, err := e.exploreService.GetCity(c.Request.Context(), cityId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// SearchActivities godoc
// @Summary Search activities
// @Tags Explore
// @Produce json
// @Param q query string false "Name or description match"
// @Param cityId query string false "City ID"
// @Param type query string false "Activity type"
// @Param minCost query number false "Minimum cost"
// @Param maxCost query number false "Maximum cost"
// @Param minRating query number false "Minimum rating"
// @Param maxDuration query int false "Maximum duration in minutes"
// @Param sortBy query string false "rating | cost | name | duration | popularity" default(rating)
// @Param order query string false "asc | desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/explore/activities [get]
func (e *ExploreController) SearchActivities(c *gin.Context) {
	var query request_models.ActivitySearchQuery
	if !bindQuery(c, &query) {
		return
	}

	activities, err := e.exploreService.SearchActivities(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// PopularActivities godoc
// @Summary Best rated activities
// @Tags Explore
// @Produce json
// @Param limit query int false "How many" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /api/explore/activities/popular [get]
func (e *ExploreController) PopularActivities(c *gin.Context) {
	var query request_models.LimitQuery
	if !bindQuery(c, &query) {
		return
	}

	activities, err := e.exploreService.PopularActivities(c.Request.Context(), query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Popular activities fetched successfully")
}

// GetActivity godoc
// @Summary Activity detail
// @Tags Explore
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/explore/activities/{activityId} [get]
func (e *ExploreController) GetActivity(c *gin.Context) {
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	activity, err := e.exploreService.GetActivity(c.Request.Context(), activityId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// ActivityTypes godoc
// @Summary Activity types with catalog counts
// @Tags Explore
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/explore/activities/types [get]
func (e *ExploreController) ActivityTypes(c *gin.Context) {
	types, err := e.exploreService.ActivityTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, types, "Activity types fetched successfully")
}

// Countries godoc
// @Summary Countries with city counts
// @Tags Explore
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/explore/countries [get]
func (e *ExploreController) Countries(c *gin.Context) {
	countries, err := e.exploreService.Countries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}
