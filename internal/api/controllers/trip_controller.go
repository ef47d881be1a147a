package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripController struct {
	tripService services.TripService
}

func NewTripController(tripService services.TripService) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateTripRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List my trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Trip status"
// @Param q query string false "Name or description match"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	var query request_models.ListTripsQuery
	if !bindQuery(c, &query) {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userId, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// ListPublicTrips godoc
// @Summary List public trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /api/trips/public [get]
func (t *TripController) ListPublicTrips(c *gin.Context) {
	var query request_models.PageQuery
	if !bindQuery(c, &query) {
		return
	}

	trips, err := t.tripService.ListPublicTrips(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Public trips fetched successfully")
}

// GetPublicTrip godoc
// @Summary Get a public trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/public/{tripId} [get]
func (t *TripController) GetPublicTrip(c *gin.Context) {
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	trip, err := t.tripService.GetPublicTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// GetTrip godoc
// @Summary Get one of my trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), userId, tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Partial update; omitted fields keep their value
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{tripId} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), userId, tripId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), userId, tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
