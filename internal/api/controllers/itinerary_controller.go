package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryService
}

func NewItineraryController(itineraryService services.ItineraryService) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GetItinerary godoc
// @Summary Itinerary grouped by day
// @Description Each stop appears on its arrival day and, when different, on its departure day
// @Tags Itinerary
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), userId, tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// AddStop godoc
// @Summary Add a stop to a trip
// @Description Rejected with 400 when the dates touch or overlap another stop of the trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body request_models.StopRequest true "Stop payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops [post]
func (i *ItineraryController) AddStop(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.StopRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	stop, err := i.itineraryService.AddStop(c.Request.Context(), userId, tripId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, stop, "Stop added successfully")
}

// UpdateStop godoc
// @Summary Update a stop
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.StopRequest true "Stop payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops/{stopId} [put]
func (i *ItineraryController) UpdateStop(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	stopId, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}
	var req request_models.StopRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	stop, err := i.itineraryService.UpdateStop(c.Request.Context(), userId, tripId, stopId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop updated successfully")
}

// RemoveStop godoc
// @Summary Remove a stop and its activities
// @Tags Itinerary
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops/{stopId} [delete]
func (i *ItineraryController) RemoveStop(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	stopId, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}

	if err := i.itineraryService.RemoveStop(c.Request.Context(), userId, tripId, stopId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop removed successfully")
}

// AddActivity godoc
// @Summary Schedule an activity in a stop
// @Description Rejected with 400 when the times touch or overlap another activity of the stop
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.AddTripActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops/{stopId}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	stopId, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}
	var req request_models.AddTripActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activity, err := i.itineraryService.AddActivity(c.Request.Context(), userId, tripId, stopId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Reschedule an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param activityId path string true "Scheduled activity ID"
// @Param request body request_models.UpdateTripActivityRequest true "Schedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops/{stopId}/activities/{activityId} [put]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	stopId, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}
	var req request_models.UpdateTripActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	activity, err := i.itineraryService.UpdateActivity(c.Request.Context(), userId, tripId, stopId, activityId, in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// RemoveActivity godoc
// @Summary Remove a scheduled activity
// @Tags Itinerary
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param activityId path string true "Scheduled activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/stops/{stopId}/activities/{activityId} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	stopId, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}
	activityId, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), userId, tripId, stopId, activityId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}

// ReorderStops godoc
// @Summary Reorder the stops of a trip
// @Description Assigns order 1..N following stopIds; dates are not checked against the order
// @Tags Itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ReorderStopsRequest true "Stop ids in their new order"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{tripId}/reorder [put]
func (i *ItineraryController) ReorderStops(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.ReorderStopsRequest
	if !bindJSON(c, &req) {
		return
	}
	stopIds, err := req.ToInput()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	order, err := i.itineraryService.ReorderStops(c.Request.Context(), userId, tripId, stopIds)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Stops reordered successfully")
}
