package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts}
}

func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:id", h.getTripByID)
		trips.PUT("/:id", h.updateTrip)
		trips.DELETE("/:id", h.deleteTrip)
	}
}

// createTrip godoc
// @Summary Create a new trip
// @Description Records a freight movement; the referenced customer, vehicle and driver must belong to the calling account
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} domain.Trip
// @Failure 400 {object} ErrorResponse "Invalid input or unresolvable reference"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Trip number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Trip")
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// listTrips godoc
// @Summary List trips
// @Tags trips
// @Produce  json
// @Success 200 {array} domain.Trip
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err, "Trip")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// getTripByID godoc
// @Summary Get a trip
// @Tags trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 200 {object} domain.Trip
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (h *tripHandler) getTripByID(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondServiceError(c, err, "Trip")
		return
	}
	c.JSON(http.StatusOK, trip)
}

// updateTrip godoc
// @Summary Update a trip
// @Description Partially updates a trip; changed references are re-verified against the calling account
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   id path string true "Trip ID"
// @Param   trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} domain.Trip
// @Failure 400 {object} ErrorResponse "Invalid input or unresolvable reference"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 409 {object} ErrorResponse "Trip number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("id"), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Trip")
		return
	}
	c.JSON(http.StatusOK, trip)
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip; deleting an absent trip succeeds
// @Tags trips
// @Param   id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondServiceError(c, err, "Trip")
		return
	}
	c.Status(http.StatusNoContent)
}
