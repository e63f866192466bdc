package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vs portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vs}
}

func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade) {
	h := newVehicleHandler(vehicleService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicleByID)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
	}
}

// createVehicle godoc
// @Summary Create a new vehicle
// @Description Adds a vehicle to the calling account's fleet
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} domain.Vehicle
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Registration number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Vehicle")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// listVehicles godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce  json
// @Success 200 {array} domain.Vehicle
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err, "Vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// getVehicleByID godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} domain.Vehicle
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicleByID(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondServiceError(c, err, "Vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Description Partially updates a vehicle; omitted fields are left unchanged
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} domain.Vehicle
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 409 {object} ErrorResponse "Registration number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Vehicle")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Description Deletes a vehicle; deleting an absent vehicle succeeds
// @Tags vehicles
// @Param   id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondServiceError(c, err, "Vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}
