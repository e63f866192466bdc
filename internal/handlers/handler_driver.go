package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

type driverHandler struct {
	driverService portssvc.DriverSvcFacade
}

func newDriverHandler(ds portssvc.DriverSvcFacade) *driverHandler {
	return &driverHandler{driverService: ds}
}

func registerDriverRoutes(rg *gin.RouterGroup, driverService portssvc.DriverSvcFacade) {
	h := newDriverHandler(driverService)

	drivers := rg.Group("/drivers")
	{
		drivers.POST("", h.createDriver)
		drivers.GET("", h.listDrivers)
		drivers.GET("/:id", h.getDriverByID)
		drivers.PUT("/:id", h.updateDriver)
		drivers.DELETE("/:id", h.deleteDriver)
	}
}

// createDriver godoc
// @Summary Create a new driver
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   driver body dto.CreateDriverRequest true "Driver details"
// @Success 201 {object} domain.Driver
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "License number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers [post]
func (h *driverHandler) createDriver(c *gin.Context) {
	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Driver")
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// listDrivers godoc
// @Summary List drivers
// @Tags drivers
// @Produce  json
// @Success 200 {array} domain.Driver
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers [get]
func (h *driverHandler) listDrivers(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	drivers, err := h.driverService.ListDrivers(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err, "Driver")
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// getDriverByID godoc
// @Summary Get a driver
// @Tags drivers
// @Produce  json
// @Param   id path string true "Driver ID"
// @Success 200 {object} domain.Driver
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{id} [get]
func (h *driverHandler) getDriverByID(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	driver, err := h.driverService.GetDriverByID(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		respondServiceError(c, err, "Driver")
		return
	}
	c.JSON(http.StatusOK, driver)
}

// updateDriver godoc
// @Summary Update a driver
// @Description Partially updates a driver; omitted fields are left unchanged
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   id path string true "Driver ID"
// @Param   driver body dto.UpdateDriverRequest true "Fields to update"
// @Success 200 {object} domain.Driver
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{id} [put]
func (h *driverHandler) updateDriver(c *gin.Context) {
	var req dto.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), c.Param("id"), req, ownerID)
	if err != nil {
		respondServiceError(c, err, "Driver")
		return
	}
	c.JSON(http.StatusOK, driver)
}

// deleteDriver godoc
// @Summary Delete a driver
// @Description Deletes a driver; deleting an absent driver succeeds
// @Tags drivers
// @Param   id path string true "Driver ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{id} [delete]
func (h *driverHandler) deleteDriver(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondServiceError(c, err, "Driver")
		return
	}
	c.Status(http.StatusNoContent)
}
