package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitbridge/studio-api/internal/domain/locations"
	"github.com/fitbridge/studio-api/internal/domain/schedule"
	apperrors "github.com/fitbridge/studio-api/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	scheduleSvc  schedule.Service
	locationsSvc locations.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(scheduleSvc schedule.Service, locationsSvc locations.Service, logger *slog.Logger) *Handler {
	return &Handler{
		scheduleSvc:  scheduleSvc,
		locationsSvc: locationsSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Schedule returns the day-grouped class schedule for one studio account.
func (h *Handler) Schedule(c *gin.Context) {
	accountID := c.Param("accountId")

	days, err := h.scheduleSvc.DayGroups(c.Request.Context(), accountID)
	if err != nil {
		status := http.StatusInternalServerError
		code := "schedule_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "upstream_error"):
			status = http.StatusBadGateway
			code = "upstream_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	if days == nil {
		days = []schedule.DayGroup{}
	}
	c.JSON(http.StatusOK, days)
}

// NearestLocations geocodes the posted address and returns the closest
// business locations by driving time.
func (h *Handler) NearestLocations(c *gin.Context) {
	var req locations.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.locationsSvc.Nearest(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "locations_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "geocode_error"):
			status = http.StatusUnprocessableEntity
			code = "geocode_error"
		case apperrors.IsCode(err, "cms_error"):
			status = http.StatusBadGateway
			code = "cms_error"
		case apperrors.IsCode(err, "maps_error"):
			status = http.StatusBadGateway
			code = "maps_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
