package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/response"
	"lastseen/internal/delivery/api/validator"
	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/service"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Sensor failures a client can report instead of a fix.
const (
	sensorErrorDenied      = "denied"
	sensorErrorUnavailable = "unavailable"
	sensorErrorTimeout     = "timeout"
)

// CircleHandlerParams holds dependencies for CircleHandler, injected by Fx.
type CircleHandlerParams struct {
	fx.In

	CircleUC usecase.CircleUsecase
	Logger   *slog.Logger
}

// CircleHandler serves the viewer's circle, own record and map.
type CircleHandler struct {
	circleUC usecase.CircleUsecase
	logger   *slog.Logger
}

// NewCircleHandler is the constructor for CircleHandler.
func NewCircleHandler(params CircleHandlerParams) *CircleHandler {
	return &CircleHandler{
		circleUC: params.CircleUC,
		logger:   params.Logger,
	}
}

// LogLocationRequest is the body of POST /circle/location. The client sends
// either its fix or the reason the sensor could not produce one.
type LogLocationRequest struct {
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	SensorError   string   `json:"sensor_error" validate:"omitempty,oneof=denied unavailable timeout"`
	Note          string   `json:"note"`
	ExpiryMinutes *int     `json:"expiry_minutes"`
	Visibility    string   `json:"visibility_mode" validate:"omitempty,visibility"`
	Vague         bool     `json:"vague"`
}

// positionSource turns the reported fix into a one-shot sensor read.
func (r *LogLocationRequest) positionSource() service.PositionSource {
	return service.PositionSourceFunc(func(_ context.Context) (entity.Coordinates, error) {
		switch r.SensorError {
		case sensorErrorDenied:
			return entity.Coordinates{}, domainerrors.ErrPermissionDenied
		case sensorErrorUnavailable, sensorErrorTimeout:
			return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails(r.SensorError)
		}
		if r.Latitude == nil || r.Longitude == nil {
			return entity.Coordinates{}, domainerrors.ErrPositionUnavailable
		}

		return entity.Coordinates{Lat: *r.Latitude, Lng: *r.Longitude}, nil
	})
}

// View handles GET /circle/view.
func (h *CircleHandler) View(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	view, err := h.circleUC.View(c.Request().Context(), viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCircleViewResponse(view))
}

// Refresh handles POST /circle/refresh.
func (h *CircleHandler) Refresh(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	view, err := h.circleUC.Refresh(c.Request().Context(), viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCircleViewResponse(view))
}

// LogLocation handles POST /circle/location.
func (h *CircleHandler) LogLocation(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req LogLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid location input", validator.FieldErrors(err))
	}

	record, err := h.circleUC.LogCurrentLocation(c.Request().Context(), viewerID, &usecase.LogLocationInput{
		Position:      req.positionSource(),
		Note:          req.Note,
		ExpiryMinutes: req.ExpiryMinutes,
		Visibility:    entity.VisibilityMode(req.Visibility),
		Vague:         req.Vague,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLocationResponse(record))
}

// StopSharing handles DELETE /circle/location.
func (h *CircleHandler) StopSharing(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.circleUC.StopSharing(c.Request().Context(), viewerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MapScene handles GET /circle/map.
func (h *CircleHandler) MapScene(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	snapshot, err := h.circleUC.MapScene(c.Request().Context(), viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// FocusOwner handles POST /circle/map/focus/:key.
func (h *CircleHandler) FocusOwner(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	key := c.Param("key")
	if !validMarkerKey(key) {
		return response.BadRequest(c, "INVALID_ID", "Invalid marker key")
	}

	snapshot, err := h.circleUC.FocusOwner(c.Request().Context(), viewerID, key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// validMarkerKey accepts member ids and the opaque keys of anonymous markers.
func validMarkerKey(key string) bool {
	if _, err := uuid.Parse(key); err == nil {
		return true
	}
	handle, ok := strings.CutPrefix(key, "anon-")

	return ok && len(handle) == 16 && strings.Trim(handle, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_") == ""
}
