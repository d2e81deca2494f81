package handler

import (
	"log/slog"
	"net/http"

	"lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/response"
	"lastseen/internal/delivery/api/validator"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionsHandlerParams holds dependencies for ConnectionsHandler, injected by Fx.
type ConnectionsHandlerParams struct {
	fx.In

	ConnectionsUC usecase.ConnectionsUsecase
	Logger        *slog.Logger
}

// ConnectionsHandler manages the viewer's connection list.
type ConnectionsHandler struct {
	connectionsUC usecase.ConnectionsUsecase
	logger        *slog.Logger
}

// NewConnectionsHandler is the constructor for ConnectionsHandler.
func NewConnectionsHandler(params ConnectionsHandlerParams) *ConnectionsHandler {
	return &ConnectionsHandler{
		connectionsUC: params.ConnectionsUC,
		logger:        params.Logger,
	}
}

// AddConnectionRequest is the body of POST /circle/connections.
type AddConnectionRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

// List handles GET /circle/connections.
func (h *ConnectionsHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	users, err := h.connectionsUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	connections := make([]ConnectionResponse, 0, len(users))
	for _, u := range users {
		connections = append(connections, toConnectionResponse(u))
	}

	return response.Success(c, http.StatusOK, connections)
}

// Add handles POST /circle/connections.
func (h *ConnectionsHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req AddConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid connection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid connection input", validator.FieldErrors(err))
	}

	user, err := h.connectionsUC.AddConnection(c.Request().Context(), userID, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toConnectionResponse(user))
}

// Remove handles DELETE /circle/connections/:id.
func (h *ConnectionsHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid connection ID")
	}

	if err := h.connectionsUC.RemoveConnection(c.Request().Context(), userID, targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
