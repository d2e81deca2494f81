package handler

import (
	"log/slog"
	"net/http"

	"lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/response"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.PublicShareUsecase
	Logger  *slog.Logger
}

// ShareHandler manages and serves public share links.
type ShareHandler struct {
	shareUC usecase.PublicShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler.
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// Enable handles POST /circle/share.
func (h *ShareHandler) Enable(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	link, err := h.shareUC.Enable(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// Rotate handles POST /circle/share/rotate.
func (h *ShareHandler) Rotate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	link, err := h.shareUC.Rotate(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// Disable handles DELETE /circle/share.
func (h *ShareHandler) Disable(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.shareUC.Disable(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QRCode handles GET /circle/share/qr.
func (h *ShareHandler) QRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	png, err := h.shareUC.QRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Resolve handles the anonymous GET /s/:token.
func (h *ShareHandler) Resolve(c echo.Context) error {
	share, err := h.shareUC.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, toPublicShareResponse(share))
}
