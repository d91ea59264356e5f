package handler

import (
	"net/http"
	"strconv"

	"magichat/internal/delivery/api/response"
	"magichat/internal/domain/repository"
	"magichat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OwnedGameHandlerParams holds dependencies for OwnedGameHandler, injected by Fx.
type OwnedGameHandlerParams struct {
	fx.In

	OwnedGameUC usecase.OwnedGameUsecase
}

// OwnedGameHandler holds dependencies for ownership link handlers
type OwnedGameHandler struct {
	ownedGameUC usecase.OwnedGameUsecase
}

// NewOwnedGameHandler is the constructor for OwnedGameHandler
func NewOwnedGameHandler(params OwnedGameHandlerParams) *OwnedGameHandler {
	return &OwnedGameHandler{
		ownedGameUC: params.OwnedGameUC,
	}
}

// CreateOwnedGameRequest represents the request body for linking a user to a game
type CreateOwnedGameRequest struct {
	SteamID string `json:"steam_id" validate:"required,numeric,max=32"`
	AppID   int64  `json:"app_id" validate:"required,gt=0"`
}

// CreateOwnedGame links a stored user to a stored game
func (h *OwnedGameHandler) CreateOwnedGame(c echo.Context) error {
	var req CreateOwnedGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owned game input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	owned, err := h.ownedGameUC.CreateOwnedGame(c.Request().Context(), req.SteamID, req.AppID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, owned)
}

// ListOwnedGames returns a page of links filtered by steam_id and app_id
func (h *OwnedGameHandler) ListOwnedGames(c echo.Context) error {
	filter := repository.OwnedGameFilter{SteamID: c.QueryParam("steam_id")}
	if err := echo.QueryParamsBinder(c).
		Int64("app_id", &filter.AppID).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "app_id, limit and offset must be integers")
	}

	owned, err := h.ownedGameUC.ListOwnedGames(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, owned)
}

// GetOwnedGame retrieves a link by id
func (h *OwnedGameHandler) GetOwnedGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owned game id")
	}

	owned, err := h.ownedGameUC.GetOwnedGame(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, owned)
}

// DeleteOwnedGame removes a link by id
func (h *OwnedGameHandler) DeleteOwnedGame(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owned game id")
	}

	if err := h.ownedGameUC.DeleteOwnedGame(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOwnedGameByPair removes the link named by the steam_id and app_id query parameters
func (h *OwnedGameHandler) DeleteOwnedGameByPair(c echo.Context) error {
	steamID := c.QueryParam("steam_id")

	var appID int64
	if err := echo.QueryParamsBinder(c).
		MustInt64("app_id", &appID).
		BindError(); err != nil || steamID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "steam_id and app_id query parameters are required")
	}

	if err := h.ownedGameUC.DeleteOwnedGameByPair(c.Request().Context(), steamID, appID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
