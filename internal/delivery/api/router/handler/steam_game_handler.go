package handler

import (
	"net/http"

	"magichat/internal/delivery/api/response"
	"magichat/internal/domain/repository"
	"magichat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SteamGameHandlerParams holds dependencies for SteamGameHandler, injected by Fx.
type SteamGameHandlerParams struct {
	fx.In

	SteamGameUC  usecase.SteamGameUsecase
	SharedGameUC usecase.SharedGameUsecase
}

// SteamGameHandler holds dependencies for steam game handlers
type SteamGameHandler struct {
	steamGameUC  usecase.SteamGameUsecase
	sharedGameUC usecase.SharedGameUsecase
}

// NewSteamGameHandler is the constructor for SteamGameHandler
func NewSteamGameHandler(params SteamGameHandlerParams) *SteamGameHandler {
	return &SteamGameHandler{
		steamGameUC:  params.SteamGameUC,
		sharedGameUC: params.SharedGameUC,
	}
}

// CreateSteamGameRequest represents the request body for creating a game
type CreateSteamGameRequest struct {
	AppID     int64   `json:"app_id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required,max=255"`
	AppImgURL *string `json:"app_img_url" validate:"omitempty,url,max=512"`
}

// UpdateSteamGameRequest represents the request body for updating a game
type UpdateSteamGameRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	AppImgURL *string `json:"app_img_url" validate:"omitempty,url,max=512"`
}

// CreateSteamGame stores a game entered by hand
func (h *SteamGameHandler) CreateSteamGame(c echo.Context) error {
	var req CreateSteamGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid steam game input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	game, err := h.steamGameUC.CreateGame(c.Request().Context(), &usecase.CreateGameInput{
		AppID:     req.AppID,
		Name:      req.Name,
		AppImgURL: req.AppImgURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, game)
}

// ListSteamGames returns a page of games, optionally filtered by name
func (h *SteamGameHandler) ListSteamGames(c echo.Context) error {
	opts, err := bindListOptions(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	games, err := h.steamGameUC.ListGames(c.Request().Context(), repository.GameFilter{
		ListOptions: opts,
		Name:        c.QueryParam("name"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, games)
}

// GetSteamGame retrieves a game
func (h *SteamGameHandler) GetSteamGame(c echo.Context) error {
	appID, ok := parseAppID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid app id")
	}

	game, err := h.steamGameUC.GetGame(c.Request().Context(), appID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, game)
}

// UpdateSteamGame overwrites the name and image of a game
func (h *SteamGameHandler) UpdateSteamGame(c echo.Context) error {
	appID, ok := parseAppID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid app id")
	}

	var req UpdateSteamGameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid steam game input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	game, err := h.steamGameUC.UpdateGame(c.Request().Context(), appID, &usecase.UpdateGameInput{
		Name:      req.Name,
		AppImgURL: req.AppImgURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, game)
}

// DeleteSteamGame removes a game and its ownership links
func (h *SteamGameHandler) DeleteSteamGame(c echo.Context) error {
	appID, ok := parseAppID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid app id")
	}

	if err := h.steamGameUC.DeleteGame(c.Request().Context(), appID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSteamGameOwners returns the users owning a game
func (h *SteamGameHandler) ListSteamGameOwners(c echo.Context) error {
	appID, ok := parseAppID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid app id")
	}

	users, err := h.steamGameUC.ListGameOwners(c.Request().Context(), appID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetSharedGames returns the games owned by at least min_shared_count users.
// The body is {results, meta} without the usual envelope.
func (h *SteamGameHandler) GetSharedGames(c echo.Context) error {
	minSharedCount := usecase.DefaultMinSharedCount
	if err := echo.QueryParamsBinder(c).
		Int("min_shared_count", &minSharedCount).
		BindError(); err != nil || minSharedCount < 1 {
		return response.BadRequest(c, "VALIDATION_FAILED", "min_shared_count must be a positive integer")
	}

	result, err := h.sharedGameUC.FindSharedGames(c.Request().Context(), minSharedCount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
