package handler

import (
	"net/http"

	"magichat/internal/delivery/api/response"
	"magichat/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SteamUserHandlerParams holds dependencies for SteamUserHandler, injected by Fx.
type SteamUserHandlerParams struct {
	fx.In

	SteamUserUC usecase.SteamUserUsecase
}

// SteamUserHandler holds dependencies for steam user handlers
type SteamUserHandler struct {
	steamUserUC usecase.SteamUserUsecase
}

// NewSteamUserHandler is the constructor for SteamUserHandler
func NewSteamUserHandler(params SteamUserHandlerParams) *SteamUserHandler {
	return &SteamUserHandler{
		steamUserUC: params.SteamUserUC,
	}
}

// CreateSteamUserRequest represents the request body for importing a user
type CreateSteamUserRequest struct {
	SteamID string `json:"steam_id" validate:"required,numeric,max=32"`
}

// CreateSteamUser imports a user and its owned games from Steam
func (h *SteamUserHandler) CreateSteamUser(c echo.Context) error {
	var req CreateSteamUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid steam user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.steamUserUC.ImportUser(c.Request().Context(), req.SteamID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ListSteamUsers returns a page of users
func (h *SteamUserHandler) ListSteamUsers(c echo.Context) error {
	opts, err := bindListOptions(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	users, err := h.steamUserUC.ListUsers(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetSteamUser retrieves a user
func (h *SteamUserHandler) GetSteamUser(c echo.Context) error {
	user, err := h.steamUserUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RefreshSteamUser re-imports a stored user from Steam
func (h *SteamUserHandler) RefreshSteamUser(c echo.Context) error {
	user, err := h.steamUserUC.RefreshUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteSteamUser removes a user
func (h *SteamUserHandler) DeleteSteamUser(c echo.Context) error {
	if err := h.steamUserUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSteamUserGames returns the games a user owns
func (h *SteamUserHandler) ListSteamUserGames(c echo.Context) error {
	games, err := h.steamUserUC.ListUserGames(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, games)
}
