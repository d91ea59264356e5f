// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"magichat/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SteamUserHandler *handler.SteamUserHandler
	SteamGameHandler *handler.SteamGameHandler
	OwnedGameHandler *handler.OwnedGameHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	steamUserHandler *handler.SteamUserHandler
	steamGameHandler *handler.SteamGameHandler
	ownedGameHandler *handler.OwnedGameHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		steamUserHandler: params.SteamUserHandler,
		steamGameHandler: params.SteamGameHandler,
		ownedGameHandler: params.OwnedGameHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Home)
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/steam_users")
	{
		usersGroup.GET("", r.steamUserHandler.ListSteamUsers)
		usersGroup.POST("", r.steamUserHandler.CreateSteamUser)
		usersGroup.GET("/:id", r.steamUserHandler.GetSteamUser)
		usersGroup.PUT("/:id", r.steamUserHandler.RefreshSteamUser)
		usersGroup.DELETE("/:id", r.steamUserHandler.DeleteSteamUser)
		usersGroup.GET("/:id/games", r.steamUserHandler.ListSteamUserGames)
	}

	// The static /shared route wins over /:id in echo's router.
	gamesGroup := e.Group("/steam_games")
	{
		gamesGroup.GET("", r.steamGameHandler.ListSteamGames)
		gamesGroup.POST("", r.steamGameHandler.CreateSteamGame)
		gamesGroup.GET("/shared", r.steamGameHandler.GetSharedGames)
		gamesGroup.GET("/:id", r.steamGameHandler.GetSteamGame)
		gamesGroup.PUT("/:id", r.steamGameHandler.UpdateSteamGame)
		gamesGroup.DELETE("/:id", r.steamGameHandler.DeleteSteamGame)
		gamesGroup.GET("/:id/owners", r.steamGameHandler.ListSteamGameOwners)
	}

	ownedGroup := e.Group("/owned_games")
	{
		ownedGroup.GET("", r.ownedGameHandler.ListOwnedGames)
		ownedGroup.POST("", r.ownedGameHandler.CreateOwnedGame)
		ownedGroup.DELETE("", r.ownedGameHandler.DeleteOwnedGameByPair)
		ownedGroup.GET("/:id", r.ownedGameHandler.GetOwnedGame)
		ownedGroup.DELETE("/:id", r.ownedGameHandler.DeleteOwnedGame)
	}
}
