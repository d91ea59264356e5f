// Package steam implements the Steam Web API client.
package steam

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"magichat/config"
	"magichat/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2/"
	ownedGamesPath      = "/IPlayerService/GetOwnedGames/v1/"

	// maxErrorBodyBytes caps how much of a failed response ends up in the error.
	maxErrorBodyBytes = 512
)

// Client talks to the Steam Web API with the key held from config.
type Client struct {
	apiKey       string
	baseURL      string
	mediaBaseURL string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewClient creates a Steam Web API client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.SteamClient {
	return &Client{
		apiKey:       cfg.Steam.APIKey,
		baseURL:      strings.TrimRight(cfg.Steam.BaseURL, "/"),
		mediaBaseURL: strings.TrimRight(cfg.Steam.MediaBaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Steam.Timeout},
		logger:       logger,
	}
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID     string `json:"steamid"`
			PersonaName string `json:"personaname"`
			AvatarFull  string `json:"avatarfull"`
		} `json:"players"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount *int `json:"game_count"`
		Games     []struct {
			AppID      int64  `json:"appid"`
			Name       string `json:"name"`
			ImgIconURL string `json:"img_icon_url"`
		} `json:"games"`
	} `json:"response"`
}

// GetPlayerProfile fetches the summary of a single player.
func (c *Client) GetPlayerProfile(ctx context.Context, steamID string) (*service.PlayerProfile, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamids", steamID)

	var summaries playerSummariesResponse
	if err := c.get(ctx, playerSummariesPath, params, &summaries); err != nil {
		return nil, errors.Wrap(err, "failed to get player summaries")
	}

	if len(summaries.Response.Players) == 0 {
		return nil, service.ErrSteamProfileNotFound
	}

	player := summaries.Response.Players[0]
	if player.SteamID == "" {
		player.SteamID = steamID
	}

	return &service.PlayerProfile{
		SteamID:     player.SteamID,
		PersonaName: player.PersonaName,
		AvatarFull:  player.AvatarFull,
	}, nil
}

// GetOwnedGames lists every game the player owns, free-to-play titles included.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]service.OwnedGameInfo, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "1")
	params.Set("include_played_free_games", "1")
	params.Set("format", "json")

	var owned ownedGamesResponse
	if err := c.get(ctx, ownedGamesPath, params, &owned); err != nil {
		return nil, errors.Wrap(err, "failed to get owned games")
	}

	if owned.Response.GameCount == nil && c.logger != nil {
		c.logger.DebugContext(ctx, "Steam returned an empty owned games response",
			slog.String("steam_id", steamID),
		)
	}

	games := make([]service.OwnedGameInfo, 0, len(owned.Response.Games))
	for _, game := range owned.Response.Games {
		games = append(games, service.OwnedGameInfo{
			AppID:      game.AppID,
			Name:       game.Name,
			ImgIconURL: game.ImgIconURL,
		})
	}

	return games, nil
}

// GameImageURL builds {mediaBase}/{appid}/{hash}.jpg, or nil without a hash.
func (c *Client) GameImageURL(appID int64, iconHash string) *string {
	if iconHash == "" {
		return nil
	}

	imageURL := c.mediaBaseURL + "/" + strconv.FormatInt(appID, 10) + "/" + iconHash + ".jpg"

	return &imageURL
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the key, so only the cause is kept.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return errors.Wrapf(urlErr.Err, "request to %s failed", path)
		}

		return errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.Errorf("%s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}
