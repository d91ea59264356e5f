package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"magichat/config"
	"magichat/internal/domain/service"
	"magichat/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Steam: &config.SteamConfig{
			APIKey:       testAPIKey,
			BaseURL:      server.URL + "/",
			MediaBaseURL: "http://media.example/apps/",
			Timeout:      time.Second,
		},
	}

	client, ok := NewClient(cfg, testutil.NewDiscardLogger()).(*Client)
	require.True(t, ok)

	return client
}

func TestClient_GetPlayerProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, playerSummariesPath, r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))
		assert.Equal(t, "76561197960287930", r.URL.Query().Get("steamids"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"players":[{"steamid":"76561197960287930","personaname":"robin","avatarfull":"https://avatars.example/full.jpg"}]}}`))
	})

	profile, err := client.GetPlayerProfile(context.Background(), "76561197960287930")
	require.NoError(t, err)
	assert.Equal(t, &service.PlayerProfile{
		SteamID:     "76561197960287930",
		PersonaName: "robin",
		AvatarFull:  "https://avatars.example/full.jpg",
	}, profile)
}

func TestClient_GetPlayerProfile_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"players":[]}}`))
	})

	_, err := client.GetPlayerProfile(context.Background(), "1")
	assert.ErrorIs(t, err, service.ErrSteamProfileNotFound)
}

func TestClient_GetPlayerProfile_UpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Access is denied"))
	})

	_, err := client.GetPlayerProfile(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrSteamProfileNotFound))
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Access is denied")
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestClient_GetPlayerProfile_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":`))
	})

	_, err := client.GetPlayerProfile(context.Background(), "1")
	assert.Error(t, err)
}

func TestClient_GetPlayerProfile_TransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(&config.Config{
		Steam: &config.SteamConfig{APIKey: testAPIKey, BaseURL: baseURL, Timeout: time.Second},
	}, testutil.NewDiscardLogger())

	_, err := client.GetPlayerProfile(context.Background(), "1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestClient_GetOwnedGames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, ownedGamesPath, r.URL.Path)
		assert.Equal(t, "1", query.Get("steamid"))
		assert.Equal(t, "1", query.Get("include_appinfo"))
		assert.Equal(t, "1", query.Get("include_played_free_games"))
		assert.Equal(t, "json", query.Get("format"))

		_, _ = w.Write([]byte(`{"response":{"game_count":2,"games":[
			{"appid":10,"name":"Counter-Strike","img_icon_url":"abc"},
			{"appid":20}
		]}}`))
	})

	games, err := client.GetOwnedGames(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []service.OwnedGameInfo{
		{AppID: 10, Name: "Counter-Strike", ImgIconURL: "abc"},
		{AppID: 20},
	}, games)
}

func TestClient_GetOwnedGames_PrivateProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{}}`))
	})

	games, err := client.GetOwnedGames(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestClient_GameImageURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	got := client.GameImageURL(10, "abc")
	require.NotNil(t, got)
	assert.Equal(t, "http://media.example/apps/10/abc.jpg", *got)

	assert.Nil(t, client.GameImageURL(10, ""))
}
