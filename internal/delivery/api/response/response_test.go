package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "magichat/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleAppError(t *testing.T, err error) ErrorResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, HandleAppError(c, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestHandleAppError_Details(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantDetails any
	}{
		{
			name:        "bad gateway keeps the upstream reason",
			err:         errors.Wrap(domainerrors.ErrSteamUpstream.WithDetails("status 503: maintenance"), "import"),
			wantCode:    "STEAM_UPSTREAM_ERROR",
			wantDetails: "status 503: maintenance",
		},
		{
			name:        "client error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("min_shared_count"),
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "min_shared_count",
		},
		{
			name:        "internal error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create steam game"),
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantDetails: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := handleAppError(t, tt.err)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}
