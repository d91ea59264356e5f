package handler

import (
	"strconv"

	"magichat/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// bindListOptions reads the limit and offset query parameters.
func bindListOptions(c echo.Context) (repository.ListOptions, error) {
	var opts repository.ListOptions
	err := echo.QueryParamsBinder(c).
		Int("limit", &opts.Limit).
		Int("offset", &opts.Offset).
		BindError()

	return opts, err
}

func parseAppID(c echo.Context) (int64, bool) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || appID <= 0 {
		return 0, false
	}

	return appID, true
}
