package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// idRequest binds the :id path parameter shared by every entity route
type idRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

// rankingRequest binds ?n= for the most-followed and most-liked rankings
type rankingRequest struct {
	N int `query:"n" validate:"gte=0,lte=100"`
}

const defaultRankingSize = 10

// bindRequest binds path and query parameters into req and validates it
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request parameters")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func bindID(c echo.Context) (int64, error) {
	var req idRequest
	if err := bindRequest(c, &req); err != nil {
		return 0, err
	}
	return req.ID, nil
}

func bindRanking(c echo.Context) (int, error) {
	req := rankingRequest{N: defaultRankingSize}
	if err := bindRequest(c, &req); err != nil {
		return 0, err
	}
	return req.N, nil
}

func respond(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}
