package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/bnsapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp wraps data into the success/fail envelope. Errors are turned into their
// message and well known ones pick their own status.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeRawJsonResp writes data as is on success, errors still get the fail envelope
func MakeRawJsonResp(c echo.Context, status int, data interface{}) error {
	if _, ok := data.(error); ok || status >= 400 {
		return MakeJsonResp(c, status, data)
	}
	return c.JSON(status, data)
}

func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidJsonFormat):
		return http.StatusBadRequest
	}
	return fallback
}
