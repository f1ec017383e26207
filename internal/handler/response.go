package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error envelope returned by the API. The web client
// reads the detail string, so every failure path goes through this shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends an error response with a detail message.
func Error(c echo.Context, status int, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Detail: detail})
}
