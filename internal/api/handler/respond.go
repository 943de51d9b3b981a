package handler

import (
	"github.com/labstack/echo/v4"
)

// envelope is the fixed response contract shared by every endpoint:
// {success, message, data, pagination?}.
type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       any                 `json:"data,omitempty"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondPage(c echo.Context, status int, message string, data any, p paginationResponse) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data, Pagination: &p})
}
