package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ListEnvelope is the response shape for paginated list endpoints.
type ListEnvelope struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// ErrorEnvelope is the response shape for all error responses.
type ErrorEnvelope struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ListResponse sends a paginated list response.
func ListResponse(c *fiber.Ctx, data interface{}, page, limit int, total int64) error {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return c.Status(fiber.StatusOK).JSON(ListEnvelope{
		Data: data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// ErrorResponse sends an error response in the {error, status} envelope.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorEnvelope{
		Error:  message,
		Status: status,
	})
}

// ErrorResponseWithDetail sends an error response including detail,
// used in development mode only.
func ErrorResponseWithDetail(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(ErrorEnvelope{
		Error:  message,
		Status: status,
		Detail: detail,
	})
}

// NotFoundResponse sends a 404 not found response.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message)
}
