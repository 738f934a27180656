package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// PageParams holds the parsed page and limit from a request's query
// string. Malformed values degrade to the defaults, they never error.
type PageParams struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET derived from Page and Limit.
func (p PageParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ParsePageParams parses and clamps "page" and "limit" query parameters.
func ParsePageParams(c *fiber.Ctx) PageParams {
	page := queryInt(c, "page", DefaultPage)
	limit := queryInt(c, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return PageParams{Page: page, Limit: limit}
}

// QueryIntPtr returns the named query parameter as *int, or nil when
// absent or malformed.
func QueryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *fiber.Ctx, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
