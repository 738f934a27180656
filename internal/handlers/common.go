package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// handleServiceError maps service errors to the JSON error envelope.
func handleServiceError(c *fiber.Ctx, err error, what string) error {
	if err == services.ErrNotFound {
		return utils.NotFoundResponse(c, what+" not found")
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
}

// boundsFilter holds a rectangular map viewport parsed from a query
// parameter of the form "south,west,north,east".
type boundsFilter struct {
	South, West, North, East float64
}

func parseBounds(c *fiber.Ctx) (*boundsFilter, error) {
	raw := c.Query("bounds")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "bounds must be south,west,north,east")
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "bounds must be four numbers")
		}
		vals[i] = v
	}
	return &boundsFilter{South: vals[0], West: vals[1], North: vals[2], East: vals[3]}, nil
}

func (b *boundsFilter) apply(tx *gorm.DB) *gorm.DB {
	if b == nil {
		return tx
	}
	return tx.Where("latitude BETWEEN ? AND ?", b.South, b.North).
		Where("longitude BETWEEN ? AND ?", b.West, b.East)
}

// searchFilter applies the case-insensitive "search" query parameter
// over the given columns when present.
func searchFilter(c *fiber.Ctx, tx *gorm.DB, columns ...string) *gorm.DB {
	term := strings.TrimSpace(c.Query("search"))
	if term == "" {
		return tx
	}
	pattern := "%" + strings.ToLower(term) + "%"
	var (
		exprs []string
		args  []interface{}
	)
	for _, col := range columns {
		exprs = append(exprs, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	return tx.Where("("+strings.Join(exprs, " OR ")+")", args...)
}
