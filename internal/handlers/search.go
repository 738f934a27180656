package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// SearchHandler handles search routes
type SearchHandler struct {
	DB *gorm.DB
}

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	suggestionLimit    = 5
)

// Search handles GET /api/search
// @Summary Search across all entities
// @Description Case-insensitive substring search over persons, locations, events, journeys, and themes
// @Tags Search
// @Produce json
// @Param q query string true "Search term, at least 2 characters"
// @Param limit query int false "Maximum results per entity kind"
// @Success 200 {object} services.SearchResults
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "query must be at least 2 characters")
	}

	limit := defaultSearchLimit
	if v := utils.QueryIntPtr(c, "limit"); v != nil && *v > 0 {
		limit = *v
		if limit > maxSearchLimit {
			limit = maxSearchLimit
		}
	}

	results, err := services.UnifiedSearch(c.UserContext(), h.DB, term, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(results)
}

// Suggestions handles GET /api/search/suggestions
// @Summary Autocomplete suggestions
// @Description Name-prefix matches over persons and locations, five of each
// @Tags Search
// @Produce json
// @Param q query string true "Prefix, at least 2 characters"
// @Success 200 {array} services.Suggestion
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /search/suggestions [get]
func (h *SearchHandler) Suggestions(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "query must be at least 2 characters")
	}

	suggestions, err := services.GetSuggestions(h.DB, term, suggestionLimit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(suggestions)
}
