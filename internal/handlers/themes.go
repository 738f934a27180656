package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// ThemeHandler handles theme routes
type ThemeHandler struct {
	DB *gorm.DB
}

type themeInput struct {
	Title           string                 `json:"title"`
	TitleHebrew     *string                `json:"titleHebrew"`
	TitleGreek      *string                `json:"titleGreek"`
	Category        models.ThemeCategory   `json:"category"`
	Description     string                 `json:"description"`
	Summary         string                 `json:"summary"`
	Applications    []string               `json:"applications"`
	ImageURL        *string                `json:"imageUrl"`
	VerseIDs        types.FlexList[string] `json:"verseIds"`
	RelatedThemeIDs types.FlexList[string] `json:"relatedThemeIds"`
}

func (in *themeInput) apply(t *models.Theme) error {
	t.Title = in.Title
	t.TitleHebrew = in.TitleHebrew
	t.TitleGreek = in.TitleGreek
	if in.Category != "" {
		t.Category = in.Category
	}
	t.Description = in.Description
	t.Summary = in.Summary
	t.ImageURL = in.ImageURL
	if in.Applications != nil {
		raw, err := json.Marshal(in.Applications)
		if err != nil {
			return err
		}
		t.Applications = datatypes.JSON(raw)
	}
	return nil
}

func replaceRelatedThemes(tx *gorm.DB, t *models.Theme, ids []string) error {
	related := []*models.Theme{}
	if len(ids) > 0 {
		if err := tx.Find(&related, "id IN ?", ids).Error; err != nil {
			return err
		}
	}
	return tx.Model(t).Association("RelatedThemes").Replace(related)
}

// ListThemes handles GET /api/themes
// @Summary List themes
// @Description List themes with pagination, search, and category filtering
// @Tags Themes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Substring match on title, summary, description"
// @Param category query string false "Theme category"
// @Success 200 {object} utils.ListEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /themes [get]
func (h *ThemeHandler) ListThemes(c *fiber.Ctx) error {
	params := utils.ParsePageParams(c)

	tx := h.DB.Model(&models.Theme{})
	tx = searchFilter(c, tx, "title", "summary", "description")
	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var themes []models.Theme
	err := tx.Order("title asc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&themes).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ListResponse(c, themes, params.Page, params.Limit, total)
}

// GetThemeCategories handles GET /api/themes/categories
// @Summary Get theme counts per category
// @Tags Themes
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /themes/categories [get]
func (h *ThemeHandler) GetThemeCategories(c *fiber.Ctx) error {
	type categoryCount struct {
		Category string
		N        int64
	}
	var rows []categoryCount
	err := h.DB.Model(&models.Theme{}).
		Select("category, count(*) as n").
		Group("category").
		Order("category asc").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	histogram := make(map[string]int64, len(rows))
	for _, row := range rows {
		histogram[row.Category] = row.N
	}
	return c.Status(fiber.StatusOK).JSON(histogram)
}

// GetTheme handles GET /api/themes/:id
// @Summary Get a theme
// @Description Get one theme with its verses and related themes in both directions
// @Tags Themes
// @Produce json
// @Param id path string true "Theme ID"
// @Success 200 {object} models.Theme
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /themes/{id} [get]
func (h *ThemeHandler) GetTheme(c *fiber.Ctx) error {
	var theme models.Theme
	err := h.DB.Preload("Verses").
		Preload("RelatedThemes").
		Preload("ThemesRelated").
		First(&theme, "id = ?", c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "theme not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(theme)
}

// CreateTheme handles POST /api/themes
// @Summary Create a theme
// @Tags Themes
// @Accept json
// @Produce json
// @Param theme body themeInput true "Theme"
// @Success 201 {object} models.Theme
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /themes [post]
func (h *ThemeHandler) CreateTheme(c *fiber.Ctx) error {
	var in themeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	if in.Category == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category is required")
	}

	var theme models.Theme
	if err := in.apply(&theme); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid applications list")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&theme).Error; err != nil {
			return err
		}
		if err := replaceRelatedThemes(tx, &theme, in.RelatedThemeIDs.Slice()); err != nil {
			return err
		}
		return replaceVerses(tx, &theme, in.VerseIDs.Slice())
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(theme)
}

// UpdateTheme handles PUT /api/themes/:id
// @Summary Update a theme
// @Description Replaces scalar fields; verse and related-theme sets are replaced when present
// @Tags Themes
// @Accept json
// @Produce json
// @Param id path string true "Theme ID"
// @Param theme body themeInput true "Theme"
// @Success 200 {object} models.Theme
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /themes/{id} [put]
func (h *ThemeHandler) UpdateTheme(c *fiber.Ctx) error {
	var theme models.Theme
	if err := h.DB.First(&theme, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "theme not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var in themeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	if err := in.apply(&theme); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid applications list")
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&theme).Error; err != nil {
			return err
		}
		if in.RelatedThemeIDs != nil {
			if err := replaceRelatedThemes(tx, &theme, in.RelatedThemeIDs.Slice()); err != nil {
				return err
			}
		}
		if in.VerseIDs != nil {
			return replaceVerses(tx, &theme, in.VerseIDs.Slice())
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(theme)
}

// DeleteTheme handles DELETE /api/themes/:id
// @Summary Delete a theme
// @Tags Themes
// @Param id path string true "Theme ID"
// @Success 204
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /themes/{id} [delete]
func (h *ThemeHandler) DeleteTheme(c *fiber.Ctx) error {
	result := h.DB.Delete(&models.Theme{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundResponse(c, "theme not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
