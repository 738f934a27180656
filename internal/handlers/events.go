package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// EventHandler handles event routes
type EventHandler struct {
	DB *gorm.DB
}

type eventInput struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Year         *types.FlexInt         `json:"year"`
	YearRange    *string                `json:"yearRange"`
	Testament    models.Testament       `json:"testament"`
	Category     models.EventCategory   `json:"category"`
	Significance string                 `json:"significance"`
	ImageURL     *string                `json:"imageUrl"`
	LocationID   *string                `json:"locationId"`
	PersonIDs    types.FlexList[string] `json:"personIds"`
	VerseIDs     types.FlexList[string] `json:"verseIds"`
}

func (in *eventInput) apply(ev *models.Event) {
	ev.Title = in.Title
	ev.Description = in.Description
	ev.Year = in.Year.IntPtr()
	ev.YearRange = in.YearRange
	if in.Testament != "" {
		ev.Testament = in.Testament
	}
	if in.Category != "" {
		ev.Category = in.Category
	}
	ev.Significance = in.Significance
	ev.ImageURL = in.ImageURL
	ev.LocationID = in.LocationID
}

func replacePersons(tx *gorm.DB, ev *models.Event, personIDs []string) error {
	persons := []models.Person{}
	if len(personIDs) > 0 {
		if err := tx.Find(&persons, "id IN ?", personIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(ev).Association("Persons").Replace(persons)
}

// ListEvents handles GET /api/events
// @Summary List events
// @Description List events with pagination, search, and year range filtering
// @Tags Events
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Substring match on title and description"
// @Param testament query string false "OLD, NEW, or BOTH"
// @Param category query string false "Event category"
// @Param yearFrom query int false "Earliest year, inclusive (negative is BCE)"
// @Param yearTo query int false "Latest year, inclusive"
// @Success 200 {object} utils.ListEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	params := utils.ParsePageParams(c)

	tx := h.DB.Model(&models.Event{})
	tx = searchFilter(c, tx, "title", "description")
	if testament := c.Query("testament"); testament != "" {
		tx = tx.Where("testament = ?", testament)
	}
	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	if yearFrom := utils.QueryIntPtr(c, "yearFrom"); yearFrom != nil {
		tx = tx.Where("year >= ?", *yearFrom)
	}
	if yearTo := utils.QueryIntPtr(c, "yearTo"); yearTo != nil {
		tx = tx.Where("year <= ?", *yearTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []models.Event
	err := tx.Preload("Location").
		Preload("Persons").
		Order("year asc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&events).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ListResponse(c, events, params.Page, params.Limit, total)
}

// GetEventsTimeline handles GET /api/events/timeline
// @Summary Get events grouped by century
// @Description All events bucketed into centuries; undated events land in "Unknowns"
// @Tags Events
// @Produce json
// @Success 200 {object} services.CenturyTimeline
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /events/timeline [get]
func (h *EventHandler) GetEventsTimeline(c *fiber.Ctx) error {
	timeline, err := services.GetEventsTimeline(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(timeline)
}

// GetEvent handles GET /api/events/:id
// @Summary Get an event
// @Description Get one event with its location, persons, and verses
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	var event models.Event
	err := h.DB.Preload("Location").
		Preload("Persons").
		Preload("Verses").
		First(&event, "id = ?", c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "event not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(event)
}

// CreateEvent handles POST /api/events
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body eventInput true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var in eventInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	if in.Category == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category is required")
	}

	var event models.Event
	in.apply(&event)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		if err := replacePersons(tx, &event, in.PersonIDs.Slice()); err != nil {
			return err
		}
		return replaceVerses(tx, &event, in.VerseIDs.Slice())
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent handles PUT /api/events/:id
// @Summary Update an event
// @Description Replaces scalar fields; the person set is replaced when personIds is present
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body eventInput true "Event"
// @Success 200 {object} models.Event
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	var event models.Event
	if err := h.DB.First(&event, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "event not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var in eventInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	in.apply(&event)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		if in.PersonIDs != nil {
			if err := replacePersons(tx, &event, in.PersonIDs.Slice()); err != nil {
				return err
			}
		}
		if in.VerseIDs != nil {
			return replaceVerses(tx, &event, in.VerseIDs.Slice())
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(event)
}

// DeleteEvent handles DELETE /api/events/:id
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	result := h.DB.Delete(&models.Event{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundResponse(c, "event not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
