package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// JourneyHandler handles journey routes
type JourneyHandler struct {
	DB *gorm.DB
}

type journeyStopInput struct {
	OrderIndex  types.FlexInt `json:"orderIndex"`
	LocationID  string        `json:"locationId"`
	Description *string       `json:"description"`
	Duration    *string       `json:"duration"`
}

type journeyInput struct {
	Title       string                           `json:"title"`
	Description string                           `json:"description"`
	StartYear   *types.FlexInt                   `json:"startYear"`
	EndYear     *types.FlexInt                   `json:"endYear"`
	Distance    *float64                         `json:"distance"`
	Duration    *string                          `json:"duration"`
	Purpose     string                           `json:"purpose"`
	PersonID    string                           `json:"personId"`
	Stops       types.FlexList[journeyStopInput] `json:"stops"`
}

func (in *journeyInput) apply(j *models.Journey) {
	j.Title = in.Title
	j.Description = in.Description
	j.StartYear = in.StartYear.IntPtr()
	j.EndYear = in.EndYear.IntPtr()
	j.Distance = in.Distance
	j.Duration = in.Duration
	j.Purpose = in.Purpose
	j.PersonID = in.PersonID
}

// replaceStops deletes a journey's stops and recreates them from the
// input. Stops are owned by the journey, so updates replace wholesale.
func replaceStops(tx *gorm.DB, j *models.Journey, stops []journeyStopInput) error {
	if err := tx.Where("journey_id = ?", j.ID).Delete(&models.JourneyStop{}).Error; err != nil {
		return err
	}
	if len(stops) == 0 {
		return nil
	}
	rows := make([]models.JourneyStop, len(stops))
	for i, s := range stops {
		rows[i] = models.JourneyStop{
			OrderIndex:  s.OrderIndex.Int(),
			LocationID:  s.LocationID,
			Description: s.Description,
			Duration:    s.Duration,
			JourneyID:   j.ID,
		}
	}
	return tx.Create(&rows).Error
}

// ListJourneys handles GET /api/journeys
// @Summary List journeys
// @Description List journeys with pagination, search, and person filtering
// @Tags Journeys
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Substring match on title, description, purpose"
// @Param personId query string false "Filter by person"
// @Success 200 {object} utils.ListEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /journeys [get]
func (h *JourneyHandler) ListJourneys(c *fiber.Ctx) error {
	params := utils.ParsePageParams(c)

	tx := h.DB.Model(&models.Journey{})
	tx = searchFilter(c, tx, "title", "description", "purpose")
	if personID := c.Query("personId"); personID != "" {
		tx = tx.Where("person_id = ?", personID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var journeys []models.Journey
	err := tx.Preload("Person").
		Preload("Stops", func(q *gorm.DB) *gorm.DB {
			return q.Order("order_index asc")
		}).
		Preload("Stops.Location").
		Order("start_year asc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&journeys).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ListResponse(c, journeys, params.Page, params.Limit, total)
}

// GetJourneyPaths handles GET /api/journeys/map/paths
// @Summary Export journey paths as GeoJSON
// @Description LineString features for every journey with at least two located stops
// @Tags Journeys
// @Produce json
// @Success 200 {object} services.FeatureCollection
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /journeys/map/paths [get]
func (h *JourneyHandler) GetJourneyPaths(c *fiber.Ctx) error {
	collection, err := services.GetJourneyPathsGeoJSON(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(collection)
}

// GetJourney handles GET /api/journeys/:id
// @Summary Get a journey
// @Description Get one journey with its person and ordered stops
// @Tags Journeys
// @Produce json
// @Param id path string true "Journey ID"
// @Success 200 {object} models.Journey
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /journeys/{id} [get]
func (h *JourneyHandler) GetJourney(c *fiber.Ctx) error {
	var journey models.Journey
	err := h.DB.Preload("Person").
		Preload("Stops", func(q *gorm.DB) *gorm.DB {
			return q.Order("order_index asc")
		}).
		Preload("Stops.Location").
		First(&journey, "id = ?", c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "journey not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(journey)
}

// CreateJourney handles POST /api/journeys
// @Summary Create a journey
// @Description Creates a journey with its stops in one transaction
// @Tags Journeys
// @Accept json
// @Produce json
// @Param journey body journeyInput true "Journey"
// @Success 201 {object} models.Journey
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /journeys [post]
func (h *JourneyHandler) CreateJourney(c *fiber.Ctx) error {
	var in journeyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	if in.PersonID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "personId is required")
	}

	var journey models.Journey
	in.apply(&journey)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&journey).Error; err != nil {
			return err
		}
		return replaceStops(tx, &journey, in.Stops.Slice())
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(journey)
}

// UpdateJourney handles PUT /api/journeys/:id
// @Summary Update a journey
// @Description Replaces scalar fields; when stops is present the whole stop list is replaced
// @Tags Journeys
// @Accept json
// @Produce json
// @Param id path string true "Journey ID"
// @Param journey body journeyInput true "Journey"
// @Success 200 {object} models.Journey
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /journeys/{id} [put]
func (h *JourneyHandler) UpdateJourney(c *fiber.Ctx) error {
	var journey models.Journey
	if err := h.DB.First(&journey, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "journey not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var in journeyInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}
	if in.PersonID == "" {
		in.PersonID = journey.PersonID
	}
	in.apply(&journey)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&journey).Error; err != nil {
			return err
		}
		if in.Stops != nil {
			return replaceStops(tx, &journey, in.Stops.Slice())
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(journey)
}

// DeleteJourney handles DELETE /api/journeys/:id
// @Summary Delete a journey
// @Description Deletes the journey and its stops
// @Tags Journeys
// @Param id path string true "Journey ID"
// @Success 204
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /journeys/{id} [delete]
func (h *JourneyHandler) DeleteJourney(c *fiber.Ctx) error {
	journeyID := c.Params("id")
	var deleted int64
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("journey_id = ?", journeyID).Delete(&models.JourneyStop{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Journey{}, "id = ?", journeyID)
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if deleted == 0 {
		return utils.NotFoundResponse(c, "journey not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
