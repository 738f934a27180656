package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// LocationHandler handles location routes
type LocationHandler struct {
	DB *gorm.DB
}

type locationInput struct {
	Name         string                 `json:"name"`
	NameHebrew   *string                `json:"nameHebrew"`
	NameGreek    *string                `json:"nameGreek"`
	ModernName   *string                `json:"modernName"`
	Country      *string                `json:"country"`
	Latitude     float64                `json:"latitude"`
	Longitude    float64                `json:"longitude"`
	Description  string                 `json:"description"`
	Significance string                 `json:"significance"`
	Period       *string                `json:"period"`
	Region       *string                `json:"region"`
	LocationType *string                `json:"locationType"`
	ImageURL     *string                `json:"imageUrl"`
	VerseIDs     types.FlexList[string] `json:"verseIds"`
}

func (in *locationInput) apply(loc *models.Location) {
	loc.Name = in.Name
	loc.NameHebrew = in.NameHebrew
	loc.NameGreek = in.NameGreek
	loc.ModernName = in.ModernName
	loc.Country = in.Country
	loc.Latitude = in.Latitude
	loc.Longitude = in.Longitude
	loc.Description = in.Description
	loc.Significance = in.Significance
	loc.Period = in.Period
	loc.Region = in.Region
	loc.LocationType = in.LocationType
	loc.ImageURL = in.ImageURL
}

// ListLocations handles GET /api/locations
// @Summary List locations
// @Description List locations with pagination, search, and map viewport filtering
// @Tags Locations
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Substring match on name, modern name, description"
// @Param region query string false "Filter by region"
// @Param locationType query string false "Filter by location type"
// @Param bounds query string false "Viewport filter: south,west,north,east"
// @Success 200 {object} utils.ListEnvelope
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	params := utils.ParsePageParams(c)

	bounds, err := parseBounds(c)
	if err != nil {
		return err
	}

	tx := h.DB.Model(&models.Location{})
	tx = searchFilter(c, tx, "name", "modern_name", "description")
	tx = bounds.apply(tx)
	if region := c.Query("region"); region != "" {
		tx = tx.Where("region = ?", region)
	}
	if locationType := c.Query("locationType"); locationType != "" {
		tx = tx.Where("location_type = ?", locationType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var locations []models.Location
	err = tx.Order("name asc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&locations).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ListResponse(c, locations, params.Page, params.Limit, total)
}

// GetLocation handles GET /api/locations/:id
// @Summary Get a location
// @Description Get one location with its events and verses
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	var location models.Location
	err := h.DB.Preload("Events", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("year asc")
	}).
		Preload("Events.Persons").
		Preload("BirthPersons").
		Preload("DeathPersons").
		Preload("JourneyStops.Journey.Person").
		Preload("Verses").
		First(&location, "id = ?", c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "location not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(location)
}

// GetLocationsGeoJSON handles GET /api/locations/map/geojson
// @Summary Export locations as GeoJSON
// @Description All locations as a Point FeatureCollection with event counts
// @Tags Locations
// @Produce json
// @Success 200 {object} services.FeatureCollection
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /locations/map/geojson [get]
func (h *LocationHandler) GetLocationsGeoJSON(c *fiber.Ctx) error {
	collection, err := services.GetLocationsGeoJSON(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(collection)
}

// CreateLocation handles POST /api/locations
// @Summary Create a location
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body locationInput true "Location"
// @Success 201 {object} models.Location
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var in locationInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	var location models.Location
	in.apply(&location)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&location).Error; err != nil {
			return err
		}
		return replaceVerses(tx, &location, in.VerseIDs.Slice())
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// UpdateLocation handles PUT /api/locations/:id
// @Summary Update a location
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body locationInput true "Location"
// @Success 200 {object} models.Location
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	var location models.Location
	if err := h.DB.First(&location, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "location not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var in locationInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	in.apply(&location)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&location).Error; err != nil {
			return err
		}
		if in.VerseIDs != nil {
			return replaceVerses(tx, &location, in.VerseIDs.Slice())
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(location)
}

// DeleteLocation handles DELETE /api/locations/:id
// @Summary Delete a location
// @Description Deletes the location; events and persons pointing at it keep existing with the reference cleared
// @Tags Locations
// @Param id path string true "Location ID"
// @Success 204
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	result := h.DB.Delete(&models.Location{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundResponse(c, "location not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// replaceVerses swaps the verse association of a model for the given
// verse IDs. An empty list clears the association.
func replaceVerses(tx *gorm.DB, model interface{}, verseIDs []string) error {
	verses := []models.BibleVerse{}
	if len(verseIDs) > 0 {
		if err := tx.Find(&verses, "id IN ?", verseIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(model).Association("Verses").Replace(verses)
}
