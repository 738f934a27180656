package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/internal/types"
	"github.com/biblemap/biblemap-api/internal/utils"
)

// PersonHandler handles person routes
type PersonHandler struct {
	DB *gorm.DB
}

type personInput struct {
	Name         string                 `json:"name"`
	NameHebrew   *string                `json:"nameHebrew"`
	NameGreek    *string                `json:"nameGreek"`
	Description  string                 `json:"description"`
	BirthYear    *types.FlexInt         `json:"birthYear"`
	DeathYear    *types.FlexInt         `json:"deathYear"`
	Testament    models.Testament       `json:"testament"`
	Gender       *models.Gender         `json:"gender"`
	Significance string                 `json:"significance"`
	ImageURL     *string                `json:"imageUrl"`
	BirthPlaceID *string                `json:"birthPlaceId"`
	DeathPlaceID *string                `json:"deathPlaceId"`
	EventIDs     types.FlexList[string] `json:"eventIds"`
	VerseIDs     types.FlexList[string] `json:"verseIds"`
}

func (in *personInput) apply(p *models.Person) {
	p.Name = in.Name
	p.NameHebrew = in.NameHebrew
	p.NameGreek = in.NameGreek
	p.Description = in.Description
	p.BirthYear = in.BirthYear.IntPtr()
	p.DeathYear = in.DeathYear.IntPtr()
	if in.Testament != "" {
		p.Testament = in.Testament
	}
	p.Gender = in.Gender
	p.Significance = in.Significance
	p.ImageURL = in.ImageURL
	p.BirthPlaceID = in.BirthPlaceID
	p.DeathPlaceID = in.DeathPlaceID
}

func replaceEvents(tx *gorm.DB, p *models.Person, eventIDs []string) error {
	events := []models.Event{}
	if len(eventIDs) > 0 {
		if err := tx.Find(&events, "id IN ?", eventIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(p).Association("Events").Replace(events)
}

// ListPersons handles GET /api/persons
// @Summary List persons
// @Description List persons with pagination, search, and testament filtering
// @Tags Persons
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Substring match on names and description"
// @Param testament query string false "OLD, NEW, or BOTH"
// @Success 200 {object} utils.ListEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /persons [get]
func (h *PersonHandler) ListPersons(c *fiber.Ctx) error {
	params := utils.ParsePageParams(c)

	tx := h.DB.Model(&models.Person{})
	tx = searchFilter(c, tx, "name", "name_hebrew", "name_greek", "description")
	if testament := c.Query("testament"); testament != "" {
		tx = tx.Where("testament = ?", testament)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var persons []models.Person
	err := tx.Preload("BirthPlace").
		Preload("DeathPlace").
		Order("name asc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&persons).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ListResponse(c, persons, params.Page, params.Limit, total)
}

// GetPerson handles GET /api/persons/:id
// @Summary Get a person
// @Description Get one person with places, events, journeys, relationships, and verses
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} models.Person
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id} [get]
func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	var person models.Person
	err := h.DB.Preload("BirthPlace").
		Preload("DeathPlace").
		Preload("Events", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("year asc")
		}).
		Preload("Events.Location").
		Preload("Journeys", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("start_year asc")
		}).
		Preload("Journeys.Stops", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc")
		}).
		Preload("Journeys.Stops.Location").
		Preload("Relationships.PersonTo").
		Preload("RelatedTo.PersonFrom").
		Preload("Verses").
		First(&person, "id = ?", c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "person not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(person)
}

// GetPersonMapData handles GET /api/persons/:id/map-data
// @Summary Get map data for a person
// @Description Markers, journeys with paths, and enclosing bounds for one person
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} services.PersonMapData
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id}/map-data [get]
func (h *PersonHandler) GetPersonMapData(c *fiber.Ctx) error {
	data, err := services.GetPersonMapData(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "person")
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

// GetPersonTimeline handles GET /api/persons/:id/timeline
// @Summary Get the basic life timeline for a person
// @Description Birth, dated events, journey departures, and death in year order
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} services.DetailedTimeline
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id}/timeline [get]
func (h *PersonHandler) GetPersonTimeline(c *fiber.Ctx) error {
	timeline, err := services.GetPersonTimeline(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "person")
	}
	return c.Status(fiber.StatusOK).JSON(timeline)
}

// GetPersonDetailedTimeline handles GET /api/persons/:id/timeline/detailed
// @Summary Get the detailed timeline for a person
// @Description Curated footsteps merged with stored events, chronologically
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} services.DetailedTimeline
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id}/timeline/detailed [get]
func (h *PersonHandler) GetPersonDetailedTimeline(c *fiber.Ctx) error {
	timeline, err := services.GetDetailedTimeline(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "person")
	}
	return c.Status(fiber.StatusOK).JSON(timeline)
}

// GetPersonRelationships handles GET /api/persons/:id/relationships/geo
// @Summary Get a person's relationships with places
// @Description Both directions of the relationship graph, grouped by type, with mappable places
// @Tags Persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} services.RelationshipsGeo
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id}/relationships/geo [get]
func (h *PersonHandler) GetPersonRelationships(c *fiber.Ctx) error {
	grouped, err := services.GetRelationshipsGeo(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "person")
	}
	return c.Status(fiber.StatusOK).JSON(grouped)
}

// CreatePerson handles POST /api/persons
// @Summary Create a person
// @Tags Persons
// @Accept json
// @Produce json
// @Param person body personInput true "Person"
// @Success 201 {object} models.Person
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 500 {object} utils.ErrorEnvelope
// @Router /persons [post]
func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var in personInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	var person models.Person
	in.apply(&person)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&person).Error; err != nil {
			return err
		}
		if err := replaceEvents(tx, &person, in.EventIDs.Slice()); err != nil {
			return err
		}
		return replaceVerses(tx, &person, in.VerseIDs.Slice())
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(person)
}

// UpdatePerson handles PUT /api/persons/:id
// @Summary Update a person
// @Description Replaces scalar fields; event and verse sets are replaced only when present in the body
// @Tags Persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param person body personInput true "Person"
// @Success 200 {object} models.Person
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	var person models.Person
	if err := h.DB.First(&person, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "person not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var in personInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if in.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	in.apply(&person)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&person).Error; err != nil {
			return err
		}
		if in.EventIDs != nil {
			if err := replaceEvents(tx, &person, in.EventIDs.Slice()); err != nil {
				return err
			}
		}
		if in.VerseIDs != nil {
			return replaceVerses(tx, &person, in.VerseIDs.Slice())
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(person)
}

// DeletePerson handles DELETE /api/persons/:id
// @Summary Delete a person
// @Description Deletes the person along with their journeys and relationship edges
// @Tags Persons
// @Param id path string true "Person ID"
// @Success 204
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	result := h.DB.Select("Journeys", "Relationships", "RelatedTo").
		Delete(&models.Person{ID: c.Params("id")})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundResponse(c, "person not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
