package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/handlers"
	"github.com/biblemap/biblemap-api/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Location{},
		&models.Person{},
		&models.PersonRelationship{},
		&models.Event{},
		&models.Journey{},
		&models.JourneyStop{},
		&models.Theme{},
		&models.BibleVerse{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestLocationRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.LocationHandler{DB: db}
	app.Post("/api/locations", handler.CreateLocation)
	app.Get("/api/locations/:id", handler.GetLocation)
	app.Put("/api/locations/:id", handler.UpdateLocation)
	app.Delete("/api/locations/:id", handler.DeleteLocation)

	body := []byte(`{
		"name": "Capernaum",
		"latitude": 32.8808,
		"longitude": 35.5753,
		"modernName": "Tel Hum",
		"description": "Fishing village on the Sea of Galilee"
	}`)
	req := httptest.NewRequest("POST", "/api/locations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created models.Location
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created location has no id")
	}

	// Read it back
	req = httptest.NewRequest("GET", "/api/locations/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var fetched models.Location
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if fetched.Name != "Capernaum" || fetched.Latitude != 32.8808 {
		t.Errorf("fetched location does not match created: %+v", fetched)
	}

	// Update
	update := []byte(`{"name": "Capernaum", "latitude": 32.8808, "longitude": 35.5753, "description": "Ministry headquarters"}`)
	req = httptest.NewRequest("PUT", "/api/locations/"+created.ID, bytes.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	// Delete
	req = httptest.NewRequest("DELETE", "/api/locations/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", resp.StatusCode)
	}

	// Gone
	req = httptest.NewRequest("GET", "/api/locations/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("Expected status 404 after delete, got %d", resp.StatusCode)
	}
}

func TestCreateLocationValidation(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.LocationHandler{DB: db}
	app.Post("/api/locations", handler.CreateLocation)

	req := httptest.NewRequest("POST", "/api/locations", bytes.NewReader([]byte(`{"latitude": 1}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400 for missing name, got %d", resp.StatusCode)
	}

	var envelope struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if envelope.Status != fiber.StatusBadRequest || envelope.Error == "" {
		t.Errorf("error envelope malformed: %+v", envelope)
	}
}

func TestListLocationsPagination(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 25; i++ {
		loc := models.Location{
			Name:      fmt.Sprintf("Place %02d", i),
			Latitude:  31.0 + float64(i)*0.01,
			Longitude: 35.0,
		}
		if err := db.Create(&loc).Error; err != nil {
			t.Fatalf("Failed to create location: %v", err)
		}
	}

	app := fiber.New()
	handler := &handlers.LocationHandler{DB: db}
	app.Get("/api/locations", handler.ListLocations)

	req := httptest.NewRequest("GET", "/api/locations?page=2&limit=10", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data       []models.Location `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(envelope.Data) != 10 {
		t.Errorf("page 2 has %d items, want 10", len(envelope.Data))
	}
	if envelope.Pagination.Total != 25 || envelope.Pagination.Pages != 3 {
		t.Errorf("pagination = %+v, want total 25 pages 3", envelope.Pagination)
	}
	// name ordering means page 2 starts at Place 10
	if envelope.Data[0].Name != "Place 10" {
		t.Errorf("page 2 starts with %q, want Place 10", envelope.Data[0].Name)
	}
}

func TestListLocationsMalformedPaginationDegrades(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.LocationHandler{DB: db}
	app.Get("/api/locations", handler.ListLocations)

	req := httptest.NewRequest("GET", "/api/locations?page=banana&limit=-5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200 with defaults, got %d", resp.StatusCode)
	}
}

func TestLocationsGeoJSON(t *testing.T) {
	db := setupTestDB(t)

	loc := models.Location{Name: "Ur", Latitude: 30.9626, Longitude: 46.1025, Significance: "Birthplace of Abraham"}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}
	ev := models.Event{Title: "Call of Abraham", Category: models.EventPatriarchs, Testament: models.TestamentOld, LocationID: &loc.ID}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	app := fiber.New()
	handler := &handlers.LocationHandler{DB: db}
	app.Get("/api/locations/map/geojson", handler.GetLocationsGeoJSON)

	req := httptest.NewRequest("GET", "/api/locations/map/geojson", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var collection struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if collection.Type != "FeatureCollection" || len(collection.Features) != 1 {
		t.Fatalf("unexpected collection: type=%s features=%d", collection.Type, len(collection.Features))
	}
	coords := collection.Features[0].Geometry.Coordinates
	// GeoJSON ordering is [longitude, latitude]
	if coords[0] != 46.1025 || coords[1] != 30.9626 {
		t.Errorf("coordinates = %v, want [46.1025 30.9626]", coords)
	}
	if collection.Features[0].Properties["eventsCount"].(float64) != 1 {
		t.Errorf("eventsCount = %v, want 1", collection.Features[0].Properties["eventsCount"])
	}
}

func TestSearchRequiresTwoCharacters(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.SearchHandler{DB: db}
	app.Get("/api/search", handler.Search)

	for _, q := range []string{"", "a", "%20a%20"} {
		req := httptest.NewRequest("GET", "/api/search?q="+q, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("q=%q: expected status 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestSearchFindsAbraham(t *testing.T) {
	db := setupTestDB(t)

	person := models.Person{Name: "Abraham", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	app := fiber.New()
	handler := &handlers.SearchHandler{DB: db}
	app.Get("/api/search", handler.Search)

	req := httptest.NewRequest("GET", "/api/search?q=abra", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var results struct {
		Persons      []map[string]interface{} `json:"persons"`
		TotalResults int                      `json:"totalResults"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if results.TotalResults != 1 || len(results.Persons) != 1 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results.Persons[0]["type"] != "person" || results.Persons[0]["name"] != "Abraham" {
		t.Errorf("unexpected hit: %+v", results.Persons[0])
	}
}

func TestEventsTimelineEndpoint(t *testing.T) {
	db := setupTestDB(t)

	dated := models.Event{Title: "Exodus", Year: intPtr(-1446), Category: models.EventExodus, Testament: models.TestamentOld}
	undated := models.Event{Title: "Creation", Category: models.EventCreation, Testament: models.TestamentOld}
	for _, ev := range []*models.Event{&dated, &undated} {
		if err := db.Create(ev).Error; err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}
	}

	app := fiber.New()
	handler := &handlers.EventHandler{DB: db}
	app.Get("/api/events/timeline", handler.GetEventsTimeline)

	req := httptest.NewRequest("GET", "/api/events/timeline", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var timeline struct {
		Groups map[string][]models.Event `json:"groups"`
		Total  int                       `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if timeline.Total != 2 {
		t.Errorf("total = %d, want 2", timeline.Total)
	}
	if len(timeline.Groups["-1500s"]) != 1 || len(timeline.Groups["Unknowns"]) != 1 {
		t.Errorf("unexpected buckets: %v", mapKeys(timeline.Groups))
	}
}

func TestPersonDetailedTimelineEndpoint(t *testing.T) {
	db := setupTestDB(t)

	person := models.Person{Name: "Moses", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	app := fiber.New()
	handler := &handlers.PersonHandler{DB: db}
	app.Get("/api/persons/:id/timeline/detailed", handler.GetPersonDetailedTimeline)

	req := httptest.NewRequest("GET", "/api/persons/"+person.ID+"/timeline/detailed", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var timeline struct {
		Person struct {
			Name string `json:"name"`
		} `json:"person"`
		Timeline []map[string]interface{} `json:"timeline"`
		Stats    struct {
			TotalEvents    int `json:"totalEvents"`
			BiblicalEvents int `json:"biblicalEvents"`
		} `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if timeline.Person.Name != "Moses" {
		t.Errorf("person = %q, want Moses", timeline.Person.Name)
	}
	if timeline.Stats.TotalEvents != 18 || timeline.Stats.BiblicalEvents != 18 {
		t.Errorf("stats = %+v, want 18 curated footsteps", timeline.Stats)
	}

	// Unknown person is a 404
	req = httptest.NewRequest("GET", "/api/persons/no-such-id/timeline/detailed", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestThemeCategoriesHistogram(t *testing.T) {
	db := setupTestDB(t)

	themes := []models.Theme{
		{Title: "Faith of Abraham", Category: models.ThemeFaith},
		{Title: "Faith under trial", Category: models.ThemeFaith},
		{Title: "Covenant at Sinai", Category: models.ThemeCovenant},
	}
	for i := range themes {
		if err := db.Create(&themes[i]).Error; err != nil {
			t.Fatalf("Failed to create theme: %v", err)
		}
	}

	app := fiber.New()
	handler := &handlers.ThemeHandler{DB: db}
	app.Get("/api/themes/categories", handler.GetThemeCategories)

	req := httptest.NewRequest("GET", "/api/themes/categories", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var histogram map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&histogram); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if histogram["FAITH"] != 2 || histogram["COVENANT"] != 1 {
		t.Errorf("histogram = %v", histogram)
	}
}

func TestJourneyCreateWithStops(t *testing.T) {
	db := setupTestDB(t)

	ur := models.Location{Name: "Ur", Latitude: 30.9626, Longitude: 46.1025}
	haran := models.Location{Name: "Haran", Latitude: 36.8650, Longitude: 39.0317}
	for _, loc := range []*models.Location{&ur, &haran} {
		if err := db.Create(loc).Error; err != nil {
			t.Fatalf("Failed to create location: %v", err)
		}
	}
	person := models.Person{Name: "Abraham", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	app := fiber.New()
	handler := &handlers.JourneyHandler{DB: db}
	app.Post("/api/journeys", handler.CreateJourney)
	app.Get("/api/journeys/:id", handler.GetJourney)

	body := fmt.Sprintf(`{
		"title": "Call to Canaan",
		"personId": %q,
		"startYear": "-2091",
		"stops": [
			{"orderIndex": 1, "locationId": %q},
			{"orderIndex": 2, "locationId": %q}
		]
	}`, person.ID, ur.ID, haran.ID)
	req := httptest.NewRequest("POST", "/api/journeys", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created models.Journey
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.StartYear == nil || *created.StartYear != -2091 {
		t.Errorf("startYear = %v, want -2091 (string year accepted)", created.StartYear)
	}

	req = httptest.NewRequest("GET", "/api/journeys/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var fetched models.Journey
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(fetched.Stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(fetched.Stops))
	}
	if fetched.Stops[0].OrderIndex != 1 || fetched.Stops[1].OrderIndex != 2 {
		t.Errorf("stops out of order: %+v", fetched.Stops)
	}
}

func intPtr(v int) *int { return &v }

func mapKeys(m map[string][]models.Event) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
