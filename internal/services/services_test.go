package services_test

import (
	"context"
	"testing"

	"github.com/biblemap/biblemap-api/internal/geo"
	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/services"
)

func TestEventsTimelineCenturyBuckets(t *testing.T) {
	db := setupTestDB(t)

	events := []models.Event{
		{Title: "Exodus begins", Year: intPtr(-1446), Category: models.EventExodus, Testament: models.TestamentOld},
		{Title: "Wilderness years", Year: intPtr(-1445), Category: models.EventExodus, Testament: models.TestamentOld},
		{Title: "Crucifixion", Year: intPtr(30), Category: models.EventCrucifixion, Testament: models.TestamentNew},
		{Title: "Creation", Category: models.EventCreation, Testament: models.TestamentOld},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}
	}

	timeline, err := services.GetEventsTimeline(db)
	if err != nil {
		t.Fatalf("GetEventsTimeline failed: %v", err)
	}

	if timeline.Total != 4 {
		t.Errorf("total = %d, want 4", timeline.Total)
	}
	// -1446 and -1445 both floor to the -1500s century.
	if got := len(timeline.Groups["-1500s"]); got != 2 {
		t.Errorf("-1500s bucket has %d events, want 2", got)
	}
	if got := len(timeline.Groups["0s"]); got != 1 {
		t.Errorf("0s bucket has %d events, want 1", got)
	}
	if got := len(timeline.Groups["Unknowns"]); got != 1 {
		t.Errorf("Unknowns bucket has %d events, want 1", got)
	}
}

func TestPersonMapDataBoundsAndOffsets(t *testing.T) {
	db := setupTestDB(t)

	bethlehem := models.Location{Name: "Bethlehem", Latitude: 31.7054, Longitude: 35.2024}
	jerusalem := models.Location{Name: "Jerusalem", Latitude: 31.7683, Longitude: 35.2137}
	for _, loc := range []*models.Location{&bethlehem, &jerusalem} {
		if err := db.Create(loc).Error; err != nil {
			t.Fatalf("Failed to create location: %v", err)
		}
	}

	person := models.Person{
		Name:         "David",
		Testament:    models.TestamentOld,
		BirthYear:    intPtr(-1040),
		DeathYear:    intPtr(-970),
		BirthPlaceID: &bethlehem.ID,
		DeathPlaceID: &jerusalem.ID,
	}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	// Two events at the same spot so the offset transform has work.
	for _, title := range []string{"Anointed king", "Brings the ark"} {
		ev := models.Event{
			Title:      title,
			Year:       intPtr(-1000),
			Category:   models.EventMonarchy,
			Testament:  models.TestamentOld,
			LocationID: &jerusalem.ID,
		}
		if err := db.Create(&ev).Error; err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}
		if err := db.Model(&person).Association("Events").Append(&ev); err != nil {
			t.Fatalf("Failed to associate event: %v", err)
		}
	}

	data, err := services.GetPersonMapData(db, person.ID)
	if err != nil {
		t.Fatalf("GetPersonMapData failed: %v", err)
	}

	// birth + 2 events + death
	if len(data.Markers) != 4 {
		t.Fatalf("markers = %d, want 4", len(data.Markers))
	}
	if data.Markers[0].Type != "birth" || data.Markers[len(data.Markers)-1].Type != "death" {
		t.Error("markers should start with birth and end with death")
	}

	// The death marker and the two event markers share Jerusalem, so
	// their display positions must all differ.
	seen := make(map[string]bool)
	for _, m := range data.Markers {
		k := geo.Key(m.DisplayLatitude, m.DisplayLongitude)
		if seen[k] {
			t.Errorf("display positions collide at %s", k)
		}
		seen[k] = true
	}

	if data.Bounds.North < data.Bounds.South || data.Bounds.East < data.Bounds.West {
		t.Errorf("degenerate bounds %+v", data.Bounds)
	}
	if data.Bounds.South > 31.7054 || data.Bounds.North < 31.7683 {
		t.Errorf("bounds %+v do not enclose the markers", data.Bounds)
	}
}

func TestPersonMapDataEmptyUsesDefaultBounds(t *testing.T) {
	db := setupTestDB(t)

	person := models.Person{Name: "Enoch", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	data, err := services.GetPersonMapData(db, person.ID)
	if err != nil {
		t.Fatalf("GetPersonMapData failed: %v", err)
	}
	if data.Bounds != geo.DefaultBounds {
		t.Errorf("bounds = %+v, want default region", data.Bounds)
	}
}

func TestJourneyPathsSkipSingleStop(t *testing.T) {
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

	full := models.Journey{Title: "Call to Canaan", PersonID: person.ID}
	short := models.Journey{Title: "Unmapped trip", PersonID: person.ID}
	if err := db.Create(&full).Error; err != nil {
		t.Fatalf("Failed to create journey: %v", err)
	}
	if err := db.Create(&short).Error; err != nil {
		t.Fatalf("Failed to create journey: %v", err)
	}

	stops := []models.JourneyStop{
		{JourneyID: full.ID, LocationID: ur.ID, OrderIndex: 1},
		{JourneyID: full.ID, LocationID: haran.ID, OrderIndex: 2},
		{JourneyID: short.ID, LocationID: ur.ID, OrderIndex: 1},
	}
	for i := range stops {
		if err := db.Create(&stops[i]).Error; err != nil {
			t.Fatalf("Failed to create stop: %v", err)
		}
	}

	collection, err := services.GetJourneyPathsGeoJSON(db)
	if err != nil {
		t.Fatalf("GetJourneyPathsGeoJSON failed: %v", err)
	}

	if len(collection.Features) != 1 {
		t.Fatalf("features = %d, want 1 (single-stop journey skipped)", len(collection.Features))
	}
	feature := collection.Features[0]
	if feature.Geometry.Type != "LineString" {
		t.Errorf("geometry type = %s, want LineString", feature.Geometry.Type)
	}
	coords, ok := feature.Geometry.Coordinates.([][]float64)
	if !ok {
		t.Fatalf("unexpected coordinates type %T", feature.Geometry.Coordinates)
	}
	// GeoJSON ordering is [longitude, latitude].
	if coords[0][0] != ur.Longitude || coords[0][1] != ur.Latitude {
		t.Errorf("first coordinate = %v, want [%f %f]", coords[0], ur.Longitude, ur.Latitude)
	}
}

func TestUnifiedSearch(t *testing.T) {
	db := setupTestDB(t)

	person := models.Person{Name: "Abraham", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}
	loc := models.Location{Name: "Ur", Description: "Birthplace of Abraham", Latitude: 30.9626, Longitude: 46.1025}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	results, err := services.UnifiedSearch(context.Background(), db, "abraham", 10)
	if err != nil {
		t.Fatalf("UnifiedSearch failed: %v", err)
	}

	if len(results.Persons) != 1 {
		t.Errorf("persons = %d, want 1", len(results.Persons))
	}
	if len(results.Locations) != 1 {
		t.Errorf("locations = %d, want 1 (description match)", len(results.Locations))
	}
	if results.TotalResults != 2 {
		t.Errorf("totalResults = %d, want 2", results.TotalResults)
	}
	if len(results.Persons) == 1 && results.Persons[0].Type != "person" {
		t.Errorf("person hit tagged %q", results.Persons[0].Type)
	}
}

func TestSuggestionsPrefixOnly(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Bethlehem", "Bethany", "Nazareth"} {
		loc := models.Location{Name: name, Latitude: 31.7, Longitude: 35.2}
		if err := db.Create(&loc).Error; err != nil {
			t.Fatalf("Failed to create location: %v", err)
		}
	}

	suggestions, err := services.GetSuggestions(db, "beth", 5)
	if err != nil {
		t.Fatalf("GetSuggestions failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Type != "location" || s.Label == "Nazareth" {
			t.Errorf("unexpected suggestion %+v", s)
		}
	}
}
