package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/refdata"
	"github.com/biblemap/biblemap-api/internal/services"
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

func intPtr(v int) *int { return &v }

func TestDetailedTimelineFootstepsOnly(t *testing.T) {
	db := setupTestDB(t)

	person := models.Person{Name: "Moses", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	result, err := services.GetDetailedTimeline(db, person.ID)
	if err != nil {
		t.Fatalf("GetDetailedTimeline failed: %v", err)
	}

	steps := refdata.FootstepsFor("Moses")
	if result.Stats.TotalEvents != len(steps) {
		t.Errorf("totalEvents = %d, want %d", result.Stats.TotalEvents, len(steps))
	}
	if result.Stats.BiblicalEvents != len(steps) {
		t.Errorf("biblicalEvents = %d, want %d", result.Stats.BiblicalEvents, len(steps))
	}
	if result.Stats.DatabaseEvents != 0 {
		t.Errorf("databaseEvents = %d, want 0", result.Stats.DatabaseEvents)
	}

	for i := 1; i < len(result.Timeline); i++ {
		if result.Timeline[i].Year < result.Timeline[i-1].Year {
			t.Fatalf("timeline not sorted at %d: %d after %d",
				i, result.Timeline[i].Year, result.Timeline[i-1].Year)
		}
	}

	if result.Stats.YearSpan == nil {
		t.Fatal("yearSpan missing")
	}
	if result.Stats.YearSpan.Start != result.Timeline[0].Year {
		t.Errorf("yearSpan.start = %d, want %d", result.Stats.YearSpan.Start, result.Timeline[0].Year)
	}
	last := result.Timeline[len(result.Timeline)-1].Year
	if result.Stats.YearSpan.End != last {
		t.Errorf("yearSpan.end = %d, want %d", result.Stats.YearSpan.End, last)
	}
}

func TestDetailedTimelineMergesStoredEvents(t *testing.T) {
	db := setupTestDB(t)

	loc := models.Location{Name: "Capernaum", Latitude: 32.8808, Longitude: 35.5753}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	person := models.Person{Name: "Jesus", Testament: models.TestamentNew}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	dated := models.Event{
		Title:      "Healing at Capernaum",
		Year:       intPtr(28),
		Category:   models.EventMiracle,
		Testament:  models.TestamentNew,
		LocationID: &loc.ID,
	}
	undated := models.Event{
		Title:     "Undated teaching",
		Category:  models.EventTeaching,
		Testament: models.TestamentNew,
	}
	if err := db.Create(&dated).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	if err := db.Create(&undated).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	if err := db.Model(&person).Association("Events").Append(&dated, &undated); err != nil {
		t.Fatalf("Failed to associate events: %v", err)
	}

	result, err := services.GetDetailedTimeline(db, person.ID)
	if err != nil {
		t.Fatalf("GetDetailedTimeline failed: %v", err)
	}

	// The undated event has no year, so only the dated one merges.
	if result.Stats.DatabaseEvents != 1 {
		t.Errorf("databaseEvents = %d, want 1", result.Stats.DatabaseEvents)
	}
	want := len(refdata.FootstepsFor("Jesus")) + 1
	if result.Stats.TotalEvents != want {
		t.Errorf("totalEvents = %d, want %d", result.Stats.TotalEvents, want)
	}

	found := false
	for _, entry := range result.Timeline {
		if entry.Type == "database_event" {
			found = true
			if entry.Title != "Healing at Capernaum" {
				t.Errorf("unexpected database event %q", entry.Title)
			}
			if entry.Location.ID != loc.ID {
				t.Errorf("database event location not resolved from storage")
			}
		}
	}
	if !found {
		t.Error("dated stored event missing from timeline")
	}
}

func TestDetailedTimelineRegistryCoordinatesWin(t *testing.T) {
	db := setupTestDB(t)

	// Stored row for a place that also exists in the curated table,
	// with deliberately different coordinates.
	loc := models.Location{Name: "Bethlehem", Latitude: 11.1111, Longitude: 22.2222}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	person := models.Person{Name: "Jesus", Testament: models.TestamentNew}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	result, err := services.GetDetailedTimeline(db, person.ID)
	if err != nil {
		t.Fatalf("GetDetailedTimeline failed: %v", err)
	}

	for _, entry := range result.Timeline {
		if entry.Location.Name == "Bethlehem" {
			if entry.Location.Latitude != 11.1111 || entry.Location.Longitude != 22.2222 {
				t.Errorf("stored coordinates should override curated ones, got %f,%f",
					entry.Location.Latitude, entry.Location.Longitude)
			}
			return
		}
	}
	t.Fatal("no Bethlehem entry in the Jesus timeline")
}

func TestDetailedTimelineUnknownLocationFallsBack(t *testing.T) {
	db := setupTestDB(t)

	loc := models.Location{Name: "Capernaum", Latitude: 32.8808, Longitude: 35.5753}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	person := models.Person{Name: "Jesus", Testament: models.TestamentNew}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	result, err := services.GetDetailedTimeline(db, person.ID)
	if err != nil {
		t.Fatalf("GetDetailedTimeline failed: %v", err)
	}

	// Every biblical footstep location is curated, so nothing should
	// sit on the fallback pin unless its name genuinely resolves there.
	for _, entry := range result.Timeline {
		if entry.Location.Latitude == 0 && entry.Location.Longitude == 0 {
			t.Errorf("entry %q has zero coordinates", entry.Title)
		}
	}
}

func TestDetailedTimelineNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetDetailedTimeline(db, "no-such-id")
	if err != services.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
