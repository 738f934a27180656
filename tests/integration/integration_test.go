package integration_test

import (
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/refdata"
	"github.com/biblemap/biblemap-api/internal/services"
	"github.com/biblemap/biblemap-api/tests/helpers"
)

func intPtr(v int) *int { return &v }

// The full stack against a real MariaDB: migrations, associations,
// and the composed timeline, where dialect drift actually shows up.
func TestMariaDBEndToEnd(t *testing.T) {
	helpers.SkipUnlessIntegration(t)

	mariadb := helpers.StartMariaDB(t)

	db, err := gorm.Open(mysql.Open(mariadb.DSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
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
		t.Fatalf("Failed to migrate: %v", err)
	}

	jerusalem := models.Location{Name: "Jerusalem", Latitude: 31.7683, Longitude: 35.2137}
	if err := db.Create(&jerusalem).Error; err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}

	person := models.Person{Name: "David", Testament: models.TestamentOld}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}

	event := models.Event{
		Title:      "Jerusalem becomes the capital",
		Year:       intPtr(-1003),
		Category:   models.EventMonarchy,
		Testament:  models.TestamentOld,
		LocationID: &jerusalem.ID,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	if err := db.Model(&person).Association("Events").Append(&event); err != nil {
		t.Fatalf("Failed to associate event: %v", err)
	}

	timeline, err := services.GetDetailedTimeline(db, person.ID)
	if err != nil {
		t.Fatalf("GetDetailedTimeline failed: %v", err)
	}

	wantTotal := len(refdata.FootstepsFor("David")) + 1
	if timeline.Stats.TotalEvents != wantTotal {
		t.Errorf("totalEvents = %d, want %d", timeline.Stats.TotalEvents, wantTotal)
	}
	if timeline.Stats.DatabaseEvents != 1 {
		t.Errorf("databaseEvents = %d, want 1", timeline.Stats.DatabaseEvents)
	}
	for i := 1; i < len(timeline.Timeline); i++ {
		if timeline.Timeline[i].Year < timeline.Timeline[i-1].Year {
			t.Fatalf("timeline out of order at %d", i)
		}
	}

	// Relationship cascade: deleting the person removes the edge.
	other := models.Person{Name: "Jonathan", Testament: models.TestamentOld}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}
	rel := models.PersonRelationship{
		RelationshipType: models.RelationFriend,
		PersonFromID:     person.ID,
		PersonToID:       other.ID,
	}
	if err := db.Create(&rel).Error; err != nil {
		t.Fatalf("Failed to create relationship: %v", err)
	}

	if err := db.Select("Relationships", "RelatedTo").Delete(&models.Person{ID: other.ID}).Error; err != nil {
		t.Fatalf("Failed to delete person: %v", err)
	}
	var count int64
	db.Model(&models.PersonRelationship{}).Where("person_to_id = ?", other.ID).Count(&count)
	if count != 0 {
		t.Errorf("relationship rows remain after person delete: %d", count)
	}
}
