package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/data"
	"github.com/biblemap/biblemap-api/internal/config"
	"github.com/biblemap/biblemap-api/internal/database"
	"github.com/biblemap/biblemap-api/internal/models"
)

type seedLocation struct {
	Name         string  `json:"name"`
	NameHebrew   *string `json:"nameHebrew"`
	NameGreek    *string `json:"nameGreek"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ModernName   *string `json:"modernName"`
	Description  string  `json:"description"`
	Significance string  `json:"significance"`
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var seeds []seedLocation
	if err := json.Unmarshal(data.SeedLocations, &seeds); err != nil {
		log.Fatalf("Failed to parse embedded seed data: %v", err)
	}

	var failed int
	for _, s := range seeds {
		if err := upsertLocation(db, s); err != nil {
			log.Printf("Seed failed for %s: %v", s.Name, err)
			failed++
		}
	}

	log.Printf("Seed completed: %d processed, %d failed", len(seeds)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// upsertLocation creates the location, or fills gaps on an existing
// row matched by name, modern name, or exact coordinates. Existing
// coordinates are kept since they may be corrections.
func upsertLocation(db *gorm.DB, s seedLocation) error {
	var existing models.Location
	query := db.Where("name = ?", s.Name)
	if s.ModernName != nil {
		query = query.Or("modern_name = ?", *s.ModernName)
	}
	query = query.Or("latitude = ? AND longitude = ?", s.Latitude, s.Longitude)

	err := query.First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		loc := models.Location{
			Name:         s.Name,
			NameHebrew:   s.NameHebrew,
			NameGreek:    s.NameGreek,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			ModernName:   s.ModernName,
			Description:  s.Description,
			Significance: s.Significance,
		}
		if err := db.Create(&loc).Error; err != nil {
			return err
		}
		log.Printf("Created: %s", s.Name)
		return nil
	}
	if err != nil {
		return err
	}

	if existing.NameHebrew == nil {
		existing.NameHebrew = s.NameHebrew
	}
	if existing.NameGreek == nil {
		existing.NameGreek = s.NameGreek
	}
	if existing.ModernName == nil {
		existing.ModernName = s.ModernName
	}
	if existing.Description == "" {
		existing.Description = s.Description
	}
	if existing.Significance == "" {
		existing.Significance = s.Significance
	}
	if err := db.Save(&existing).Error; err != nil {
		return err
	}
	log.Printf("Updated: %s", s.Name)
	return nil
}
