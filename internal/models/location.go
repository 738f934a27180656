package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location represents a place of the ancient world with coordinates.
// Locations are referenced (never owned) by events, persons, journey
// stops, and verses. All year conventions: negative = BCE.
type Location struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Name         string  `gorm:"uniqueIndex;size:255;not null" json:"name"`
	NameHebrew   *string `gorm:"size:255" json:"nameHebrew,omitempty"`
	NameGreek    *string `gorm:"size:255" json:"nameGreek,omitempty"`
	ModernName   *string `gorm:"size:255" json:"modernName,omitempty"`
	Country      *string `gorm:"size:255" json:"country,omitempty"`
	Latitude     float64 `gorm:"not null" json:"latitude"`
	Longitude    float64 `gorm:"not null" json:"longitude"`
	Description  string  `gorm:"type:text" json:"description"`
	Significance string  `gorm:"type:text" json:"significance"`
	Period       *string `gorm:"size:255" json:"period,omitempty"`
	Region       *string `gorm:"size:255" json:"region,omitempty"`
	LocationType *string `gorm:"size:255" json:"locationType,omitempty"`
	ImageURL     *string `gorm:"size:512" json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	Events       []Event       `gorm:"foreignKey:LocationID" json:"events,omitempty"`
	BirthPersons []Person      `gorm:"foreignKey:BirthPlaceID" json:"birthPersons,omitempty"`
	DeathPersons []Person      `gorm:"foreignKey:DeathPlaceID" json:"deathPersons,omitempty"`
	JourneyStops []JourneyStop `gorm:"foreignKey:LocationID" json:"journeyStops,omitempty"`
	Verses       []BibleVerse  `gorm:"many2many:location_verses;" json:"verses,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (l *Location) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Location
func (Location) TableName() string {
	return "locations"
}
