package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents a dated (or range-dated) biblical event, optionally
// placed at a location and linked to the persons involved.
type Event struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	Title        string        `gorm:"index;size:255;not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	Year         *int          `gorm:"index" json:"year,omitempty"`
	YearRange    *string       `gorm:"size:64" json:"yearRange,omitempty"`
	Testament    Testament     `gorm:"size:8;not null;default:OLD" json:"testament"`
	Category     EventCategory `gorm:"size:16;not null;index" json:"category"`
	Significance string        `gorm:"type:text" json:"significance"`
	ImageURL     *string       `gorm:"size:512" json:"imageUrl,omitempty"`
	LocationID   *string       `gorm:"size:36" json:"locationId,omitempty"`
	CreatedAt    time.Time     `json:"-"`
	UpdatedAt    time.Time     `json:"-"`

	Location *Location    `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	Persons  []Person     `gorm:"many2many:person_events;" json:"persons,omitempty"`
	Verses   []BibleVerse `gorm:"many2many:event_verses;" json:"verses,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Event
func (Event) TableName() string {
	return "events"
}
