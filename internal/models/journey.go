package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journey represents a named travel undertaken by one person, as an
// ordered sequence of stops. Stops belong to the journey and are
// replaced wholesale on update.
type Journey struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"index;size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartYear   *int      `gorm:"index" json:"startYear,omitempty"`
	EndYear     *int      `json:"endYear,omitempty"`
	Distance    *float64  `json:"distance,omitempty"`
	Duration    *string   `gorm:"size:255" json:"duration,omitempty"`
	Purpose     string    `gorm:"type:text" json:"purpose"`
	PersonID    string    `gorm:"size:36;not null;index" json:"personId"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Person *Person       `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"person,omitempty"`
	Stops  []JourneyStop `gorm:"foreignKey:JourneyID;constraint:OnDelete:CASCADE" json:"stops,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (j *Journey) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Journey
func (Journey) TableName() string {
	return "journeys"
}

// JourneyStop is one ordered waypoint of a journey. OrderIndex is
// unique within a journey and used strictly for sequencing; values
// need not be contiguous.
type JourneyStop struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	OrderIndex  int     `gorm:"not null;uniqueIndex:idx_journey_order" json:"orderIndex"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Duration    *string `gorm:"size:255" json:"duration,omitempty"`
	JourneyID   string  `gorm:"size:36;not null;uniqueIndex:idx_journey_order" json:"journeyId"`
	LocationID  string  `gorm:"size:36;not null" json:"locationId"`

	Journey  *Journey  `gorm:"foreignKey:JourneyID" json:"journey,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (s *JourneyStop) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for JourneyStop
func (JourneyStop) TableName() string {
	return "journey_stops"
}
