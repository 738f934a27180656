package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person represents a biblical figure. Birth and death places are weak
// references: deleting a location nulls the foreign key, it does not
// delete the person.
type Person struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"index;size:255;not null" json:"name"`
	NameHebrew   *string   `gorm:"size:255" json:"nameHebrew,omitempty"`
	NameGreek    *string   `gorm:"size:255" json:"nameGreek,omitempty"`
	Description  string    `gorm:"type:text" json:"description"`
	BirthYear    *int      `json:"birthYear,omitempty"`
	DeathYear    *int      `json:"deathYear,omitempty"`
	Testament    Testament `gorm:"size:8;not null;default:OLD" json:"testament"`
	Gender       *Gender   `gorm:"size:8" json:"gender,omitempty"`
	Significance string    `gorm:"type:text" json:"significance"`
	ImageURL     *string   `gorm:"size:512" json:"imageUrl,omitempty"`
	BirthPlaceID *string   `gorm:"size:36" json:"birthPlaceId,omitempty"`
	DeathPlaceID *string   `gorm:"size:36" json:"deathPlaceId,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	BirthPlace    *Location            `gorm:"foreignKey:BirthPlaceID;constraint:OnDelete:SET NULL" json:"birthPlace,omitempty"`
	DeathPlace    *Location            `gorm:"foreignKey:DeathPlaceID;constraint:OnDelete:SET NULL" json:"deathPlace,omitempty"`
	Events        []Event              `gorm:"many2many:person_events;" json:"events,omitempty"`
	Journeys      []Journey            `gorm:"foreignKey:PersonID" json:"journeys,omitempty"`
	Relationships []PersonRelationship `gorm:"foreignKey:PersonFromID" json:"relationships,omitempty"`
	RelatedTo     []PersonRelationship `gorm:"foreignKey:PersonToID" json:"relatedTo,omitempty"`
	Verses        []BibleVerse         `gorm:"many2many:person_verses;" json:"verses,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (p *Person) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Person
func (Person) TableName() string {
	return "persons"
}

// PersonRelationship is a directed, typed edge between two persons.
// Symmetric relations (SPOUSE, SIBLING, FRIEND) are still stored as a
// single directed row; both directions are surfaced on read.
type PersonRelationship struct {
	ID               string       `gorm:"primaryKey;size:36" json:"id"`
	RelationshipType RelationType `gorm:"size:16;not null" json:"relationshipType"`
	Description      *string      `gorm:"type:text" json:"description,omitempty"`
	PersonFromID     string       `gorm:"size:36;not null;index" json:"personFromId"`
	PersonToID       string       `gorm:"size:36;not null;index" json:"personToId"`
	CreatedAt        time.Time    `json:"-"`

	PersonFrom *Person `gorm:"foreignKey:PersonFromID;constraint:OnDelete:CASCADE" json:"personFrom,omitempty"`
	PersonTo   *Person `gorm:"foreignKey:PersonToID;constraint:OnDelete:CASCADE" json:"personTo,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (r *PersonRelationship) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for PersonRelationship
func (PersonRelationship) TableName() string {
	return "person_relationships"
}
