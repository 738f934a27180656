package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BibleVerse is a verse or verse range in a given translation.
type BibleVerse struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Book        string    `gorm:"size:64;not null;index" json:"book"`
	Chapter     int       `gorm:"not null" json:"chapter"`
	VerseStart  int       `gorm:"not null" json:"verseStart"`
	VerseEnd    *int      `json:"verseEnd,omitempty"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	TextHebrew  *string   `gorm:"type:text" json:"textHebrew,omitempty"`
	TextGreek   *string   `gorm:"type:text" json:"textGreek,omitempty"`
	Translation string    `gorm:"size:16;not null;default:NIV" json:"translation"`
	CreatedAt   time.Time `json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (v *BibleVerse) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for BibleVerse
func (BibleVerse) TableName() string {
	return "bible_verses"
}
