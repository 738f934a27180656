package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Theme represents a theological theme with supporting verses and a
// self-referential related-themes association. The relation is
// conceptually symmetric but stored as directed edges; RelatedThemes
// and ThemesRelated expose the two directions.
type Theme struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"index;size:255;not null" json:"title"`
	TitleHebrew *string        `gorm:"size:255" json:"titleHebrew,omitempty"`
	TitleGreek  *string        `gorm:"size:255" json:"titleGreek,omitempty"`
	Category    ThemeCategory  `gorm:"size:16;not null;index" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Summary     string         `gorm:"type:text" json:"summary"`
	Applications datatypes.JSON `gorm:"type:json" json:"applications,omitempty"`
	ImageURL    *string        `gorm:"size:512" json:"imageUrl,omitempty"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`

	Verses        []BibleVerse `gorm:"many2many:theme_verses;" json:"verses,omitempty"`
	RelatedThemes []*Theme     `gorm:"many2many:related_themes;joinForeignKey:ThemeID;joinReferences:RelatedThemeID" json:"relatedThemes,omitempty"`
	ThemesRelated []*Theme     `gorm:"many2many:related_themes;joinForeignKey:RelatedThemeID;joinReferences:ThemeID" json:"themesRelated,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is supplied.
func (t *Theme) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Theme
func (Theme) TableName() string {
	return "themes"
}
