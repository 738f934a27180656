package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
	"github.com/biblemap/biblemap-api/internal/refdata"
)

// TimelineLocation is a resolved place on a person's timeline. ID is
// empty when the place only exists in the curated coordinate table.
type TimelineLocation struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ModernName string  `json:"modernName,omitempty"`
}

// TimelineEntry is one dated stop on a detailed timeline. Type is
// either "biblical_event" (curated footsteps) or "database_event".
type TimelineEntry struct {
	Type        string           `json:"type"`
	Year        int              `json:"year"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Verse       string           `json:"verse,omitempty"`
	Location    TimelineLocation `json:"location"`
}

// YearSpan is the inclusive range covered by a timeline.
type YearSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TimelineStats summarizes a composed timeline.
type TimelineStats struct {
	TotalEvents    int       `json:"totalEvents"`
	BiblicalEvents int       `json:"biblicalEvents"`
	DatabaseEvents int       `json:"databaseEvents"`
	YearSpan       *YearSpan `json:"yearSpan"`
}

// PersonSummary is the person header attached to composed views.
type PersonSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NameHebrew *string `json:"nameHebrew,omitempty"`
	NameGreek  *string `json:"nameGreek,omitempty"`
	BirthYear  *int    `json:"birthYear,omitempty"`
	DeathYear  *int    `json:"deathYear,omitempty"`
}

// DetailedTimeline merges the curated footsteps of a figure with that
// person's stored events into one chronological sequence.
type DetailedTimeline struct {
	Person   PersonSummary  `json:"person"`
	Timeline []TimelineEntry `json:"timeline"`
	Stats    TimelineStats  `json:"stats"`
}

func summarize(p *models.Person) PersonSummary {
	return PersonSummary{
		ID:         p.ID,
		Name:       p.Name,
		NameHebrew: p.NameHebrew,
		NameGreek:  p.NameGreek,
		BirthYear:  p.BirthYear,
		DeathYear:  p.DeathYear,
	}
}

// buildLocationMap overlays every stored location on top of the
// curated coordinate table. Stored coordinates win over curated ones,
// and modern names index extra lookup keys.
func buildLocationMap(db *gorm.DB) (map[string]TimelineLocation, error) {
	byName := make(map[string]TimelineLocation)
	for name, c := range refdata.ManualCoordinates() {
		byName[name] = TimelineLocation{
			Name:       name,
			Latitude:   c.Latitude,
			Longitude:  c.Longitude,
			ModernName: c.ModernName,
		}
	}

	var stored []models.Location
	if err := db.Find(&stored).Error; err != nil {
		return nil, err
	}
	for _, loc := range stored {
		entry := TimelineLocation{
			ID:        loc.ID,
			Name:      loc.Name,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		}
		if loc.ModernName != nil {
			entry.ModernName = *loc.ModernName
		}
		byName[loc.Name] = entry
		if loc.ModernName != nil && *loc.ModernName != "" {
			if _, exists := byName[*loc.ModernName]; !exists {
				byName[*loc.ModernName] = entry
			}
		}
	}
	return byName, nil
}

// resolveLocation finds coordinates for a place name, trying the alias
// table before giving up and pinning the entry to the default
// coordinate so it still renders on the map.
func resolveLocation(byName map[string]TimelineLocation, name string) TimelineLocation {
	if loc, ok := byName[name]; ok {
		loc.Name = name
		return loc
	}
	if loc, ok := byName[refdata.CanonicalName(name)]; ok {
		loc.Name = name
		return loc
	}
	return TimelineLocation{
		Name:      name,
		Latitude:  refdata.DefaultCoordinate.Latitude,
		Longitude: refdata.DefaultCoordinate.Longitude,
	}
}

// GetDetailedTimeline composes the detailed timeline for one person.
// Stored events without a year or a location are left out; every
// curated footstep carries both.
func GetDetailedTimeline(db *gorm.DB, id string) (*DetailedTimeline, error) {
	var person models.Person
	err := db.Preload("Events.Location").First(&person, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	byName, err := buildLocationMap(db)
	if err != nil {
		return nil, err
	}

	var timeline []TimelineEntry
	for _, step := range refdata.FootstepsFor(person.Name) {
		timeline = append(timeline, TimelineEntry{
			Type:        "biblical_event",
			Year:        step.Year,
			Title:       step.Title,
			Description: step.Description,
			Verse:       step.Verse,
			Location:    resolveLocation(byName, step.Location),
		})
	}
	biblical := len(timeline)

	for _, ev := range person.Events {
		if ev.Year == nil || ev.Location == nil {
			continue
		}
		entry := TimelineEntry{
			Type:        "database_event",
			Year:        *ev.Year,
			Title:       ev.Title,
			Description: ev.Description,
			Location: TimelineLocation{
				ID:        ev.Location.ID,
				Name:      ev.Location.Name,
				Latitude:  ev.Location.Latitude,
				Longitude: ev.Location.Longitude,
			},
		}
		if ev.Location.ModernName != nil {
			entry.Location.ModernName = *ev.Location.ModernName
		}
		timeline = append(timeline, entry)
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Year < timeline[j].Year
	})

	stats := TimelineStats{
		TotalEvents:    len(timeline),
		BiblicalEvents: biblical,
		DatabaseEvents: len(timeline) - biblical,
	}
	if len(timeline) > 0 {
		stats.YearSpan = &YearSpan{
			Start: timeline[0].Year,
			End:   timeline[len(timeline)-1].Year,
		}
	}

	return &DetailedTimeline{
		Person:   summarize(&person),
		Timeline: timeline,
		Stats:    stats,
	}, nil
}
