package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/biblemap/biblemap-api/internal/models"
)

// Tagged search hits. Embedding flattens the record so every hit
// carries a "type" discriminator alongside its own fields.
type PersonHit struct {
	models.Person
	Type string `json:"type"`
}

type LocationHit struct {
	models.Location
	Type string `json:"type"`
}

type EventHit struct {
	models.Event
	Type string `json:"type"`
}

type JourneyHit struct {
	models.Journey
	Type string `json:"type"`
}

type ThemeHit struct {
	models.Theme
	Type string `json:"type"`
}

// SearchResults is the outcome of a unified search across every
// entity kind, fetched concurrently.
type SearchResults struct {
	Query        string        `json:"query"`
	Persons      []PersonHit   `json:"persons"`
	Locations    []LocationHit `json:"locations"`
	Events       []EventHit    `json:"events"`
	Journeys     []JourneyHit  `json:"journeys"`
	Themes       []ThemeHit    `json:"themes"`
	TotalResults int           `json:"totalResults"`
}

// UnifiedSearch fans out one query per entity kind and merges the
// results. Limit applies per kind, not in total.
func UnifiedSearch(ctx context.Context, db *gorm.DB, term string, limit int) (*SearchResults, error) {
	results := &SearchResults{
		Query:     term,
		Persons:   []PersonHit{},
		Locations: []LocationHit{},
		Events:    []EventHit{},
		Journeys:  []JourneyHit{},
		Themes:    []ThemeHit{},
	}

	g, gctx := errgroup.WithContext(ctx)

	tagged := func(tag string) *gorm.DB {
		return db.WithContext(gctx).Clauses(hints.CommentBefore("select", tag))
	}

	g.Go(func() error {
		var persons []models.Person
		err := tagged("search:persons").
			Where(searchable(db, term, "name", "name_hebrew", "name_greek", "description")).
			Limit(limit).
			Find(&persons).Error
		if err != nil {
			return err
		}
		for _, p := range persons {
			results.Persons = append(results.Persons, PersonHit{Person: p, Type: "person"})
		}
		return nil
	})
	g.Go(func() error {
		var locations []models.Location
		err := tagged("search:locations").
			Where(searchable(db, term, "name", "modern_name", "description")).
			Limit(limit).
			Find(&locations).Error
		if err != nil {
			return err
		}
		for _, l := range locations {
			results.Locations = append(results.Locations, LocationHit{Location: l, Type: "location"})
		}
		return nil
	})
	g.Go(func() error {
		var events []models.Event
		err := tagged("search:events").
			Preload("Location").
			Where(searchable(db, term, "title", "description")).
			Limit(limit).
			Find(&events).Error
		if err != nil {
			return err
		}
		for _, e := range events {
			results.Events = append(results.Events, EventHit{Event: e, Type: "event"})
		}
		return nil
	})
	g.Go(func() error {
		var journeys []models.Journey
		err := tagged("search:journeys").
			Preload("Person").
			Where(searchable(db, term, "title", "description", "purpose")).
			Limit(limit).
			Find(&journeys).Error
		if err != nil {
			return err
		}
		for _, j := range journeys {
			results.Journeys = append(results.Journeys, JourneyHit{Journey: j, Type: "journey"})
		}
		return nil
	})
	g.Go(func() error {
		var themes []models.Theme
		err := tagged("search:themes").
			Where(searchable(db, term, "title", "summary", "description")).
			Limit(limit).
			Find(&themes).Error
		if err != nil {
			return err
		}
		for _, t := range themes {
			results.Themes = append(results.Themes, ThemeHit{Theme: t, Type: "theme"})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results.TotalResults = len(results.Persons) + len(results.Locations) +
		len(results.Events) + len(results.Journeys) + len(results.Themes)
	return results, nil
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// GetSuggestions returns name-prefix matches over persons and
// locations, limit of each, for autocomplete.
func GetSuggestions(db *gorm.DB, term string, limit int) ([]Suggestion, error) {
	prefix := strings.ToLower(term) + "%"
	suggestions := []Suggestion{}

	var persons []models.Person
	err := db.Select("id", "name").
		Where("LOWER(name) LIKE ?", prefix).
		Order("name asc").
		Limit(limit).
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	for _, p := range persons {
		suggestions = append(suggestions, Suggestion{ID: p.ID, Label: p.Name, Type: "person"})
	}

	var locations []models.Location
	err = db.Select("id", "name").
		Where("LOWER(name) LIKE ?", prefix).
		Order("name asc").
		Limit(limit).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		suggestions = append(suggestions, Suggestion{ID: l.ID, Label: l.Name, Type: "location"})
	}

	return suggestions, nil
}
