package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/geo"
	"github.com/biblemap/biblemap-api/internal/models"
)

// MapMarker is one renderable marker on a person's map. Display
// coordinates differ from the real ones only when several markers
// share a spot.
type MapMarker struct {
	Type             string  `json:"type"`
	Year             *int    `json:"year,omitempty"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	LocationID       string  `json:"locationId,omitempty"`
	LocationName     string  `json:"locationName"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DisplayLatitude  float64 `json:"displayLatitude"`
	DisplayLongitude float64 `json:"displayLongitude"`
}

// MapJourney is one journey rendered on a person's map, with its
// ordered stops and a ready LineString path.
type MapJourney struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	StartYear *int        `json:"startYear,omitempty"`
	EndYear   *int        `json:"endYear,omitempty"`
	Stops     []MapMarker `json:"stops"`
	Path      *Geometry   `json:"path,omitempty"`
}

// PersonMapData is the full map view for one person: markers for the
// life events, journeys with paths, and the bounds enclosing it all.
type PersonMapData struct {
	Person   PersonSummary `json:"person"`
	Markers  []MapMarker   `json:"markers"`
	Journeys []MapJourney  `json:"journeys"`
	Bounds   geo.Bounds    `json:"bounds"`
}

func locationMarker(kind, title, description string, year *int, loc *models.Location) MapMarker {
	return MapMarker{
		Type:         kind,
		Year:         year,
		Title:        title,
		Description:  description,
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
	}
}

// applyDisplayOffsets fans out markers sharing coordinates so each one
// stays clickable on the map.
func applyDisplayOffsets(markers []MapMarker) {
	points := make([]geo.Point, len(markers))
	for i, m := range markers {
		points[i] = geo.Point{Latitude: m.Latitude, Longitude: m.Longitude}
	}
	for i, d := range geo.SpreadOverlapping(points) {
		markers[i].DisplayLatitude = d.DisplayLatitude
		markers[i].DisplayLongitude = d.DisplayLongitude
	}
}

// GetPersonMapData assembles everything a map view needs for one
// person in a single response.
func GetPersonMapData(db *gorm.DB, id string) (*PersonMapData, error) {
	var person models.Person
	err := db.Preload("BirthPlace").
		Preload("DeathPlace").
		Preload("Events", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("year asc")
		}).
		Preload("Events.Location").
		Preload("Journeys", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("start_year asc")
		}).
		Preload("Journeys.Stops", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc")
		}).
		Preload("Journeys.Stops.Location").
		First(&person, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var markers []MapMarker
	if person.BirthPlace != nil {
		markers = append(markers, locationMarker("birth", "Birth", "", person.BirthYear, person.BirthPlace))
	}
	for i := range person.Events {
		ev := &person.Events[i]
		if ev.Location == nil {
			continue
		}
		markers = append(markers, locationMarker("event", ev.Title, ev.Description, ev.Year, ev.Location))
	}
	if person.DeathPlace != nil {
		markers = append(markers, locationMarker("death", "Death", "", person.DeathYear, person.DeathPlace))
	}
	applyDisplayOffsets(markers)

	var allPoints []geo.Point
	for _, m := range markers {
		allPoints = append(allPoints, geo.Point{Latitude: m.Latitude, Longitude: m.Longitude})
	}

	journeys := make([]MapJourney, 0, len(person.Journeys))
	for i := range person.Journeys {
		j := &person.Journeys[i]
		mj := MapJourney{
			ID:        j.ID,
			Title:     j.Title,
			StartYear: j.StartYear,
			EndYear:   j.EndYear,
			Stops:     []MapMarker{},
			Path:      journeyLineString(j),
		}
		for k := range j.Stops {
			stop := &j.Stops[k]
			if stop.Location == nil {
				continue
			}
			desc := ""
			if stop.Description != nil {
				desc = *stop.Description
			}
			mj.Stops = append(mj.Stops, locationMarker("stop", stop.Location.Name, desc, nil, stop.Location))
			allPoints = append(allPoints, geo.Point{
				Latitude:  stop.Location.Latitude,
				Longitude: stop.Location.Longitude,
			})
		}
		applyDisplayOffsets(mj.Stops)
		journeys = append(journeys, mj)
	}

	return &PersonMapData{
		Person:   summarize(&person),
		Markers:  markers,
		Journeys: journeys,
		Bounds:   geo.BoundsOf(allPoints),
	}, nil
}

// GetPersonTimeline builds the basic life timeline for one person:
// birth, dated events, journey departures, and death, in year order.
func GetPersonTimeline(db *gorm.DB, id string) (*DetailedTimeline, error) {
	var person models.Person
	err := db.Preload("BirthPlace").
		Preload("DeathPlace").
		Preload("Events.Location").
		Preload("Journeys").
		First(&person, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var timeline []TimelineEntry
	appendEntry := func(kind string, year int, title, description string, loc *models.Location) {
		entry := TimelineEntry{
			Type:        kind,
			Year:        year,
			Title:       title,
			Description: description,
		}
		if loc != nil {
			entry.Location = TimelineLocation{
				ID:        loc.ID,
				Name:      loc.Name,
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			}
			if loc.ModernName != nil {
				entry.Location.ModernName = *loc.ModernName
			}
		}
		timeline = append(timeline, entry)
	}

	if person.BirthYear != nil && person.BirthPlace != nil {
		appendEntry("birth", *person.BirthYear, "Birth of "+person.Name, "", person.BirthPlace)
	}
	for i := range person.Events {
		ev := &person.Events[i]
		if ev.Year == nil || ev.Location == nil {
			continue
		}
		appendEntry("event", *ev.Year, ev.Title, ev.Description, ev.Location)
	}
	for i := range person.Journeys {
		j := &person.Journeys[i]
		if j.StartYear == nil {
			continue
		}
		appendEntry("journey", *j.StartYear, j.Title, j.Description, nil)
	}
	if person.DeathYear != nil && person.DeathPlace != nil {
		appendEntry("death", *person.DeathYear, "Death of "+person.Name, "", person.DeathPlace)
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Year < timeline[j].Year
	})

	stats := TimelineStats{TotalEvents: len(timeline)}
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

// RelationshipsGeo groups a person's relationships by type, each
// related person carrying their birth and death places for mapping.
type RelationshipsGeo struct {
	Person        PersonSummary           `json:"person"`
	Relationships map[string][]RelatedGeo `json:"relationships"`
}

// RelatedGeo is one related person with mappable places attached.
type RelatedGeo struct {
	Person      PersonSummary     `json:"person"`
	Direction   string            `json:"direction"`
	Description *string           `json:"description,omitempty"`
	BirthPlace  *TimelineLocation `json:"birthPlace,omitempty"`
	DeathPlace  *TimelineLocation `json:"deathPlace,omitempty"`
}

func geoPlace(loc *models.Location) *TimelineLocation {
	if loc == nil {
		return nil
	}
	place := &TimelineLocation{
		ID:        loc.ID,
		Name:      loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
	if loc.ModernName != nil {
		place.ModernName = *loc.ModernName
	}
	return place
}

// GetRelationshipsGeo returns both directions of a person's
// relationship edges, grouped by relationship type.
func GetRelationshipsGeo(db *gorm.DB, id string) (*RelationshipsGeo, error) {
	var person models.Person
	err := db.Preload("Relationships.PersonTo.BirthPlace").
		Preload("Relationships.PersonTo.DeathPlace").
		Preload("RelatedTo.PersonFrom.BirthPlace").
		Preload("RelatedTo.PersonFrom.DeathPlace").
		First(&person, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	grouped := make(map[string][]RelatedGeo)
	for i := range person.Relationships {
		rel := &person.Relationships[i]
		if rel.PersonTo == nil {
			continue
		}
		key := string(rel.RelationshipType)
		grouped[key] = append(grouped[key], RelatedGeo{
			Person:      summarize(rel.PersonTo),
			Direction:   "outgoing",
			Description: rel.Description,
			BirthPlace:  geoPlace(rel.PersonTo.BirthPlace),
			DeathPlace:  geoPlace(rel.PersonTo.DeathPlace),
		})
	}
	for i := range person.RelatedTo {
		rel := &person.RelatedTo[i]
		if rel.PersonFrom == nil {
			continue
		}
		key := string(rel.RelationshipType)
		grouped[key] = append(grouped[key], RelatedGeo{
			Person:      summarize(rel.PersonFrom),
			Direction:   "incoming",
			Description: rel.Description,
			BirthPlace:  geoPlace(rel.PersonFrom.BirthPlace),
			DeathPlace:  geoPlace(rel.PersonFrom.DeathPlace),
		})
	}

	return &RelationshipsGeo{
		Person:        summarize(&person),
		Relationships: grouped,
	}, nil
}
