package services

import (
	"gorm.io/gorm"

	"github.com/biblemap/biblemap-api/internal/models"
)

// GeoJSON output per RFC 7946. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func pointGeometry(lat, lng float64) Geometry {
	return Geometry{Type: "Point", Coordinates: []float64{lng, lat}}
}

func locationProperties(loc *models.Location, eventsCount int64) map[string]any {
	props := map[string]any{
		"id":          loc.ID,
		"name":        loc.Name,
		"eventsCount": eventsCount,
	}
	if loc.ModernName != nil {
		props["modernName"] = *loc.ModernName
	}
	if loc.Significance != "" {
		props["significance"] = loc.Significance
	}
	return props
}

// GetLocationsGeoJSON exports every stored location as a Point
// FeatureCollection suitable for direct map rendering. Each feature
// carries the number of events recorded at that location.
func GetLocationsGeoJSON(db *gorm.DB) (*FeatureCollection, error) {
	var locations []models.Location
	if err := db.Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}

	type eventCount struct {
		LocationID string
		N          int64
	}
	var counts []eventCount
	err := db.Model(&models.Event{}).
		Select("location_id, count(*) as n").
		Where("location_id IS NOT NULL").
		Group("location_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	countByID := make(map[string]int64, len(counts))
	for _, row := range counts {
		countByID[row.LocationID] = row.N
	}

	features := make([]Feature, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		features = append(features, Feature{
			Type:       "Feature",
			Geometry:   pointGeometry(loc.Latitude, loc.Longitude),
			Properties: locationProperties(loc, countByID[loc.ID]),
		})
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features}, nil
}

// journeyLineString builds the ordered path of a journey. Returns nil
// when fewer than two stops have a resolvable location, since a line
// needs at least two points.
func journeyLineString(j *models.Journey) *Geometry {
	coords := make([][]float64, 0, len(j.Stops))
	for i := range j.Stops {
		stop := &j.Stops[i]
		if stop.Location == nil {
			continue
		}
		coords = append(coords, []float64{stop.Location.Longitude, stop.Location.Latitude})
	}
	if len(coords) < 2 {
		return nil
	}
	return &Geometry{Type: "LineString", Coordinates: coords}
}

// GetJourneyPathsGeoJSON exports all journeys as LineString features,
// one per journey, ordered by stop index.
func GetJourneyPathsGeoJSON(db *gorm.DB) (*FeatureCollection, error) {
	var journeys []models.Journey
	err := db.Preload("Person").
		Preload("Stops", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index asc")
		}).
		Preload("Stops.Location").
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}

	features := make([]Feature, 0, len(journeys))
	for i := range journeys {
		j := &journeys[i]
		line := journeyLineString(j)
		if line == nil {
			continue
		}
		props := map[string]any{
			"id":    j.ID,
			"title": j.Title,
		}
		if j.Person != nil {
			props["personId"] = j.Person.ID
			props["personName"] = j.Person.Name
		}
		if j.StartYear != nil {
			props["startYear"] = *j.StartYear
		}
		if j.EndYear != nil {
			props["endYear"] = *j.EndYear
		}
		if j.Distance != nil {
			props["distance"] = *j.Distance
		}
		features = append(features, Feature{
			Type:       "Feature",
			Geometry:   *line,
			Properties: props,
		})
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features}, nil
}
