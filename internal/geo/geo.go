// Package geo holds the pure map-geometry transforms: bounding boxes
// and the duplicate-coordinate marker offset. Nothing here touches
// storage; display coordinates are derived per response.
package geo

import (
	"fmt"
	"math"
)

const (
	// offsetRadius is the angular radius, in degrees, of the circle
	// duplicate markers are spread on.
	offsetRadius = 0.01

	// keyPrecision is the decimal precision used when grouping points
	// that share a coordinate.
	keyPrecision = 4
)

// Point is a coordinate with a stable sequence position.
type Point struct {
	Latitude  float64
	Longitude float64
}

// DisplayPoint is a point plus the coordinate it should be drawn at
// after overlap spreading.
type DisplayPoint struct {
	Point
	DisplayLatitude  float64
	DisplayLongitude float64
}

// Bounds is a geographic bounding box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// DefaultBounds covers the Israel/Palestine region, used when a view
// has no locations to frame.
var DefaultBounds = Bounds{North: 33.33, South: 29.5, East: 36.0, West: 34.2}

// Key returns the rounded grouping key for a coordinate.
func Key(lat, lng float64) string {
	return fmt.Sprintf("%.*f,%.*f", keyPrecision, lat, keyPrecision, lng)
}

// SpreadOverlapping redistributes points that share a rounded
// coordinate evenly on a small circle around the original position so
// markers never fully overlap. Points with a unique coordinate keep
// their position. The transform is deterministic: the i-th member of
// an n-member group sits at angle 2π·i/n, so applying it to the same
// input always yields the same arrangement.
func SpreadOverlapping(points []Point) []DisplayPoint {
	groups := make(map[string][]int, len(points))
	for i, p := range points {
		k := Key(p.Latitude, p.Longitude)
		groups[k] = append(groups[k], i)
	}

	out := make([]DisplayPoint, len(points))
	for i, p := range points {
		out[i] = DisplayPoint{
			Point:            p,
			DisplayLatitude:  p.Latitude,
			DisplayLongitude: p.Longitude,
		}
	}

	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		n := len(members)
		for pos, idx := range members {
			angle := float64(pos) * 2 * math.Pi / float64(n)
			out[idx].DisplayLatitude = points[idx].Latitude + offsetRadius*math.Sin(angle)
			out[idx].DisplayLongitude = points[idx].Longitude + offsetRadius*math.Cos(angle)
		}
	}

	return out
}

// BoundsOf frames the given points, falling back to DefaultBounds for
// an empty set.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return DefaultBounds
	}
	b := Bounds{
		North: points[0].Latitude,
		South: points[0].Latitude,
		East:  points[0].Longitude,
		West:  points[0].Longitude,
	}
	for _, p := range points[1:] {
		b.North = math.Max(b.North, p.Latitude)
		b.South = math.Min(b.South, p.Latitude)
		b.East = math.Max(b.East, p.Longitude)
		b.West = math.Min(b.West, p.Longitude)
	}
	return b
}
