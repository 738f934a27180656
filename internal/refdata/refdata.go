// Package refdata holds the embedded reference dataset for person
// timelines: per-figure biographical footsteps, the name-alias table,
// and manual coordinates for ancient-world locations the database may
// not carry. The dataset is immutable; accessors return copies.
package refdata

// Footstep is a single biographical milestone for a named figure.
// Year follows the global convention: negative = BCE.
type Footstep struct {
	Year        int    `json:"year"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Verse       string `json:"verse"`
}

// Coordinate is a named point with an optional modern-day name.
type Coordinate struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ModernName string  `json:"modernName"`
}

// DefaultCoordinate is the fallback for footstep locations that cannot
// be resolved against the manual table or the location registry
// (Jerusalem).
var DefaultCoordinate = Coordinate{Latitude: 31.7683, Longitude: 35.2137}

// aliases maps recorded name variants to the canonical figure key.
var aliases = map[string]string{
	"Jesus Christ":           "Jesus",
	"Paul the Apostle":       "Paul",
	"Apostle Paul":           "Paul",
	"Paul (Saul)":            "Paul",
	"King David":             "David",
	"Peter (Simon)":          "Peter",
	"Simon Peter":            "Peter",
	"Mary (Mother of Jesus)": "Mary",
}

// CanonicalName resolves a person's display name to the key used by
// the footsteps table. Unknown names map to themselves; an unknown
// canonical name simply has no biography.
func CanonicalName(name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// FootstepsFor returns the biographical milestones for the given
// display name, or nil when the figure has none. The returned slice is
// a copy; callers may reorder it freely.
func FootstepsFor(name string) []Footstep {
	steps, ok := footsteps[CanonicalName(name)]
	if !ok {
		return nil
	}
	out := make([]Footstep, len(steps))
	copy(out, steps)
	return out
}

// ManualCoordinates returns a copy of the manual location table,
// keyed by ancient place name.
func ManualCoordinates() map[string]Coordinate {
	out := make(map[string]Coordinate, len(manualCoordinates))
	for name, coord := range manualCoordinates {
		out[name] = coord
	}
	return out
}

// Figures returns the canonical names that have a footsteps biography.
func Figures() []string {
	names := make([]string, 0, len(footsteps))
	for name := range footsteps {
		names = append(names, name)
	}
	return names
}
