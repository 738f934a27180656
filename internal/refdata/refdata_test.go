package refdata

import (
	"testing"
)

func TestCanonicalName(t *testing.T) {
	cases := map[string]string{
		"Jesus Christ":           "Jesus",
		"Paul the Apostle":       "Paul",
		"Apostle Paul":           "Paul",
		"Paul (Saul)":            "Paul",
		"King David":             "David",
		"Peter (Simon)":          "Peter",
		"Simon Peter":            "Peter",
		"Mary (Mother of Jesus)": "Mary",
		"Moses":                  "Moses",
		"Nobody Special":         "Nobody Special",
	}
	for input, want := range cases {
		if got := CanonicalName(input); got != want {
			t.Errorf("CanonicalName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFootstepsFigures(t *testing.T) {
	wantCounts := map[string]int{
		"Abraham":          14,
		"Moses":            18,
		"David":            16,
		"Jesus":            23,
		"Paul":             28,
		"John the Baptist": 4,
		"Peter":            8,
		"Mary":             5,
	}
	for name, want := range wantCounts {
		steps := FootstepsFor(name)
		if len(steps) != want {
			t.Errorf("FootstepsFor(%q) returned %d steps, want %d", name, len(steps), want)
		}
	}

	figures := Figures()
	if len(figures) != len(wantCounts) {
		t.Errorf("Figures() returned %d names, want %d", len(figures), len(wantCounts))
	}
}

func TestFootstepsForAlias(t *testing.T) {
	direct := FootstepsFor("Jesus")
	aliased := FootstepsFor("Jesus Christ")
	if len(direct) == 0 || len(direct) != len(aliased) {
		t.Fatalf("alias lookup mismatch: direct=%d aliased=%d", len(direct), len(aliased))
	}
}

func TestFootstepsForUnknown(t *testing.T) {
	if steps := FootstepsFor("Nebuchadnezzar"); steps != nil {
		t.Errorf("expected nil for unknown figure, got %d steps", len(steps))
	}
}

func TestFootstepsForReturnsCopy(t *testing.T) {
	steps := FootstepsFor("Moses")
	original := steps[0].Title
	steps[0].Title = "mutated"
	if FootstepsFor("Moses")[0].Title != original {
		t.Error("FootstepsFor must return a copy, not the backing slice")
	}
}

func TestManualCoordinatesReturnsCopy(t *testing.T) {
	coords := ManualCoordinates()
	coords["Jerusalem"] = Coordinate{Latitude: 0, Longitude: 0}
	if got := ManualCoordinates()["Jerusalem"]; got.Latitude == 0 {
		t.Error("ManualCoordinates must return a copy, not the backing map")
	}
}

// Every footstep location must resolve to real coordinates; the
// fallback pin is for unknown user data, not the curated tables.
func TestAllFootstepLocationsResolve(t *testing.T) {
	coords := ManualCoordinates()
	for _, figure := range Figures() {
		for _, step := range FootstepsFor(figure) {
			if _, ok := coords[step.Location]; !ok {
				if _, ok := coords[CanonicalName(step.Location)]; !ok {
					t.Errorf("%s: footstep location %q has no curated coordinate", figure, step.Location)
				}
			}
		}
	}
}

func TestFootstepsAreChronological(t *testing.T) {
	for _, figure := range Figures() {
		steps := FootstepsFor(figure)
		for i := 1; i < len(steps); i++ {
			if steps[i].Year < steps[i-1].Year {
				t.Errorf("%s: footstep %d (year %d) precedes footstep %d (year %d)",
					figure, i, steps[i].Year, i-1, steps[i-1].Year)
			}
		}
	}
}
