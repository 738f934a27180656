package data

import (
	_ "embed"
)

//go:embed seed/locations.json
var SeedLocations []byte
