package assets

import (
	_ "embed"
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/JimmyBainbridge/Neptune-moons/domain/coords"
)

// SampleCoordsJSON contains the raw bytes of the bundled Neptune-moon
// coordinate fixture, used when no coordinate file is configured.
//
//go:embed neptune_moons.json
var SampleCoordsJSON []byte

// SampleCoords decodes the embedded fixture into point coordinates.
func SampleCoords() ([]r2.Point, error) {
	if len(SampleCoordsJSON) == 0 {
		return nil, fmt.Errorf("embedded neptune_moons.json is empty")
	}
	return coords.ParseJSON(SampleCoordsJSON)
}
