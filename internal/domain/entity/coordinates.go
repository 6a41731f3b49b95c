package entity

import "github.com/paulmach/orb"

// worldBound is the valid WGS84 range, lon in X and lat in Y.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Coordinates is a resolved latitude/longitude pair. The two values are only
// ever set together.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Point returns the coordinates as an orb.Point (lon, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the pair lies inside the WGS84 range.
func (c Coordinates) Valid() bool {
	return worldBound.Contains(c.Point())
}
