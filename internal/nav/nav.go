// Package nav holds the format independent route model every reader and
// writer converts through.
package nav

import "time"

// Characteristics tells how the positions of a route are meant to be read.
type Characteristics int

const (
	Waypoints Characteristics = iota
	Routing
	Track
)

func (c Characteristics) String() string {
	switch c {
	case Waypoints:
		return "waypoints"
	case Routing:
		return "route"
	case Track:
		return "track"
	}
	return "unknown"
}

type Position struct {
	Longitude, Latitude float64
	Elevation           *float64
	Time                time.Time
	Description         string
}

type Route struct {
	Name            string
	Characteristics Characteristics
	Positions       []Position
}

// Bounds returns the bounding box of all positions. ok is false for an
// empty route.
func (r *Route) Bounds() (minLon, minLat, maxLon, maxLat float64, ok bool) {
	for i, p := range r.Positions {
		if i == 0 {
			minLon, maxLon = p.Longitude, p.Longitude
			minLat, maxLat = p.Latitude, p.Latitude
			continue
		}
		if p.Longitude < minLon {
			minLon = p.Longitude
		}
		if p.Longitude > maxLon {
			maxLon = p.Longitude
		}
		if p.Latitude < minLat {
			minLat = p.Latitude
		}
		if p.Latitude > maxLat {
			maxLat = p.Latitude
		}
	}
	return minLon, minLat, maxLon, maxLat, len(r.Positions) > 0
}
