package formats

import (
	"io"
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/pjot/routeconv/internal/nav"
)

const creator = "routeconv"

type GPX struct{}

func (GPX) Name() string         { return "GPS Exchange Format 1.1 (*.gpx)" }
func (GPX) Extensions() []string { return []string{".gpx"} }

func (GPX) ReadFile(path string) ([]*nav.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	var routes []*nav.Route
	if len(g.Waypoints) > 0 {
		r := &nav.Route{Name: g.Name, Characteristics: nav.Waypoints}
		for _, p := range g.Waypoints {
			r.Positions = append(r.Positions, fromGPXPoint(p))
		}
		routes = append(routes, r)
	}
	for _, rte := range g.Routes {
		r := &nav.Route{Name: rte.Name, Characteristics: nav.Routing}
		for _, p := range rte.Points {
			r.Positions = append(r.Positions, fromGPXPoint(p))
		}
		routes = append(routes, r)
	}
	for _, track := range g.Tracks {
		r := &nav.Route{Name: track.Name, Characteristics: nav.Track}
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				r.Positions = append(r.Positions, fromGPXPoint(p))
			}
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func fromGPXPoint(p gpx.GPXPoint) nav.Position {
	pos := nav.Position{
		Longitude:   p.Longitude,
		Latitude:    p.Latitude,
		Time:        p.Timestamp,
		Description: p.Name,
	}
	if pos.Description == "" {
		pos.Description = p.Description
	}
	if p.Elevation.NotNull() {
		e := p.Elevation.Value()
		pos.Elevation = &e
	}
	return pos
}

func toGPXPoint(p nav.Position) gpx.GPXPoint {
	var pt gpx.GPXPoint
	pt.Latitude = p.Latitude
	pt.Longitude = p.Longitude
	pt.Timestamp = p.Time
	pt.Name = p.Description
	if p.Elevation != nil {
		pt.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
	}
	return pt
}

func (g GPX) Write(w io.Writer, route *nav.Route) error {
	return g.WriteAll(w, []*nav.Route{route})
}

// WriteAll puts all routes into one file. Waypoint lists are merged into the
// file's waypoints.
func (GPX) WriteAll(w io.Writer, routes []*nav.Route) error {
	g := &gpx.GPX{Creator: creator}
	if len(routes) > 0 {
		g.Name = routes[0].Name
	}
	for _, route := range routes {
		var points []gpx.GPXPoint
		for _, p := range route.Positions {
			points = append(points, toGPXPoint(p))
		}
		switch route.Characteristics {
		case nav.Waypoints:
			g.Waypoints = append(g.Waypoints, points...)
		case nav.Routing:
			g.Routes = append(g.Routes, gpx.GPXRoute{Name: route.Name, Points: points})
		default:
			g.Tracks = append(g.Tracks, gpx.GPXTrack{
				Name:     route.Name,
				Segments: []gpx.GPXTrackSegment{{Points: points}},
			})
		}
	}

	data, err := g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
