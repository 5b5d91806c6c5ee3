package formats

import (
	"io"
	"os"

	"github.com/pjot/routeconv/internal/nav"
	"github.com/pjot/routeconv/tour"
)

type Tour struct {
	Encoding string
}

func (t *Tour) Name() string         { return tour.Name }
func (t *Tour) Extensions() []string { return []string{tour.Extension} }

func (t *Tour) ReadFile(path string) ([]*nav.Route, error) {
	route, err := t.ReadTour(path)
	if err != nil {
		return nil, err
	}
	return []*nav.Route{FromTour(route)}, nil
}

// ReadTour reads path keeping every vendor field, for tour to tour copies.
func (t *Tour) ReadTour(path string) (*tour.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tour.Read(f, tour.WithEncoding(t.Encoding))
}

func (t *Tour) Write(w io.Writer, route *nav.Route) error {
	return tour.Write(w, ToTour(route))
}

func (t *Tour) WriteTour(w io.Writer, route *tour.Route) error {
	return tour.Write(w, route)
}

func FromTour(route *tour.Route) *nav.Route {
	r := &nav.Route{Name: route.Name, Characteristics: nav.Waypoints}
	for _, p := range route.Positions {
		loc := p.Location()
		r.Positions = append(r.Positions, nav.Position{
			Longitude:   loc.Lng,
			Latitude:    loc.Lat,
			Description: p.Address().FormattedAddress,
		})
	}
	return r
}

func ToTour(route *nav.Route) *tour.Route {
	r := &tour.Route{Name: route.Name}
	for _, p := range route.Positions {
		r.Positions = append(r.Positions, tour.NewPosition(p.Longitude, p.Latitude, p.Description))
	}
	return r
}
