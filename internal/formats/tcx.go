package formats

import (
	"path/filepath"
	"strings"

	tcx "github.com/llehouerou/go-tcx"

	"github.com/pjot/routeconv/internal/nav"
)

type TCX struct{}

func (TCX) Name() string         { return "Training Center Database (*.tcx)" }
func (TCX) Extensions() []string { return []string{".tcx"} }

// ReadFile turns each activity into one track made of all its laps. Tracks
// are named after the file.
func (TCX) ReadFile(path string) ([]*nav.Route, error) {
	db, err := tcx.ParseFile(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var routes []*nav.Route
	for _, act := range db.Activities {
		r := &nav.Route{Name: name, Characteristics: nav.Track}
		for _, lap := range act.Laps {
			for _, pt := range lap.Track {
				// points without a fix carry zero coordinates
				if pt.LatitudeInDegrees == 0 && pt.LongitudeInDegrees == 0 {
					continue
				}
				alt := pt.AltitudeInMeters
				r.Positions = append(r.Positions, nav.Position{
					Longitude: pt.LongitudeInDegrees,
					Latitude:  pt.LatitudeInDegrees,
					Elevation: &alt,
				})
			}
		}
		routes = append(routes, r)
	}
	return routes, nil
}
