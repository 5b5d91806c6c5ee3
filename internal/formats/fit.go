package formats

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/tormoder/fit"

	"github.com/pjot/routeconv/internal/nav"
)

type FIT struct{}

func (FIT) Name() string         { return "Garmin FIT activity (*.fit, *.fit.gz)" }
func (FIT) Extensions() []string { return []string{".fit", ".fit.gz"} }

func (FIT) ReadFile(path string) ([]*nav.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return readFIT(r)
}

func readFIT(r io.Reader) ([]*nav.Route, error) {
	fitFile, err := fit.Decode(r)
	if err != nil {
		return nil, err
	}
	activity, err := fitFile.Activity()
	if err != nil {
		return nil, err
	}

	route := &nav.Route{Characteristics: nav.Track}
	for _, rec := range activity.Records {
		if rec.PositionLat.Invalid() || rec.PositionLong.Invalid() {
			continue
		}
		route.Positions = append(route.Positions, nav.Position{
			Longitude: rec.PositionLong.Degrees(),
			Latitude:  rec.PositionLat.Degrees(),
			Time:      rec.Timestamp,
		})
	}
	if len(route.Positions) > 0 {
		route.Name = route.Positions[0].Time.Format("2006-01-02 15:04")
	}
	return []*nav.Route{route}, nil
}
