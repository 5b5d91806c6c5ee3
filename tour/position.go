package tour

import (
	"sort"
	"strings"

	geo "github.com/codingsince1985/geo-golang"

	"github.com/pjot/routeconv/internal/nav"
)

// Position is one address of a Falk Navigator tour. Empty strings mean the
// field was not present in the file.
type Position struct {
	X, Y int64

	ZipCode string
	City    string
	Street  string
	HouseNo string
	Name    string
	Home    bool

	// Attributes keeps every key the reader does not map to a field,
	// PositionInList included, so they survive a rewrite.
	Attributes map[string]string
}

// NewPosition creates a position from WGS84 coordinates. The description
// becomes the city.
func NewPosition(longitude, latitude float64, description string) *Position {
	return &Position{
		X:          nav.LongitudeToMercatorX(longitude),
		Y:          nav.LatitudeToMercatorY(latitude),
		City:       description,
		Attributes: map[string]string{},
	}
}

func (p *Position) Longitude() float64 {
	return nav.MercatorXToLongitude(p.X)
}

func (p *Position) Latitude() float64 {
	return nav.MercatorYToLatitude(p.Y)
}

// Description joins the address fields as "zip city, street houseNo, name".
// Absent fields and their separators are left out.
func (p *Position) Description() string {
	var parts []string
	if place := joinNonEmpty(" ", p.ZipCode, p.City); place != "" {
		parts = append(parts, place)
	}
	if street := joinNonEmpty(" ", p.Street, p.HouseNo); street != "" {
		parts = append(parts, street)
	}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}

func joinNonEmpty(sep string, values ...string) string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}

// SetDescription replaces the whole address with a free text city.
func (p *Position) SetDescription(description string) {
	p.Name = ""
	p.ZipCode = ""
	p.City = description
	p.Street = ""
	p.HouseNo = ""
}

func (p *Position) Get(key string) (string, bool) {
	v, ok := p.Attributes[key]
	return v, ok
}

func (p *Position) Set(key, value string) {
	if p.Attributes == nil {
		p.Attributes = map[string]string{}
	}
	p.Attributes[key] = value
}

// Keys returns the attribute names in sorted order.
func (p *Position) Keys() []string {
	keys := make([]string, 0, len(p.Attributes))
	for k := range p.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Position) Location() geo.Location {
	return geo.Location{Lat: p.Latitude(), Lng: p.Longitude()}
}

func (p *Position) Address() *geo.Address {
	return &geo.Address{
		FormattedAddress: p.Description(),
		Street:           p.Street,
		HouseNumber:      p.HouseNo,
		Postcode:         p.ZipCode,
		City:             p.City,
	}
}

// Equal compares coordinates, address fields and attributes. The home flag
// is not part of the identity of a position.
func (p *Position) Equal(o *Position) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil {
		return false
	}
	if p.X != o.X || p.Y != o.Y || p.Name != o.Name || p.ZipCode != o.ZipCode ||
		p.City != o.City || p.Street != o.Street || p.HouseNo != o.HouseNo {
		return false
	}
	if len(p.Attributes) != len(o.Attributes) {
		return false
	}
	for k, v := range p.Attributes {
		if w, ok := o.Attributes[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Route is the content of one .tour file.
type Route struct {
	Name      string
	Positions []*Position
}
