// Package tour reads and writes Falk Navigator (.tour) files.
//
// A tour file is INI-like. A [TOUR] section names the route. Numbered
// sections, and an optional [HOME] section, describe one address each:
//
//	[TOUR]
//	Name = Weekend
//
//	[1]
//	Name = Marktplatz
//	City = Bonn
//	Longitude = 788153
//	Latitude = 6550621
package tour

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Extension is the file name suffix of tour files.
	Extension = ".tour"
	// Name is the human readable format name.
	Name = "Falk Navigator (*" + Extension + ")"

	// GeneratedBy is written as the Creator of the [TOUR] section.
	GeneratedBy = "routeconv"
)

const (
	tourTitle = "TOUR"
	homeTitle = "HOME"

	keyName      = "Name"
	keyZipCode   = "ZipCode"
	keyCity      = "City"
	keyStreet    = "Street"
	keyHouseNo   = "HouseNo"
	keyLongitude = "Longitude"
	keyLatitude  = "Latitude"
	keyCreator   = "Creator"
)

// Attribute keys with a meaning for the reader or writer.
const (
	// PositionInList orders the positions of a tour.
	PositionInList = "PositionInList"
	// ExtendRoute marks every position but the last as continuing the route.
	ExtendRoute = "ExtendRoute"
	// Class is the Falk persistence class of an address.
	Class = "Class"
	// Assembly names the Falk assembly owning Class.
	Assembly = "Assembly"
	// Visited is "1" once Falk Navigator reached the address.
	Visited = "Visited"
)

// maxLineLength bounds a single line, vendor attributes included.
const maxLineLength = 1024 * 1024

var sectionTitlePattern = regexp.MustCompile(`^.*\[(\d+|` + tourTitle + `|` + homeTitle + `)\].*$`)

type readOptions struct {
	encoding string
}

type ReadOption func(*readOptions)

// WithEncoding selects the character set of the input, UTF-8 by default.
func WithEncoding(name string) ReadOption {
	return func(o *readOptions) {
		o.encoding = name
	}
}

// Read parses a tour file. Reading stops with a *MalformedLineError at the
// first line that is neither a section title nor a name/value pair.
func Read(r io.Reader, opts ...ReadOption) (*Route, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}
	enc, err := lookupEncoding(o.encoding)
	if err != nil {
		return nil, err
	}

	p := &parser{route: &Route{}}
	scanner := bufio.NewScanner(enc.NewDecoder().Reader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if err := p.line(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tour: reading: %w", err)
	}
	if err := p.closeSection(); err != nil {
		return nil, err
	}

	if len(p.route.Positions) == 0 {
		return nil, ErrNoPositions
	}
	SortPositions(p.route.Positions)
	return p.route, nil
}

// parser accumulates the name/value pairs of the current section.
type parser struct {
	route   *Route
	section string
	open    bool
	values  map[string]string
}

func (p *parser) line(lineNo int, line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	if m := sectionTitlePattern.FindStringSubmatch(line); m != nil {
		if err := p.closeSection(); err != nil {
			return err
		}
		p.section = m[1]
		p.open = true
		p.values = map[string]string{}
		return nil
	}

	if i := strings.IndexByte(line, '='); i > 0 {
		name := strings.TrimSpace(line[:i])
		if name != "" {
			// pairs before the first section belong to nothing
			if p.open {
				p.values[name] = strings.TrimSpace(line[i+1:])
			}
			return nil
		}
	}

	return &MalformedLineError{Line: lineNo, Text: line}
}

func (p *parser) closeSection() error {
	if !p.open {
		return nil
	}
	p.open = false

	if p.section == tourTitle {
		p.route.Name = p.values[keyName]
		return nil
	}

	if _, ok := p.values[PositionInList]; !ok {
		p.values[PositionInList] = p.section
	}
	pos, err := parsePosition(p.values, p.section)
	if err != nil {
		return err
	}
	if pos != nil {
		p.route.Positions = append(p.route.Positions, pos)
	}
	return nil
}

// parsePosition returns nil without an error when a coordinate is missing.
func parsePosition(values map[string]string, section string) (*Position, error) {
	x, ok, err := parseCoordinate(values, section, keyLongitude)
	if err != nil || !ok {
		return nil, err
	}
	y, ok, err := parseCoordinate(values, section, keyLatitude)
	if err != nil || !ok {
		return nil, err
	}

	pos := &Position{
		X:       x,
		Y:       y,
		ZipCode: values[keyZipCode],
		City:    values[keyCity],
		Street:  values[keyStreet],
		HouseNo: values[keyHouseNo],
		Name:    values[keyName],
		Home:    section == homeTitle,
	}
	for _, k := range []string{keyZipCode, keyCity, keyStreet, keyHouseNo, keyName, keyLongitude, keyLatitude} {
		delete(values, k)
	}
	pos.Attributes = values
	return pos, nil
}

func parseCoordinate(values map[string]string, section, key string) (int64, bool, error) {
	v := values[key]
	if v == "" {
		return 0, false, nil
	}
	digits := strings.TrimPrefix(v, "+")
	if digits != v && (strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-")) {
		return 0, false, &InvalidValueError{Section: section, Key: key, Value: v, Err: strconv.ErrSyntax}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false, &InvalidValueError{Section: section, Key: key, Value: v, Err: err}
	}
	return n, true, nil
}
