package tour

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const separator = " = "

const (
	defaultClass    = "FMI.FalkNavigator.PersistentAddress"
	defaultAssembly = "FalkNavigator"
	defaultVisited  = "0"
	unnamedRoute    = "Unnamed"
)

// Write writes all positions of route.
func Write(w io.Writer, route *Route) error {
	return WriteRange(w, route, 0, len(route.Positions))
}

// WriteRange writes the positions [start, end) of route. Sections are
// numbered by the absolute index of the position.
func WriteRange(w io.Writer, route *Route, start, end int) error {
	if start < 0 || end > len(route.Positions) || start > end {
		return fmt.Errorf("tour: range [%d, %d) out of bounds for %d positions", start, end, len(route.Positions))
	}

	bw := bufio.NewWriter(w)
	name := route.Name
	if name == "" {
		name = unnamedRoute
	}
	bw.WriteString("[" + tourTitle + "]\n")
	writePair(bw, keyName, name)
	writePair(bw, keyCreator, GeneratedBy)
	bw.WriteString("\n")

	for i := start; i < end; i++ {
		writePosition(bw, route.Positions[i], i, i < end-1)
	}
	return bw.Flush()
}

func writePosition(bw *bufio.Writer, pos *Position, index int, extend bool) {
	title := strconv.Itoa(index)
	if pos.Home {
		title = homeTitle
	}
	bw.WriteString("[" + title + "]\n")

	name := pos.Name
	if name == "" {
		name = pos.City
	}
	if name == "" {
		name = pos.Description()
	}
	writePair(bw, keyName, name)
	writePair(bw, PositionInList, strconv.Itoa(index))
	if pos.ZipCode != "" {
		writePair(bw, keyZipCode, pos.ZipCode)
	}
	if pos.City != "" && pos.City != name {
		writePair(bw, keyCity, pos.City)
	}
	if pos.Street != "" {
		writePair(bw, keyStreet, pos.Street)
	}
	if pos.HouseNo != "" {
		writePair(bw, keyHouseNo, pos.HouseNo)
	}
	writePair(bw, keyLongitude, strconv.FormatInt(pos.X, 10))
	writePair(bw, keyLatitude, strconv.FormatInt(pos.Y, 10))
	if extend {
		writePair(bw, ExtendRoute, "1")
	}

	for _, k := range pos.Keys() {
		switch k {
		case PositionInList, ExtendRoute, Class, Assembly, Visited,
			keyName, keyZipCode, keyCity, keyStreet, keyHouseNo, keyLongitude, keyLatitude:
			continue
		}
		writePair(bw, k, pos.Attributes[k])
	}

	// the vendor keys always close a section, with defaults when missing
	for _, kv := range [][2]string{
		{Class, defaultClass},
		{Assembly, defaultAssembly},
		{Visited, defaultVisited},
	} {
		value, ok := pos.Attributes[kv[0]]
		if !ok {
			value = kv[1]
		}
		writePair(bw, kv[0], value)
	}
	bw.WriteString("\n")
}

// lineBreaks would start a new line, and with it possibly a new section.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// keyBreaks additionally drops the separator, which would move the split
// point on the next read.
var keyBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "=", "")

var brackets = strings.NewReplacer("[", "(", "]", ")")

func writePair(bw *bufio.Writer, name, value string) {
	line := keyBreaks.Replace(name) + separator + lineBreaks.Replace(value)
	// a pair must never read back as a section title
	if sectionTitlePattern.MatchString(line) {
		line = brackets.Replace(line)
	}
	bw.WriteString(line + "\n")
}
