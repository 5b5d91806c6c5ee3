package tour

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) *Route {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	route, err := Read(f)
	require.NoError(t, err)
	return route
}

func TestReadFile(t *testing.T) {
	route := readFile(t, "testdata/rheinreise.tour")

	assert.Equal(t, "Rheinreise", route.Name)
	require.Len(t, route.Positions, 3)

	koblenz, dom, home := route.Positions[0], route.Positions[1], route.Positions[2]

	assert.Equal(t, "Koblenz", koblenz.City)
	assert.Equal(t, int64(843500), koblenz.X)
	assert.Equal(t, int64(6484200), koblenz.Y)
	assert.False(t, koblenz.Home)

	assert.Equal(t, "Dom", dom.Name)
	assert.Equal(t, "Köln", dom.City)
	v, ok := dom.Get("Rating")
	assert.True(t, ok)
	assert.Equal(t, "5", v)
	assert.Equal(t, []string{ExtendRoute, PositionInList, "Rating"}, dom.Keys())

	assert.True(t, home.Home)
	assert.Equal(t, "Zuhause", home.Name)
	assert.Equal(t, "53111", home.ZipCode)
	assert.Equal(t, "Markt", home.Street)
	assert.Equal(t, "2", home.HouseNo)
	v, _ = home.Get(PositionInList)
	assert.Equal(t, "HOME", v)
	_, ok = home.Get(keyLongitude)
	assert.False(t, ok, "recognized keys are not kept as attributes")
}

func TestReadSectionTitleIsImplicitIndex(t *testing.T) {
	input := "[TOUR]\nName = x\n\n[5]\nLongitude = 5\nLatitude = 5\n\n[3]\nLongitude = 3\nLatitude = 3\n\n[4]\nLongitude = 4\nLatitude = 4\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	var xs []int64
	for _, p := range route.Positions {
		xs = append(xs, p.X)
	}
	assert.Equal(t, []int64{3, 4, 5}, xs)
	v, _ := route.Positions[2].Get(PositionInList)
	assert.Equal(t, "5", v, "the last section is indexed by its title too")
}

func TestReadUnusableIndexKeepsFileOrder(t *testing.T) {
	input := "[1]\nPositionInList = b\nLongitude = 1\nLatitude = 1\n" +
		"[2]\nPositionInList = a\nLongitude = 2\nLatitude = 2\n" +
		"[3]\nPositionInList = 0\nLongitude = 3\nLatitude = 3\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, route.Positions, 3)
	assert.Equal(t, int64(3), route.Positions[0].X)
	assert.Equal(t, int64(1), route.Positions[1].X)
	assert.Equal(t, int64(2), route.Positions[2].X)
}

func TestReadCRLFAndBOM(t *testing.T) {
	input := "\ufeff[TOUR]\r\nName = Windows\r\n\r\n[1]\r\nCity = Bonn\r\nLongitude = +10\r\nLatitude = -20\r\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Windows", route.Name)
	require.Len(t, route.Positions, 1)
	assert.Equal(t, "Bonn", route.Positions[0].City)
	assert.Equal(t, int64(10), route.Positions[0].X)
	assert.Equal(t, int64(-20), route.Positions[0].Y)
}

func TestReadSkipsSectionsWithoutCoordinates(t *testing.T) {
	input := "[1]\nCity = Nowhere\nLongitude = 1\n\n[2]\nCity = Bonn\nLongitude = 2\nLatitude = 2\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, route.Positions, 1)
	assert.Equal(t, "Bonn", route.Positions[0].City)
}

func TestReadIgnoresPairsBeforeFirstSection(t *testing.T) {
	input := "City = Stray\n[1]\nLongitude = 2\nLatitude = 2\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, route.Positions[0].City)
}

func TestReadLaterValueWins(t *testing.T) {
	input := "[1]\nCity = Bonn\nCity = Köln\nLongitude = 2\nLatitude = 2\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Köln", route.Positions[0].City)
}

func TestReadMalformedLine(t *testing.T) {
	input := "[TOUR]\nName = x\n[1]\nthis is not a tour file\nLongitude = 1\nLatitude = 1\n"
	_, err := Read(strings.NewReader(input))

	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 4, malformed.Line)
	assert.Equal(t, "this is not a tour file", malformed.Text)
}

func TestReadEmptyNameIsMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("[1]\n = 5\n"))
	var malformed *MalformedLineError
	assert.True(t, errors.As(err, &malformed))
}

func TestReadInvalidCoordinate(t *testing.T) {
	input := "[7]\nLongitude = east\nLatitude = 1\n"
	_, err := Read(strings.NewReader(input))

	var invalid *InvalidValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "7", invalid.Section)
	assert.Equal(t, keyLongitude, invalid.Key)
	assert.Equal(t, "east", invalid.Value)
}

func TestReadNoPositions(t *testing.T) {
	for _, input := range []string{
		"",
		"[TOUR]\nName = Empty\nCreator = x\n",
		"[1]\nCity = Bonn\n",
	} {
		_, err := Read(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrNoPositions), "input %q", input)
	}
}

func TestReadLatin1(t *testing.T) {
	input := "[1]\nCity = K\xf6ln\nLongitude = 1\nLatitude = 1\n"
	route, err := Read(strings.NewReader(input), WithEncoding("ISO-8859-1"))
	require.NoError(t, err)
	assert.Equal(t, "Köln", route.Positions[0].City)
}

func TestReadUnsupportedEncoding(t *testing.T) {
	_, err := Read(strings.NewReader("[1]\n"), WithEncoding("ebcdic"))
	assert.Error(t, err)
}

func TestIsSectionTitle(t *testing.T) {
	for line, want := range map[string]string{
		"[TOUR]":     "TOUR",
		"[HOME]":     "HOME",
		"[12]":       "12",
		" [3] trail": "3",
		"[Tour]":     "",
		"[a1]":       "",
		"Name = x":   "",
	} {
		m := sectionTitlePattern.FindStringSubmatch(line)
		got := ""
		if m != nil {
			got = m[1]
		}
		assert.Equal(t, want, got, "line %q", line)
	}
}

func TestReadEuroEncodings(t *testing.T) {
	for enc, raw := range map[string]string{
		"windows-1252": "\x80",
		"iso-8859-15":  "\xa4",
	} {
		input := "[1]\nName = 5 " + raw + "\nLongitude = 1\nLatitude = 1\n"
		route, err := Read(strings.NewReader(input), WithEncoding(enc))
		require.NoError(t, err, enc)
		assert.Equal(t, "5 €", route.Positions[0].Name, enc)
	}
}

func TestReadTourSectionIsNeverAPosition(t *testing.T) {
	input := "[TOUR]\nName = x\nLongitude = 1\nLatitude = 1\n"
	_, err := Read(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrNoPositions)

	input = "[TOUR]\nName = x\nLongitude = 1\nLatitude = 1\n[1]\nLongitude = 2\nLatitude = 2\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, route.Positions, 1)
	assert.Equal(t, int64(2), route.Positions[0].X)
}

func TestReadLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	input := "[1]\nNote = " + long + "\nLongitude = 1\nLatitude = 1\n"
	route, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	v, _ := route.Positions[0].Get("Note")
	assert.Len(t, v, len(long))
}

func TestReadRejectsDoubleSign(t *testing.T) {
	for _, v := range []string{"+-5", "++5"} {
		_, err := Read(strings.NewReader("[1]\nLongitude = " + v + "\nLatitude = 1\n"))
		var invalid *InvalidValueError
		assert.True(t, errors.As(err, &invalid), v)
	}
}
