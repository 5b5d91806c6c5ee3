package tour

import (
	"sort"
	"strconv"
	"strings"
)

// positionInList returns the explicit list index of p. ok is false when the
// attribute is missing or not an integer.
func positionInList(p *Position) (index int64, ok bool) {
	v, found := p.Attributes[PositionInList]
	if !found {
		return 0, false
	}
	index, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return index, true
}

// SortPositions orders positions by PositionInList. Positions without a
// usable index go last, in their original order.
func SortPositions(positions []*Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		a, aok := positionInList(positions[i])
		b, bok := positionInList(positions[j])
		switch {
		case aok && bok:
			return a < b
		case aok:
			return true
		default:
			return false
		}
	})
}
