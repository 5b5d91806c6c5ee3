package nav

import "math"

// Falk and a few other vendors store positions as integral meters on a
// spherical Mercator projection with this radius.
const earthRadius = 6371000.0

func roundWGS84(v float64) float64 {
	return math.Floor(v*100000.0) / 100000.0
}

func roundMercator(wgs84, mercator float64) int64 {
	if wgs84 > 0.0 {
		return int64(math.Ceil(mercator))
	}
	return int64(math.Floor(mercator))
}

func MercatorXToLongitude(x int64) float64 {
	return roundWGS84(float64(x) * 180.0 / (earthRadius * math.Pi))
}

func MercatorYToLatitude(y int64) float64 {
	lat := 2.0 * (math.Atan(math.Exp(float64(y)/earthRadius)) - math.Pi/4.0) / math.Pi * 180.0
	return roundWGS84(lat)
}

func LongitudeToMercatorX(longitude float64) int64 {
	return roundMercator(longitude, longitude*earthRadius*math.Pi/180.0)
}

func LatitudeToMercatorY(latitude float64) int64 {
	y := math.Log(math.Tan(latitude*math.Pi/360.0+math.Pi/4.0)) * earthRadius
	return roundMercator(latitude, y)
}
