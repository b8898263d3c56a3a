package domain

import "math"

const earthRadiusKm = 6371.0

func hsin(theta float64) float64 {
	return math.Pow(math.Sin(theta/2), 2)
}

// DistanceKm returns the haversine great-circle distance in kilometers
// between two WGS-84 coordinates. Total function: NaN inputs propagate NaN.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	la1 := lat1 * math.Pi / 180
	lo1 := lon1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	lo2 := lon2 * math.Pi / 180

	h := hsin(la2-la1) + math.Cos(la1)*math.Cos(la2)*hsin(lo2-lo1)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
