package geo

import (
	"math"

	"github.com/umahmood/haversine"

	"fittrack/internal/models"
)

// TotalDistanceKm sums the great-circle distance over consecutive route
// points, rounded to two decimals. Fewer than two points is zero.
func TotalDistanceKm(points []models.RoutePoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		prev := haversine.Coord{Lat: points[i-1].Latitude, Lon: points[i-1].Longitude}
		cur := haversine.Coord{Lat: points[i].Latitude, Lon: points[i].Longitude}
		_, km := haversine.Distance(prev, cur)
		total += km
	}
	return math.Round(total*100) / 100
}
