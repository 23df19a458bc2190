package models

// RoutePoint is a single GPS fix inside a tracking session. Sessions are
// transient and live in Redis, not in Postgres.
type RoutePoint struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Timestamp string  `json:"timestamp"`
}
