package models

// Location is a venue activities take place at.
type Location struct {
	ID               string  `json:"id" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	HasFlatDailyRate bool    `json:"has_flat_daily_rate"`
	DailyRate        float64 `json:"daily_rate"`
}

// TravelTimeEdge records commute minutes between two locations. Edges are
// undirected; at most one exists per unordered location pair.
type TravelTimeEdge struct {
	LocationA string `json:"location_a" validate:"required"`
	LocationB string `json:"location_b" validate:"required"`
	Minutes   int    `json:"minutes" validate:"min=0"`
}
