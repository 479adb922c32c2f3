package models

import "time"

// ScheduleSet is one named candidate full-week schedule. ActivityIDs never
// contains duplicates and preserves insertion order.
type ScheduleSet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ActivityIDs []string  `json:"activity_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasActivity reports membership of an activity id.
func (s ScheduleSet) HasActivity(activityID string) bool {
	for _, id := range s.ActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}

// CostLineItem is one activity's contribution to a set's running cost.
type CostLineItem struct {
	ActivityID   string     `json:"activity_id"`
	ActivityName string     `json:"activity_name"`
	Cost         float64    `json:"cost"`
	Period       CostPeriod `json:"period,omitempty"`
}

// FlatRateCharge totals a flat-daily-rate location over the days a set visits it.
type FlatRateCharge struct {
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	DailyRate    float64 `json:"daily_rate"`
	Days         int     `json:"days"`
	Total        float64 `json:"total"`
}

// CostSummary is the running cost total of a schedule set.
type CostSummary struct {
	SetID         string                 `json:"set_id"`
	SetName       string                 `json:"set_name"`
	Items         []CostLineItem         `json:"items"`
	PeriodTotals  map[CostPeriod]float64 `json:"period_totals"`
	FlatRates     []FlatRateCharge       `json:"flat_rates,omitempty"`
	FlatRateTotal float64                `json:"flat_rate_total"`
}
