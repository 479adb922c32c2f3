package models

// Weekday enumerates the days an activity slot can occupy.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// TimeSlot is a half-open interval on one day, in minutes from midnight.
// Producers guarantee StartMinute < EndMinute and both within [0, 1440).
type TimeSlot struct {
	Day         Weekday `json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartMinute int     `json:"start_minute" validate:"min=0,max=1439"`
	EndMinute   int     `json:"end_minute" validate:"min=1,max=1440"`
}

// CostPeriod qualifies how an activity's cost recurs.
type CostPeriod string

const (
	CostPerTerm  CostPeriod = "TERM"
	CostPerMonth CostPeriod = "MONTH"
	CostPerYear  CostPeriod = "YEAR"
	CostOneOff   CostPeriod = "ONE_OFF"
)

// Activity is a candidate timed activity bound to a location. Records are
// produced by the import/entry collaborator and are read-only here.
type Activity struct {
	ID         string     `json:"id" validate:"required"`
	Name       string     `json:"name" validate:"required"`
	LocationID string     `json:"location_id" validate:"required"`
	TimeSlots  []TimeSlot `json:"time_slots" validate:"dive"`
	Cost       float64    `json:"cost"`
	CostPeriod CostPeriod `json:"cost_period,omitempty"`
	// CategoryTags is ordered; the first entry is the primary category.
	CategoryTags []string `json:"category_tags,omitempty"`
	GradeRange   string   `json:"grade_range,omitempty"`
}

// PrimaryCategory returns the first category tag, or "" when untagged.
func (a Activity) PrimaryCategory() string {
	if len(a.CategoryTags) == 0 {
		return ""
	}
	return a.CategoryTags[0]
}
