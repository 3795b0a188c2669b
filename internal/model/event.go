package model

import "time"

// Event represents a bookable production as stored in the `events`
// table.  An event carries its descriptive metadata and an overall
// run window; individual dates and prices live on performances.
//
// Fields:
//  ID              – primary key identifier, immutable once created.
//  Title           – display title of the event.
//  Genre           – genre label (e.g. "Musical", "Comedy").
//  Description     – long-form description.
//  DurationMinutes – running time of one performance in minutes.
//  StartDate       – first day of the run.
//  EndDate         – last day of the run.
type Event struct {
	ID              uint64    `json:"id"`               // events.id
	Title           string    `json:"title"`            // events.title
	Genre           string    `json:"genre"`            // events.genre
	Description     string    `json:"description"`      // events.description
	DurationMinutes int       `json:"duration_minutes"` // events.duration_minutes
	StartDate       time.Time `json:"start_date"`       // events.start_date
	EndDate         time.Time `json:"end_date"`         // events.end_date
}

// Performance is one scheduled occurrence of an Event with its own
// pricing bands and capacity.  Many performances belong to one event.
//
// Fields:
//  ID              – primary key identifier.
//  EventID         – parent event.
//  PerformanceDate – calendar date of this performance.
//  StartTime       – start time (HH:MM:SS as stored).
//  EndTime         – end time.
//  Band1Price      – price of the top tier in the house.
//  Band2Price      – price of the middle tier.
//  Band3Price      – price of the cheapest tier.
//  Capacity        – number of seats in the house.  Never checked
//                    against sold tickets; overbooking is possible and
//                    is a documented gap carried over from the schema.
type Performance struct {
	ID              uint64    `json:"id"`               // performances.id
	EventID         uint64    `json:"event_id"`         // performances.event_id
	PerformanceDate time.Time `json:"performance_date"` // performances.performance_date
	StartTime       string    `json:"start_time"`       // performances.start_time
	EndTime         string    `json:"end_time"`         // performances.end_time
	Band1Price      float64   `json:"band1_price"`      // performances.band1_price
	Band2Price      float64   `json:"band2_price"`      // performances.band2_price
	Band3Price      float64   `json:"band3_price"`      // performances.band3_price
	Capacity        int       `json:"capacity"`         // performances.capacity
}

// Discount maps a customer category to a percentage taken off the band
// price of every ticket in that category.  Rows are owned by an
// administrative process; the booking path only ever reads them.
//
// Fields:
//  ID         – primary key identifier.
//  Category   – category label ("Children", "Old Age Pensioners",
//               "Social Group").
//  Percentage – discount percentage in the range 0–100.
type Discount struct {
	ID         uint64  `json:"id"`         // discounts.id
	Category   string  `json:"category"`   // discounts.category
	Percentage float64 `json:"percentage"` // discounts.percentage
}
