package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// stop is one day of the seeded itinerary.
type stop struct {
	date     string
	location string
}

var vietnamStops = []stop{
	{"2024-10-29", "Hanoi"},
	{"2024-10-30", "Ha Long Bay"},
	{"2024-10-31", "Ha Long Bay/Hanoi"},
	{"2024-11-01", "Sapa"},
	{"2024-11-02", "Sapa"},
	{"2024-11-03", "Hanoi to Phu Quoc"},
	{"2024-11-04", "Phu Quoc"},
	{"2024-11-05", "Phu Quoc"},
	{"2024-11-06", "Phu Quoc to Ho Chi Minh City"},
	{"2024-11-07", "Ho Chi Minh City"},
	{"2024-11-08", "Ho Chi Minh City"},
	{"2024-11-09", "Ho Chi Minh City to Phuket"},
	{"2024-11-10", "Phuket"},
	{"2024-11-11", "Phuket"},
	{"2024-11-12", "Phuket to Bangkok"},
	{"2024-11-13", "Bangkok"},
	{"2024-11-14", "Bangkok/USA"},
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// vietnamTrip returns the seeded trip and its stops.
func vietnamTrip() (domain.Trip, []stop) {
	end := mustDate("2024-11-14")
	return domain.Trip{
		Name:        "Vietnam",
		Destination: "Vietnam",
		StartDate:   mustDate("2024-10-29"),
		EndDate:     &end,
	}, vietnamStops
}

// itinerary turns stops into one activity per day of tripID.
func itinerary(tripID uuid.UUID, stops []stop) []domain.Activity {
	out := make([]domain.Activity, len(stops))
	for i, s := range stops {
		out[i] = domain.Activity{
			TripID:   tripID,
			Title:    s.location,
			Date:     mustDate(s.date),
			Location: s.location,
			Type:     "itinerary",
		}
	}
	return out
}
