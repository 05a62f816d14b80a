package service

import (
	"math"
	"time"

	"fieldtrack_backend/internals/features/timetracking/model"
)

// DurationMinutes is the shift length in whole minutes, rounded to nearest.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// LaborCost converts a shift duration and an hourly rate into a dollar
// amount, rounded to cents.
func LaborCost(durationMinutes int, hourlyRate float64) float64 {
	hours := float64(durationMinutes) / 60.0
	return math.Round(hours*hourlyRate*100) / 100
}

// TotalHours sums duration across a set of entries (open entries count as 0)
// and converts to hours rounded to 2 decimals.
func TotalHours(entries []model.TimeEntryModel) float64 {
	totalMinutes := 0
	for i := range entries {
		if entries[i].TimeEntryDurationMinutes != nil {
			totalMinutes += *entries[i].TimeEntryDurationMinutes
		}
	}
	return math.Round(float64(totalMinutes)/60.0*100) / 100
}
