package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntryModel is one shift record. A nil TimeEntryEndTime means the entry
// is open (the worker is currently clocked in). At most one open entry may
// exist per worker; the partial unique index uq_time_entries_open_per_worker
// enforces that at the database level.
type TimeEntryModel struct {
	TimeEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:time_entry_id" json:"time_entry_id"`

	TimeEntryWorkerID  uuid.UUID `gorm:"type:uuid;not null;index;column:time_entry_worker_id"  json:"time_entry_worker_id"`
	TimeEntryProjectID uuid.UUID `gorm:"type:uuid;not null;index;column:time_entry_project_id" json:"time_entry_project_id"`

	TimeEntryStartTime time.Time  `gorm:"not null;column:time_entry_start_time" json:"time_entry_start_time"`
	TimeEntryEndTime   *time.Time `gorm:"column:time_entry_end_time"            json:"time_entry_end_time,omitempty"`

	// Frozen at clock-out. Nil while the entry is open; labor cost also stays
	// nil when the worker has no configured hourly rate.
	TimeEntryDurationMinutes *int     `gorm:"column:time_entry_duration_minutes"            json:"time_entry_duration_minutes,omitempty"`
	TimeEntryLaborCost       *float64 `gorm:"type:numeric(12,2);column:time_entry_labor_cost" json:"time_entry_labor_cost,omitempty"`

	// Clock-in capture. Nil geofence fields mean the check was not validated
	// (no site reference point, or a manual entry with no coordinates).
	TimeEntryClockInLatitude       *float64 `gorm:"column:time_entry_clock_in_latitude"        json:"time_entry_clock_in_latitude,omitempty"`
	TimeEntryClockInLongitude      *float64 `gorm:"column:time_entry_clock_in_longitude"       json:"time_entry_clock_in_longitude,omitempty"`
	TimeEntryClockInWithinGeofence *bool    `gorm:"column:time_entry_clock_in_within_geofence" json:"time_entry_clock_in_within_geofence,omitempty"`
	TimeEntryClockInDistanceM      *float64 `gorm:"column:time_entry_clock_in_distance_m"      json:"time_entry_clock_in_distance_m,omitempty"`

	// Clock-out capture, symmetric with clock-in.
	TimeEntryClockOutLatitude       *float64 `gorm:"column:time_entry_clock_out_latitude"        json:"time_entry_clock_out_latitude,omitempty"`
	TimeEntryClockOutLongitude      *float64 `gorm:"column:time_entry_clock_out_longitude"       json:"time_entry_clock_out_longitude,omitempty"`
	TimeEntryClockOutWithinGeofence *bool    `gorm:"column:time_entry_clock_out_within_geofence" json:"time_entry_clock_out_within_geofence,omitempty"`
	TimeEntryClockOutDistanceM      *float64 `gorm:"column:time_entry_clock_out_distance_m"      json:"time_entry_clock_out_distance_m,omitempty"`

	TimeEntryNotes *string `gorm:"column:time_entry_notes" json:"time_entry_notes,omitempty"`

	TimeEntryCreatedAt time.Time  `gorm:"column:time_entry_created_at;autoCreateTime" json:"time_entry_created_at"`
	TimeEntryUpdatedAt *time.Time `gorm:"column:time_entry_updated_at;autoUpdateTime" json:"time_entry_updated_at,omitempty"`
}

func (TimeEntryModel) TableName() string { return "time_entries" }

// IsOpen reports whether the worker is still clocked in on this entry.
func (e *TimeEntryModel) IsOpen() bool { return e.TimeEntryEndTime == nil }
