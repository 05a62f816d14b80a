package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Clock in (JSON). Coordinates are pointers so 0 survives "required".
type ClockInRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Latitude  *float64  `json:"latitude"   validate:"required"`
	Longitude *float64  `json:"longitude"  validate:"required"`
	Notes     *string   `json:"notes"      validate:"omitempty,max=2000"`
}

// Clock out (JSON)
type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Notes     *string  `json:"notes"     validate:"omitempty,max=2000"`
}

// Manual entry (admin JSON)
type CreateManualEntryRequest struct {
	WorkerID  uuid.UUID `json:"worker_id"  validate:"required"`
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
	Notes     *string   `json:"notes"      validate:"omitempty,max=2000"`
}

// Update (admin partial JSON)
type UpdateTimeEntryRequest struct {
	WorkerID  *uuid.UUID `json:"worker_id"  validate:"omitempty"`
	ProjectID *uuid.UUID `json:"project_id" validate:"omitempty"`
	StartTime *time.Time `json:"start_time" validate:"omitempty"`
	EndTime   *time.Time `json:"end_time"   validate:"omitempty"`
	Notes     *string    `json:"notes"      validate:"omitempty,max=2000"`
}

// Filter / list (query)
type FilterTimeEntriesRequest struct {
	StartDate     *time.Time `query:"start_date"     validate:"omitempty"`
	EndDate       *time.Time `query:"end_date"       validate:"omitempty"`
	IncludeActive *bool      `query:"include_active" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// GeofenceResult as surfaced to callers. Validated=false means the project
// has no site reference point (or a manual entry); distance is omitted then.
type GeofenceResult struct {
	Validated      bool  `json:"validated"`
	WithinGeofence bool  `json:"within_geofence"`
	DistanceMeters *int  `json:"distance_meters,omitempty"`
}

type TimeEntryResponse struct {
	TimeEntryID        uuid.UUID  `json:"time_entry_id"`
	TimeEntryWorkerID  uuid.UUID  `json:"time_entry_worker_id"`
	TimeEntryProjectID uuid.UUID  `json:"time_entry_project_id"`

	ProjectName *string `json:"project_name,omitempty"`

	TimeEntryStartTime       time.Time  `json:"time_entry_start_time"`
	TimeEntryEndTime         *time.Time `json:"time_entry_end_time,omitempty"`
	TimeEntryDurationMinutes *int       `json:"time_entry_duration_minutes,omitempty"`
	TimeEntryLaborCost       *float64   `json:"time_entry_labor_cost,omitempty"`

	ClockInGeofence  *GeofenceResult `json:"clock_in_geofence,omitempty"`
	ClockOutGeofence *GeofenceResult `json:"clock_out_geofence,omitempty"`

	TimeEntryNotes *string `json:"time_entry_notes,omitempty"`

	TimeEntryCreatedAt time.Time  `json:"time_entry_created_at"`
	TimeEntryUpdatedAt *time.Time `json:"time_entry_updated_at,omitempty"`
}

type TimeEntryListResponse struct {
	Count      int                 `json:"count"`
	TotalHours float64             `json:"total_hours"`
	Entries    []TimeEntryResponse `json:"entries"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromModel(e *model.TimeEntryModel) TimeEntryResponse {
	return TimeEntryResponse{
		TimeEntryID:              e.TimeEntryID,
		TimeEntryWorkerID:        e.TimeEntryWorkerID,
		TimeEntryProjectID:       e.TimeEntryProjectID,
		TimeEntryStartTime:       e.TimeEntryStartTime,
		TimeEntryEndTime:         e.TimeEntryEndTime,
		TimeEntryDurationMinutes: e.TimeEntryDurationMinutes,
		TimeEntryLaborCost:       e.TimeEntryLaborCost,
		ClockInGeofence:          geofenceResult(e.TimeEntryClockInLatitude, e.TimeEntryClockInWithinGeofence, e.TimeEntryClockInDistanceM),
		ClockOutGeofence:         geofenceResult(e.TimeEntryClockOutLatitude, e.TimeEntryClockOutWithinGeofence, e.TimeEntryClockOutDistanceM),
		TimeEntryNotes:           e.TimeEntryNotes,
		TimeEntryCreatedAt:       e.TimeEntryCreatedAt,
		TimeEntryUpdatedAt:       e.TimeEntryUpdatedAt,
	}
}

// FromModelWithProject attaches the project summary for display.
func FromModelWithProject(e *model.TimeEntryModel, p *projectModel.ProjectModel) TimeEntryResponse {
	resp := FromModel(e)
	if p != nil {
		resp.ProjectName = &p.ProjectName
	}
	return resp
}

func FromModels(entries []model.TimeEntryModel) []TimeEntryResponse {
	out := make([]TimeEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, FromModel(&entries[i]))
	}
	return out
}

// geofenceResult rebuilds the check outcome from the stored columns. A
// captured coordinate with nil geofence fields means "not validated"; no
// coordinate at all (manual entry side) means no check happened.
func geofenceResult(lat *float64, within *bool, distanceM *float64) *GeofenceResult {
	if lat == nil {
		return nil
	}
	res := &GeofenceResult{}
	if within != nil {
		res.Validated = true
		res.WithinGeofence = *within
	}
	if distanceM != nil {
		d := int(math.Round(*distanceM))
		res.DistanceMeters = &d
	}
	return res
}
