package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/geofence"
	"fieldtrack_backend/internals/features/timetracking/model"
	"fieldtrack_backend/internals/features/timetracking/repository"
)

// ClockService owns the clock-in/clock-out state machine. It is a stateless
// value constructed once at startup and handed to the controllers; all shared
// state lives behind the repository.
type ClockService struct {
	entries  repository.TimeEntryRepository
	projects repository.ProjectStore
	workers  repository.WorkerStore

	// Now is swappable in tests.
	Now func() time.Time
}

func NewClockService(entries repository.TimeEntryRepository, projects repository.ProjectStore, workers repository.WorkerStore) *ClockService {
	return &ClockService{
		entries:  entries,
		projects: projects,
		workers:  workers,
		Now:      time.Now,
	}
}

/* ===================== CLOCK IN ===================== */

// ClockIn opens a new time entry for the worker at the given project. The
// returned project is the one clocked into (for display). Fails with
// ErrInvalidCoordinates, ErrProjectNotFound, or *AlreadyClockedInError.
func (s *ClockService) ClockIn(ctx context.Context, workerID, projectID uuid.UUID, lat, lon float64, notes *string) (*model.TimeEntryModel, *projectModel.ProjectModel, error) {
	if !geofence.ValidCoordinate(lat, lon) {
		return nil, nil, ErrInvalidCoordinates
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		return nil, nil, ErrProjectNotFound
	}

	// Friendly-path check so the common double-submit gets the open entry
	// back without hitting the constraint. The unique index below is what
	// actually holds under a race.
	if open, err := s.entries.FindOpenByWorker(ctx, workerID); err != nil {
		return nil, nil, err
	} else if open != nil {
		return nil, nil, s.alreadyClockedIn(ctx, open)
	}

	entry := &model.TimeEntryModel{
		TimeEntryWorkerID:         workerID,
		TimeEntryProjectID:        projectID,
		TimeEntryStartTime:        s.Now(),
		TimeEntryClockInLatitude:  &lat,
		TimeEntryClockInLongitude: &lon,
		TimeEntryNotes:            notes,
	}
	applyClockInGeofence(entry, classifyAgainstSite(project, lat, lon))

	if err := s.entries.CreateOpen(ctx, entry); err != nil {
		if err == repository.ErrDuplicateOpenEntry {
			// Lost the race to a concurrent clock-in.
			open, ferr := s.entries.FindOpenByWorker(ctx, workerID)
			if ferr != nil || open == nil {
				return nil, nil, err
			}
			return nil, nil, s.alreadyClockedIn(ctx, open)
		}
		return nil, nil, err
	}

	return entry, project, nil
}

func (s *ClockService) alreadyClockedIn(ctx context.Context, open *model.TimeEntryModel) error {
	e := &AlreadyClockedInError{OpenEntry: open}
	// Best effort; the conflict stands even if the project no longer resolves.
	if p, err := s.projects.FindByID(ctx, open.TimeEntryProjectID); err == nil {
		e.OpenProject = p
	}
	return e
}

/* ===================== CLOCK OUT ===================== */

// ClockOut closes the worker's open entry, freezing duration and labor cost.
// The geofence check is independent of the clock-in one: being outside the
// fence at either end is recorded, never blocking. Fails with
// ErrInvalidCoordinates, ErrNoActiveEntry, or ErrProjectNotFound (defensive).
func (s *ClockService) ClockOut(ctx context.Context, workerID uuid.UUID, lat, lon float64, notes *string) (*model.TimeEntryModel, *projectModel.ProjectModel, error) {
	if !geofence.ValidCoordinate(lat, lon) {
		return nil, nil, ErrInvalidCoordinates
	}

	open, err := s.entries.FindOpenByWorker(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}
	if open == nil {
		return nil, nil, ErrNoActiveEntry
	}

	project, err := s.projects.FindByID(ctx, open.TimeEntryProjectID)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		return nil, nil, ErrProjectNotFound
	}

	res := classifyAgainstSite(project, lat, lon)

	end := s.Now()
	duration := DurationMinutes(open.TimeEntryStartTime, end)

	// Labor cost uses the worker's rate as of clock-out; a mid-shift rate
	// change bills the whole shift at the new rate.
	var cost *float64
	if worker, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, nil, err
	} else if worker != nil && worker.WorkerHourlyRate != nil {
		c := LaborCost(duration, *worker.WorkerHourlyRate)
		cost = &c
	}

	fields := repository.CloseFields{
		EndTime:         end,
		DurationMinutes: duration,
		LaborCost:       cost,
		Latitude:        lat,
		Longitude:       lon,
		Notes:           notes,
	}
	if res.Validated {
		within := res.WithinGeofence
		dist := res.DistanceMeters
		fields.WithinGeofence = &within
		fields.DistanceM = &dist
	}

	closed, err := s.entries.CloseOpenEntry(ctx, open.TimeEntryID, fields)
	if err != nil {
		if err == repository.ErrNotFound {
			// Someone else closed it between the find and the lock.
			return nil, nil, ErrNoActiveEntry
		}
		return nil, nil, err
	}

	return closed, project, nil
}

/* ===================== MANUAL ENTRY (privileged) ===================== */

// CreateManualEntry creates an already-closed correction entry with no
// geofence check. Overlap with the worker's other entries is intentionally
// not checked; admins use this to backfill missed shifts.
func (s *ClockService) CreateManualEntry(ctx context.Context, workerID, projectID uuid.UUID, start, end time.Time, notes *string) (*model.TimeEntryModel, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	duration := DurationMinutes(start, end)

	var cost *float64
	if worker, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, err
	} else if worker != nil && worker.WorkerHourlyRate != nil {
		c := LaborCost(duration, *worker.WorkerHourlyRate)
		cost = &c
	}

	entry := &model.TimeEntryModel{
		TimeEntryWorkerID:        workerID,
		TimeEntryProjectID:       projectID,
		TimeEntryStartTime:       start,
		TimeEntryEndTime:         &end,
		TimeEntryDurationMinutes: &duration,
		TimeEntryLaborCost:       cost,
		TimeEntryNotes:           notes,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

/* ===================== MUTATION (privileged) ===================== */

// UpdateEntryFields is the admin partial-edit payload. Nil means unchanged.
type UpdateEntryFields struct {
	WorkerID  *uuid.UUID
	ProjectID *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
}

// UpdateEntry force-edits an entry. When start/end change on a closed entry,
// duration and labor cost are recomputed (cost at the worker's current rate),
// so the stored derived fields never drift from the times.
func (s *ClockService) UpdateEntry(ctx context.Context, id uuid.UUID, fields UpdateEntryFields) (*model.TimeEntryModel, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	timesChanged := false
	if fields.WorkerID != nil {
		entry.TimeEntryWorkerID = *fields.WorkerID
	}
	if fields.ProjectID != nil {
		entry.TimeEntryProjectID = *fields.ProjectID
	}
	if fields.StartTime != nil {
		entry.TimeEntryStartTime = *fields.StartTime
		timesChanged = true
	}
	if fields.EndTime != nil {
		entry.TimeEntryEndTime = fields.EndTime
		timesChanged = true
	}
	if fields.Notes != nil {
		entry.TimeEntryNotes = fields.Notes
	}

	if entry.TimeEntryEndTime != nil {
		if entry.TimeEntryEndTime.Before(entry.TimeEntryStartTime) {
			return nil, ErrInvalidTimeRange
		}
		if timesChanged {
			duration := DurationMinutes(entry.TimeEntryStartTime, *entry.TimeEntryEndTime)
			entry.TimeEntryDurationMinutes = &duration

			entry.TimeEntryLaborCost = nil
			if worker, err := s.workers.FindByID(ctx, entry.TimeEntryWorkerID); err != nil {
				return nil, err
			} else if worker != nil && worker.WorkerHourlyRate != nil {
				c := LaborCost(duration, *worker.WorkerHourlyRate)
				entry.TimeEntryLaborCost = &c
			}
		}
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// DeleteEntry hard-deletes an entry.
func (s *ClockService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

/* ===================== QUERIES ===================== */

// ListSummary accompanies every listing.
type ListSummary struct {
	Count      int     `json:"count"`
	TotalHours float64 `json:"total_hours"`
}

// ActiveEntry returns the worker's open entry, or nil when not clocked in.
func (s *ClockService) ActiveEntry(ctx context.Context, workerID uuid.UUID) (*model.TimeEntryModel, error) {
	return s.entries.FindOpenByWorker(ctx, workerID)
}

func (s *ClockService) EntriesForWorker(ctx context.Context, workerID uuid.UUID, f repository.ListFilter) ([]model.TimeEntryModel, ListSummary, error) {
	entries, err := s.entries.ListByWorker(ctx, workerID, f)
	if err != nil {
		return nil, ListSummary{}, err
	}
	return entries, summarize(entries), nil
}

func (s *ClockService) EntriesForProject(ctx context.Context, projectID uuid.UUID, f repository.ListFilter) ([]model.TimeEntryModel, ListSummary, error) {
	entries, err := s.entries.ListByProject(ctx, projectID, f)
	if err != nil {
		return nil, ListSummary{}, err
	}
	return entries, summarize(entries), nil
}

// ProjectLaborTotals aggregates labor cost across a project's closed entries.
func (s *ClockService) ProjectLaborTotals(ctx context.Context, projectID uuid.UUID) (*repository.ProjectLaborTotals, error) {
	return s.entries.LaborTotalsByProject(ctx, projectID)
}

func summarize(entries []model.TimeEntryModel) ListSummary {
	return ListSummary{
		Count:      len(entries),
		TotalHours: TotalHours(entries),
	}
}

/* ===================== HELPERS ===================== */

func classifyAgainstSite(project *projectModel.ProjectModel, lat, lon float64) geofence.Result {
	if !project.HasSiteLocation() {
		return geofence.NotValidated()
	}
	return geofence.Classify(lat, lon, *project.ProjectSiteLatitude, *project.ProjectSiteLongitude, geofence.DefaultRadiusMeters)
}

func applyClockInGeofence(entry *model.TimeEntryModel, res geofence.Result) {
	if !res.Validated {
		return
	}
	within := res.WithinGeofence
	dist := res.DistanceMeters
	entry.TimeEntryClockInWithinGeofence = &within
	entry.TimeEntryClockInDistanceM = &dist
}
