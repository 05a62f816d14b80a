package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/model"
	workerModel "fieldtrack_backend/internals/features/workers/model"
)

// MemoryTimeEntryRepository is an in-memory TimeEntryRepository used by the
// test suites and local tooling. It mirrors the Postgres semantics that
// matter, in particular the one-open-entry-per-worker uniqueness.
type MemoryTimeEntryRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*model.TimeEntryModel
}

func NewMemoryTimeEntryRepository() *MemoryTimeEntryRepository {
	return &MemoryTimeEntryRepository{entries: make(map[uuid.UUID]*model.TimeEntryModel)}
}

func (r *MemoryTimeEntryRepository) CreateOpen(ctx context.Context, entry *model.TimeEntryModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.TimeEntryWorkerID == entry.TimeEntryWorkerID && e.IsOpen() {
			return ErrDuplicateOpenEntry
		}
	}
	return r.createLocked(entry)
}

func (r *MemoryTimeEntryRepository) FindOpenByWorker(_ context.Context, workerID uuid.UUID) (*model.TimeEntryModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.TimeEntryWorkerID == workerID && e.IsOpen() {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryTimeEntryRepository) CloseOpenEntry(_ context.Context, entryID uuid.UUID, fields CloseFields) (*model.TimeEntryModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok || !e.IsOpen() {
		return nil, ErrNotFound
	}
	end := fields.EndTime
	duration := fields.DurationMinutes
	e.TimeEntryEndTime = &end
	e.TimeEntryDurationMinutes = &duration
	e.TimeEntryLaborCost = fields.LaborCost
	e.TimeEntryClockOutLatitude = &fields.Latitude
	e.TimeEntryClockOutLongitude = &fields.Longitude
	e.TimeEntryClockOutWithinGeofence = fields.WithinGeofence
	e.TimeEntryClockOutDistanceM = fields.DistanceM
	if fields.Notes != nil {
		// clock-out notes replace clock-in notes
		e.TimeEntryNotes = fields.Notes
	}
	copied := *e
	return &copied, nil
}

func (r *MemoryTimeEntryRepository) Create(_ context.Context, entry *model.TimeEntryModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(entry)
}

func (r *MemoryTimeEntryRepository) createLocked(entry *model.TimeEntryModel) error {
	if entry.TimeEntryID == uuid.Nil {
		entry.TimeEntryID = uuid.New()
	}
	copied := *entry
	r.entries[entry.TimeEntryID] = &copied
	return nil
}

func (r *MemoryTimeEntryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.TimeEntryModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *MemoryTimeEntryRepository) Update(_ context.Context, entry *model.TimeEntryModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.TimeEntryID]; !ok {
		return ErrNotFound
	}
	copied := *entry
	r.entries[entry.TimeEntryID] = &copied
	return nil
}

func (r *MemoryTimeEntryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *MemoryTimeEntryRepository) ListByWorker(_ context.Context, workerID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TimeEntryModel
	for _, e := range r.entries {
		if e.TimeEntryWorkerID == workerID && matchesFilter(e, f) {
			out = append(out, *e)
		}
	}
	sortByStartDesc(out)
	return out, nil
}

func (r *MemoryTimeEntryRepository) ListByProject(_ context.Context, projectID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TimeEntryModel
	for _, e := range r.entries {
		if e.TimeEntryProjectID == projectID && matchesFilter(e, f) {
			out = append(out, *e)
		}
	}
	sortByStartDesc(out)
	return out, nil
}

func (r *MemoryTimeEntryRepository) LaborTotalsByProject(_ context.Context, projectID uuid.UUID) (*ProjectLaborTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := &ProjectLaborTotals{ProjectID: projectID}
	for _, e := range r.entries {
		if e.TimeEntryProjectID != projectID || e.IsOpen() {
			continue
		}
		totals.EntryCount++
		if e.TimeEntryDurationMinutes != nil {
			totals.TotalMinutes += int64(*e.TimeEntryDurationMinutes)
		}
		if e.TimeEntryLaborCost != nil {
			totals.TotalLaborCost += *e.TimeEntryLaborCost
		}
	}
	totals.TotalHours = roundHours(totals.TotalMinutes)
	return totals, nil
}

// Len reports how many entries are stored.
func (r *MemoryTimeEntryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func matchesFilter(e *model.TimeEntryModel, f ListFilter) bool {
	if !f.IncludeActive && e.IsOpen() {
		return false
	}
	if f.StartDate != nil && e.TimeEntryStartTime.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.TimeEntryStartTime.After(*f.EndDate) {
		return false
	}
	return true
}

func sortByStartDesc(entries []model.TimeEntryModel) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TimeEntryStartTime.After(entries[j].TimeEntryStartTime)
	})
}

// MemoryProjectStore / MemoryWorkerStore back the read-only context in tests.

type MemoryProjectStore struct {
	projects map[uuid.UUID]*projectModel.ProjectModel
}

func NewMemoryProjectStore(projects ...*projectModel.ProjectModel) *MemoryProjectStore {
	s := &MemoryProjectStore{projects: make(map[uuid.UUID]*projectModel.ProjectModel)}
	for _, p := range projects {
		s.projects[p.ProjectID] = p
	}
	return s
}

func (s *MemoryProjectStore) FindByID(_ context.Context, id uuid.UUID) (*projectModel.ProjectModel, error) {
	return s.projects[id], nil
}

type MemoryWorkerStore struct {
	workers map[uuid.UUID]*workerModel.WorkerModel
}

func NewMemoryWorkerStore(workers ...*workerModel.WorkerModel) *MemoryWorkerStore {
	s := &MemoryWorkerStore{workers: make(map[uuid.UUID]*workerModel.WorkerModel)}
	for _, w := range workers {
		s.workers[w.WorkerID] = w
	}
	return s
}

func (s *MemoryWorkerStore) FindByID(_ context.Context, id uuid.UUID) (*workerModel.WorkerModel, error) {
	return s.workers[id], nil
}
