package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fieldtrack_backend/internals/features/timetracking/model"
)

var (
	// ErrDuplicateOpenEntry surfaces the uq_time_entries_open_per_worker
	// partial unique index: two concurrent clock-ins raced and this one lost.
	ErrDuplicateOpenEntry = errors.New("worker already has an open time entry")

	ErrNotFound = errors.New("time entry not found")
)

// ListFilter narrows worker/project listings.
type ListFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	IncludeActive bool
}

// CloseFields is everything the clock-out transition writes in one update.
type CloseFields struct {
	EndTime         time.Time
	DurationMinutes int
	LaborCost       *float64
	Latitude        float64
	Longitude       float64
	WithinGeofence  *bool
	DistanceM       *float64
	Notes           *string
}

// ProjectLaborTotals aggregates a project's closed entries.
type ProjectLaborTotals struct {
	ProjectID      uuid.UUID `json:"project_id"`
	EntryCount     int64     `json:"entry_count"`
	TotalMinutes   int64     `json:"total_minutes"`
	TotalHours     float64   `json:"total_hours"`
	TotalLaborCost float64   `json:"total_labor_cost"`
}

// TimeEntryRepository is the persistence boundary for time entries. The
// check-then-act sequences of clock-in and clock-out are atomic here, not in
/// the service: CreateOpen relies on the partial unique index, CloseOpenEntry
// locks the open row inside a transaction.
type TimeEntryRepository interface {
	CreateOpen(ctx context.Context, entry *model.TimeEntryModel) error
	FindOpenByWorker(ctx context.Context, workerID uuid.UUID) (*model.TimeEntryModel, error)
	CloseOpenEntry(ctx context.Context, entryID uuid.UUID, fields CloseFields) (*model.TimeEntryModel, error)

	Create(ctx context.Context, entry *model.TimeEntryModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TimeEntryModel, error)
	Update(ctx context.Context, entry *model.TimeEntryModel) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByWorker(ctx context.Context, workerID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error)
	LaborTotalsByProject(ctx context.Context, projectID uuid.UUID) (*ProjectLaborTotals, error)
}

type gormTimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &gormTimeEntryRepository{db: db}
}

func (r *gormTimeEntryRepository) CreateOpen(ctx context.Context, entry *model.TimeEntryModel) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOpenEntry
		}
		return err
	}
	return nil
}

func (r *gormTimeEntryRepository) FindOpenByWorker(ctx context.Context, workerID uuid.UUID) (*model.TimeEntryModel, error) {
	var entry model.TimeEntryModel
	err := r.db.WithContext(ctx).
		Where("time_entry_worker_id = ? AND time_entry_end_time IS NULL", workerID).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormTimeEntryRepository) CloseOpenEntry(ctx context.Context, entryID uuid.UUID, fields CloseFields) (*model.TimeEntryModel, error) {
	var closed model.TimeEntryModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the open row; if a concurrent clock-out got here first the
		// end_time predicate no longer matches and the caller sees NotFound.
		var entry model.TimeEntryModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("time_entry_id = ? AND time_entry_end_time IS NULL", entryID).
			Take(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		end := fields.EndTime
		entry.TimeEntryEndTime = &end
		entry.TimeEntryDurationMinutes = &fields.DurationMinutes
		entry.TimeEntryLaborCost = fields.LaborCost
		entry.TimeEntryClockOutLatitude = &fields.Latitude
		entry.TimeEntryClockOutLongitude = &fields.Longitude
		entry.TimeEntryClockOutWithinGeofence = fields.WithinGeofence
		entry.TimeEntryClockOutDistanceM = fields.DistanceM
		if fields.Notes != nil {
			// clock-out notes replace clock-in notes
			entry.TimeEntryNotes = fields.Notes
		}

		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		closed = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &closed, nil
}

func (r *gormTimeEntryRepository) Create(ctx context.Context, entry *model.TimeEntryModel) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormTimeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TimeEntryModel, error) {
	var entry model.TimeEntryModel
	err := r.db.WithContext(ctx).
		Where("time_entry_id = ?", id).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormTimeEntryRepository) Update(ctx context.Context, entry *model.TimeEntryModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Where("time_entry_id = ?", entry.TimeEntryID).
		Select("*").
		Omit("time_entry_id", "time_entry_created_at").
		Updates(entry)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormTimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("time_entry_id = ?", id).
		Delete(&model.TimeEntryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormTimeEntryRepository) ListByWorker(ctx context.Context, workerID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error) {
	q := r.db.WithContext(ctx).
		Where("time_entry_worker_id = ?", workerID)
	return listEntries(q, f)
}

func (r *gormTimeEntryRepository) ListByProject(ctx context.Context, projectID uuid.UUID, f ListFilter) ([]model.TimeEntryModel, error) {
	q := r.db.WithContext(ctx).
		Where("time_entry_project_id = ?", projectID)
	return listEntries(q, f)
}

func listEntries(q *gorm.DB, f ListFilter) ([]model.TimeEntryModel, error) {
	if f.StartDate != nil {
		q = q.Where("time_entry_start_time >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("time_entry_start_time <= ?", *f.EndDate)
	}
	if !f.IncludeActive {
		q = q.Where("time_entry_end_time IS NOT NULL")
	}

	var entries []model.TimeEntryModel
	if err := q.Order("time_entry_start_time DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormTimeEntryRepository) LaborTotalsByProject(ctx context.Context, projectID uuid.UUID) (*ProjectLaborTotals, error) {
	type row struct {
		EntryCount     int64
		TotalMinutes   int64
		TotalLaborCost float64
	}
	var agg row
	err := r.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Select(`
			COUNT(*) AS entry_count,
			COALESCE(SUM(time_entry_duration_minutes), 0) AS total_minutes,
			COALESCE(SUM(time_entry_labor_cost), 0) AS total_labor_cost`).
		Where("time_entry_project_id = ? AND time_entry_end_time IS NOT NULL", projectID).
		Take(&agg).Error
	if err != nil {
		return nil, err
	}

	return &ProjectLaborTotals{
		ProjectID:      projectID,
		EntryCount:     agg.EntryCount,
		TotalMinutes:   agg.TotalMinutes,
		TotalHours:     roundHours(agg.TotalMinutes),
		TotalLaborCost: agg.TotalLaborCost,
	}, nil
}

func roundHours(minutes int64) float64 {
	h := float64(minutes) / 60.0
	return float64(int64(h*100+0.5)) / 100
}
