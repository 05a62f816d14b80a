package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	workerModel "fieldtrack_backend/internals/features/workers/model"
)

// ProjectStore and WorkerStore are the read-only context the clock service
// needs: site coordinates for geofencing and hourly rates for labor cost.
// Both return (nil, nil) when the row does not exist.

type ProjectStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*projectModel.ProjectModel, error)
}

type WorkerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*workerModel.WorkerModel, error)
}

type gormProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) ProjectStore {
	return &gormProjectStore{db: db}
}

func (s *gormProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*projectModel.ProjectModel, error) {
	var p projectModel.ProjectModel
	err := s.db.WithContext(ctx).
		Where("project_id = ?", id).
		Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

type gormWorkerStore struct {
	db *gorm.DB
}

func NewWorkerStore(db *gorm.DB) WorkerStore {
	return &gormWorkerStore{db: db}
}

func (s *gormWorkerStore) FindByID(ctx context.Context, id uuid.UUID) (*workerModel.WorkerModel, error) {
	var w workerModel.WorkerModel
	err := s.db.WithContext(ctx).
		Where("worker_id = ?", id).
		Take(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}
