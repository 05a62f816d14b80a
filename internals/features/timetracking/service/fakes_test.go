package service

import (
	"context"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/model"
	"fieldtrack_backend/internals/features/timetracking/repository"
	workerModel "fieldtrack_backend/internals/features/workers/model"
)

// fakeEntryRepo wraps the in-memory repository with a hook that simulates
// losing the insert race after the friendly-path check already passed.
type fakeEntryRepo struct {
	*repository.MemoryTimeEntryRepository

	forceDuplicateOnCreate *model.TimeEntryModel
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{MemoryTimeEntryRepository: repository.NewMemoryTimeEntryRepository()}
}

func (r *fakeEntryRepo) CreateOpen(ctx context.Context, entry *model.TimeEntryModel) error {
	if r.forceDuplicateOnCreate != nil {
		if err := r.MemoryTimeEntryRepository.Create(ctx, r.forceDuplicateOnCreate); err != nil {
			return err
		}
		r.forceDuplicateOnCreate = nil
		return repository.ErrDuplicateOpenEntry
	}
	return r.MemoryTimeEntryRepository.CreateOpen(ctx, entry)
}

type fakeProjectStore = repository.MemoryProjectStore

func newFakeProjectStore(projects ...*projectModel.ProjectModel) *fakeProjectStore {
	return repository.NewMemoryProjectStore(projects...)
}

type fakeWorkerStore = repository.MemoryWorkerStore

func newFakeWorkerStore(workers ...*workerModel.WorkerModel) *fakeWorkerStore {
	return repository.NewMemoryWorkerStore(workers...)
}
