package service

import (
	"errors"
	"fmt"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/model"
)

// Recoverable, user-facing failures. The HTTP layer maps these onto status
// codes; anything else coming out of the service is a persistence fault.
var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrProjectNotFound    = errors.New("project not found")
	ErrNoActiveEntry      = errors.New("no active time entry")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrEntryNotFound      = errors.New("time entry not found")
)

// AlreadyClockedInError carries the conflicting open entry (and its project,
// when it still resolves) so the caller can show "you're already clocked in
// at X" and offer to clock out instead.
type AlreadyClockedInError struct {
	OpenEntry   *model.TimeEntryModel
	OpenProject *projectModel.ProjectModel
}

func (e *AlreadyClockedInError) Error() string {
	return fmt.Sprintf("worker already clocked in (entry %s)", e.OpenEntry.TimeEntryID)
}
