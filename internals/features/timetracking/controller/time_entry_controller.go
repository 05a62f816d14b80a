package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fieldtrack_backend/internals/features/timetracking/dto"
	"fieldtrack_backend/internals/features/timetracking/repository"
	"fieldtrack_backend/internals/features/timetracking/service"
	helper "fieldtrack_backend/internals/helpers"
)

var validate = validator.New()

// TimeEntryController is the worker-facing surface: clock in/out against the
// authenticated identity, plus own-entry queries.
type TimeEntryController struct {
	Service *service.ClockService
}

func NewTimeEntryController(svc *service.ClockService) *TimeEntryController {
	return &TimeEntryController{Service: svc}
}

/* ===================== CLOCK IN ===================== */
// POST /api/u/time-entries/clock-in
func (ctrl *TimeEntryController) ClockIn(c *fiber.Ctx) error {
	workerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry, project, err := ctrl.Service.ClockIn(c.UserContext(), workerID, req.ProjectID, *req.Latitude, *req.Longitude, req.Notes)
	if err != nil {
		return clockErrorResponse(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clocked in", dto.FromModelWithProject(entry, project))
}

/* ===================== CLOCK OUT ===================== */
// POST /api/u/time-entries/clock-out
func (ctrl *TimeEntryController) ClockOut(c *fiber.Ctx) error {
	workerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ClockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry, project, err := ctrl.Service.ClockOut(c.UserContext(), workerID, *req.Latitude, *req.Longitude, req.Notes)
	if err != nil {
		return clockErrorResponse(c, err)
	}

	return helper.Success(c, "Clocked out", dto.FromModelWithProject(entry, project))
}

/* ===================== ACTIVE ENTRY ===================== */
// GET /api/u/time-entries/active
func (ctrl *TimeEntryController) GetActiveEntry(c *fiber.Ctx) error {
	workerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err := ctrl.Service.ActiveEntry(c.UserContext(), workerID)
	if err != nil {
		return persistenceErrorResponse(c, err)
	}
	if entry == nil {
		return helper.Success(c, "Not clocked in", nil)
	}
	return helper.Success(c, "Active entry", dto.FromModel(entry))
}

/* ===================== OWN ENTRIES ===================== */
// GET /api/u/time-entries
func (ctrl *TimeEntryController) ListMyEntries(c *fiber.Ctx) error {
	workerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.FilterTimeEntriesRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	entries, summary, err := ctrl.Service.EntriesForWorker(c.UserContext(), workerID, toListFilter(req))
	if err != nil {
		return persistenceErrorResponse(c, err)
	}

	return helper.Success(c, "Entries", dto.TimeEntryListResponse{
		Count:      summary.Count,
		TotalHours: summary.TotalHours,
		Entries:    dto.FromModels(entries),
	})
}

/* ===================== SHARED ===================== */

func toListFilter(req dto.FilterTimeEntriesRequest) repository.ListFilter {
	f := repository.ListFilter{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IncludeActive: true,
	}
	if req.IncludeActive != nil {
		f.IncludeActive = *req.IncludeActive
	}
	return f
}

// clockErrorResponse maps the service taxonomy onto HTTP. AlreadyClockedIn
// returns the conflicting open entry so the app can offer "clock out of X".
func clockErrorResponse(c *fiber.Ctx, err error) error {
	var conflict *service.AlreadyClockedInError
	switch {
	case errors.As(err, &conflict):
		return helper.ConflictWithData(c, "Already clocked in",
			dto.FromModelWithProject(conflict.OpenEntry, conflict.OpenProject))
	case errors.Is(err, service.ErrInvalidCoordinates):
		return helper.Error(c, fiber.StatusBadRequest, "Invalid coordinates")
	case errors.Is(err, service.ErrProjectNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrNoActiveEntry):
		return helper.Error(c, fiber.StatusConflict, "No active time entry")
	case errors.Is(err, service.ErrInvalidTimeRange):
		return helper.Error(c, fiber.StatusBadRequest, "End time must be after start time")
	case errors.Is(err, service.ErrEntryNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Time entry not found")
	default:
		return persistenceErrorResponse(c, err)
	}
}

func persistenceErrorResponse(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] time tracking persistence failure: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
}
