package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fieldtrack_backend/internals/features/timetracking/dto"
	"fieldtrack_backend/internals/features/timetracking/service"
	helper "fieldtrack_backend/internals/helpers"
)

// AdminTimeEntryController is the privileged surface: manual correction
// entries, force edits, deletion, and per-worker/per-project reporting.
type AdminTimeEntryController struct {
	Service *service.ClockService
}

func NewAdminTimeEntryController(svc *service.ClockService) *AdminTimeEntryController {
	return &AdminTimeEntryController{Service: svc}
}

/* ===================== MANUAL ENTRY ===================== */
// POST /api/a/time-entries
func (ctrl *AdminTimeEntryController) CreateManualEntry(c *fiber.Ctx) error {
	var req dto.CreateManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry, err := ctrl.Service.CreateManualEntry(c.UserContext(), req.WorkerID, req.ProjectID, req.StartTime, req.EndTime, req.Notes)
	if err != nil {
		return clockErrorResponse(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Manual entry created", dto.FromModel(entry))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/time-entries/:id
func (ctrl *AdminTimeEntryController) UpdateEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid entry id")
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry, err := ctrl.Service.UpdateEntry(c.UserContext(), id, service.UpdateEntryFields{
		WorkerID:  req.WorkerID,
		ProjectID: req.ProjectID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		return clockErrorResponse(c, err)
	}

	return helper.Success(c, "Entry updated", dto.FromModel(entry))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/time-entries/:id
func (ctrl *AdminTimeEntryController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid entry id")
	}

	if err := ctrl.Service.DeleteEntry(c.UserContext(), id); err != nil {
		return clockErrorResponse(c, err)
	}

	return helper.Success(c, "Entry deleted", nil)
}

/* ===================== LISTINGS ===================== */
// GET /api/a/workers/:workerId/time-entries
func (ctrl *AdminTimeEntryController) ListEntriesForWorker(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker id")
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

// GET /api/a/projects/:projectId/time-entries
func (ctrl *AdminTimeEntryController) ListEntriesForProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.FilterTimeEntriesRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	entries, summary, err := ctrl.Service.EntriesForProject(c.UserContext(), projectID, toListFilter(req))
	if err != nil {
		return persistenceErrorResponse(c, err)
	}

	return helper.Success(c, "Entries", dto.TimeEntryListResponse{
		Count:      summary.Count,
		TotalHours: summary.TotalHours,
		Entries:    dto.FromModels(entries),
	})
}

/* ===================== LABOR COST SUMMARY ===================== */
// GET /api/a/projects/:projectId/labor-summary
func (ctrl *AdminTimeEntryController) ProjectLaborSummary(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid project id")
	}

	totals, err := ctrl.Service.ProjectLaborTotals(c.UserContext(), projectID)
	if err != nil {
		return persistenceErrorResponse(c, err)
	}

	return helper.Success(c, "Labor summary", totals)
}
