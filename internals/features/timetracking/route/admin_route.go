package route

import (
	"github.com/gofiber/fiber/v2"

	timeCtrl "fieldtrack_backend/internals/features/timetracking/controller"
	"fieldtrack_backend/internals/features/timetracking/service"
)

func TimeTrackingAdminRoutes(r fiber.Router, svc *service.ClockService) {
	ctrl := timeCtrl.NewAdminTimeEntryController(svc)

	// =====================
	// Time Entries (admin/PM)
	// =====================
	group := r.Group("/time-entries")
	group.Post("/", ctrl.CreateManualEntry)
	group.Patch("/:id", ctrl.UpdateEntry)
	group.Delete("/:id", ctrl.DeleteEntry)

	r.Get("/workers/:workerId/time-entries", ctrl.ListEntriesForWorker)
	r.Get("/projects/:projectId/time-entries", ctrl.ListEntriesForProject)
	r.Get("/projects/:projectId/labor-summary", ctrl.ProjectLaborSummary)
}
