package route

import (
	"github.com/gofiber/fiber/v2"

	timeCtrl "fieldtrack_backend/internals/features/timetracking/controller"
	"fieldtrack_backend/internals/features/timetracking/service"
	"fieldtrack_backend/internals/middlewares"
)

func TimeTrackingWorkerRoutes(r fiber.Router, svc *service.ClockService) {
	ctrl := timeCtrl.NewTimeEntryController(svc)

	// =====================
	// Time Entries (worker)
	// =====================
	group := r.Group("/time-entries")
	group.Post("/clock-in", middlewares.ClockRateLimiter(), ctrl.ClockIn)
	group.Post("/clock-out", middlewares.ClockRateLimiter(), ctrl.ClockOut)
	group.Get("/active", ctrl.GetActiveEntry)
	group.Get("/", ctrl.ListMyEntries)
}
