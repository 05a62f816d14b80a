package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workerCtrl "fieldtrack_backend/internals/features/workers/controller"
)

func WorkerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := workerCtrl.NewWorkerController(db)

	// =====================
	// Workers
	// =====================
	group := r.Group("/workers")
	group.Post("/", ctrl.Create)
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
	group.Patch("/:id", ctrl.Update)
}
