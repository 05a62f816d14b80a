package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectCtrl "fieldtrack_backend/internals/features/projects/controller"
)

func ProjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := projectCtrl.NewProjectController(db)

	// =====================
	// Projects
	// =====================
	group := r.Group("/projects")
	group.Post("/", ctrl.Create)
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
	group.Patch("/:id", ctrl.Update)
}
