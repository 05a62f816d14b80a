package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldtrack_backend/internals/constants"
	projectRoute "fieldtrack_backend/internals/features/projects/route"
	timeRepo "fieldtrack_backend/internals/features/timetracking/repository"
	timeRoute "fieldtrack_backend/internals/features/timetracking/route"
	timeService "fieldtrack_backend/internals/features/timetracking/service"
	workerRoute "fieldtrack_backend/internals/features/workers/route"
	authMiddleware "fieldtrack_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// The clock service is built once and shared by both surfaces.
	clockSvc := timeService.NewClockService(
		timeRepo.NewTimeEntryRepository(db),
		timeRepo.NewProjectStore(db),
		timeRepo.NewWorkerStore(db),
	)

	// ===================== PRIVATE (WORKER) =====================
	log.Println("[INFO] Setting up WORKER group...")
	worker := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	timeRoute.TimeTrackingWorkerRoutes(worker, clockSvc)

	// ===================== ADMIN / PM =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("the admin dashboard"),
			constants.StaffRoles...,
		),
	)
	timeRoute.TimeTrackingAdminRoutes(admin, clockSvc)
	projectRoute.ProjectAdminRoutes(admin, db)
	workerRoute.WorkerAdminRoutes(admin, db)
}
