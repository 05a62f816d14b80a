package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldtrack_backend/internals/features/workers/dto"
	"fieldtrack_backend/internals/features/workers/model"
	helper "fieldtrack_backend/internals/helpers"
)

var validate = validator.New()

type WorkerController struct {
	DB *gorm.DB
}

func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/workers
func (ctrl *WorkerController) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	w := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create worker")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Worker created", dto.FromModel(&w))
}

/* ===================== DETAIL ===================== */
// GET /api/a/workers/:id
func (ctrl *WorkerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker id")
	}

	var w model.WorkerModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("worker_id = ?", id).
		Take(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Worker not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Worker", dto.FromModel(&w))
}

/* ===================== LIST ===================== */
// GET /api/a/workers
func (ctrl *WorkerController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"created_at": "worker_created_at",
		"name":       "worker_name",
		"role":       "worker_role",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.WorkerModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("worker_role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("worker_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var workers []model.WorkerModel
	if err := q.Order(orderExpr).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&workers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Workers", fiber.Map{
		"workers": dto.FromModels(workers),
		"meta":    helper.BuildMeta(total, p),
	})
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/workers/:id
func (ctrl *WorkerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker id")
	}

	var req dto.UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var w model.WorkerModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("worker_id = ?", id).
		Take(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Worker not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.WorkerName != nil {
		w.WorkerName = *req.WorkerName
	}
	if req.WorkerEmail != nil {
		w.WorkerEmail = req.WorkerEmail
	}
	if req.WorkerRole != nil {
		w.WorkerRole = *req.WorkerRole
	}
	// Rate changes only affect entries closed after this point; a worker
	// mid-shift gets the new rate applied to the whole shift at clock-out.
	if req.ClearHourlyRate {
		w.WorkerHourlyRate = nil
	} else if req.WorkerHourlyRate != nil {
		w.WorkerHourlyRate = req.WorkerHourlyRate
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&w).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update worker")
	}

	return helper.Success(c, "Worker updated", dto.FromModel(&w))
}
