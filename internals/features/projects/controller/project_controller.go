package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldtrack_backend/internals/features/projects/dto"
	"fieldtrack_backend/internals/features/projects/model"
	helper "fieldtrack_backend/internals/helpers"
)

var validate = validator.New()

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/a/projects
func (ctrl *ProjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	// A half-specified site can't be geofenced; reject it early.
	if (req.ProjectSiteLatitude == nil) != (req.ProjectSiteLongitude == nil) {
		return helper.Error(c, fiber.StatusBadRequest, "Site latitude and longitude must be provided together")
	}

	p := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create project")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Project created", dto.FromModel(&p))
}

/* ===================== DETAIL ===================== */
// GET /api/a/projects/:id
func (ctrl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var p model.ProjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("project_id = ?", id).
		Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Project", dto.FromModel(&p))
}

/* ===================== LIST ===================== */
// GET /api/a/projects
func (ctrl *ProjectController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"created_at": "project_created_at",
		"name":       "project_name",
		"status":     "project_status",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProjectModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("project_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var projects []model.ProjectModel
	if err := q.Order(orderExpr).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&projects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Projects", fiber.Map{
		"projects": dto.FromModels(projects),
		"meta":     helper.BuildMeta(total, p),
	})
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/projects/:id
func (ctrl *ProjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.ProjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("project_id = ?", id).
		Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.ProjectName != nil {
		p.ProjectName = *req.ProjectName
	}
	if req.ProjectAddress != nil {
		p.ProjectAddress = req.ProjectAddress
	}
	if req.ProjectStatus != nil {
		p.ProjectStatus = *req.ProjectStatus
	}
	if req.ProjectSiteLatitude != nil {
		p.ProjectSiteLatitude = req.ProjectSiteLatitude
	}
	if req.ProjectSiteLongitude != nil {
		p.ProjectSiteLongitude = req.ProjectSiteLongitude
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update project")
	}

	return helper.Success(c, "Project updated", dto.FromModel(&p))
}
