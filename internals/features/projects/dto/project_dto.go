package dto

import (
	"time"

	"github.com/google/uuid"

	m "fieldtrack_backend/internals/features/projects/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateProjectRequest struct {
	ProjectName    string  `json:"project_name"    validate:"required,max=200"`
	ProjectAddress *string `json:"project_address" validate:"omitempty,max=500"`

	// Optional site reference point; both or neither.
	ProjectSiteLatitude  *float64 `json:"project_site_latitude"  validate:"omitempty,min=-90,max=90"`
	ProjectSiteLongitude *float64 `json:"project_site_longitude" validate:"omitempty,min=-180,max=180"`
}

// Update (partial JSON)
type UpdateProjectRequest struct {
	ProjectName          *string  `json:"project_name"           validate:"omitempty,max=200"`
	ProjectAddress       *string  `json:"project_address"        validate:"omitempty,max=500"`
	ProjectStatus        *string  `json:"project_status"         validate:"omitempty,oneof=active completed on_hold"`
	ProjectSiteLatitude  *float64 `json:"project_site_latitude"  validate:"omitempty,min=-90,max=90"`
	ProjectSiteLongitude *float64 `json:"project_site_longitude" validate:"omitempty,min=-180,max=180"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ProjectResponse struct {
	ProjectID            uuid.UUID  `json:"project_id"`
	ProjectName          string     `json:"project_name"`
	ProjectAddress       *string    `json:"project_address,omitempty"`
	ProjectStatus        string     `json:"project_status"`
	ProjectSiteLatitude  *float64   `json:"project_site_latitude,omitempty"`
	ProjectSiteLongitude *float64   `json:"project_site_longitude,omitempty"`
	ProjectCreatedAt     time.Time  `json:"project_created_at"`
	ProjectUpdatedAt     *time.Time `json:"project_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateProjectRequest) ToModel() m.ProjectModel {
	return m.ProjectModel{
		ProjectName:          r.ProjectName,
		ProjectAddress:       r.ProjectAddress,
		ProjectStatus:        "active",
		ProjectSiteLatitude:  r.ProjectSiteLatitude,
		ProjectSiteLongitude: r.ProjectSiteLongitude,
	}
}

func FromModel(p *m.ProjectModel) ProjectResponse {
	return ProjectResponse{
		ProjectID:            p.ProjectID,
		ProjectName:          p.ProjectName,
		ProjectAddress:       p.ProjectAddress,
		ProjectStatus:        p.ProjectStatus,
		ProjectSiteLatitude:  p.ProjectSiteLatitude,
		ProjectSiteLongitude: p.ProjectSiteLongitude,
		ProjectCreatedAt:     p.ProjectCreatedAt,
		ProjectUpdatedAt:     p.ProjectUpdatedAt,
	}
}

func FromModels(projects []m.ProjectModel) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, FromModel(&projects[i]))
	}
	return out
}
