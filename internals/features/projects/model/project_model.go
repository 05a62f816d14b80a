package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectModel struct {
	ProjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:project_id" json:"project_id"`

	ProjectName    string  `gorm:"not null;column:project_name"            json:"project_name"`
	ProjectAddress *string `gorm:"column:project_address"                  json:"project_address,omitempty"`
	ProjectStatus  string  `gorm:"not null;default:active;column:project_status" json:"project_status"`

	// Site reference point for geofence checks. Both nil means clock actions
	// at this project cannot be validated (recorded as "not validated").
	ProjectSiteLatitude  *float64 `gorm:"column:project_site_latitude"  json:"project_site_latitude,omitempty"`
	ProjectSiteLongitude *float64 `gorm:"column:project_site_longitude" json:"project_site_longitude,omitempty"`

	ProjectCreatedAt time.Time  `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt *time.Time `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at,omitempty"`
}

func (ProjectModel) TableName() string { return "projects" }

// HasSiteLocation reports whether the project carries a geofence reference point.
func (p *ProjectModel) HasSiteLocation() bool {
	return p.ProjectSiteLatitude != nil && p.ProjectSiteLongitude != nil
}
