package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkerModel struct {
	WorkerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:worker_id" json:"worker_id"`

	WorkerName  string  `gorm:"not null;column:worker_name"  json:"worker_name"`
	WorkerEmail *string `gorm:"uniqueIndex;column:worker_email" json:"worker_email,omitempty"`
	WorkerRole  string  `gorm:"not null;default:worker;column:worker_role" json:"worker_role"`

	// Hourly rate in dollars/hour. Nil means labor cost is never computed
	// for this worker's entries.
	WorkerHourlyRate *float64 `gorm:"type:numeric(10,2);column:worker_hourly_rate" json:"worker_hourly_rate,omitempty"`

	WorkerCreatedAt time.Time  `gorm:"column:worker_created_at;autoCreateTime" json:"worker_created_at"`
	WorkerUpdatedAt *time.Time `gorm:"column:worker_updated_at;autoUpdateTime" json:"worker_updated_at,omitempty"`
}

func (WorkerModel) TableName() string { return "workers" }
