package dto

import (
	"time"

	"github.com/google/uuid"

	m "fieldtrack_backend/internals/features/workers/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateWorkerRequest struct {
	WorkerName       string   `json:"worker_name"        validate:"required,max=200"`
	WorkerEmail      *string  `json:"worker_email"       validate:"omitempty,email"`
	WorkerRole       *string  `json:"worker_role"        validate:"omitempty,oneof=worker pm admin"`
	WorkerHourlyRate *float64 `json:"worker_hourly_rate" validate:"omitempty,min=0"`
}

// Update (partial JSON). Use clear_hourly_rate to drop the rate entirely;
// a nil pointer alone can't distinguish "unchanged" from "remove".
type UpdateWorkerRequest struct {
	WorkerName       *string  `json:"worker_name"        validate:"omitempty,max=200"`
	WorkerEmail      *string  `json:"worker_email"       validate:"omitempty,email"`
	WorkerRole       *string  `json:"worker_role"        validate:"omitempty,oneof=worker pm admin"`
	WorkerHourlyRate *float64 `json:"worker_hourly_rate" validate:"omitempty,min=0"`
	ClearHourlyRate  bool     `json:"clear_hourly_rate"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type WorkerResponse struct {
	WorkerID         uuid.UUID  `json:"worker_id"`
	WorkerName       string     `json:"worker_name"`
	WorkerEmail      *string    `json:"worker_email,omitempty"`
	WorkerRole       string     `json:"worker_role"`
	WorkerHourlyRate *float64   `json:"worker_hourly_rate,omitempty"`
	WorkerCreatedAt  time.Time  `json:"worker_created_at"`
	WorkerUpdatedAt  *time.Time `json:"worker_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateWorkerRequest) ToModel() m.WorkerModel {
	role := "worker"
	if r.WorkerRole != nil {
		role = *r.WorkerRole
	}
	return m.WorkerModel{
		WorkerName:       r.WorkerName,
		WorkerEmail:      r.WorkerEmail,
		WorkerRole:       role,
		WorkerHourlyRate: r.WorkerHourlyRate,
	}
}

func FromModel(w *m.WorkerModel) WorkerResponse {
	return WorkerResponse{
		WorkerID:         w.WorkerID,
		WorkerName:       w.WorkerName,
		WorkerEmail:      w.WorkerEmail,
		WorkerRole:       w.WorkerRole,
		WorkerHourlyRate: w.WorkerHourlyRate,
		WorkerCreatedAt:  w.WorkerCreatedAt,
		WorkerUpdatedAt:  w.WorkerUpdatedAt,
	}
}

func FromModels(workers []m.WorkerModel) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, FromModel(&workers[i]))
	}
	return out
}
