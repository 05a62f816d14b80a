package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectModel "fieldtrack_backend/internals/features/projects/model"
	"fieldtrack_backend/internals/features/timetracking/repository"
	"fieldtrack_backend/internals/features/timetracking/service"
	workerModel "fieldtrack_backend/internals/features/workers/model"
)

const (
	testSiteLat = 37.7749
	testSiteLon = -122.4194
)

func newTestApp(workerID uuid.UUID, svc *service.ClockService) *fiber.App {
	app := fiber.New()
	// Stand-in for the JWT middleware.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", workerID.String())
		return c.Next()
	})
	ctrl := NewTimeEntryController(svc)
	app.Post("/time-entries/clock-in", ctrl.ClockIn)
	app.Post("/time-entries/clock-out", ctrl.ClockOut)
	app.Get("/time-entries/active", ctrl.GetActiveEntry)
	return app
}

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func testFixtures(rate *float64) (uuid.UUID, uuid.UUID, *service.ClockService) {
	lat, lon := testSiteLat, testSiteLon
	project := &projectModel.ProjectModel{
		ProjectID:            uuid.New(),
		ProjectName:          "Harrison St Deck",
		ProjectStatus:        "active",
		ProjectSiteLatitude:  &lat,
		ProjectSiteLongitude: &lon,
	}
	worker := &workerModel.WorkerModel{
		WorkerID:         uuid.New(),
		WorkerName:       "Crew Member",
		WorkerRole:       "worker",
		WorkerHourlyRate: rate,
	}
	svc := service.NewClockService(
		repository.NewMemoryTimeEntryRepository(),
		repository.NewMemoryProjectStore(project),
		repository.NewMemoryWorkerStore(worker),
	)
	return worker.WorkerID, project.ProjectID, svc
}

func TestClockInEndpoint_Success(t *testing.T) {
	workerID, projectID, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	status, env := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
		"latitude":   testSiteLat,
		"longitude":  testSiteLon,
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", env.Status)

	var data struct {
		ProjectName     string `json:"project_name"`
		ClockInGeofence struct {
			Validated      bool `json:"validated"`
			WithinGeofence bool `json:"within_geofence"`
			DistanceMeters *int `json:"distance_meters"`
		} `json:"clock_in_geofence"`
		EndTime *string `json:"time_entry_end_time"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Harrison St Deck", data.ProjectName)
	assert.True(t, data.ClockInGeofence.Validated)
	assert.True(t, data.ClockInGeofence.WithinGeofence)
	require.NotNil(t, data.ClockInGeofence.DistanceMeters)
	assert.Equal(t, 0, *data.ClockInGeofence.DistanceMeters)
	assert.Nil(t, data.EndTime)
}

func TestClockInEndpoint_ValidationFailure(t *testing.T) {
	workerID, projectID, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	// Missing coordinates entirely.
	status, env := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Errors)
}

func TestClockInEndpoint_InvalidCoordinates(t *testing.T) {
	workerID, projectID, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	status, env := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
		"latitude":   95.0,
		"longitude":  0.0,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid coordinates", env.Message)
}

func TestClockInEndpoint_ConflictReturnsOpenEntry(t *testing.T) {
	workerID, projectID, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	status, _ := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
		"latitude":   testSiteLat,
		"longitude":  testSiteLon,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, env := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
		"latitude":   testSiteLat,
		"longitude":  testSiteLon,
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Already clocked in", env.Message)

	// The payload carries the open entry so the app can offer clock-out.
	var data struct {
		TimeEntryID uuid.UUID `json:"time_entry_id"`
		ProjectName string    `json:"project_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEqual(t, uuid.Nil, data.TimeEntryID)
	assert.Equal(t, "Harrison St Deck", data.ProjectName)
}

func TestClockOutEndpoint_NoActiveEntry(t *testing.T) {
	workerID, _, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	status, env := doJSON(t, app, fiber.MethodPost, "/time-entries/clock-out", fiber.Map{
		"latitude":  testSiteLat,
		"longitude": testSiteLon,
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "No active time entry", env.Message)
}

func TestActiveEndpoint(t *testing.T) {
	workerID, projectID, svc := testFixtures(nil)
	app := newTestApp(workerID, svc)

	status, env := doJSON(t, app, fiber.MethodGet, "/time-entries/active", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Not clocked in", env.Message)

	_, _ = doJSON(t, app, fiber.MethodPost, "/time-entries/clock-in", fiber.Map{
		"project_id": projectID,
		"latitude":   testSiteLat,
		"longitude":  testSiteLon,
	})

	status, env = doJSON(t, app, fiber.MethodGet, "/time-entries/active", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Active entry", env.Message)
}
