package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routineDTO "bcaroutine_backend/internals/features/routine/dto"
	routineModel "bcaroutine_backend/internals/features/routine/model"
	routineService "bcaroutine_backend/internals/features/routine/service"
	"bcaroutine_backend/internals/kvstore"
)

func newTestStores(t *testing.T) (*routineService.ScheduleStore, *routineService.TimeSlotStore) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	schedule, err := routineService.NewScheduleStore(kv)
	require.NoError(t, err)
	slots, err := routineService.NewTimeSlotStore(kv)
	require.NoError(t, err)
	return schedule, slots
}

func newShareApp(schedule *routineService.ScheduleStore, slots *routineService.TimeSlotStore) *fiber.App {
	app := fiber.New()
	ctrl := NewShareController(schedule, slots)
	app.Get("/api/share/export", ctrl.Export)
	app.Post("/api/share/import", ctrl.Import)
	app.Get("/api/share/link", ctrl.Link)
	return app
}

func TestShare_ExportImportRoundTrip(t *testing.T) {
	schedule, slots := newTestStores(t)
	require.NoError(t, schedule.UpsertCell("Monday-1", &routineModel.ScheduleItem{Name: "DSA"}))
	require.NoError(t, schedule.UpsertCell("Tuesday-2", &routineModel.ScheduleItem{Name: "DBMS", Details: "Lab"}))

	app := newShareApp(schedule, slots)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/share/export", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "class-routine.json")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc routineDTO.RoutineExport
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, routineDTO.ExportTypeTag, doc.Type)
	assert.Len(t, doc.Schedule, 2)
	assert.Len(t, doc.TimeSlots, 6)

	// Import the export into a fresh deployment
	schedule2, slots2 := newTestStores(t)
	app2 := newShareApp(schedule2, slots2)

	req := httptest.NewRequest(http.MethodPost, "/api/share/import", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app2.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, schedule.ListCells(), schedule2.ListCells())
	assert.Equal(t, slots.List(), slots2.List())
}

func TestShare_ImportRejectsWrongTypeTag(t *testing.T) {
	schedule, slots := newTestStores(t)
	app := newShareApp(schedule, slots)

	req := httptest.NewRequest(http.MethodPost, "/api/share/import",
		strings.NewReader(`{"type":"something_else","schedule":{},"time_slots":[]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShare_Link(t *testing.T) {
	schedule, slots := newTestStores(t)
	app := newShareApp(schedule, slots)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/share/link?view=1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Data.URL, "view=1")
}
