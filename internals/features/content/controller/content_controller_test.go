package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bcaroutine_backend/internals/realtime"
)

func newContentApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	hub := realtime.NewHub()
	go hub.Run()

	app := fiber.New()
	ctrl := NewContentController(db, hub)
	app.Get("/api/content", ctrl.List)
	app.Put("/api/content/:section", ctrl.Update)
	return app, mock
}

func contentRows(id uuid.UUID, section, body string, updatedAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"content_id", "content_section", "content_body", "content_updated_at"}).
		AddRow(id.String(), section, body, updatedAt)
}

func TestContentList(t *testing.T) {
	app, mock := newContentApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "content"`).
		WillReturnRows(sqlmock.NewRows([]string{"content_id", "content_section", "content_body", "content_updated_at"}).
			AddRow(uuid.New().String(), "notice", "Exam on Friday", time.Now()).
			AddRow(uuid.New().String(), "footer", "Section B", time.Now()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Exam on Friday", envelope.Data["notice"])
	assert.Equal(t, "Section B", envelope.Data["footer"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentUpdate_UpsertReportsStoredRow(t *testing.T) {
	app, mock := newContentApp(t)

	id := uuid.New()
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "content" (.+) ON CONFLICT`).
		WillReturnRows(contentRows(id, "notice", "Exam on Friday", now))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPut, "/api/content/notice",
		strings.NewReader(`{"content":"Exam on Friday"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			ContentID   string `json:"content_id"`
			ContentBody string `json:"content_body"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	// The id comes back from the stored row, not a zero uuid
	assert.Equal(t, id.String(), envelope.Data.ContentID)
	assert.Equal(t, "Exam on Friday", envelope.Data.ContentBody)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentUpdate_StaleBaseStampConflicts(t *testing.T) {
	app, mock := newContentApp(t)

	base := time.Now().Add(-time.Hour)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "content"`).
		WithArgs("notice", 1).
		WillReturnRows(contentRows(uuid.New(), "notice", "Newer text", time.Now()))
	mock.ExpectRollback()

	body := fmt.Sprintf(`{"content":"stale edit","base_updated_at":%q}`, base.Format(time.RFC3339))
	req := httptest.NewRequest(http.MethodPut, "/api/content/notice", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentUpdate_MissingContentRejected(t *testing.T) {
	app, mock := newContentApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/content/notice", strings.NewReader(`{"content":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
