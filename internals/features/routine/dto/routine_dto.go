package dto

import (
	"strings"
	"time"

	routineModel "bcaroutine_backend/internals/features/routine/model"
)

/* =========================================================
   SCHEDULE
   ========================================================= */

type UpsertScheduleCellRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Details string `json:"details" validate:"omitempty,max=500"`
}

func (r *UpsertScheduleCellRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Details = strings.TrimSpace(r.Details)
}

func (r *UpsertScheduleCellRequest) ToItem(cellKey string) routineModel.ScheduleItem {
	return routineModel.ScheduleItem{
		ID:        cellKey,
		Name:      r.Name,
		Details:   r.Details,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

/* =========================================================
   TIME SLOTS / SUBJECTS
   ========================================================= */

type RenameTimeSlotRequest struct {
	Time string `json:"time" validate:"required,min=1,max=60"`
}

func (r *RenameTimeSlotRequest) Normalize() { r.Time = strings.TrimSpace(r.Time) }

type RenameSubjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (r *RenameSubjectRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

/* =========================================================
   EXPORT / IMPORT
   ========================================================= */

// ExportTypeTag marks a routine export document.
const ExportTypeTag = "bca_routine_export"

type RoutineExport struct {
	Type       string                               `json:"type"`
	ExportedAt string                               `json:"exported_at"`
	Schedule   map[string]routineModel.ScheduleItem `json:"schedule"`
	TimeSlots  []routineModel.TimeSlot              `json:"time_slots"`
}

type ImportRoutineRequest struct {
	Type      string                               `json:"type" validate:"required,eq=bca_routine_export"`
	Schedule  map[string]routineModel.ScheduleItem `json:"schedule" validate:"required"`
	TimeSlots []routineModel.TimeSlot              `json:"time_slots" validate:"required"`
}

/* =========================================================
   ANALYTICS
   ========================================================= */

type SubjectAnalytics struct {
	SubjectID   string  `json:"subject_id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	CellCount   int     `json:"cell_count"`
	WeeklyHours float64 `json:"weekly_hours"`
}
