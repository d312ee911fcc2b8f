package model

import (
	"strconv"
	"sync"
	"time"
)

// Snapshot keys, one per store. Kept identical to the web client's old
// localStorage keys so existing exports stay recognizable.
const (
	SnapshotKeySchedule     = "bca_routine_schedule"
	SnapshotKeyTimeSlots    = "bca_routine_time_slots"
	SnapshotKeySubjects     = "bca_routine_subjects"
	SnapshotKeySubjectFiles = "bca_routine_subject_files"
)

// ScheduleItem is one cell of the routine grid. Its ID equals the cell key
// ("<Day>-<timeSlotID>").
type ScheduleItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

type TimeSlot struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Editable bool   `json:"editable"`
}

type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var (
	idMu     sync.Mutex
	lastIDMs int64
)

// NewTimestampID issues a millisecond-timestamp id, bumped past the last
// issued value so two calls within the same millisecond still get distinct
// ids. Keeps the numeric shape of the ids the web client generated.
func NewTimestampID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastIDMs {
		ms = lastIDMs + 1
	}
	lastIDMs = ms
	return strconv.FormatInt(ms, 10)
}

// SubjectPalette is cycled round-robin by subject count on add.
var SubjectPalette = []string{
	"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444",
	"#06b6d4", "#84cc16", "#f97316", "#ec4899", "#6366f1",
}

// DefaultTimeSlots seeds a fresh deployment. Built-in slots are marked
// non-editable; the store still allows removing them.
func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{ID: "1", Time: "9:00 - 10:00", Editable: false},
		{ID: "2", Time: "10:00 - 11:00", Editable: false},
		{ID: "3", Time: "11:15 - 12:15", Editable: false},
		{ID: "4", Time: "12:15 - 1:15", Editable: false},
		{ID: "5", Time: "2:00 - 3:00", Editable: false},
		{ID: "6", Time: "3:00 - 4:00", Editable: false},
	}
}

func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "1", Name: "Data Structures & Algorithms", Color: "#3b82f6"},
		{ID: "2", Name: "Database Management Systems", Color: "#8b5cf6"},
		{ID: "3", Name: "Object Oriented Programming", Color: "#10b981"},
		{ID: "4", Name: "Computer Networks", Color: "#f59e0b"},
		{ID: "5", Name: "Operating Systems", Color: "#ef4444"},
		{ID: "6", Name: "Software Engineering", Color: "#06b6d4"},
		{ID: "7", Name: "Web Technologies", Color: "#84cc16"},
		{ID: "8", Name: "Mathematics for Computing", Color: "#f97316"},
		{ID: "9", Name: "Computer Graphics", Color: "#ec4899"},
		{ID: "10", Name: "Project Work", Color: "#6366f1"},
	}
}
