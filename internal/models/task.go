package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "open"
	TaskStatusDone TaskStatus = "done"
)

type Task struct {
	ID          uuid.UUID    `db:"id"`
	WeddingID   uuid.UUID    `db:"wedding_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	DueDate     *time.Time   `db:"due_date"`
	Priority    TaskPriority `db:"priority"`
	Status      TaskStatus   `db:"status"`
	Assignee    string       `db:"assignee"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}
