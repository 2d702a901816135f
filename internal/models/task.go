package models

import (
	"time"
)

// Task is a unit of work belonging to a project. Tasks are immutable after
// creation; there is no update or delete path.
//
// EndDate is optional. Tasks without an end date carry no interval and are
// excluded from date-filtered listings and the week grid.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	DueDate     time.Time  `json:"dueDate"`
}
