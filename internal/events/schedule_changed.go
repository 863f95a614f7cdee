package events

import "time"

const ScheduleChangedTopic = "schedule.changed.v1"

const (
	ScheduleCreated = "schedule.created"
	ScheduleUpdated = "schedule.updated"
	ScheduleDeleted = "schedule.deleted"
)

type ScheduleChangedEvent struct {
	EventType  string    `json:"event_type"`
	ScheduleID string    `json:"schedule_id"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
