package ports

import "context"

// Task event types
const (
	TaskEventCreated   = "created"
	TaskEventUpdated   = "updated"
	TaskEventCompleted = "completed"
	TaskEventDeleted   = "deleted"
)

// TaskEvent - plain struct (ไม่มี NATS dependency)
type TaskEvent struct {
	Type       string   `json:"type"`
	TaskID     string   `json:"task_id"`
	TaskName   string   `json:"task_name"`
	AddedIDs   []string `json:"added_ids,omitempty"`   // assignees ที่เพิ่งถูก assign
	RemovedIDs []string `json:"removed_ids,omitempty"` // assignees ที่เพิ่งถูกถอด
}

// TaskEventPublisherPort - ส่ง task events เข้า bus
type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}

// TaskEventSubscriberPort - รับ task events จาก bus (ใช้โดย websocket broadcaster)
type TaskEventSubscriberPort interface {
	SubscribeTaskEvents(handler func(event *TaskEvent)) error
	Unsubscribe() error
}
