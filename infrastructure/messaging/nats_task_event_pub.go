package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"roomies-api/domain/ports"
	natspkg "roomies-api/infrastructure/nats"
)

// NATSTaskEventPublisher implements TaskEventPublisherPort using NATS Pub/Sub
type NATSTaskEventPublisher struct {
	conn *nats.Conn
}

// NewNATSTaskEventPublisher สร้าง TaskEventPublisherPort adapter สำหรับ NATS
func NewNATSTaskEventPublisher(conn *nats.Conn) ports.TaskEventPublisherPort {
	return &NATSTaskEventPublisher{
		conn: conn,
	}
}

// PublishTaskEvent ส่ง task event ไป subject tasks.events.{type}
func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.TaskID == "" {
		return fmt.Errorf("task_id is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", natspkg.SubjectTaskEvents, event.Type)
	return p.conn.Publish(subject, data)
}
