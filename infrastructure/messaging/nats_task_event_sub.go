package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"roomies-api/domain/ports"
	natspkg "roomies-api/infrastructure/nats"
	"roomies-api/pkg/logger"
)

// NATSTaskEventSubscriber implements TaskEventSubscriberPort using NATS Pub/Sub
type NATSTaskEventSubscriber struct {
	conn *nats.Conn
	sub  *nats.Subscription
}

func NewNATSTaskEventSubscriber(conn *nats.Conn) *NATSTaskEventSubscriber {
	return &NATSTaskEventSubscriber{
		conn: conn,
	}
}

// SubscribeTaskEvents subscribe ทุก event ใต้ tasks.events.>
func (s *NATSTaskEventSubscriber) SubscribeTaskEvents(handler func(event *ports.TaskEvent)) error {
	sub, err := s.conn.Subscribe(natspkg.SubjectTaskEvents+".>", func(msg *nats.Msg) {
		var event ports.TaskEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Failed to unmarshal task event", "subject", msg.Subject, "error", err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to task events: %w", err)
	}

	s.sub = sub
	logger.Info("Subscribed to task events", "subject", natspkg.SubjectTaskEvents+".>")
	return nil
}

func (s *NATSTaskEventSubscriber) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Unsubscribe()
}
