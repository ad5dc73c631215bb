package websocket

import (
	"roomies-api/domain/ports"
	"roomies-api/pkg/logger"
)

// TaskBroadcaster ต่อ task events จาก bus เข้า websocket clients
// (สมาชิกบ้านที่ต่อ /ws อยู่เห็นงานถูกสร้าง/มอบหมาย/ปิดแบบสดๆ)
type TaskBroadcaster struct {
	subscriber ports.TaskEventSubscriberPort
	manager    *Manager
}

func NewTaskBroadcaster(subscriber ports.TaskEventSubscriberPort, manager *Manager) *TaskBroadcaster {
	return &TaskBroadcaster{
		subscriber: subscriber,
		manager:    manager,
	}
}

// Start subscribe task events แล้ว broadcast ต่อ
func (b *TaskBroadcaster) Start() error {
	return b.subscriber.SubscribeTaskEvents(func(event *ports.TaskEvent) {
		b.manager.Broadcast("task."+event.Type, event)
	})
}

// Stop เลิก subscribe
func (b *TaskBroadcaster) Stop() {
	if err := b.subscriber.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe task events", "error", err)
	}
}
