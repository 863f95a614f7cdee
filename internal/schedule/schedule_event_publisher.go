package schedule

import (
	"context"
	"encoding/json"

	"github.com/fjtyk95/work-schedule/internal/events"

	"github.com/segmentio/kafka-go"
)

// EventPublisher notifies downstream consumers of schedule changes. Publish
// failures are logged by the service, never surfaced to the caller: the
// write already committed.
type EventPublisher interface {
	PublishScheduleChanged(ctx context.Context, event events.ScheduleChangedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishScheduleChanged(context.Context, events.ScheduleChangedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishScheduleChanged(
	ctx context.Context,
	event events.ScheduleChangedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.ScheduleChangedTopic,
		Key:   []byte(event.ScheduleID),
		Value: payload,
	})
}
