package events

import (
	"context"
	"encoding/json"

	"github.com/fjtyk95/work-schedule/internal/bootstrap"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeScheduleChanges drains schedule change events and records each one
// on the audit trail. Undecodable messages are committed and skipped so a
// bad payload cannot wedge the partition.
func ConsumeScheduleChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.schedule_changes")
	log.Info("schedule change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("schedule change consumer stopped")
				return
			}
			log.Error("fetch schedule change message failed", zap.Error(err))
			continue
		}

		var event ScheduleChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode schedule change event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "schedule changed",
			Meta: map[string]any{
				"schedule_id": event.ScheduleID,
				"employee_id": event.EmployeeID,
				"occurred_at": event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit schedule change message failed", zap.Error(err))
		}
	}
}
