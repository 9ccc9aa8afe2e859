package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goroutine"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/messaging"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	var consumers = []struct {
		name               string
		topic              string // destination where publisher sent message
		nsqConsumerName    string // for nsq
		natsConsumerName   string // for nats
		kafkaConsumerName  string // for kafka
		pubsubConsumerName string // for google pubsub
		handler            messaging.Handler
	}{
		{
			name:               event.UserRegisteredConsumerNotification,
			topic:              event.UserRegisteredDestination,
			nsqConsumerName:    event.UserRegisteredConsumerNotification,
			natsConsumerName:   event.UserRegisteredConsumerNotification,
			kafkaConsumerName:  event.UserRegisteredConsumerNotification,
			pubsubConsumerName: event.UserRegisteredConsumerNotification,
			handler:            mqHandler.UserRegisteredNotification,
		},
		{
			name:               event.ExpenseSubmittedConsumerNotification,
			topic:              event.ExpenseSubmittedDestination,
			nsqConsumerName:    event.ExpenseSubmittedConsumerNotification,
			natsConsumerName:   event.ExpenseSubmittedConsumerNotification,
			kafkaConsumerName:  event.ExpenseSubmittedConsumerNotification,
			pubsubConsumerName: event.ExpenseSubmittedConsumerNotification,
			handler:            mqHandler.ExpenseSubmittedNotification,
		},
		{
			name:               event.ExpenseDecidedConsumerNotification,
			topic:              event.ExpenseDecidedDestination,
			nsqConsumerName:    event.ExpenseDecidedConsumerNotification,
			natsConsumerName:   event.ExpenseDecidedConsumerNotification,
			kafkaConsumerName:  event.ExpenseDecidedConsumerNotification,
			pubsubConsumerName: event.ExpenseDecidedConsumerNotification,
			handler:            mqHandler.ExpenseDecidedNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.nsqConsumerName),
					messaging.WithQueueGroup(consumer.natsConsumerName),
					messaging.WithGroup(consumer.kafkaConsumerName),
					messaging.WithSubscription(consumer.pubsubConsumerName),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
