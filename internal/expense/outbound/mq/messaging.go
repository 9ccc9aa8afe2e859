package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/expensio/internal/expense/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/messaging"
	"github.com/shandysiswandi/expensio/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishExpenseSubmitted(ctx context.Context, msg usecase.ExpenseSubmittedEvent) error {
	ctx, span := m.ins.Tracer("expense.outbound.mq").Start(ctx, "PublishExpenseSubmitted")
	defer span.End()

	body, err := json.Marshal(event.ExpenseSubmittedMessage{
		ExpenseID:     msg.ExpenseID,
		UserID:        msg.UserID,
		UserEmail:     msg.UserEmail,
		Category:      msg.Category.String(),
		AmountCents:   msg.AmountCents,
		Currency:      msg.Currency,
		CorrelationID: instrument.GetCorrelationID(ctx),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, event.ExpenseSubmittedDestination, messaging.OutgoingMessage{
		Body: body,
		Key:  []byte(strconv.FormatInt(msg.UserID, 10)),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishExpenseDecided(ctx context.Context, msg usecase.ExpenseDecidedEvent) error {
	ctx, span := m.ins.Tracer("expense.outbound.mq").Start(ctx, "PublishExpenseDecided")
	defer span.End()

	body, err := json.Marshal(event.ExpenseDecidedMessage{
		ExpenseID:     msg.ExpenseID,
		UserID:        msg.UserID,
		UserEmail:     msg.UserEmail,
		Decision:      msg.Decision.String(),
		DecidedBy:     msg.DecidedBy,
		Note:          msg.Note,
		CorrelationID: instrument.GetCorrelationID(ctx),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, event.ExpenseDecidedDestination, messaging.OutgoingMessage{
		Body: body,
		Key:  []byte(strconv.FormatInt(msg.UserID, 10)),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
