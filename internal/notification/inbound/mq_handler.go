package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/expensio/internal/notification/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/messaging"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/shared/event"
)

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

// ensureCorrelationID threads the publisher's correlation id from the event
// payload into the consumer context, minting a fresh one when the payload
// carries none.
func (h *MQHandler) ensureCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID != "" {
		return instrument.SetCorrelationID(ctx, correlationID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) UserRegisteredNotification(ctx context.Context, msg messaging.Message) error {
	body := msg.Body()

	var payload event.UserRegisteredMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user registered notification", "msg_body", string(body), "error", err)
		return nil
	}

	ctx = h.ensureCorrelationID(ctx, payload.CorrelationID)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "UserRegisteredNotification")
	defer span.End()

	slog.InfoContext(ctx, "consume: user registered notification", "msg_body", string(body))

	if err := h.uc.ConsumeUserRegistered(ctx, usecase.ConsumeUserRegisteredInput{
		UserID:   payload.UserID,
		Email:    payload.Email,
		FullName: payload.FullName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume user registered", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) ExpenseSubmittedNotification(ctx context.Context, msg messaging.Message) error {
	body := msg.Body()

	var payload event.ExpenseSubmittedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of expense submitted notification", "msg_body", string(body), "error", err)
		return nil
	}

	ctx = h.ensureCorrelationID(ctx, payload.CorrelationID)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "ExpenseSubmittedNotification")
	defer span.End()

	slog.InfoContext(ctx, "consume: expense submitted notification", "msg_body", string(body))

	if err := h.uc.ConsumeExpenseSubmitted(ctx, usecase.ConsumeExpenseSubmittedInput{
		ExpenseID:   payload.ExpenseID,
		UserID:      payload.UserID,
		UserEmail:   payload.UserEmail,
		Category:    payload.Category,
		AmountCents: payload.AmountCents,
		Currency:    payload.Currency,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume expense submitted", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) ExpenseDecidedNotification(ctx context.Context, msg messaging.Message) error {
	body := msg.Body()

	var payload event.ExpenseDecidedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of expense decided notification", "msg_body", string(body), "error", err)
		return nil
	}

	ctx = h.ensureCorrelationID(ctx, payload.CorrelationID)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "ExpenseDecidedNotification")
	defer span.End()

	slog.InfoContext(ctx, "consume: expense decided notification", "msg_body", string(body))

	if err := h.uc.ConsumeExpenseDecided(ctx, usecase.ConsumeExpenseDecidedInput{
		ExpenseID: payload.ExpenseID,
		UserID:    payload.UserID,
		UserEmail: payload.UserEmail,
		Decision:  payload.Decision,
		Note:      payload.Note,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume expense decided", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
