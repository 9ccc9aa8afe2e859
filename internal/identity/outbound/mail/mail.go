package mail

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/expensio/internal/identity/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Mailer delivers reset codes over the shared mail client. Delivery is
// synchronous: the caller decides what a failure means for the request.
type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func NewMailer(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

func (m *Mailer) SendOTP(ctx context.Context, msg usecase.OTPEmail) error {
	ctx, span := m.ins.Tracer("identity.outbound.mail").Start(ctx, "SendOTP")
	defer span.End()

	body := fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires at %s. If you did not request a reset, ignore this email.",
		msg.Code,
		msg.ExpiresAt.UTC().Format("15:04 MST, Jan 2 2006"),
	)

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{msg.To},
		Subject:  "Password Reset OTP",
		TextBody: body,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
