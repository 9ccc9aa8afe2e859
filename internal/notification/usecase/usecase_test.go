package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/mail"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
)

// fakeMailer fails the first `failures` sends, then succeeds. It records only
// the messages that went through.
type fakeMailer struct {
	sent     []mail.Message
	failures int
	attempts int
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("smtp: connection reset")
	}

	f.sent = append(f.sent, msg)
	return nil
}

type fixture struct {
	uc   *Usecase
	mail *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: Expensio\n"))
	if err != nil {
		t.Fatalf("building config: %v", err)
	}

	mailer := &fakeMailer{}
	uc := NewNotification(Dependency{
		RepoMail:   mailer,
		Config:     cfg,
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, mail: mailer}
}

func assertSentTo(t *testing.T, mailer *fakeMailer, to string) mail.Message {
	t.Helper()

	if len(mailer.sent) != 1 {
		t.Fatalf("sent emails = %d, want 1", len(mailer.sent))
	}

	msg := mailer.sent[0]
	if len(msg.To) != 1 || msg.To[0] != to {
		t.Fatalf("recipient = %v, want [%s]", msg.To, to)
	}

	return msg
}

func TestFormatAmount(t *testing.T) {
	// Arrange
	cases := []struct {
		cents    int64
		currency string
		want     string
	}{
		{12345, "USD", "123.45 USD"},
		{100, "EUR", "1.00 EUR"},
		{7, "IDR", "0.07 IDR"},
		{-2500, "USD", "-25.00 USD"},
	}

	for _, c := range cases {
		// Act
		got := formatAmount(c.cents, c.currency)

		// Assert
		if got != c.want {
			t.Fatalf("formatAmount(%d, %s) = %q, want %q", c.cents, c.currency, got, c.want)
		}
	}
}

func hasSubstr(t *testing.T, haystack, needle, what string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("%s does not contain %q:\n%s", what, needle, haystack)
	}
}
