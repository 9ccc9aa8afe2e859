package mail

import (
	"context"
	"io"
)

// Message is a provider-agnostic email payload.
type Message struct {
	// From optionally overrides the sender; implementations fall back to
	// their configured default address when empty.
	From string
	// To lists the primary recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body, used when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail sends email through an underlying provider.
type Mail interface {
	io.Closer

	// Send dispatches a single message. It makes one delivery attempt;
	// retrying is up to the caller.
	Send(ctx context.Context, msg Message) error
}
