// Package mail defines the contract for sending email.
//
// Use cases depend on the Mail interface and the Message payload only, so
// the delivery mechanism (SMTP here, an API provider elsewhere) can change
// without touching callers.
package mail
