// Package otp generates one-time numeric codes for password-reset
// challenges.
//
// A code is a random 6-digit number delivered out of band (email). Callers
// store the code next to its expiry and compare the user-provided value
// against the stored one; there is no time-based derivation involved.
package otp
