// Package clock abstracts the system clock behind a small interface so
// code that reasons about time (token expiry, OTP windows) can be tested
// with a fixed clock instead of time.Now().
package clock
