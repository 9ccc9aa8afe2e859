// Package hash provides password hashing and verification.
//
// Store only the hash; verify user input by comparing the plaintext against
// the stored hash through the Hash interface.
package hash
