// Package jwt issues and verifies JSON Web Tokens for authenticated
// requests.
//
// It provides a typed Claims wrapper around the registered claims, an
// HS512 symmetric signer, and context helpers for carrying the
// authenticated claims through a request.
package jwt
