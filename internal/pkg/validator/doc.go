// Package validator validates request and domain structs.
//
// Callers depend on the Validator interface; the go-playground/validator
// v10 implementation, along with the custom tags it registers, lives
// here.
package validator
