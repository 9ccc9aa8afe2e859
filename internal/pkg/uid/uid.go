// Package uid provides identifier generators.
//
// UUID strings are used where IDs travel in headers or object keys; snowflake
// int64 IDs are used for database rows that benefit from time-ordered keys.
package uid

// StringID generates opaque string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}
