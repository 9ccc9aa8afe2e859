package config

import (
	"io"
	"time"
)

// TimeConfig retrieves configuration values as durations. Keys hold a
// plain integer count of the named unit.
type TimeConfig interface {
	// GetSecond returns the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute returns the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetHour returns the value for key as a duration in hours.
	GetHour(key string) time.Duration

	// GetDay returns the value for key as a duration in days (24h).
	GetDay(key string) time.Duration
}

// SignedIntConfig retrieves configuration values as signed integers.
// Missing or unconvertible keys yield the type's zero value.
type SignedIntConfig interface {
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
}

// UnsignedIntConfig retrieves configuration values as unsigned integers.
// Missing or unconvertible keys yield the type's zero value.
type UnsignedIntConfig interface {
	GetUint(key string) uint
	GetUint16(key string) uint16
	GetUint32(key string) uint32
	GetUint64(key string) uint64
}

// FloatConfig retrieves configuration values as floating-point numbers.
// Missing or unconvertible keys yield the type's zero value.
type FloatConfig interface {
	GetFloat32(key string) float32
	GetFloat64(key string) float64
}

// Config reads typed configuration values by key. Implementations own the
// backing source and its type conversions; lookups never fail, they fall
// back to zero values instead.
type Config interface {
	io.Closer
	TimeConfig
	SignedIntConfig
	UnsignedIntConfig
	FloatConfig

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool

	// GetString returns the value for key as a string.
	GetString(key string) string

	// GetBinary returns the value for key decoded from base64.
	GetBinary(key string) []byte

	// GetArray returns the value for key as a slice of strings.
	GetArray(key string) []string

	// GetMap returns the value for key as a map of strings to strings.
	GetMap(key string) map[string]string
}
