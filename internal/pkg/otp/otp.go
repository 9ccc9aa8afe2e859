package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Generator produces one-time numeric codes.
type Generator interface {
	// Generate returns a new 6-digit code as a string.
	Generate() (string, error)
}

// NumericGenerator generates random 6-digit codes in [100000, 999999].
//
// Codes are drawn from crypto/rand, so the first digit is never zero and the
// code always renders as exactly six characters.
type NumericGenerator struct{}

// NewNumeric returns a NumericGenerator.
func NewNumeric() *NumericGenerator {
	return &NumericGenerator{}
}

// Generate returns a new 6-digit code as a string.
func (*NumericGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
