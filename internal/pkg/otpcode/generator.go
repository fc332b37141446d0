// Package otpcode produces one-time passcodes.
package otpcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
)

const (
	DefaultLength = 6
	MinLength     = 4
	MaxLength     = 10
)

// Generator produces one code per call
type Generator interface {
	Generate() (string, error)
}

// CryptoGenerator draws uniform n-digit codes from crypto/rand
type CryptoGenerator struct {
	length int
	floor  *big.Int // 10^(n-1)
	span   *big.Int // 9 * 10^(n-1)
}

// NewCryptoGenerator returns a generator for codes of the given length
func NewCryptoGenerator(length int) (*CryptoGenerator, error) {
	if length < MinLength || length > MaxLength {
		return nil, apperror.NewConfigurationError(fmt.Sprintf("otp length %d out of range [%d,%d]", length, MinLength, MaxLength))
	}

	floor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(big.NewInt(9), floor)

	return &CryptoGenerator{length: length, floor: floor, span: span}, nil
}

// Generate returns a code in [10^(n-1), 10^n); rand.Int rejects out-of-range draws
func (g *CryptoGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.span)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return n.Add(n, g.floor).String(), nil
}

// Length returns the number of digits produced
func (g *CryptoGenerator) Length() int {
	return g.length
}

// FixedGenerator always returns the same code; never available in production
type FixedGenerator struct {
	code string
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// NewFixedGenerator returns a generator for the configured test code
func NewFixedGenerator(code, environment string) (*FixedGenerator, error) {
	if environment == "production" {
		return nil, apperror.NewConfigurationError("fixed otp code is not allowed in production")
	}
	if !digitsOnly.MatchString(code) || len(code) < MinLength || len(code) > MaxLength {
		return nil, apperror.NewConfigurationError("fixed otp code must be 4 to 10 digits")
	}
	return &FixedGenerator{code: code}, nil
}

// Generate returns the fixed code
func (g *FixedGenerator) Generate() (string, error) {
	return g.code, nil
}

// NewGenerator picks the generator for the running environment
func NewGenerator(app models.AppConfig, otp models.OTPConfig) (Generator, error) {
	if otp.UseTestCode {
		fixed, err := NewFixedGenerator(otp.TestCode, app.Environment)
		if err != nil {
			return nil, err
		}
		return fixed, nil
	}

	length := otp.Length
	if length == 0 {
		length = DefaultLength
	}
	crypto, err := NewCryptoGenerator(length)
	if err != nil {
		return nil, err
	}
	return crypto, nil
}
