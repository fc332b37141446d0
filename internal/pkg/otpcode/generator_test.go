package otpcode

import (
	"strconv"
	"testing"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoGenerator_Range(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		t.Run(strconv.Itoa(length), func(t *testing.T) {
			gen, err := NewCryptoGenerator(length)
			require.NoError(t, err)

			for i := 0; i < 500; i++ {
				code, err := gen.Generate()
				require.NoError(t, err)
				assert.Len(t, code, length)
				assert.NotEqual(t, byte('0'), code[0], "code must not have a leading zero")
			}
		})
	}
}

func TestCryptoGenerator_LeadingDigitSpread(t *testing.T) {
	gen, err := NewCryptoGenerator(DefaultLength)
	require.NoError(t, err)

	seen := make(map[byte]int)
	for i := 0; i < 2000; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code[0]]++
	}

	// all nine leading digits should show up in 2000 draws
	assert.Len(t, seen, 9)
	for digit, count := range seen {
		assert.Greater(t, count, 100, "leading digit %c is underrepresented", digit)
	}
}

func TestNewCryptoGenerator_InvalidLength(t *testing.T) {
	_, err := NewCryptoGenerator(3)
	assert.True(t, apperror.Is(err, apperror.KindConfiguration))

	_, err = NewCryptoGenerator(11)
	assert.True(t, apperror.Is(err, apperror.KindConfiguration))
}

func TestNewFixedGenerator(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		environment string
		expectError bool
	}{
		{"Development", "123456", "development", false},
		{"Local", "1234", "local", false},
		{"Production refused", "123456", "production", true},
		{"Non-digit code", "12ab56", "development", true},
		{"Too short", "123", "development", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewFixedGenerator(tt.code, tt.environment)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)
			code, err := gen.Generate()
			assert.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	t.Run("Test code in development", func(t *testing.T) {
		gen, err := NewGenerator(
			models.AppConfig{Environment: "development"},
			models.OTPConfig{Length: 6, UseTestCode: true, TestCode: "123456"},
		)
		require.NoError(t, err)
		assert.IsType(t, &FixedGenerator{}, gen)
	})

	t.Run("Test code refused in production", func(t *testing.T) {
		_, err := NewGenerator(
			models.AppConfig{Environment: "production"},
			models.OTPConfig{Length: 6, UseTestCode: true, TestCode: "123456"},
		)
		assert.True(t, apperror.Is(err, apperror.KindConfiguration))
	})

	t.Run("Crypto by default", func(t *testing.T) {
		gen, err := NewGenerator(models.AppConfig{Environment: "production"}, models.OTPConfig{})
		require.NoError(t, err)
		crypto, ok := gen.(*CryptoGenerator)
		require.True(t, ok)
		assert.Equal(t, DefaultLength, crypto.Length())
	})
}

func BenchmarkCryptoGenerator(b *testing.B) {
	gen, _ := NewCryptoGenerator(DefaultLength)
	for i := 0; i < b.N; i++ {
		_, _ = gen.Generate()
	}
}
