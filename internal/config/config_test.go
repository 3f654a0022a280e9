package config

import (
	"testing"
	"time"

	"paygate/internal/models"
	"paygate/internal/services/fees"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("PAYGATE_STR", "value")
	t.Setenv("PAYGATE_INT", "42")
	t.Setenv("PAYGATE_BAD_INT", "forty")
	t.Setenv("PAYGATE_BOOL", "true")
	t.Setenv("PAYGATE_DURATION", "90s")
	t.Setenv("PAYGATE_EMPTY", "")

	assert.Equal(t, "value", GetEnv("PAYGATE_STR", "default"))
	assert.Equal(t, "default", GetEnv("PAYGATE_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("PAYGATE_UNSET", "default"))
	assert.Equal(t, 42, GetIntEnv("PAYGATE_INT", 1))
	assert.Equal(t, 1, GetIntEnv("PAYGATE_BAD_INT", 1))
	assert.True(t, GetBoolEnv("PAYGATE_BOOL", false))
	assert.Equal(t, 90*time.Second, GetDurationEnv("PAYGATE_DURATION", time.Minute))
}

func TestGetDecimalEnv(t *testing.T) {
	def := decimal.RequireFromString("0.35")

	t.Setenv("PAYGATE_RATE", "3.4")
	got, ok := GetDecimalEnv("PAYGATE_RATE", def)
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("3.4")))

	got, ok = GetDecimalEnv("PAYGATE_RATE_UNSET", def)
	assert.True(t, ok)
	assert.True(t, got.Equal(def))

	t.Setenv("PAYGATE_RATE_BAD", "3,4")
	got, ok = GetDecimalEnv("PAYGATE_RATE_BAD", def)
	assert.False(t, ok)
	assert.True(t, got.Equal(def))
}

func setAcquirerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ALIPAY_ENVIRONMENT", "prod")
	t.Setenv("ALIPAY_EMAIL_ACCOUNT", "shop@x.com")
	t.Setenv("ALIPAY_SELLER_ACCOUNT", "2088000000000000")
	t.Setenv("ALIPAY_FEES_ACTIVE", "true")
	t.Setenv("COMPANY_NAME", "Shop")
	t.Setenv("COMPANY_COUNTRY", "BE")
}

func TestLoadAcquirer(t *testing.T) {
	t.Run("defaults rates", func(t *testing.T) {
		setAcquirerEnv(t)

		cfg, err := LoadAcquirer()
		require.NoError(t, err)
		assert.Equal(t, models.EnvironmentProd, cfg.Environment)
		assert.True(t, cfg.FeesActive)
		assert.True(t, cfg.Rates.DomesticPercent.Equal(decimal.RequireFromString("3.4")))
		assert.True(t, cfg.Rates.InternationalPercent.Equal(decimal.RequireFromString("3.9")))
		assert.True(t, cfg.Rates.DomesticFixed.Equal(decimal.RequireFromString("0.35")))
	})

	t.Run("overrides rates", func(t *testing.T) {
		setAcquirerEnv(t)
		t.Setenv("ALIPAY_FEES_INT_VAR", "4.5")

		cfg, err := LoadAcquirer()
		require.NoError(t, err)
		assert.True(t, cfg.Rates.InternationalPercent.Equal(decimal.RequireFromString("4.5")))
	})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"percentage of 100", "ALIPAY_FEES_DOM_VAR", "100"},
		{"negative percentage", "ALIPAY_FEES_INT_VAR", "-1"},
		{"negative fixed fee", "ALIPAY_FEES_DOM_FIXED", "-0.35"},
		{"rate not a number", "ALIPAY_FEES_INT_FIXED", "abc"},
		{"unknown environment", "ALIPAY_ENVIRONMENT", "staging"},
		{"invalid email", "ALIPAY_EMAIL_ACCOUNT", "shop"},
		{"invalid country", "COMPANY_COUNTRY", "Belgium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setAcquirerEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadAcquirer()
			assert.ErrorIs(t, err, ErrInvalidAcquirer)
		})
	}

	t.Run("percentage of 100 wraps the rate error", func(t *testing.T) {
		setAcquirerEnv(t)
		t.Setenv("ALIPAY_FEES_DOM_VAR", "100")

		_, err := LoadAcquirer()
		assert.ErrorIs(t, err, fees.ErrInvalidRate)
	})

	t.Run("missing company name", func(t *testing.T) {
		setAcquirerEnv(t)
		t.Setenv("COMPANY_NAME", "")

		_, err := LoadAcquirer()
		assert.ErrorIs(t, err, ErrInvalidAcquirer)
	})
}

func TestAcquirerConfigToModel(t *testing.T) {
	setAcquirerEnv(t)
	cfg, err := LoadAcquirer()
	require.NoError(t, err)

	acq := cfg.ToModel()
	assert.Equal(t, "alipay", acq.Provider)
	assert.Equal(t, "BE", acq.CountryCode)
	assert.True(t, acq.FeesActive)
	require.NotNil(t, acq.Alipay)
	assert.Equal(t, "shop@x.com", acq.Alipay.EmailAccount)
	assert.Equal(t, "2088000000000000", acq.Alipay.SellerAccount)
	assert.True(t, acq.Alipay.FeesIntVar.Equal(decimal.RequireFromString("3.9")))
}
