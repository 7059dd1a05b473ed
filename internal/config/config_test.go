package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":              "",
		"PORT":                 "",
		"GENERATOR_URL":        "",
		"GENERATOR_TIMEOUT":    "",
		"DEFAULT_CGST_PERCENT": "",
		"DEFAULT_SGST_PERCENT": "",
		"GENERATE_RATE_LIMIT":  "",
		"SELLER_NAME":          "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, 30*time.Second, cfg.GeneratorTimeout)
	require.Equal(t, "2.5", cfg.DefaultCGSTPercent.String())
	require.Equal(t, "2.5", cfg.DefaultSGSTPercent.String())
	require.Equal(t, "30-M", cfg.GenerateRateLimit)
	require.Equal(t, "MUFIZ TRADERS", cfg.Seller.Name)
	require.Equal(t, "PUNB0140600", cfg.Seller.BankIFSC)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"PORT":                 "9090",
		"GENERATOR_URL":        "https://docgen.example.com/generate-invoice",
		"GENERATOR_TIMEOUT":    "5s",
		"DEFAULT_CGST_PERCENT": "6",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com, https://b.example.com",
		"SELLER_NAME":          "ACME TRADERS",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "https://docgen.example.com/generate-invoice", cfg.GeneratorURL)
	require.Equal(t, 5*time.Second, cfg.GeneratorTimeout)
	require.Equal(t, "6", cfg.DefaultCGSTPercent.String())
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "ACME TRADERS", cfg.Seller.Name)
}

func TestLoadRejectsInvalidGeneratorURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{
		"GENERATOR_URL": "::not a url::",
	})
	require.Error(t, err)
}

func TestInvalidPercentFallsBack(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"GENERATOR_URL":        "",
		"DEFAULT_CGST_PERCENT": "-4",
		"DEFAULT_SGST_PERCENT": "garbage",
	})
	require.NoError(t, err)
	require.Equal(t, "2.5", cfg.DefaultCGSTPercent.String())
	require.Equal(t, "2.5", cfg.DefaultSGSTPercent.String())
}
