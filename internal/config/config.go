package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// SellerProfile describes the issuing business printed on every invoice.
type SellerProfile struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	GSTIN        string
	State        string
	StateCode    string
	BankName     string
	BankAccount  string
	BankIFSC     string
}

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	CORSAllowedOrigins []string

	GeneratorURL     string
	GeneratorTimeout time.Duration

	DefaultCGSTPercent decimal.Decimal
	DefaultSGSTPercent decimal.Decimal

	GenerateRateLimit string
	MaxBodyBytes      int64

	Seller SellerProfile
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		GeneratorURL:       strings.TrimSpace(k.String("GENERATOR_URL")),
		GeneratorTimeout:   parseDuration(k.String("GENERATOR_TIMEOUT"), "30s"),
		DefaultCGSTPercent: parsePercent(k.String("DEFAULT_CGST_PERCENT"), "2.5"),
		DefaultSGSTPercent: parsePercent(k.String("DEFAULT_SGST_PERCENT"), "2.5"),
		GenerateRateLimit:  valueOrDefault(k.String("GENERATE_RATE_LIMIT"), "30-M"),
		MaxBodyBytes:       parseInt64(k.String("MAX_BODY_BYTES"), 1<<20),
		Seller: SellerProfile{
			Name:         valueOrDefault(k.String("SELLER_NAME"), "MUFIZ TRADERS"),
			AddressLine1: valueOrDefault(k.String("SELLER_ADDRESS_LINE1"), "K5/22/A"),
			AddressLine2: valueOrDefault(k.String("SELLER_ADDRESS_LINE2"), "NEW UTTAR CHAKMIR, FAKIR PARA ROAD"),
			AddressLine3: valueOrDefault(k.String("SELLER_ADDRESS_LINE3"), "West Bengal, 700142"),
			GSTIN:        valueOrDefault(k.String("SELLER_GSTIN"), "19ACNPA7760L2Z2"),
			State:        valueOrDefault(k.String("SELLER_STATE"), "West Bengal"),
			StateCode:    valueOrDefault(k.String("SELLER_STATE_CODE"), "19"),
			BankName:     valueOrDefault(k.String("SELLER_BANK_NAME"), "PUNJAB NATIONAL BANK"),
			BankAccount:  valueOrDefault(k.String("SELLER_BANK_ACCOUNT"), "0339250006928"),
			BankIFSC:     valueOrDefault(k.String("SELLER_BANK_IFSC"), "PUNB0140600"),
		},
	}

	if cfg.GeneratorURL != "" {
		if _, err := url.ParseRequestURI(cfg.GeneratorURL); err != nil {
			return nil, fmt.Errorf("GENERATOR_URL is not a valid URL: %w", err)
		}
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parsePercent(value, fallback string) decimal.Decimal {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := decimal.NewFromString(base)
	if err != nil || d.IsNegative() {
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}

func parseInt64(value string, fallback int64) int64 {
	base := strings.TrimSpace(value)
	if base == "" {
		return fallback
	}
	var n int64
	if _, err := fmt.Sscanf(base, "%d", &n); err != nil || n <= 0 {
		return fallback
	}
	return n
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
