package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DatabaseOptions struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port       string `env:"POSTGRES_PORT" envDefault:"5432"`
	User       string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password   string `env:"POSTGRES_PASSWORD"`
	Name       string `env:"POSTGRES_NAME" envDefault:"workload"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"workload.db"`
}

func (d DatabaseOptions) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

type SheetOptions struct {
	Path        string `env:"SHEET_PATH" envDefault:"itog.xlsx"`
	Name        string `env:"SHEET_NAME"`
	ColumnsFile string `env:"SHEET_COLUMNS_FILE"`
}

// RedisOptions enable the cross-process ingest lock. Without an address a
// process-local no-op lock is used.
type RedisOptions struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL  time.Duration `env:"INGEST_LOCK_TTL" envDefault:"10m"`
}

type TelemetryOptions struct {
	OtelEnabled    bool              `env:"OTEL_ENABLED" envDefault:"false"`
	OtelEndpoint   string            `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure   bool              `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	OtelHeaders    map[string]string `env:"OTEL_EXPORTER_OTLP_HEADERS" envKeyValSeparator:"="`
	OtelSampler    float64           `env:"OTEL_SAMPLER_RATIO" envDefault:"1"`
	ServiceName    string            `env:"OTEL_SERVICE_NAME" envDefault:"workload-backend"`
	MetricsEnabled bool              `env:"METRICS_ENABLED" envDefault:"true"`
}

type Config struct {
	LogMode      string   `env:"LOG_MODE" envDefault:"development"`
	HTTPAddr     string   `env:"HTTP_ADDR" envDefault:":8080"`
	AcademicYear string   `env:"ACADEMIC_YEAR" envDefault:"2024/2025"`
	CORSOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Database  DatabaseOptions
	Sheet     SheetOptions
	Redis     RedisOptions
	Telemetry TelemetryOptions
}

// LoadEnv loads whichever of the given dotenv files exist. Variables already
// set in the process environment win.
func LoadEnv(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func LoadConfig() (Config, error) {
	if _, err := LoadEnv([]string{".env", ".env.local"}); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be 'postgres' or 'sqlite', got %q", c.Database.Driver)
	}
	if c.Telemetry.OtelSampler < 0 || c.Telemetry.OtelSampler > 1 {
		return fmt.Errorf("OTEL_SAMPLER_RATIO must be within [0,1], got %v", c.Telemetry.OtelSampler)
	}
	if strings.TrimSpace(c.AcademicYear) == "" {
		return fmt.Errorf("ACADEMIC_YEAR must not be empty")
	}
	return nil
}
