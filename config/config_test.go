package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/crm_backend/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("CRM_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 10*time.Second {
		t.Fatalf("HTTP.HandlerTimeout/GracefulTimeout wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "crm-backend" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Kafka: шина по умолчанию выключена.
	if len(c.Kafka.Brokers) != 0 {
		t.Fatalf("Kafka.Brokers: want empty, got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "crm.orders.created" || c.Kafka.WriteTimeout != 5*time.Second {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Capacity != 1000 || c.Cache.TTL != 10*time.Minute || c.Cache.WarmUpN != 100 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}

	// Jobs
	if c.Jobs.APIBaseURL != "http://localhost:8080" || c.Jobs.LogDir != "logs" {
		t.Fatalf("Jobs defaults wrong: %+v", c.Jobs)
	}
	if c.Jobs.HeartbeatSpec != "*/5 * * * *" || c.Jobs.RemindersSpec != "0 8 * * *" {
		t.Fatalf("Jobs schedule defaults wrong: %+v", c.Jobs)
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "CRM_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "20s")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	// Kafka
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "crm-test")
	t.Setenv(p+"_KAFKA_WRITE_TIMEOUT", "7s")

	// Cache
	t.Setenv(p+"_CACHE_CAPACITY", "777")
	t.Setenv(p+"_CACHE_TTL", "30m")
	t.Setenv(p+"_CACHE_WARM_UP_N", "50")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	// Jobs
	t.Setenv(p+"_JOBS_API_BASE_URL", "http://api:8080")
	t.Setenv(p+"_JOBS_LOG_DIR", "/var/log/crm")
	t.Setenv(p+"_JOBS_HEARTBEAT_SPEC", "*/1 * * * *")
	t.Setenv(p+"_JOBS_REMINDER_WINDOW", "48h")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != 1*time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.GracefulTimeout != 20*time.Second {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[0] != "k1:9092" || c.Kafka.Brokers[1] != "k2:9093" ||
		c.Kafka.Topic != "crm-test" || c.Kafka.WriteTimeout != 7*time.Second {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.Capacity != 777 || c.Cache.TTL != 30*time.Minute || c.Cache.WarmUpN != 50 {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
	if c.Jobs.APIBaseURL != "http://api:8080" || c.Jobs.LogDir != "/var/log/crm" ||
		c.Jobs.HeartbeatSpec != "*/1 * * * *" || c.Jobs.ReminderWindow != 48*time.Hour {
		t.Fatalf("Jobs overrides wrong: %+v", c.Jobs)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "CRM_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
