package infra

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("PUBLIC_UPLOAD_PREFIX", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_WRITE_TIMEOUT_MS", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("TRUST_PROXY_HEADERS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q", cfg.Port)
	}
	if cfg.StoragePath != "./storage" {
		t.Fatalf("StoragePath mismatch: got %q", cfg.StoragePath)
	}
	if cfg.UploadPrefix != "/uploads" {
		t.Fatalf("UploadPrefix mismatch: got %q", cfg.UploadPrefix)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes mismatch: got %d", cfg.MaxUploadBytes)
	}
	if cfg.KafkaBrokers != nil {
		t.Fatalf("expected no kafka brokers, got %#v", cfg.KafkaBrokers)
	}
	if cfg.KafkaWriteTimeout != 2*time.Second {
		t.Fatalf("KafkaWriteTimeout mismatch: got %s", cfg.KafkaWriteTimeout)
	}
	if cfg.TrustProxyHeaders {
		t.Fatalf("proxy headers must not be trusted by default")
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale mismatch: got %q", cfg.DefaultLocale)
	}
	if cfg.HTTPIdleTimeout != 60*time.Second {
		t.Fatalf("HTTPIdleTimeout mismatch: got %s", cfg.HTTPIdleTimeout)
	}
}

func TestLoadConfigParsesLists(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("PUBLIC_UPLOAD_PREFIX", "files/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	expected := []string{"kafka-1:9092", "kafka-2:9092"}
	if len(cfg.KafkaBrokers) != len(expected) {
		t.Fatalf("KafkaBrokers mismatch: got %#v want %#v", cfg.KafkaBrokers, expected)
	}
	for i, broker := range expected {
		if cfg.KafkaBrokers[i] != broker {
			t.Fatalf("KafkaBrokers[%d] = %q, want %q", i, cfg.KafkaBrokers[i], broker)
		}
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.UploadPrefix != "/files" {
		t.Fatalf("UploadPrefix mismatch: got %q", cfg.UploadPrefix)
	}
}

func TestLoadConfigRejectsNonPositiveUploadLimit(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("MAX_UPLOAD_MB", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for MAX_UPLOAD_MB=0")
	}
}
