package logger

import "testing"

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"postgres_password", "hunter2", "rows", 12, "dsn", "postgres://u:p@h/db", "dangling"})
	if len(out) != 7 {
		t.Fatalf("expected 7 entries, got %d: %v", len(out), out)
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", out[1])
	}
	if out[3] != 12 {
		t.Fatalf("rows changed: %v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Fatalf("dsn not redacted: %v", out[5])
	}
	if out[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", out[6])
	}
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"development", "production", "test"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("mode", mode).Debug("hello")
	}
}
