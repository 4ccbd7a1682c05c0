package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty journal returns ErrJournalEmpty",
			config:  Config{Journal: "", DataDir: "/tmp/data"},
			wantErr: ErrJournalEmpty,
		},
		{
			name:    "unknown journal returns ErrJournalUnknown",
			config:  Config{Journal: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrJournalUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Journal: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "journal disabled",
			config:  Config{Journal: "none"},
			wantErr: nil,
		},
		{
			name:    "sqlite with empty DataDir is valid at config level",
			config:  Config{Journal: "sqlite", DataDir: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigJournalEnabled(t *testing.T) {
	if !(Config{Journal: JournalSQLite}).JournalEnabled() {
		t.Error("sqlite journal should be enabled")
	}
	if (Config{Journal: JournalNone}).JournalEnabled() {
		t.Error("none journal should be disabled")
	}
}
