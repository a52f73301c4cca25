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
			name:    "empty output dir returns ErrOutputDirEmpty",
			config:  Config{OutputDir: "", FigureFormat: "svg", SampleSize: 10},
			wantErr: ErrOutputDirEmpty,
		},
		{
			name:    "unknown format returns ErrFigureFormatUnknown",
			config:  Config{OutputDir: "/tmp/docs", FigureFormat: "gif", SampleSize: 10},
			wantErr: ErrFigureFormatUnknown,
		},
		{
			name:    "zero sample size returns ErrSampleSizeInvalid",
			config:  Config{OutputDir: "/tmp/docs", FigureFormat: "png", SampleSize: 0},
			wantErr: ErrSampleSizeInvalid,
		},
		{
			name:    "valid config",
			config:  Config{OutputDir: "/tmp/docs", FigureFormat: "pdf", SampleSize: 100},
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			config:  DefaultConfig("/tmp/docs"),
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
