package dataset

import (
	"errors"
	"testing"
)

func TestIsCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    bool
		wantErr bool
	}{
		{FormatVersion, true, false},
		{"v1.4.2", true, false},
		{"v0.9.0", false, false},
		{"v2.0.0", false, false},
		{"1.0.0", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()
			got, err := IsCompatible(tt.version)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("error = %v, want ErrInvalidVersion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("IsCompatible(%q) failed: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("IsCompatible(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
