package domain

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{59 * time.Second, "0:00:59"},
		{20 * time.Minute, "0:20:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{27*time.Hour + 3*time.Minute + 9*time.Second, "27:03:09"},
		{1500 * time.Millisecond, "0:00:02"},
		{-5 * time.Minute, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
