package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"5s", 5 * time.Second},
		{"2m", 2 * time.Minute},
		{"", time.Second},
		{"soon", time.Second},
		{"0s", time.Second},
		{"-3s", time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.input, time.Second), "input %q", tt.input)
	}
}
