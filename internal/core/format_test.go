package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1 << 10, "1.0 KB"},
		{5 << 20, "5.0 MB"},
		{1 << 30, "1.00 GB"},
		{3 << 29, "1.50 GB"},
		{1 << 40, "1.00 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes))
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "10s ago", FormatAge(10*time.Second))
	assert.Equal(t, "2m ago", FormatAge(2*time.Minute+5*time.Second))
	assert.Equal(t, "1h 30m ago", FormatAge(90*time.Minute))
}
