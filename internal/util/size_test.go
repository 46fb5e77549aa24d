package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "unknown length", bytes: -1, want: "unknown"},
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "under a kilobyte", bytes: 512, want: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, want: "1.5 KB"},
		{name: "avatar sized", bytes: 2 * 1024 * 1024, want: "2.0 MB"},
		{name: "video sized", bytes: 3 * 1024 * 1024 * 1024, want: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}
