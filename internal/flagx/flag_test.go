package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "postgres://x", "-a", ":9999"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "postgres://x"},
		},
		{
			name:         "equals form",
			args:         []string{"-d=postgres://x", "-z", "1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://x"},
		},
		{
			name:         "multiple allowed flags preserve order",
			args:         []string{"-a", ":5000", "-d", "postgres://x", "-z", "1"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", ":5000", "-d", "postgres://x"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-z", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{},
		},
		{
			name:         "flag without value at end kept as-is",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-d", "-a"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowedFlags))
		})
	}
}
