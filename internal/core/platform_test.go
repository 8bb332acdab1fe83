package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformForOS(t *testing.T) {
	tests := []struct {
		os       string
		platform string
		ok       bool
	}{
		{"macosx", "macos", true},
		{"ios", "ios", true},
		{"tvos", "tvos", true},
		{"watchos", "watchos", true},
		{"linux", "", false},
		{"windows", "", false},
		{"wasi", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		platform, ok := PlatformForOS(tt.os)
		assert.Equal(t, tt.ok, ok, tt.os)
		assert.Equal(t, tt.platform, platform, tt.os)
	}
}

func TestVariantForEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		variant     string
		ok          bool
	}{
		{"simulator", "simulator", true},
		{"macabi", "maccatalyst", true},
		{"gnu", "", false},
		{"musl", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		variant, ok := VariantForEnvironment(tt.environment)
		assert.Equal(t, tt.ok, ok, tt.environment)
		assert.Equal(t, tt.variant, variant, tt.environment)
	}
}
