package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZglobMatcher_Match(t *testing.T) {
	matcher := ZglobMatcher{}

	tests := []struct {
		pattern  string
		name     string
		expected bool
	}{
		{pattern: "assets/*.bin", name: "assets/image.bin", expected: true},
		{pattern: "assets/*.bin", name: "assets/nested/image.bin", expected: false},
		{pattern: "assets/**/*.bin", name: "assets/nested/image.bin", expected: true},
		{pattern: "*.psd", name: "assets/image.bin", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.name, func(t *testing.T) {
			matched, err := matcher.Match(tt.pattern, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}
