package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordsMatch(t *testing.T) {
	tests := []struct {
		name     string
		supplied string
		stored   string
		expected bool
	}{
		{
			name:     "EqualCredentials",
			supplied: "5f4dcc3b5aa765d61d8327deb882cf99",
			stored:   "5f4dcc3b5aa765d61d8327deb882cf99",
			expected: true,
		},
		{
			name:     "DifferentSameLength",
			supplied: "5f4dcc3b5aa765d61d8327deb882cf99",
			stored:   "5f4dcc3b5aa765d61d8327deb882cf00",
			expected: false,
		},
		{
			name:     "DifferentLength",
			supplied: "short",
			stored:   "5f4dcc3b5aa765d61d8327deb882cf99",
			expected: false,
		},
		{
			name:     "BothEmpty",
			supplied: "",
			stored:   "",
			expected: true,
		},
		{
			name:     "SuppliedEmpty",
			supplied: "",
			stored:   "stored",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, PasswordsMatch(tt.supplied, tt.stored))
			},
		)
	}
}
