package urlpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New([]string{"[invalid"}, nil)
	require.Error(t, err)

	_, err = New(nil, []string{"[invalid"})
	require.Error(t, err)
}

func TestPolicy_Allows(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		denied  []string
		url     string
		want    bool
	}{
		{
			name: "no patterns allows everything",
			url:  "https://example.com/path",
			want: true,
		},
		{
			name:   "denied host",
			denied: []string{"*.internal.example.com"},
			url:    "https://db.internal.example.com/admin",
			want:   false,
		},
		{
			name:   "denied full url",
			denied: []string{"https://example.com/admin*"},
			url:    "https://example.com/admin/users",
			want:   false,
		},
		{
			name:    "allowed host",
			allowed: []string{"example.com"},
			url:     "https://example.com/docs",
			want:    true,
		},
		{
			name:    "not in allow list",
			allowed: []string{"example.com"},
			url:     "https://other.com/",
			want:    false,
		},
		{
			name:    "denied wins over allowed",
			allowed: []string{"example.com"},
			denied:  []string{"example.com"},
			url:     "https://example.com/",
			want:    false,
		},
		{
			name:    "host is matched case-insensitively",
			allowed: []string{"example.com"},
			url:     "https://EXAMPLE.com/docs",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := New(tt.allowed, tt.denied)
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy.Allows(tt.url))
		})
	}
}

func TestPolicy_NilAllowsEverything(t *testing.T) {
	var policy *Policy
	assert.True(t, policy.Allows("https://anywhere.example"))
}
