package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendQuery(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		value string
		want  map[string]string
	}{
		{
			name:  "bare url",
			base:  "https://cdn/x",
			value: "abc",
			want:  map[string]string{"token": "abc"},
		},
		{
			name:  "existing parameter preserved",
			base:  "https://cdn/x?q=1",
			value: "abc",
			want:  map[string]string{"q": "1", "token": "abc"},
		},
		{
			name:  "existing token overwritten",
			base:  "https://cdn/x?token=old&q=1",
			value: "new",
			want:  map[string]string{"q": "1", "token": "new"},
		},
		{
			name:  "percent-encoded values round-trip",
			base:  "https://cdn/x?title=a%20b%26c",
			value: "t/k=n",
			want:  map[string]string{"title": "a b&c", "token": "t/k=n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := appendQuery(tt.base, "token", tt.value)
			require.NoError(t, err)

			parsed, err := url.Parse(got)
			require.NoError(t, err)

			query := parsed.Query()
			assert.Len(t, query, len(tt.want))
			for k, v := range tt.want {
				assert.Equal(t, v, query.Get(k), "parameter %q", k)
			}
		})
	}
}

func TestAppendQuery_InvalidURL(t *testing.T) {
	_, err := appendQuery("://not-a-url", "token", "abc")
	assert.Error(t, err)
}
