package headers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedserve/embedserve/core/headers"
)

func TestParseETag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected headers.ETag
		ok       bool
	}{
		{
			name:     "strong",
			raw:      `"xyzzy"`,
			expected: headers.ETag{Tag: "xyzzy"},
			ok:       true,
		},
		{
			name:     "weak",
			raw:      `W/"xyzzy"`,
			expected: headers.ETag{Tag: "xyzzy", Weak: true},
			ok:       true,
		},
		{
			name:     "empty_tag",
			raw:      `""`,
			expected: headers.ETag{},
			ok:       true,
		},
		{
			name: "unquoted",
			raw:  "xyzzy",
		},
		{
			name: "missing_closing_quote",
			raw:  `"xyzzy`,
		},
		{
			name: "lowercase_weak_prefix",
			raw:  `w/"xyzzy"`,
		},
		{
			name: "non_ascii",
			raw:  `"välue"`,
		},
		{
			name: "embedded_quote",
			raw:  `"xy"zy"`,
		},
		{
			name: "empty",
			raw:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, ok := headers.ParseETag(tc.raw)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, e)
			}
		})
	}
}

func TestETagRoundTrip(t *testing.T) {
	t.Parallel()

	for _, e := range []headers.ETag{
		{Tag: "abc"},
		{Tag: "abc", Weak: true},
		{Tag: "0123456789abcdef"},
	} {
		decoded, ok := headers.ParseETag(e.String())
		require.True(t, ok, e.String())
		assert.Equal(t, e, decoded)
	}
}

func TestETagWeakEqual(t *testing.T) {
	t.Parallel()

	strong := headers.ETag{Tag: "x"}
	weak := headers.ETag{Tag: "x", Weak: true}
	other := headers.ETag{Tag: "y"}

	assert.True(t, strong.WeakEqual(weak))
	assert.True(t, weak.WeakEqual(strong))
	assert.True(t, weak.WeakEqual(weak))
	assert.False(t, strong.WeakEqual(other))
}

func TestETagHeaderAccess(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	_, ok := headers.ETagFrom(h)
	require.False(t, ok)

	headers.SetETag(h, headers.ETag{Tag: "abc", Weak: true})
	assert.Equal(t, `W/"abc"`, h.Get("ETag"))

	e, ok := headers.ETagFrom(h)
	require.True(t, ok)
	assert.Equal(t, headers.ETag{Tag: "abc", Weak: true}, e)
}
