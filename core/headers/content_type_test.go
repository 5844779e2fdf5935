package headers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedserve/embedserve/core/headers"
)

func TestParseContentType(t *testing.T) {
	t.Parallel()

	ct, ok := headers.ParseContentType("text/html; charset=utf-8")
	require.True(t, ok)
	assert.Equal(t, "text/html; charset=utf-8", ct.String())

	_, ok = headers.ParseContentType("not a media type")
	assert.False(t, ok)
}

func TestOctetStream(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "application/octet-stream", headers.OctetStream().String())
}

func TestContentTypeHeaderAccess(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	_, ok := headers.ContentTypeFrom(h)
	require.False(t, ok)

	headers.SetContentType(h, headers.OctetStream())
	assert.Equal(t, "application/octet-stream", h.Get("Content-Type"))
}
