package headers

import (
	"mime"
	"net/http"
)

// NameContentType is the canonical Content-Type header name.
const NameContentType = "Content-Type"

// ContentType is the media type of a served asset, stored in its canonical
// wire form (e.g. "text/html; charset=utf-8").
type ContentType string

// OctetStream returns the fallback media type used when no better type is
// known.
func OctetStream() ContentType {
	return "application/octet-stream"
}

// ParseContentType decodes a raw Content-Type value. It reports ok=false when
// the value is not a valid media type.
func ParseContentType(raw string) (ContentType, bool) {
	mediaType, params, err := mime.ParseMediaType(raw)
	if err != nil {
		return "", false
	}
	return ContentType(mime.FormatMediaType(mediaType, params)), true
}

// String returns the wire form of the media type.
func (ct ContentType) String() string {
	return string(ct)
}

// ContentTypeFrom decodes the Content-Type header from h.
func ContentTypeFrom(h http.Header) (ContentType, bool) {
	raw := h.Get(NameContentType)
	if raw == "" {
		return "", false
	}
	return ParseContentType(raw)
}

// SetContentType encodes ct into h.
func SetContentType(h http.Header, ct ContentType) {
	h.Set(NameContentType, ct.String())
}
