package headers

import (
	"net/http"
	"time"
)

// Canonical names of the date-valued headers.
const (
	NameLastModified    = "Last-Modified"
	NameIfModifiedSince = "If-Modified-Since"
)

// LastModified is a decoded Last-Modified header. HTTP dates carry second
// precision, so sub-second information is truncated on encode.
type LastModified time.Time

// ParseLastModified decodes a raw Last-Modified value in any of the date
// formats HTTP allows.
func ParseLastModified(raw string) (LastModified, bool) {
	t, ok := parseHTTPDate(raw)
	return LastModified(t), ok
}

// Time returns the modification time.
func (lm LastModified) Time() time.Time {
	return time.Time(lm)
}

// String renders the date in the preferred IMF-fixdate format.
func (lm LastModified) String() string {
	return formatHTTPDate(time.Time(lm))
}

// LastModifiedFrom decodes the Last-Modified header from h.
func LastModifiedFrom(h http.Header) (LastModified, bool) {
	raw := h.Get(NameLastModified)
	if raw == "" {
		return LastModified{}, false
	}
	return ParseLastModified(raw)
}

// SetLastModified encodes lm into h.
func SetLastModified(h http.Header, lm LastModified) {
	h.Set(NameLastModified, lm.String())
}

// IfModifiedSince is a decoded If-Modified-Since header: the threshold a
// resolved modification time is compared against, at second precision.
type IfModifiedSince time.Time

// ParseIfModifiedSince decodes a raw If-Modified-Since value; the date
// handling is identical to Last-Modified.
func ParseIfModifiedSince(raw string) (IfModifiedSince, bool) {
	t, ok := parseHTTPDate(raw)
	return IfModifiedSince(t), ok
}

// Time returns the threshold time.
func (ims IfModifiedSince) Time() time.Time {
	return time.Time(ims)
}

// String renders the date in the preferred IMF-fixdate format.
func (ims IfModifiedSince) String() string {
	return formatHTTPDate(time.Time(ims))
}

// IfModifiedSinceFrom decodes the If-Modified-Since header from h.
func IfModifiedSinceFrom(h http.Header) (IfModifiedSince, bool) {
	raw := h.Get(NameIfModifiedSince)
	if raw == "" {
		return IfModifiedSince{}, false
	}
	return ParseIfModifiedSince(raw)
}

// SetIfModifiedSince encodes ims into h.
func SetIfModifiedSince(h http.Header, ims IfModifiedSince) {
	h.Set(NameIfModifiedSince, ims.String())
}

func parseHTTPDate(raw string) (time.Time, bool) {
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatHTTPDate(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(http.TimeFormat)
}
