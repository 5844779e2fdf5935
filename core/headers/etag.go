package headers

import (
	"net/http"
	"strings"
)

// NameETag is the canonical ETag header name.
const NameETag = "ETag"

// ETag is an entity-tag as specified by RFC 9110, section 8.8.3.
type ETag struct {
	// Tag is the opaque-tag without the surrounding double quotes.
	Tag string

	// Weak marks a weak validator (rendered with the W/ prefix).
	Weak bool
}

// ParseETag decodes a raw entity-tag value. The value must be pure ASCII and
// have exactly the form `"token"` or `W/"token"`; anything else is rejected
// outright.
func ParseETag(raw string) (ETag, bool) {
	value := raw
	weak := strings.HasPrefix(value, "W/")
	if weak {
		value = value[2:]
	}

	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return ETag{}, false
	}

	tag := value[1 : len(value)-1]
	if !isASCII(tag) || strings.ContainsAny(tag, `"`) {
		return ETag{}, false
	}

	return ETag{Tag: tag, Weak: weak}, true
}

// String renders the entity-tag in wire form, including quotes and the W/
// prefix for weak validators.
func (e ETag) String() string {
	if e.Weak {
		return `W/"` + e.Tag + `"`
	}
	return `"` + e.Tag + `"`
}

// WeakEqual compares two entity-tags using the weak comparison function:
// opaque-tags must match byte for byte, weakness is ignored.
func (e ETag) WeakEqual(other ETag) bool {
	return e.Tag == other.Tag
}

// ETagFrom decodes the ETag header from h.
func ETagFrom(h http.Header) (ETag, bool) {
	raw := h.Get(NameETag)
	if raw == "" {
		return ETag{}, false
	}
	return ParseETag(raw)
}

// SetETag encodes e into h.
func SetETag(h http.Header, e ETag) {
	h.Set(NameETag, e.String())
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
