package headers

import (
	"net/http"
	"strings"
)

// NameIfNoneMatch is the canonical If-None-Match header name.
const NameIfNoneMatch = "If-None-Match"

// IfNoneMatch is a decoded If-None-Match header: either the wildcard `*`
// matching any entity-tag, or a list of entity-tags. The zero value matches
// nothing.
type IfNoneMatch struct {
	wildcard bool
	tags     []ETag
}

// AnyETag returns an If-None-Match value that matches every entity-tag.
func AnyETag() IfNoneMatch {
	return IfNoneMatch{wildcard: true}
}

// ParseIfNoneMatch decodes a raw If-None-Match value. Decoding is
// all-or-nothing: if any list member is not a valid quoted entity-tag, the
// whole header is rejected and callers must treat it as absent.
func ParseIfNoneMatch(raw string) (IfNoneMatch, bool) {
	if strings.TrimSpace(raw) == "*" {
		return AnyETag(), true
	}

	parts := strings.Split(raw, ",")
	tags := make([]ETag, 0, len(parts))
	for _, part := range parts {
		tag, ok := ParseETag(strings.TrimSpace(part))
		if !ok {
			return IfNoneMatch{}, false
		}
		tags = append(tags, tag)
	}

	return IfNoneMatch{tags: tags}, true
}

// Matches reports whether e matches the header: always true for the wildcard,
// otherwise true when any listed entity-tag weak-compares equal to e.
func (m IfNoneMatch) Matches(e ETag) bool {
	if m.wildcard {
		return true
	}
	for _, tag := range m.tags {
		if tag.WeakEqual(e) {
			return true
		}
	}
	return false
}

// String renders the header in wire form: `*` for the wildcard, otherwise the
// entity-tags joined with ", ".
func (m IfNoneMatch) String() string {
	if m.wildcard {
		return "*"
	}
	rendered := make([]string, len(m.tags))
	for i, tag := range m.tags {
		rendered[i] = tag.String()
	}
	return strings.Join(rendered, ", ")
}

// IfNoneMatchFrom decodes the If-None-Match header from h.
func IfNoneMatchFrom(h http.Header) (IfNoneMatch, bool) {
	raw := h.Get(NameIfNoneMatch)
	if raw == "" {
		return IfNoneMatch{}, false
	}
	return ParseIfNoneMatch(raw)
}

// SetIfNoneMatch encodes m into h.
func SetIfNoneMatch(h http.Header, m IfNoneMatch) {
	h.Set(NameIfNoneMatch, m.String())
}
