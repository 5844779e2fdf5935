package serve

import (
	"net/http"
	"time"

	"github.com/embedserve/embedserve/core/asset"
	"github.com/embedserve/embedserve/core/headers"
)

// condition is the outcome of evaluating request validators against resolved
// metadata.
type condition int

const (
	// condPass means the full content should be served.
	condPass condition = iota

	// condNotModified means the client's copy is current and 304 applies.
	condNotModified
)

// evaluate decides between 200 and 304. Precedence follows RFC 9110: when the
// request carries If-None-Match and the asset has an entity-tag, that check
// alone decides — the wildcard and any weak-matching tag yield 304. Only
// otherwise is If-Modified-Since consulted, passing when the resolved
// modification time is strictly after the threshold at second precision. A
// missing resolved validator silently skips its check.
func evaluate(inm *headers.IfNoneMatch, ims *headers.IfModifiedSince, md asset.Metadata) condition {
	if inm != nil && md.ETag != nil {
		if inm.Matches(*md.ETag) {
			return condNotModified
		}
		return condPass
	}

	if ims != nil && !md.LastModified.IsZero() {
		modified := md.LastModified.Truncate(time.Second)
		if modified.After(ims.Time()) {
			return condPass
		}
		return condNotModified
	}

	return condPass
}

// conditionalHeaders decodes the two request validators. Malformed headers
// decode to nil, identical to absence.
func conditionalHeaders(h http.Header) (*headers.IfNoneMatch, *headers.IfModifiedSince) {
	var inm *headers.IfNoneMatch
	var ims *headers.IfModifiedSince

	if v, ok := headers.IfNoneMatchFrom(h); ok {
		inm = &v
	}
	if v, ok := headers.IfModifiedSinceFrom(h); ok {
		ims = &v
	}
	return inm, ims
}
