// Package headers implements typed parsing and rendering for the HTTP headers
// used during conditional asset requests: Content-Type, ETag, Last-Modified,
// If-None-Match and If-Modified-Since.
//
// Every header type follows the same contract: a Parse* function that decodes a
// raw header value (returning ok=false for anything malformed, with no partial
// acceptance), a String method that re-renders the wire form, and Get*/Set*
// helpers operating directly on http.Header.
//
// Malformed request headers are never an error at this level — callers treat a
// failed decode exactly as if the header were absent.
package headers
