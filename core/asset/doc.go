// Package asset provides the source capability behind the serve handler: a
// Source resolves a normalized request path to a single-consumption content
// stream plus immutable metadata.
//
// Two interchangeable backends are provided. Table is a read-only in-memory
// mapping built once at process start (typically from an embed.FS), suitable
// for production binaries. Dir resolves paths directly against a local
// directory and streams files lazily, suitable for local iteration; assets it
// returns carry no validators, so conditional checks are skipped for them.
package asset
