// Package toml provides an optional TOML serialization backend, built on
// pelletier/go-toml/v2.
//
// TOML values that have no tree representation round-trip through their
// decoded Go forms: datetimes become time.Time and are re-encoded as
// datetimes. TOML cannot represent nil, so trees holding explicit nulls
// from another format fail to encode.
package toml
