// Package json provides the JSON serialization backend.
//
// Parsing goes through ohler55/ojg after a JSONC pass that strips comments
// and trailing commas, so hand-maintained .jsonc files are handled by the
// same backend as strict .json ones. Numbers decode to int64 when integral
// and float64 otherwise. Encoding always emits strict JSON; comments do not
// survive a decode/encode cycle.
package json
