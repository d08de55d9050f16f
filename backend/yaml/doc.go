// Package yaml provides the YAML serialization backend, built on
// goccy/go-yaml.
//
// Decoded mappings are normalized to string keys so the whole tree is
// addressable through dotted paths regardless of the key types the document
// used. Encoding emits block-style YAML; comments and anchors do not survive
// a decode/encode cycle.
package yaml
