// Package tree implements dotted-path navigation over decoded configuration
// trees: string-keyed mappings, sequences and scalars, as produced by the
// serialization backends.
//
// A path like "companies.acme.users.0.name" is split on dots and walked one
// segment at a time. How a segment is interpreted depends on the node it is
// applied to: mappings are descended by key, sequences by decimal index.
// There is no bracket syntax and no escaping; keys containing dots cannot be
// addressed.
//
// Resolve reports presence through an explicit boolean so that stored nil,
// false, zero and empty values are distinguishable from absent ones. Set
// extends the tree, creating missing intermediate mappings on the way down;
// Delete removes mapping entries at any depth.
package tree
