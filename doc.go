// Package config provides structured access to a configuration file whose
// serialization format is selected by filename.
//
// An Accessor binds a filename to a backend registry. The file is decoded on
// first use into a tree of mappings, sequences and scalars, cached for the
// accessor's lifetime, and queried through dotted paths:
//
//	"server.host"                  -> tree["server"]["host"]
//	"companies.acme.users.0.name"  -> a sequence element's field
//	""                             -> the whole document
//
// A segment is interpreted by the node it lands on: mappings descend by key,
// sequences by decimal index. Presence is always an explicit signal, never a
// truthiness check, so stored false, nil and empty values are distinguishable
// from absent ones.
//
// # Write Policy
//
// Accessors are read-only unless constructed with WithReadWrite; WithReadOnly
// forces the read-only policy and wins over WithReadWrite regardless of
// option order. Save re-encodes the cached tree through the backend chosen at
// load time and atomically replaces the file.
//
// # Example
//
// A typical usage pattern:
//
//	cfg := config.New("app.yaml", config.WithReadWrite())
//
//	host, err := cfg.GetString("server.host", config.WithDefault("localhost"))
//	if err != nil {
//	    return err
//	}
//
//	if err := cfg.Set("server.port", 9090); err != nil {
//	    return err
//	}
//
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// Accessors are not safe for concurrent use.
package config
