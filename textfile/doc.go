// Package textfile provides a small chainable buffer for plain text files
// that live next to structured configuration: .env snippets, ignore files,
// release notes. It shares the accessor's write discipline: edits accumulate
// in memory and Save atomically replaces the file.
//
//	err := textfile.New(".gitignore").
//	    AppendLine("*.log").
//	    AppendLine("dist/").
//	    Save()
package textfile
