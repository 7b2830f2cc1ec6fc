// Package fieldpath parses dotted attribute paths and walks them over plain
// structural values.
//
// # Path Syntax
//
// A path is a non-empty, dot-delimited list of non-empty segments:
//   - Simple keys: "status"
//   - Nested keys: "address.city"
//   - Indexes into slices and arrays: "tags.0"
//   - Every element of a slice, array or map: "comments.*.body"
//
// # Walking
//
// Get resolves one segment at a time. For every segment the current value is
// consulted in this order:
//  1. a Getter answers for itself; when it reports the key as absent the
//     walk continues with the value's structure
//  2. pointers and interfaces are dereferenced
//  3. maps are indexed by key
//  4. structs are searched for an exported field whose `form` tag, `json`
//     tag, name, or studly-cased key matches
//  5. slices and arrays are indexed by decimal position
//
// A segment that cannot be resolved ends the walk with nil. Walking never
// fails.
package fieldpath
