// Package streamjson is an incremental, pull-based JSON parser for
// documents that may exceed available memory or arrive as a stream.
//
// Three layers of consumption are exposed, from low to high:
//
//   - BasicParse returns a flat (kind, value) event stream;
//   - Parse annotates each event with its dotted path from the document
//     root;
//   - Items and KVItems materialize complete subtrees for a chosen path
//     prefix without ever holding the whole document in memory.
//
// All three are lazy: bytes are pulled from the underlying io.Reader only
// as the caller asks for the next event or value.
package streamjson
