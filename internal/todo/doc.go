// Package todo loads, mutates, and saves the checklist data file.
//
// The data file (todo.json) is a single JSON document validated against the
// embedded todo.schema.json:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {"text": "buy milk", "done": false},
//	    {"text": "call mum", "done": true}
//	  ]
//	}
//
// # Positions
//
// Tasks have no stable identifier. A task is addressed by its 1-based
// position in the list as printed by the list command, so positions shift
// after a removal or a sort.
//
// # Mutations
//
// Every mutation validates all requested positions before touching the list.
// A single out-of-range position fails the whole call with an
// *OutOfRangeError and leaves the list as it was.
//
// # File Format
//
// When writing the data file, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - A temporary file in the same directory, renamed over the target
package todo
