// Package store persists fitted potentials — named, ordered collections
// of basis terms — in a single-file SQLite database.
//
// What store delivers:
//
//   - 🚀 Open — one call from a path (or ":memory:") to a ready schema.
//   - ✨ Put / Get — whole-potential replacement and retrieval; each term
//     travels as its YAML document, so anything basis can serialize the
//     store can hold, and the round trip reuses the same validation as
//     construction.
//   - ✨ List / Delete — catalogue management.
//
// A potential's terms keep their insertion order: Get returns them in the
// exact sequence Put received.
package store
