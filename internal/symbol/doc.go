// Package symbol provides the canonical event model for Weft.
//
// This package turns heterogeneous developer-activity events into a stable,
// finite, hashed symbol alphabet. All mining packages import symbol; symbol
// imports no internal package. This keeps the alphabet the foundational
// layer with no circular dependencies.
//
// Key design constraints:
//   - Canonicalization is rule-free: only the declared type's head token is
//     read, then hashed. No semantic lookup tables.
//   - Canonicalization never fails. Malformed events degrade to the
//     EV_OTHER sentinel, never to an error.
//   - Event details are normalized to a tagged union (raw text vs parsed
//     fields) at the ingestion boundary. Mining code never branches on
//     representation.
package symbol
