// Package rules models directed adjacency constraints between symbol ids
// at integer 2-D offsets, and answers "which ids may sit here?" queries
// during Wave Function Collapse.
//
// What:
//
//   - Offset is an arbitrary small displacement (DX, DY); the four unit
//     vectors Left, Right, Up, Down cover the classic 4-neighbor model.
//   - Rule{Neighbor, Subject, Off} reads "Neighbor may occupy the cell at
//     Subject's position + Off". Rules are directed: registering
//     (A left-of B) says nothing about (B right-of A).
//   - RuleSet stores rules deduplicated by structural equality, keeps
//     insertion order for deterministic iteration, and indexes by
//     (subject, offset) for O(1) lookups.
//
// Why:
//
//   - The WFC propagator intersects, per neighbor, the union of ids each
//     of the neighbor's remaining candidates still allows (permissive
//     union, then intersection across neighbors). AllowedAny is exactly
//     that inner union.
//
// Complexity:
//
//   - Add: O(1) expected. Allowed: O(k) for k matching rules.
//   - AllowedAny: O(Σk) over the candidate list, deduplicated.
//   - Memory: O(R) for R rules.
//
// Errors:
//
//	None. A query with no matching rule returns an empty result — a
//	missing rule is an absent permission, not a failure (the solver
//	turns it into a contradiction only when no neighbor permits anything).
package rules
