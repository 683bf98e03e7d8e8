// Package symbols deduplicates raw sample symbols (pixel colors, tile
// sub-images, runes — anything) into a dense, contiguous id space and
// records how often each symbol occurs.
//
// What:
//
//   - Table assigns ids 0..N-1 in first-seen order, deduplicated by value
//     equality (== for comparable kinds, or a caller-supplied predicate).
//   - Every Intern call counts one occurrence; Weights() derives the
//     empirical relative frequency per id, normalized by total occurrences.
//
// Why:
//
//   - WFC rules and weight tables index by dense integer id, not by raw
//     symbol value; Table is the bridge between the two.
//   - The same frequencies that describe a sample drive generation bias.
//
// Complexity:
//
//   - Intern: O(1) expected for comparable symbols (map lookup),
//     O(N·cost(eq)) for predicate equality (linear first-seen scan).
//   - Weights: O(N). Memory: O(N).
//
// Errors:
//
//   - ErrUnknownID: requested id was never assigned.
package symbols
