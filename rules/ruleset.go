package rules

// subjectKey indexes rules by the pair the solver queries on.
type subjectKey struct {
	subject int
	off     Offset
}

// RuleSet is a deduplicated collection of directed adjacency rules.
// Insertion order is preserved for Rules and Offsets, so iteration is
// deterministic across runs. The zero value is not ready; use NewRuleSet.
// RuleSet is not safe for concurrent mutation; once built it is read-only
// shared data for any number of solver runs.
type RuleSet struct {
	rules   []Rule                // insertion order
	seen    map[Rule]struct{}     // structural dedup on Add
	byKey   map[subjectKey][]int  // (subject, offset) → allowed neighbor ids
	inKey   map[subjectKey]map[int]struct{} // dedup within a key's id list
	offs    []Offset              // distinct offsets, first-registered order
	offSeen map[Offset]struct{}
}

// NewRuleSet returns an empty RuleSet ready for Add.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		seen:    make(map[Rule]struct{}),
		byKey:   make(map[subjectKey][]int),
		inKey:   make(map[subjectKey]map[int]struct{}),
		offSeen: make(map[Offset]struct{}),
	}
}

// Add inserts r unless an equal rule is already present.
// Reports whether the set grew. Complexity: O(1) expected.
func (rs *RuleSet) Add(r Rule) bool {
	if _, dup := rs.seen[r]; dup {
		return false
	}
	rs.seen[r] = struct{}{}
	rs.rules = append(rs.rules, r)

	key := subjectKey{subject: r.Subject, off: r.Off}
	ids := rs.inKey[key]
	if ids == nil {
		ids = make(map[int]struct{})
		rs.inKey[key] = ids
	}
	if _, dup := ids[r.Neighbor]; !dup {
		ids[r.Neighbor] = struct{}{}
		rs.byKey[key] = append(rs.byKey[key], r.Neighbor)
	}

	if _, dup := rs.offSeen[r.Off]; !dup {
		rs.offSeen[r.Off] = struct{}{}
		rs.offs = append(rs.offs, r.Off)
	}

	return true
}

// Len reports the number of distinct rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Rules returns the rules in insertion order. The slice is a copy; the
// set itself stays immutable to callers.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)

	return out
}

// Offsets returns every distinct offset any rule is keyed by, in
// first-registered order. The propagator walks exactly these.
func (rs *RuleSet) Offsets() []Offset {
	out := make([]Offset, len(rs.offs))
	copy(out, rs.offs)

	return out
}

// Allowed returns the deduplicated ids permitted at subject's position +
// off, in rule-registration order. Empty when no rule matches — a missing
// rule grants nothing and forbids nothing by itself.
// Complexity: O(k) for k matching neighbor ids.
func (rs *RuleSet) Allowed(subject int, off Offset) []int {
	ids := rs.byKey[subjectKey{subject: subject, off: off}]
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// AllowedAny returns the permissive union of Allowed(c, off) over every
// candidate c: any id compatible with at least one of the neighbor's
// remaining candidates survives. This is the inner (union) level of the
// solver's union-then-intersect semantics; a collapsed neighbor is simply
// the one-candidate case.
// Complexity: O(Σk) over candidates, deduplicated.
func (rs *RuleSet) AllowedAny(candidates []int, off Offset) []int {
	var out []int
	var seen map[int]struct{}
	for _, c := range candidates {
		for _, id := range rs.byKey[subjectKey{subject: c, off: off}] {
			if seen == nil {
				seen = make(map[int]struct{})
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// Equal reports whether rs and other contain the same rules as sets,
// ignoring insertion order. Complexity: O(R).
func (rs *RuleSet) Equal(other *RuleSet) bool {
	if other == nil || len(rs.rules) != len(other.rules) {
		return false
	}
	for r := range rs.seen {
		if _, ok := other.seen[r]; !ok {
			return false
		}
	}

	return true
}
