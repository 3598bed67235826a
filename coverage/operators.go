package coverage

// TryAdd inserts v into the solution.
// Rejected with ReasonPresent if v ∈ S, ReasonOutOfRange for a bad id.
// Complexity: O(deg(v)).
func (s *State) TryAdd(v int) Outcome {
	if v < 0 || v >= len(s.in) {
		return rejected(ReasonOutOfRange)
	}
	if s.in[v] {
		return rejected(ReasonPresent)
	}
	before := s.score
	s.insert(v)
	s.refresh()

	return applied(s.score - before)
}

// TryRemove deletes v from the solution.
// Rejected with ReasonAbsent if v ∉ S, ReasonOutOfRange for a bad id.
// Complexity: O(deg(v)).
func (s *State) TryRemove(v int) Outcome {
	if v < 0 || v >= len(s.in) {
		return rejected(ReasonOutOfRange)
	}
	if !s.in[v] {
		return rejected(ReasonAbsent)
	}
	before := s.score
	s.erase(v)
	s.refresh()

	return applied(s.score - before)
}

// TrySwitch replaces out with in. It requires out ∈ S and in ∉ S; otherwise
// it is rejected (ReasonAbsent / ReasonPresent) without side effects.
// Complexity: O(deg(out) + deg(in)).
func (s *State) TrySwitch(out, in int) Outcome {
	if out < 0 || out >= len(s.in) || in < 0 || in >= len(s.in) {
		return rejected(ReasonOutOfRange)
	}
	if !s.in[out] {
		return rejected(ReasonAbsent)
	}
	if s.in[in] {
		return rejected(ReasonPresent)
	}
	before := s.score
	s.erase(out)
	s.insert(in)
	s.refresh()

	return applied(s.score - before)
}

// Apply dispatches m to the matching operator.
func (s *State) Apply(m Move) Outcome {
	switch m.Kind {
	case MoveAdd:
		return s.TryAdd(m.In)
	case MoveRemove:
		return s.TryRemove(m.Out)
	default:
		return s.TrySwitch(m.Out, m.In)
	}
}

// Probe applies m, reads the resulting score and reverts it.
// ok is false when m is rejected; the State is unchanged in either case.
func (s *State) Probe(m Move) (score float64, ok bool) {
	if !s.Apply(m).Applied() {
		return s.score, false
	}
	score = s.score
	s.Apply(m.Inverse())

	return score, true
}

// CanRemove reports whether deleting v keeps every neighbour at or above its
// threshold: false as soon as some u ∈ N(v) has 2·(pop[u]-1) < deg(u).
// Complexity: O(deg(v)).
func (s *State) CanRemove(v int) bool {
	for _, u := range s.g.Neighbors(v) {
		if 2*(s.pop[u]-1) < s.g.Degree(u) {
			return false
		}
	}

	return true
}

// insert and erase maintain every counter except the cached score.

func (s *State) insert(v int) {
	s.in[v] = true
	s.size++
	s.degreeSum += int64(s.g.Degree(v))
	var d int
	for _, u := range s.g.Neighbors(v) {
		d = s.g.Degree(u)
		if 2*s.pop[u] < d && 2*(s.pop[u]+1) >= d {
			s.uncovered--
		}
		s.pop[u]++
		s.byDegree[d]++
		if s.unit != nil {
			s.scaled += s.unit[d]
		}
	}
}

func (s *State) erase(v int) {
	s.in[v] = false
	s.size--
	s.degreeSum -= int64(s.g.Degree(v))
	var d int
	for _, u := range s.g.Neighbors(v) {
		d = s.g.Degree(u)
		if 2*s.pop[u] >= d && 2*(s.pop[u]-1) < d {
			s.uncovered++
		}
		s.pop[u]--
		s.byDegree[d]--
		if s.unit != nil {
			s.scaled -= s.unit[d]
		}
	}
}
