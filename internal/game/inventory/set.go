// Package inventory provides the ordered item containers held by rooms and the player.
package inventory

// Set is an insertion-ordered set of item names.
// The zero value is an empty set ready for use.
type Set struct {
	names  []string
	member map[string]bool
}

// NewSet creates a Set holding names in the given order. Duplicates are ignored.
//
// Postcondition: Names() returns the distinct names in first-seen order.
func NewSet(names ...string) *Set {
	s := &Set{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add appends name to the set.
//
// Postcondition: Returns true if name was added, false if it was already present.
func (s *Set) Add(name string) bool {
	if s.member == nil {
		s.member = make(map[string]bool)
	}
	if s.member[name] {
		return false
	}
	s.member[name] = true
	s.names = append(s.names, name)
	return true
}

// Remove deletes name from the set, preserving the order of the remaining names.
//
// Postcondition: Returns true if name was present and removed.
func (s *Set) Remove(name string) bool {
	if !s.member[name] {
		return false
	}
	delete(s.member, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	return s.member[name]
}

// Names returns a snapshot copy of the names in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the set.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names in the set.
func (s *Set) Len() int {
	return len(s.names)
}

// Missing returns the names in required that are not in the set, in the order given.
//
// Postcondition: Returns nil when the set is a superset of required.
func (s *Set) Missing(required []string) []string {
	var missing []string
	for _, r := range required {
		if !s.member[r] {
			missing = append(missing, r)
		}
	}
	return missing
}

// ContainsAll reports whether the set is a superset of required.
func (s *Set) ContainsAll(required []string) bool {
	return len(s.Missing(required)) == 0
}
