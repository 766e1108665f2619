// Slice helpers shared by the enumerator and scorer.

package paths

// indexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// extend returns a fresh copy of path with id appended, so sibling branches
// never share a backing array.
// Time Complexity: O(n).
func extend(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}
