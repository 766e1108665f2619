// Package seed builds the initial structure a growth run starts from.
//
// Every layout uses decimal keys and puts the root at key "0", matching the
// growth engine's default root.
//
//	Pair()   "0"(0,0) ── "1"(r,r)                       the reference seed
//	Line(n)  "0" ── "1" ── … ── "n-1" along +x
//	Ring(n)  n-cycle with adjacent vertices r apart
//	Star(n)  hub "0" with n-1 leaves on a circle of radius r
//
// Options:
//
//	WithSpacing(r)      distance between adjacent seed vertices (default 1)
//	WithRootWeight(w)   weight of "0" (default 1; a heavier root drives growth outward)
//	WithLeafWeight(w)   weight of every other seed vertex (default 1)
//
// Constructors compose through BuildGraph and are selectable by name via
// Build, which is what the CLI uses.
package seed
