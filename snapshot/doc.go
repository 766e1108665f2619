// Package snapshot persists a growth graph as YAML and restores it.
//
// Document layout:
//
//	run: 6f1c...        (optional)
//	root: "0"
//	vertices:
//	  - id: "0"
//	    x: 0
//	    y: 0
//	    weight: 5
//	    activation: 0.015
//	    neighbors: ["1", "2"]
//
// Vertices appear in insertion order and neighbors in link order, so a
// decoded graph iterates exactly like the encoded one and a resumed run
// draws the same paths. Float fields use the shortest representation that
// parses back to the same float64, so values round-trip bit for bit.
//
// Only core.Graph's public accessors are used; the package never reaches
// into the store.
package snapshot
