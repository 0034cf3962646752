package swiftifaces

// maxLinkedNodes bounds traversal of OS-owned linked collections. Real
// enumerations are orders of magnitude smaller; the cap guards against
// a corrupted or cyclic OS response.
const maxLinkedNodes = 1 << 16

// collectLinked copies a nil-terminated linked collection into
// process-owned values, following next until the terminal marker. The
// source nodes are never mutated, and no pointer into them is retained
// past the copy.
func collectLinked[T any](head *T, next func(*T) *T) []T {
	var nodes []T
	for node := head; node != nil && len(nodes) < maxLinkedNodes; node = next(node) {
		nodes = append(nodes, *node)
	}
	return nodes
}
